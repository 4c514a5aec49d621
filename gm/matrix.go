package gm

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense matrix of float64 values with an arbitrary number of rows and columns.
// Values are stored in row major order. The zero value is an empty 0x0 matrix.
//
// A list of 2d vertices is usually stored as a 2xN matrix, one vertex per column.
type Matrix struct {
	rows, columns int
	values        []float64
}

// NewMatrix returns a zero filled matrix of the given size.
func NewMatrix(rows, columns int) Matrix {
	if rows < 0 || columns < 0 {
		panic(fmt.Sprintf("invalid matrix size %dx%d", rows, columns))
	}

	return Matrix{
		rows:    rows,
		columns: columns,
		values:  make([]float64, rows*columns),
	}
}

// MatrixOf builds a matrix from the given rows. All rows must have the same length.
func MatrixOf(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}

	m := NewMatrix(len(rows), len(rows[0]))
	for row, values := range rows {
		if len(values) != m.columns {
			return Matrix{}, fmt.Errorf("row %d has %d columns, expected %d: %w",
				row, len(values), m.columns, ErrDimensionMismatch)
		}

		copy(m.values[row*m.columns:], values)
	}

	return m, nil
}

// VertexMatrix stores the given points as columns of a 2xN matrix.
func VertexMatrix(points []Vec) Matrix {
	m := NewMatrix(2, len(points))
	for column, point := range points {
		m.Set(0, column, point.X)
		m.Set(1, column, point.Y)
	}

	return m
}

func (m Matrix) Rows() int {
	return m.rows
}

func (m Matrix) Columns() int {
	return m.columns
}

func (m Matrix) At(row, column int) float64 {
	return m.values[m.index(row, column)]
}

// Set updates the value at the given position. The backing storage is shared
// between copies of a Matrix, use Clone before modifying a shared matrix.
func (m Matrix) Set(row, column int, value float64) {
	m.values[m.index(row, column)] = value
}

func (m Matrix) index(row, column int) int {
	if row < 0 || row >= m.rows || column < 0 || column >= m.columns {
		panic(fmt.Sprintf("index (%d, %d) out of range for %dx%d matrix", row, column, m.rows, m.columns))
	}

	return row*m.columns + column
}

func (m Matrix) Clone() Matrix {
	m.values = append([]float64(nil), m.values...)
	return m
}

// Column returns the first two values of the given column as a vector.
func (m Matrix) Column(column int) Vec {
	return Vec{X: m.At(0, column), Y: m.At(1, column)}
}

// Vertices interprets the matrix as a 2xN vertex matrix and returns its columns.
func (m Matrix) Vertices() []Vec {
	if m.rows < 2 {
		return nil
	}

	points := make([]Vec, m.columns)
	for column := range points {
		points[column] = m.Column(column)
	}

	return points
}

// Mul returns the matrix product m * other. The number of columns of m
// must match the number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.columns != other.rows {
		return Matrix{}, fmt.Errorf("multiply %dx%d with %dx%d: %w",
			m.rows, m.columns, other.rows, other.columns, ErrDimensionMismatch)
	}

	result := NewMatrix(m.rows, other.columns)
	for row := 0; row < m.rows; row++ {
		for column := 0; column < other.columns; column++ {
			var sum float64
			for k := 0; k < m.columns; k++ {
				sum += m.values[row*m.columns+k] * other.values[k*other.columns+column]
			}

			result.values[row*result.columns+column] = sum
		}
	}

	return result, nil
}

func (m Matrix) Add(other Matrix) (Matrix, error) {
	return m.elementwise(other, "add", func(a, b float64) float64 { return a + b })
}

func (m Matrix) Sub(other Matrix) (Matrix, error) {
	return m.elementwise(other, "subtract", func(a, b float64) float64 { return a - b })
}

func (m Matrix) elementwise(other Matrix, op string, fn func(a, b float64) float64) (Matrix, error) {
	if m.rows != other.rows || m.columns != other.columns {
		return Matrix{}, fmt.Errorf("%s %dx%d and %dx%d: %w",
			op, m.rows, m.columns, other.rows, other.columns, ErrDimensionMismatch)
	}

	result := NewMatrix(m.rows, m.columns)
	for idx := range result.values {
		result.values[idx] = fn(m.values[idx], other.values[idx])
	}

	return result, nil
}

// Rotated treats each column as a vertex and rotates the first two rows of each column
// around the origin by the given angle, using a homogeneous 3x3 rotation matrix.
// Rows beyond the second are copied unchanged.
func (m Matrix) Rotated(angle Rad) (Matrix, error) {
	if m.rows < 2 {
		return Matrix{}, fmt.Errorf("rotate %dx%d vertex matrix: %w", m.rows, m.columns, ErrDimensionMismatch)
	}

	sin, cos := math.Sincos(float64(angle.Positive()))

	rotation, _ := MatrixOf([][]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	})

	result := m.Clone()
	vertex := NewMatrix(3, 1)

	for column := 0; column < m.columns; column++ {
		vertex.Set(0, 0, m.At(0, column))
		vertex.Set(1, 0, m.At(1, column))
		vertex.Set(2, 0, 1)

		rotated, err := rotation.Mul(vertex)
		if err != nil {
			return Matrix{}, err
		}

		result.Set(0, column, rotated.At(0, 0))
		result.Set(1, column, rotated.At(1, 0))
	}

	return result, nil
}

// Reflected treats each column as a vertex and mirrors the x coordinate (reflectX)
// and/or the y coordinate (reflectY).
func (m Matrix) Reflected(reflectX, reflectY bool) (Matrix, error) {
	if m.rows < 2 {
		return Matrix{}, fmt.Errorf("reflect %dx%d vertex matrix: %w", m.rows, m.columns, ErrDimensionMismatch)
	}

	result := m.Clone()
	for column := 0; column < m.columns; column++ {
		if reflectX {
			result.Set(0, column, -m.At(0, column))
		}

		if reflectY {
			result.Set(1, column, -m.At(1, column))
		}
	}

	return result, nil
}

// Equal returns true if both matrices have the same size and all values
// differ by at most epsilon.
func (m Matrix) Equal(other Matrix, epsilon float64) bool {
	if m.rows != other.rows || m.columns != other.columns {
		return false
	}

	for idx, value := range m.values {
		if math.Abs(value-other.values[idx]) > epsilon {
			return false
		}
	}

	return true
}

func (m Matrix) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Matrix(%dx%d", m.rows, m.columns)
	for row := 0; row < m.rows; row++ {
		sb.WriteString(", [")
		for column := 0; column < m.columns; column++ {
			if column > 0 {
				sb.WriteString(" ")
			}

			fmt.Fprintf(&sb, "%v", m.At(row, column))
		}
		sb.WriteString("]")
	}
	sb.WriteString(")")

	return sb.String()
}
