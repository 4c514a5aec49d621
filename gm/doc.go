// Package gm (stands for geometry math) provides the geometry primitives the
// rest of this module is built on.
//
// It includes a generic 2d vector type called Vec, a 3d point type Vec3, a 2d
// matrix type Mat, an affine transform matrix named Affine and a general
// row/column Matrix used to transform vertex lists.
//
// There is also a type named Rad to represent angle values in radian. Helpers
// producing random values always take an explicit *rand.Rand, the package does
// not keep any global state.
package gm
