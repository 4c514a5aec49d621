// Package shape implements polygons and the algorithms working on them:
// projection onto an axis, collision tests using the separating axis theorem,
// point containment using the winding angle, convex hulls and triangulation.
//
// The collision test is only exact for convex polygons. Non convex polygons
// can be split using Polygon.Triangulate or approximated by Polygon.ConvexHull.
package shape
