// Package point defines the primitive value types shared by every layer
// of the hierarchical path cache: grid coordinates, non-negative costs,
// and the signed cost type used at the step-cost callback boundary.
//
// These types are intentionally tiny and dependency-free, the same way
// core.Vertex and core.Edge keep their field sets minimal and let the
// surrounding packages build behavior on top.
package point
