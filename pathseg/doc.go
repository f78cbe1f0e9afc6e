// Package pathseg implements PathSegment: the tagged union of a fully
// materialised, compressed concrete path (Known) and a lazily resolvable
// gap between two points (Unknown).
//
// PathSegment is a closed two-variant sum type, not an open
// polymorphic hierarchy: dispatch here is by
// exhaustive case analysis over an unexported discriminant field, the
// same flat-struct-plus-flag shape core.Edge uses for its Directed bit
// rather than an interface hierarchy.
package pathseg
