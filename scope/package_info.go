// Package scope publishes expanded test units into a flat, named namespace of
// the kind an external runner discovers tests in. It owns the collision policy
// for generated names and provides filters for selecting a subset of the
// published units by name pattern or tag.
//
// A Scope is populated at program setup on a single goroutine; it is not
// meant for concurrent mutation.
package scope
