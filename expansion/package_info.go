// Package expansion implements a declarative test-parametrization engine: it
// turns one test implementation plus layered argument declarations into a
// batch of independently named, documented, and taggable test units.
//
// The model has three stages:
//
// 1. A Builder accumulates declaration layers for one implementation: explicit
// cases (Case, CaseParams), fixed values shared by every case (Common), and
// option axes that multiply the case count (Options, OptionValues).
//
// 2. Expand composes the layers. Every declared case is combined with one
// alternative from each option axis, forming the full cartesian product. The
// merged parameter set of each combination is deep-copied so that no two
// units share mutable argument state.
//
// 3. Each combination is materialized as a Unit: an immutable value carrying
// a generated unique name, a human-readable description, the tag set of its
// batch, and a Call method binding the implementation to the resolved
// arguments.
//
// The engine only produces units; publishing them into a runner-visible
// namespace is the job of the scope package, and rendering them for humans is
// the job of the report package.
package expansion
