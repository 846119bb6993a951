package expansion

import "sort"

// Unit is one materialized test case: an independently callable binding of
// the group's implementation to a single resolved argument set, carrying its
// generated name, description, and tags. Units are immutable once created;
// all accessors return copies of mutable state.
type Unit struct {
	name         string
	description  string
	discoverable bool
	tags         []string
	positionals  []interface{}
	params       Params
	impl         Func
}

func newUnit(name, description string, tags []string, impl Func, rc resolvedCase) *Unit {
	return &Unit{
		name:         name,
		description:  description,
		discoverable: true,
		tags:         tags,
		positionals:  rc.positionals,
		params:       rc.params,
		impl:         impl,
	}
}

// Name returns the unit's generated identifier, unique within its batch.
func (u *Unit) Name() string { return u.name }

// Description returns the unit's generated human-readable description.
func (u *Unit) Description() string { return u.description }

// Discoverable reports whether a runner should pick this unit up. Every unit
// produced by Expand is discoverable; the flag exists so a runner can make
// the decision per unit rather than per batch.
func (u *Unit) Discoverable() bool { return u.discoverable }

// Tags returns the unit's tags, sorted and deduplicated.
func (u *Unit) Tags() []string {
	return append([]string(nil), u.tags...)
}

// HasTag reports whether the unit carries the given tag.
func (u *Unit) HasTag(tag string) bool {
	for _, t := range u.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Params returns a copy of the unit's merged named values.
func (u *Unit) Params() Params {
	return Params(copyMap(u.params))
}

// Positionals returns a copy of the unit's case-declared positional values.
func (u *Unit) Positionals() []interface{} {
	return copySlice(u.positionals)
}

// Call invokes the implementation with the runner-supplied arguments followed
// by the unit's case-declared positional values, and the unit's named values.
// Whatever the implementation returns comes back unmodified.
func (u *Unit) Call(runnerArgs ...interface{}) error {
	positional := make([]interface{}, 0, len(runnerArgs)+len(u.positionals))
	positional = append(positional, runnerArgs...)
	positional = append(positional, u.positionals...)
	return u.impl(positional, u.params)
}

// normalizeTags returns a sorted, deduplicated copy of tags, or nil if there
// are none.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
