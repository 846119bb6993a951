package scope

import (
	"fmt"

	"github.com/testmatrix/testmatrix/expansion"
	"github.com/testmatrix/testmatrix/logging"
)

// CollisionPolicy determines what happens when a batch publishes a unit name
// that is already registered.
type CollisionPolicy int

const (
	// FailOnCollision rejects the colliding unit with an error naming it.
	// This is the default: a collision means two expansions chose the same
	// description, and silently losing one of them hides real test cases.
	FailOnCollision CollisionPolicy = iota

	// Overwrite replaces the previously registered unit, keeping its position
	// in registration order, and logs the replacement. Use it only when a
	// later declaration is meant to shadow an earlier one.
	Overwrite
)

// Scope is the namespace that expanded units are published into. It preserves
// registration order, which is the order a runner should iterate in.
type Scope struct {
	policy CollisionPolicy
	logger logging.Logger
	units  map[string]*expansion.Unit
	order  []string
}

// New creates an empty Scope with the default FailOnCollision policy. A nil
// logger discards log output.
func New(logger logging.Logger) *Scope {
	return NewWithPolicy(FailOnCollision, logger)
}

// NewWithPolicy creates an empty Scope with the given collision policy.
func NewWithPolicy(policy CollisionPolicy, logger logging.Logger) *Scope {
	if logger == nil {
		logger = logging.NullLogger()
	}
	return &Scope{
		policy: policy,
		logger: logger,
		units:  make(map[string]*expansion.Unit),
	}
}

// Add publishes every unit of the batch under its generated name, in
// expansion order. Under FailOnCollision the first colliding unit stops the
// registration with an error; units registered before the collision, from
// this batch or earlier ones, stay registered.
func (s *Scope) Add(batch *expansion.Batch) error {
	for _, unit := range batch.Units() {
		if err := s.add(unit); err != nil {
			return fmt.Errorf("batch %q: %w", batch.Description(), err)
		}
	}
	s.logger.Printf("scope: registered %d unit(s) from batch %q", batch.Len(), batch.Description())
	return nil
}

func (s *Scope) add(unit *expansion.Unit) error {
	name := unit.Name()
	if _, exists := s.units[name]; exists {
		if s.policy == FailOnCollision {
			return fmt.Errorf("unit name %q is already registered", name)
		}
		s.logger.Printf("scope: overwriting unit %q", name)
		s.units[name] = unit
		return nil
	}
	s.units[name] = unit
	s.order = append(s.order, name)
	return nil
}

// Len returns the number of registered units.
func (s *Scope) Len() int { return len(s.order) }

// Names returns the registered names in registration order.
func (s *Scope) Names() []string {
	return append([]string(nil), s.order...)
}

// Units returns the registered units in registration order.
func (s *Scope) Units() []*expansion.Unit {
	out := make([]*expansion.Unit, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.units[name])
	}
	return out
}

// Find returns the unit registered under name, if any.
func (s *Scope) Find(name string) (*expansion.Unit, bool) {
	u, ok := s.units[name]
	return u, ok
}

// Select returns the registered units accepted by the filter, in registration
// order. A nil filter accepts everything.
func (s *Scope) Select(filter Filter) []*expansion.Unit {
	out := make([]*expansion.Unit, 0, len(s.order))
	for _, name := range s.order {
		u := s.units[name]
		if filter == nil || filter(u) {
			out = append(out, u)
		}
	}
	return out
}
