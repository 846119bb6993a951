package expansion

// Func is the shared implementation behind an expansion group. The engine
// invokes it once per unit: positional receives any runner-supplied arguments
// followed by the unit's case-declared positional values, and params receives
// the unit's merged named values.
type Func func(positional []interface{}, params Params) error

// caseDefinition is one declared argument set: positional values in
// declaration order plus named values.
type caseDefinition struct {
	positionals []interface{}
	params      Params
}

// Builder accumulates declaration layers for one test implementation and
// turns them into materialized units with Expand. The zero-to-Expand cycle is
// repeatable: Expand consumes all pending layers, so the same Builder can
// declare several independent batches for the same implementation.
//
// Layers are recorded in call order. Cases keep their declaration order, and
// each Common/Options/OptionValues call appends one axis to the axis list in
// declaration order. A Builder is not safe for concurrent use; declarations
// are expected to happen on a single goroutine at program setup.
type Builder struct {
	impl    Func
	implDoc string
	cases   []caseDefinition
	axes    []optionAxis
}

// NewBuilder creates a Builder for the given implementation.
func NewBuilder(impl Func) *Builder {
	return &Builder{impl: impl}
}

// SetDoc attaches the implementation's own documentation string. Generated
// unit descriptions quote it parenthetically. Unlike the declaration layers
// it is a property of the implementation, so it survives Expand.
func (b *Builder) SetDoc(doc string) {
	b.implDoc = doc
}

// Case declares one test case consisting of positional values only.
func (b *Builder) Case(positionals ...interface{}) {
	b.CaseParams(nil, positionals...)
}

// CaseParams declares one test case with named values and, optionally,
// positional values. The declared maps and slices are read at Expand time;
// mutating them after Expand has no effect on the produced units.
func (b *Builder) CaseParams(params Params, positionals ...interface{}) {
	b.cases = append(b.cases, caseDefinition{positionals: positionals, params: params})
}

// Common declares fixed named values shared by every case of the next
// expansion. It is recorded as a single-alternative axis, so it does not
// multiply the case count, and a later-declared axis overrides it on a key
// collision.
func (b *Builder) Common(params Params) {
	b.axes = append(b.axes, commonAxis(params))
}

// Options declares an option axis from explicit alternatives: each alternative
// is a full parameter set, and every declared case is expanded once per
// alternative. Calling Options with no alternatives returns ErrNoAlternatives
// and leaves the pending layers untouched.
func (b *Builder) Options(alternatives ...Params) error {
	axis, err := newAlternativesAxis(alternatives)
	if err != nil {
		return err
	}
	b.axes = append(b.axes, axis)
	return nil
}

// OptionValues declares an option axis that varies a single named parameter
// across the given values. An empty value list is legal and declares an empty
// axis, making the next expansion empty; an empty parameter name returns
// ErrEmptyOptionName and leaves the pending layers untouched.
func (b *Builder) OptionValues(name string, values ...interface{}) error {
	axis, err := newValueAxis(name, values)
	if err != nil {
		return err
	}
	b.axes = append(b.axes, axis)
	return nil
}
