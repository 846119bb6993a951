package expansion

import "errors"

var (
	// ErrNoAlternatives is returned by Builder.Options when it is called with
	// no alternatives at all. An axis with nothing to choose from is always a
	// declaration mistake; an intentionally empty axis is declared with
	// OptionValues and an empty value list instead.
	ErrNoAlternatives = errors.New("expansion: options require at least one alternative")

	// ErrEmptyOptionName is returned by Builder.OptionValues when the
	// parameter name is empty.
	ErrEmptyOptionName = errors.New("expansion: option values require a non-empty parameter name")
)

// optionAxis is one independent dimension of variation: an ordered list of
// alternative parameter sets, exactly one of which is merged into each
// resolved case. An axis may be empty, in which case the whole expansion is
// empty.
type optionAxis struct {
	alternatives []Params
}

func newAlternativesAxis(alternatives []Params) (optionAxis, error) {
	if len(alternatives) == 0 {
		return optionAxis{}, ErrNoAlternatives
	}
	return optionAxis{alternatives: alternatives}, nil
}

func newValueAxis(name string, values []interface{}) (optionAxis, error) {
	if name == "" {
		return optionAxis{}, ErrEmptyOptionName
	}
	alternatives := make([]Params, 0, len(values))
	for _, v := range values {
		alternatives = append(alternatives, Params{name: v})
	}
	return optionAxis{alternatives: alternatives}, nil
}

// commonAxis wraps a fixed parameter set as a single-alternative axis, so that
// shared values flow through the same composition step as option axes without
// multiplying the case count.
func commonAxis(params Params) optionAxis {
	return optionAxis{alternatives: []Params{params}}
}
