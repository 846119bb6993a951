package expansion

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/testmatrix/testmatrix/logging"
)

// ExpandConfig holds the optional settings for one expansion.
type ExpandConfig struct {
	// Tags are boolean markers attached to every unit of the batch. They are
	// deduplicated and sorted on the units.
	Tags []string

	// NamePrefix, if defined, replaces the automatic discovery prefix in
	// generated unit names. Defining it as "" suppresses the prefix entirely.
	NamePrefix ldvalue.OptionalString

	// IndexWidth, if defined, overrides the zero-padding width of the case
	// index in generated names and descriptions (default 3).
	IndexWidth ldvalue.OptionalInt

	// Logger receives a debug trace of the expansion. If nil, the trace is
	// discarded.
	Logger logging.Logger
}

// ExpandConfigurer is the interface for optional Expand settings. Use the
// WithTags, WithNamePrefix, WithIndexWidth, and WithLogger factories rather
// than implementing it directly.
type ExpandConfigurer interface {
	ApplyExpandConfig(*ExpandConfig)
}

type expandConfigFunc func(*ExpandConfig)

func (f expandConfigFunc) ApplyExpandConfig(c *ExpandConfig) { f(c) }

// WithTags attaches tags to every unit of the expansion. Repeated use
// accumulates.
func WithTags(tags ...string) ExpandConfigurer {
	return expandConfigFunc(func(c *ExpandConfig) {
		c.Tags = append(c.Tags, tags...)
	})
}

// WithNamePrefix overrides the automatic name prefix for the expansion.
func WithNamePrefix(prefix string) ExpandConfigurer {
	return expandConfigFunc(func(c *ExpandConfig) {
		c.NamePrefix = ldvalue.NewOptionalString(prefix)
	})
}

// WithIndexWidth overrides the zero-padding width of case indexes.
func WithIndexWidth(width int) ExpandConfigurer {
	return expandConfigFunc(func(c *ExpandConfig) {
		c.IndexWidth = ldvalue.NewOptionalInt(width)
	})
}

// WithLogger directs the expansion's debug trace to the given logger.
func WithLogger(logger logging.Logger) ExpandConfigurer {
	return expandConfigFunc(func(c *ExpandConfig) {
		c.Logger = logger
	})
}

// resolvedCase is one fully composed argument set: the positional values of
// its source case plus the merge of the case's named values with one
// alternative from each axis.
type resolvedCase struct {
	positionals []interface{}
	params      Params
}

// Expand consumes every pending case and axis and materializes the batch of
// units they describe, one unit per resolved case.
//
// Resolved cases are ordered deterministically: declared cases vary slowest,
// and among the axes the first-declared axis varies fastest. Each unit's
// parameter set is the left-to-right merge of [case params, axis values in
// declaration order], so an axis value overrides a same-named case value and
// a later-declared axis overrides an earlier one. The merged set is
// deep-copied per unit.
//
// If no case was declared, a single implicit case with no arguments stands
// in, so that axes alone still produce one unit per combination. If any axis
// is empty, the batch is empty.
//
// After Expand returns, the Builder's pending layers are cleared; only the
// implementation and its doc remain for the next declaration cycle.
func (b *Builder) Expand(desc string, configurers ...ExpandConfigurer) *Batch {
	var config ExpandConfig
	for _, c := range configurers {
		c.ApplyExpandConfig(&config)
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.NullLogger()
	}

	cases, axes := b.cases, b.axes
	b.cases, b.axes = nil, nil
	if len(cases) == 0 {
		cases = []caseDefinition{{}}
	}

	resolved := resolveCases(cases, axes)
	logger.Printf("expanding %q: %d case(s), %d axis/axes -> %d unit(s)",
		desc, len(cases), len(axes), len(resolved))

	tags := normalizeTags(config.Tags)
	units := make([]*Unit, 0, len(resolved))
	for i, rc := range resolved {
		name := unitName(desc, i, config)
		doc := unitDoc(desc, i, len(resolved), b.implDoc, config)
		units = append(units, newUnit(name, doc, tags, b.impl, rc))
		logger.Printf("materialized %s", name)
	}
	return &Batch{description: desc, units: units}
}

// resolveCases forms the cartesian product of the declared cases with every
// combination of axis alternatives. An axis selection is advanced like an
// odometer whose least significant digit is the first-declared axis.
func resolveCases(cases []caseDefinition, axes []optionAxis) []resolvedCase {
	total := len(cases)
	sizes := make([]int, len(axes))
	for i, axis := range axes {
		sizes[i] = len(axis.alternatives)
		total *= sizes[i]
	}
	if total == 0 {
		return nil
	}

	out := make([]resolvedCase, 0, total)
	selection := make([]int, len(axes))
	for _, c := range cases {
		for i := range selection {
			selection[i] = 0
		}
		for {
			sets := make([]Params, 0, len(axes)+1)
			sets = append(sets, c.params)
			for i, axis := range axes {
				sets = append(sets, axis.alternatives[selection[i]])
			}
			merged := mergeParams(sets...)
			for k, v := range merged {
				merged[k] = copyValue(v) // detach nested values from the declarations
			}
			out = append(out, resolvedCase{
				positionals: copySlice(c.positionals),
				params:      merged,
			})

			digit := 0
			for digit < len(axes) {
				selection[digit]++
				if selection[digit] < sizes[digit] {
					break
				}
				selection[digit] = 0
				digit++
			}
			if digit == len(axes) {
				break
			}
		}
	}
	return out
}
