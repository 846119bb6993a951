// Package casefile loads expansion groups from YAML case tables, for suites
// that keep their argument matrices in data files beside the code. A case
// table names the implementation of each group by key; the caller supplies
// the implementations when expanding.
//
// Layer order within a group is fixed: the common values are applied first,
// then each option in file order. Option values therefore override common
// values on a key collision, and a later option overrides an earlier one.
package casefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/testmatrix/testmatrix/expansion"
)

const currentVersion = 1

// File is a parsed case table.
type File struct {
	Version int     `yaml:"version"`
	Groups  []Group `yaml:"groups"`
}

// Group declares one expansion group: which implementation it binds to, the
// batch description, and the declaration layers.
type Group struct {
	Impl    string                 `yaml:"impl"`
	Desc    string                 `yaml:"desc"`
	Doc     string                 `yaml:"doc"`
	Tags    []string               `yaml:"tags"`
	Common  map[string]interface{} `yaml:"common"`
	Cases   []Case                 `yaml:"cases"`
	Options []Option               `yaml:"options"`
}

// Case is one declared argument set.
type Case struct {
	Positionals []interface{}          `yaml:"positionals"`
	Params      map[string]interface{} `yaml:"params"`
}

// Option is one axis declaration in one of two forms: a name with a value
// list, or a list of alternative parameter sets. Exactly one form must be
// used.
type Option struct {
	Name         string                   `yaml:"name"`
	Values       []interface{}            `yaml:"values"`
	Alternatives []map[string]interface{} `yaml:"alternatives"`
}

// Load reads and parses the case table at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses and validates a case table. Structural mistakes such as an
// unknown version or an option declared in both forms are reported here
// rather than at expansion time.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("casefile: malformed case table: %w", err)
	}
	if f.Version != currentVersion {
		return nil, fmt.Errorf("casefile: unsupported version %d (want %d)", f.Version, currentVersion)
	}
	for i := range f.Groups {
		if err := f.Groups[i].validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func (g *Group) validate() error {
	if g.Impl == "" {
		return fmt.Errorf("casefile: group %q has no impl key", g.Desc)
	}
	if g.Desc == "" {
		return fmt.Errorf("casefile: group with impl %q has no desc", g.Impl)
	}
	for i, opt := range g.Options {
		hasValues := opt.Name != "" || len(opt.Values) > 0
		hasAlternatives := len(opt.Alternatives) > 0
		switch {
		case hasValues && hasAlternatives:
			return fmt.Errorf("casefile: group %q option %d: use either name/values or alternatives, not both", g.Desc, i)
		case !hasValues && !hasAlternatives:
			return fmt.Errorf("casefile: group %q option %d: declares neither a value list nor alternatives", g.Desc, i)
		case hasValues && opt.Name == "":
			return fmt.Errorf("casefile: group %q option %d: value list requires a name", g.Desc, i)
		}
	}
	return nil
}

// Expand materializes every group in file order. impls maps each group's impl
// key to its implementation; a group whose key is missing fails the whole
// expansion.
func (f *File) Expand(impls map[string]expansion.Func) ([]*expansion.Batch, error) {
	batches := make([]*expansion.Batch, 0, len(f.Groups))
	for i := range f.Groups {
		g := &f.Groups[i]
		impl, ok := impls[g.Impl]
		if !ok {
			return nil, fmt.Errorf("casefile: group %q: no implementation for key %q", g.Desc, g.Impl)
		}
		b := expansion.NewBuilder(impl)
		if g.Doc != "" {
			b.SetDoc(g.Doc)
		}
		for _, c := range g.Cases {
			b.CaseParams(expansion.Params(c.Params), c.Positionals...)
		}
		if len(g.Common) > 0 {
			b.Common(expansion.Params(g.Common))
		}
		for _, opt := range g.Options {
			var err error
			if len(opt.Alternatives) > 0 {
				alts := make([]expansion.Params, 0, len(opt.Alternatives))
				for _, a := range opt.Alternatives {
					alts = append(alts, expansion.Params(a))
				}
				err = b.Options(alts...)
			} else {
				err = b.OptionValues(opt.Name, opt.Values...)
			}
			if err != nil {
				return nil, fmt.Errorf("casefile: group %q: %w", g.Desc, err)
			}
		}
		batches = append(batches, b.Expand(g.Desc, expansion.WithTags(g.Tags...)))
	}
	return batches, nil
}
