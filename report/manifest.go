package report

import (
	"encoding/json"

	"github.com/testmatrix/testmatrix/expansion"
	"github.com/testmatrix/testmatrix/scope"
)

// ManifestUnit is one unit's entry in a JSON manifest.
type ManifestUnit struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Tags        []string               `json:"tags,omitempty"`
	Positionals []interface{}          `json:"positionals,omitempty"`
	Params      map[string]interface{} `json:"params,omitempty"`
}

// Manifest renders every unit registered in the scope as indented JSON. Units
// appear in registration order and map keys are sorted by the encoder, so
// manifests from different runs of the same scope can be diffed. Argument
// values must be representable as JSON.
func Manifest(s *scope.Scope) ([]byte, error) {
	return marshalUnits(s.Units())
}

// BatchManifest renders one batch's units as indented JSON, in expansion
// order.
func BatchManifest(b *expansion.Batch) ([]byte, error) {
	return marshalUnits(b.Units())
}

func marshalUnits(units []*expansion.Unit) ([]byte, error) {
	entries := make([]ManifestUnit, 0, len(units))
	for _, u := range units {
		entries = append(entries, ManifestUnit{
			Name:        u.Name(),
			Description: u.Description(),
			Tags:        u.Tags(),
			Positionals: u.Positionals(),
			Params:      map[string]interface{}(u.Params()),
		})
	}
	return json.MarshalIndent(entries, "", "  ")
}
