package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testmatrix/testmatrix/expansion"
	"github.com/testmatrix/testmatrix/scope"
)

func TestManifestRendersRegisteredUnits(t *testing.T) {
	b := expansion.NewBuilder(nop)
	b.CaseParams(expansion.Params{"delay": 1}, "target")
	b.CaseParams(nil)
	batch := b.Expand("ping", expansion.WithTags("net"))

	s := scope.New(nil)
	require.NoError(t, s.Add(batch))

	got, err := Manifest(s)
	require.NoError(t, err)

	const want = `[
		{
			"name": "test_ping__case_000",
			"description": "ping (000/2) parameters: ",
			"tags": ["net"],
			"positionals": ["target"],
			"params": {"delay": 1}
		},
		{
			"name": "test_ping__case_001",
			"description": "ping (001/2) parameters: ",
			"tags": ["net"]
		}
	]`
	assert.JSONEq(t, want, string(got))

	// byte-for-byte stable across calls, so manifests can be diffed
	again, err := Manifest(s)
	require.NoError(t, err)
	assert.Equal(t, string(got), string(again))
}

func TestBatchManifestRendersExpansionOrder(t *testing.T) {
	b := expansion.NewBuilder(nop)
	b.Case("a")
	b.Case("b")
	batch := b.Expand("letters")

	got, err := BatchManifest(batch)
	require.NoError(t, err)

	const want = `[
		{
			"name": "test_letters__case_000",
			"description": "letters (000/2) parameters: ",
			"positionals": ["a"]
		},
		{
			"name": "test_letters__case_001",
			"description": "letters (001/2) parameters: ",
			"positionals": ["b"]
		}
	]`
	assert.JSONEq(t, want, string(got))
}

func TestManifestOfEmptyScopeIsAnEmptyArray(t *testing.T) {
	got, err := Manifest(scope.New(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}
