package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testmatrix/testmatrix/expansion"
	"github.com/testmatrix/testmatrix/scope"
)

func disableColor(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func nop(positional []interface{}, params expansion.Params) error { return nil }

func TestFprintBatchListsUnitsWithArgs(t *testing.T) {
	disableColor(t)

	b := expansion.NewBuilder(nop)
	b.CaseParams(expansion.Params{"token": "valid", "retries": 3}, "endpoint")
	batch := b.Expand("login", expansion.WithTags("auth"))

	var buf bytes.Buffer
	FprintBatch(&buf, batch)

	want := "login (1 units)\n" +
		"  test_login__case_000\n" +
		"    tags: auth\n" +
		"    args: \"endpoint\", retries=3, token=\"valid\"\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintBatchOmitsEmptySections(t *testing.T) {
	disableColor(t)

	b := expansion.NewBuilder(nop)
	b.Case()
	batch := b.Expand("bare")

	var buf bytes.Buffer
	FprintBatch(&buf, batch)

	want := "bare (1 units)\n  test_bare__case_000\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintScopeListsEveryRegisteredUnit(t *testing.T) {
	disableColor(t)

	first := expansion.NewBuilder(nop)
	first.Case()
	second := expansion.NewBuilder(nop)
	second.Case()
	second.Case()

	s := scope.New(nil)
	require.NoError(t, s.Add(first.Expand("alpha")))
	require.NoError(t, s.Add(second.Expand("beta")))

	var buf bytes.Buffer
	FprintScope(&buf, s)

	want := "3 registered units\n" +
		"  test_alpha__case_000\n" +
		"  test_beta__case_000\n" +
		"  test_beta__case_001\n"
	assert.Equal(t, want, buf.String())
}
