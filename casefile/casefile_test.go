package casefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testmatrix/testmatrix/expansion"
)

const sampleTable = `
version: 1
groups:
  - impl: login
    desc: login with tokens
    doc: checks the login endpoint
    tags: [auth]
    common:
      region: eu
    cases:
      - params: {token: valid}
      - params: {token: invalid}
    options:
      - name: strict
        values: [true, false]
  - impl: parse
    desc: parse durations
    cases:
      - positionals: ["1s", 1]
      - positionals: ["2m", 120]
`

func TestParseReadsAllGroupFields(t *testing.T) {
	f, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	require.Len(t, f.Groups, 2)
	g := f.Groups[0]
	assert.Equal(t, "login", g.Impl)
	assert.Equal(t, "login with tokens", g.Desc)
	assert.Equal(t, "checks the login endpoint", g.Doc)
	assert.Equal(t, []string{"auth"}, g.Tags)
	assert.Equal(t, map[string]interface{}{"region": "eu"}, g.Common)
	require.Len(t, g.Cases, 2)
	assert.Equal(t, map[string]interface{}{"token": "valid"}, g.Cases[0].Params)
	require.Len(t, g.Options, 1)
	assert.Equal(t, "strict", g.Options[0].Name)
	assert.Equal(t, []interface{}{true, false}, g.Options[0].Values)

	assert.Equal(t, "parse", f.Groups[1].Impl)
	assert.Equal(t, []interface{}{"1s", 1}, f.Groups[1].Cases[0].Positionals)
}

func TestExpandBindsImplementationsByKey(t *testing.T) {
	f, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	var loginParams []expansion.Params
	var parsePositionals [][]interface{}
	impls := map[string]expansion.Func{
		"login": func(positional []interface{}, params expansion.Params) error {
			loginParams = append(loginParams, params)
			return nil
		},
		"parse": func(positional []interface{}, params expansion.Params) error {
			parsePositionals = append(parsePositionals, positional)
			return nil
		},
	}

	batches, err := f.Expand(impls)
	require.NoError(t, err)
	require.Len(t, batches, 2)

	login := batches[0]
	assert.Equal(t, "login with tokens", login.Description())
	require.Equal(t, 4, login.Len())
	for _, u := range login.Units() {
		assert.Equal(t, []string{"auth"}, u.Tags())
		require.NoError(t, u.Call())
	}
	want := []expansion.Params{
		{"token": "valid", "region": "eu", "strict": true},
		{"token": "valid", "region": "eu", "strict": false},
		{"token": "invalid", "region": "eu", "strict": true},
		{"token": "invalid", "region": "eu", "strict": false},
	}
	if diff := cmp.Diff(want, loginParams); diff != "" {
		t.Errorf("login params mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, login.Units()[0].Description(), "(checks the login endpoint)")

	parse := batches[1]
	require.Equal(t, 2, parse.Len())
	for _, u := range parse.Units() {
		require.NoError(t, u.Call())
	}
	assert.Equal(t, [][]interface{}{{"1s", 1}, {"2m", 120}}, parsePositionals)
}

func TestExpandFailsWhenImplementationIsMissing(t *testing.T) {
	f, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	_, err = f.Expand(map[string]expansion.Func{
		"login": func(positional []interface{}, params expansion.Params) error { return nil },
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no implementation for key "parse"`)
}

func TestLoadReadsTableFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Groups, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsBadTables(t *testing.T) {
	for _, tt := range []struct {
		name    string
		table   string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			table:   "{{{",
			wantErr: "malformed case table",
		},
		{
			name:    "unsupported version",
			table:   "version: 2\ngroups: []",
			wantErr: "unsupported version 2",
		},
		{
			name: "missing impl",
			table: `
version: 1
groups:
  - desc: no impl here
`,
			wantErr: "has no impl key",
		},
		{
			name: "missing desc",
			table: `
version: 1
groups:
  - impl: something
`,
			wantErr: "has no desc",
		},
		{
			name: "option with both forms",
			table: `
version: 1
groups:
  - impl: x
    desc: both forms
    options:
      - name: a
        values: [1]
        alternatives:
          - {a: 1}
`,
			wantErr: "not both",
		},
		{
			name: "option with neither form",
			table: `
version: 1
groups:
  - impl: x
    desc: neither form
    options:
      - {}
`,
			wantErr: "neither a value list nor alternatives",
		},
		{
			name: "value list without a name",
			table: `
version: 1
groups:
  - impl: x
    desc: unnamed values
    options:
      - values: [1, 2]
`,
			wantErr: "value list requires a name",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.table))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandSupportsAlternativeOptions(t *testing.T) {
	const table = `
version: 1
groups:
  - impl: transfer
    desc: transfer paths
    options:
      - alternatives:
          - {proto: http, port: 80}
          - {proto: https, port: 443}
`
	f, err := Parse([]byte(table))
	require.NoError(t, err)

	var got []expansion.Params
	batches, err := f.Expand(map[string]expansion.Func{
		"transfer": func(positional []interface{}, params expansion.Params) error {
			got = append(got, params)
			return nil
		},
	})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	require.Equal(t, 2, batches[0].Len())
	for _, u := range batches[0].Units() {
		require.NoError(t, u.Call())
	}
	want := []expansion.Params{
		{"proto": "http", "port": 80},
		{"proto": "https", "port": 443},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}
