// Package report renders expanded batches and published scopes, for humans on
// a console and for machines as a deterministic JSON manifest.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/testmatrix/testmatrix/expansion"
	"github.com/testmatrix/testmatrix/scope"
)

// FprintBatch writes a human-readable listing of one batch: a header with the
// description and unit count, then one entry per unit in expansion order.
// Color is applied unless disabled globally (color.NoColor).
func FprintBatch(w io.Writer, b *expansion.Batch) {
	fmt.Fprintf(w, "%s (%d units)\n", color.CyanString("%s", b.Description()), b.Len())
	for _, u := range b.Units() {
		fprintUnit(w, u)
	}
}

// FprintScope writes a human-readable listing of every unit registered in the
// scope, in registration order.
func FprintScope(w io.Writer, s *scope.Scope) {
	fmt.Fprintf(w, "%s\n", color.CyanString("%d registered units", s.Len()))
	for _, u := range s.Units() {
		fprintUnit(w, u)
	}
}

func fprintUnit(w io.Writer, u *expansion.Unit) {
	fmt.Fprintf(w, "  %s\n", color.GreenString("%s", u.Name()))
	if tags := u.Tags(); len(tags) > 0 {
		fmt.Fprintf(w, "    tags: %s\n", strings.Join(tags, ", "))
	}
	if args := renderArgs(u); args != "" {
		fmt.Fprintf(w, "    args: %s\n", args)
	}
}

// renderArgs renders a unit's bound arguments in a stable order: positional
// values in declaration order, then named values sorted by name.
func renderArgs(u *expansion.Unit) string {
	var parts []string
	for _, v := range u.Positionals() {
		parts = append(parts, renderValue(v))
	}
	params := u.Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, renderValue(params[name])))
	}
	return strings.Join(parts, ", ")
}

// renderValue renders one argument value in its JSON form, which keeps
// strings quoted and distinguishable from numbers and booleans.
func renderValue(v interface{}) string {
	return ldvalue.CopyArbitraryValue(v).JSONString()
}
