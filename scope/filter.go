package scope

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/testmatrix/testmatrix/expansion"
)

// Filter is a predicate over published units, used with Scope.Select to
// narrow what a runner will execute.
type Filter func(*expansion.Unit) bool

// TagFilter returns a Filter accepting units that carry at least one of the
// given tags.
func TagFilter(tags ...string) Filter {
	return func(u *expansion.Unit) bool {
		for _, tag := range tags {
			if u.HasTag(tag) {
				return true
			}
		}
		return false
	}
}

// RegexFilters selects units by name: a unit is accepted if its name matches
// at least one MustMatch pattern (or none are defined) and matches no
// MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter is usable as a Filter.
func (r RegexFilters) AsFilter(u *expansion.Unit) bool {
	name := u.Name()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!(r.MustNotMatch.IsDefined() && r.MustNotMatch.AnyMatch(name))
}

// RegexList is a list of compiled regular expressions. It implements the
// flag.Value methods, so a runner can bind repeatable --run/--skip style
// options to one.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (l RegexList) String() string {
	ps := make([]string, 0, len(l.patterns))
	for _, p := range l.patterns {
		ps = append(ps, p.String())
	}
	return strings.Join(ps, ", ")
}

func (l RegexList) IsDefined() bool {
	return len(l.patterns) > 0
}

// Set is called by the command line parser
func (l *RegexList) Set(value string) error {
	r, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("not a valid regex: %q", value)
	}
	l.patterns = append(l.patterns, r)
	return nil
}

func (l RegexList) AnyMatch(s string) bool {
	for _, p := range l.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
