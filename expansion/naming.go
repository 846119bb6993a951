package expansion

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultNamePrefix = "test_"
	defaultIndexWidth = 3
	caseMarker        = "__case_"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// toSafeName reduces a free-form description to an identifier-safe form:
// every run of characters outside [a-zA-Z0-9_] collapses into one underscore.
func toSafeName(desc string) string {
	return unsafeNameChars.ReplaceAllString(desc, "_")
}

// unitName derives the generated identifier for one resolved case: discovery
// prefix, sanitized description, case marker, zero-padded index. The prefix
// defaults to "test_" and is omitted when the description already starts with
// "test".
func unitName(desc string, index int, config ExpandConfig) string {
	prefix := ""
	if !strings.HasPrefix(desc, "test") {
		prefix = defaultNamePrefix
	}
	if config.NamePrefix.IsDefined() {
		prefix = config.NamePrefix.StringValue()
	}
	width := config.IndexWidth.OrElse(defaultIndexWidth)
	return fmt.Sprintf("%s%s%s%0*d", prefix, toSafeName(desc), caseMarker, width, index)
}

// unitDoc derives the human-readable description for one resolved case: the
// batch description, the index over the batch total, and a trailing
// parameters section. The parameters section is intentionally left blank;
// argument values are rendered by reporting tools rather than baked into
// every description. An implementation doc, if set, is appended in
// parentheses.
func unitDoc(desc string, index, total int, implDoc string, config ExpandConfig) string {
	width := config.IndexWidth.OrElse(defaultIndexWidth)
	doc := fmt.Sprintf("%s (%0*d/%d) parameters: ", desc, width, index, total)
	if implDoc != "" {
		doc += fmt.Sprintf(" (%s)", implDoc)
	}
	return doc
}
