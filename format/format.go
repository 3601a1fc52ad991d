// Package format renders values for failure messages and fills "{}"
// templates with them.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/assertthat/config"
	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/zero"
)

// Placeholder marks where Format inserts the next value.
const Placeholder = "{}"

// Format replaces each "{}" in template, left to right, with the
// stringified value in the same position. Inserted text is never scanned
// for further placeholders.
func Format(template string, values ...any) (string, error) {
	slots := strings.Count(template, Placeholder)

	switch {
	case len(values) > slots:
		return "", fmt.Errorf("%w (%d) for format string %q", asserterrors.ErrTooManyArguments, len(values), template)
	case len(values) < slots:
		return "", fmt.Errorf("%w (%d) for format string %q", asserterrors.ErrTooFewArguments, len(values), template)
	}

	var sb strings.Builder

	rest := template

	for _, v := range values {
		idx := strings.Index(rest, Placeholder)

		sb.WriteString(rest[:idx])
		sb.WriteString(Stringify(v))

		rest = rest[idx+len(Placeholder):]
	}

	sb.WriteString(rest)

	return sb.String(), nil
}

// MustFormat is Format for templates known to match their arguments. It
// panics with the Format error otherwise.
func MustFormat(template string, values ...any) string {
	out, err := Format(template, values...)
	if err != nil {
		panic(err)
	}

	return out
}

// Raw is inserted into a template as is, without quoting or escaping. Use
// it for text such as type names that is already meant for the reader.
type Raw string

// Stringify renders v as JSON, so strings come out quoted and 1.0 as 1. The
// output is compact unless config.Indent asks for indentation. A nil (typed
// or not) renders as null and an error as its quoted message. A fmt.Stringer
// that is not a json.Marshaler renders as its quoted String(). Values JSON
// cannot represent use their %v form, or just their type when they contain
// a cycle. The result is truncated to config.MaxValueLength runes when that
// is positive.
func Stringify(v any) string {
	cfg := config.Get()

	return Truncate(render(v, cfg.Indent), cfg.MaxValueLength)
}

func render(v any, indent int) string {
	if zero.IsNil(v) {
		return "null"
	}

	switch val := v.(type) {
	case Raw:
		return string(val)
	case error:
		v = val.Error()
	case json.Marshaler:
		// let it speak for itself
	case fmt.Stringer:
		v = val.String()
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(v); err != nil {
		if cyclic(v) {
			return fmt.Sprintf("<cyclic %T>", v)
		}

		return fmt.Sprintf("%v", v)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// Truncate cuts s to limit runes and notes how many were dropped. A limit
// of zero or less leaves s alone.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}

	total := utf8.RuneCountInString(s)
	if total <= limit {
		return s
	}

	cut := 0
	for range limit {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}

	return s[:cut] + "... (truncated " + strconv.Itoa(total-limit) + " chars)"
}
