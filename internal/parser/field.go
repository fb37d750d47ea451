package parser

import "strings"

// A Field is a single "name: value" line of the wire protocol. It is not
// retained beyond the line that produced it.
type Field struct {
	Name  string
	Value string
}

// IsComment returns whether the line is a comment, i.e. starts with ':'.
// Comment lines carry no field.
func IsComment(line string) bool {
	return strings.HasPrefix(line, ":")
}

// ParseField splits a line on the first colon and trims leading whitespace
// from the value. A line without a colon yields the whole line as the name
// and an empty value. ParseField is total: any line produces a Field.
func ParseField(line string) Field {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return Field{Name: line}
	}

	return Field{Name: name, Value: strings.TrimLeft(value, " \t")}
}
