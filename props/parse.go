package props

import "strings"

// parseLine turns one line into an Entry. Property values are returned raw;
// transforms are applied by the caller.
func parseLine(line string, lineNumber int) (Entry, error) {
	if key, value, ok := strings.Cut(line, "="); ok {
		key = strings.TrimSpace(key)
		if key == "" {
			return Entry{}, &ParseError{Line: lineNumber, Text: line, Err: ErrEmptyKey}
		}
		return Property(key, strings.TrimSpace(value)), nil
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return Comment(trimmed[1:]), nil
	}
	if trimmed == "" {
		return Blank(), nil
	}
	return Entry{}, &ParseError{Line: lineNumber, Text: line, Err: ErrMalformedLine}
}
