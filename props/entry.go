package props

// Kind identifies what a line holds.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindProperty:
		return "property"
	}
	return "unknown"
}

// Entry is one parsed line. The zero value is a blank line.
type Entry struct {
	kind    Kind
	key     string
	value   string
	comment string
}

// Property returns a property entry.
func Property(key, value string) Entry {
	return Entry{kind: KindProperty, key: key, value: value}
}

// Comment returns a comment entry. text is the content after the '#' marker.
func Comment(text string) Entry {
	return Entry{kind: KindComment, comment: text}
}

// Blank returns a blank line entry.
func Blank() Entry {
	return Entry{kind: KindBlank}
}

func (e Entry) Kind() Kind { return e.kind }

func (e Entry) IsProperty() bool { return e.kind == KindProperty }
func (e Entry) IsComment() bool  { return e.kind == KindComment }
func (e Entry) IsBlank() bool    { return e.kind == KindBlank }

// Key returns the property key, or "" for comments and blank lines.
func (e Entry) Key() string { return e.key }

// Value returns the decoded property value.
func (e Entry) Value() string { return e.value }

// Comment returns the comment text, or "" for other kinds.
func (e Entry) Comment() string { return e.comment }

// String renders the entry the way Save writes it, without transforms or
// line separator.
func (e Entry) String() string {
	switch e.kind {
	case KindProperty:
		return e.key + " = " + e.value
	case KindComment:
		// Text loaded from "# note" keeps its leading space; don't add another.
		if e.comment == "" || e.comment[0] == ' ' || e.comment[0] == '\t' {
			return "#" + e.comment
		}
		return "# " + e.comment
	}
	return ""
}
