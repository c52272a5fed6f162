// Package props implements a line-oriented key/value text store.
//
// A file is a sequence of lines, each one of:
//
//	key = value     a property (whitespace around key and value is trimmed)
//	# text          a comment
//	                a blank line
//
// A Store keeps every line as an Entry in document order so that comments,
// blank lines and ordering survive a Load/Save round trip, and maintains a
// key index that always mirrors the property entries. Property values can be
// passed through a chain of Transforms on load and save (for example to
// encrypt secrets at rest) and converted to typed values on demand with a
// Mapper.
//
// Keys are unique: loading a file with a repeated key, or appending a key
// that already exists, is an error. A Store is not safe for concurrent use.
package props
