package props

import "testing"

func TestEntryString(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Property("a", "1"), "a = 1"},
		{Property("a", ""), "a = "},
		{Comment("note"), "# note"},
		{Comment(" note"), "# note"},
		{Comment(""), "#"},
		{Blank(), ""},
		{Entry{}, ""},
	}
	for _, tt := range tests {
		if got := tt.entry.String(); got != tt.want {
			t.Errorf("%v entry String() = %q, want %q", tt.entry.Kind(), got, tt.want)
		}
	}
}

func TestEntryKinds(t *testing.T) {
	if !Blank().IsBlank() || Blank().Kind() != KindBlank {
		t.Error("Blank() is not a blank entry")
	}
	if c := Comment("x"); !c.IsComment() || c.Comment() != "x" || c.Key() != "" {
		t.Errorf("Comment(x) = %+v", c)
	}
	if p := Property("k", "v"); !p.IsProperty() || p.Key() != "k" || p.Value() != "v" {
		t.Errorf("Property(k, v) = %+v", p)
	}
}
