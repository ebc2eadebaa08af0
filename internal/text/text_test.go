package text

import "testing"

func TestBuildCountsGraphemes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"fooBarbaz", 9},
	}

	for _, c := range cases {
		got := Build(c.in).Len()
		if got != c.want {
			t.Errorf("Build(%q).Len() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLowercaseAt(t *testing.T) {
	txt := Build("FooBar")

	if got := txt.LowercaseAt(0); got != "f" {
		t.Errorf("LowercaseAt(0) = %q, want %q", got, "f")
	}
	if got := txt.GraphemeAt(0); got != "F" {
		t.Errorf("GraphemeAt(0) = %q, want %q", got, "F")
	}
}

func TestLastIndex(t *testing.T) {
	if got := Build("abc").LastIndex(); got != 2 {
		t.Errorf("LastIndex() = %d, want 2", got)
	}
	if got := Build("").LastIndex(); got != -1 {
		t.Errorf("LastIndex() on empty = %d, want -1", got)
	}
}
