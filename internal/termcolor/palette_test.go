package termcolor

import "testing"

func TestMarkerStyleSGR(t *testing.T) {
	got := Apply(MarkerStyle(), "TODO", true)
	want := "\x1b[1;4;31mTODO\x1b[0m"
	if got != want {
		t.Fatalf("MarkerStyle produced %q, want %q", got, want)
	}
}

func TestLineNumberStyleSGR(t *testing.T) {
	got := Apply(LineNumberStyle(), "12", true)
	want := "\x1b[32m12\x1b[0m"
	if got != want {
		t.Fatalf("LineNumberStyle produced %q, want %q", got, want)
	}
}

func TestPaletteStylesAreIndependent(t *testing.T) {
	a := MarkerStyle()
	b := MarkerStyle()
	*a.FGBasic = Green
	if *b.FGBasic != Red {
		t.Fatalf("palette styles must not share colour pointers")
	}
}
