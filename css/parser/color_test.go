package parser

import (
	"math"
	"testing"
)

func assertRGBA(t *testing.T, css string, want RGBA) {
	t.Helper()
	color := ParseColorString(css)
	if color.Type != ColorRGBA {
		t.Fatalf("%q: expected an RGBA color, got %v", css, color)
	}
	got := color.RGBA
	const eps = 1e-3
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps ||
		math.Abs(got.B-want.B) > eps || math.Abs(got.A-want.A) > eps {
		t.Fatalf("%q: got %+v, want %+v", css, got, want)
	}
}

func TestParseColorKeywords(t *testing.T) {
	assertRGBA(t, "red", RGBA{1, 0, 0, 1})
	assertRGBA(t, "LIME", RGBA{0, 1, 0, 1})
	assertRGBA(t, "rebeccapurple", RGBA{102. / 255, 51. / 255, 153. / 255, 1})
	assertRGBA(t, "transparent", RGBA{0, 0, 0, 0})

	if c := ParseColorString("currentcolor"); c.Type != ColorCurrentColor {
		t.Fatalf("currentcolor not recognized: %v", c)
	}
	if c := ParseColorString("not-a-color"); !c.IsNone() {
		t.Fatalf("expected an invalid color, got %v", c)
	}
}

func TestParseColorHex(t *testing.T) {
	assertRGBA(t, "#f00", RGBA{1, 0, 0, 1})
	assertRGBA(t, "#ff0000", RGBA{1, 0, 0, 1})
	assertRGBA(t, "#ff000080", RGBA{1, 0, 0, 128. / 255})
	assertRGBA(t, "#f008", RGBA{1, 0, 0, 136. / 255})

	for _, bad := range []string{"#f0", "#ff00f", "#xyz"} {
		if c := ParseColorString(bad); !c.IsNone() {
			t.Fatalf("%q: expected an invalid color, got %v", bad, c)
		}
	}
}

func TestParseColorFunctions(t *testing.T) {
	assertRGBA(t, "rgb(255, 0, 0)", RGBA{1, 0, 0, 1})
	assertRGBA(t, "rgb(100%, 0%, 50%)", RGBA{1, 0, 0.5, 1})
	assertRGBA(t, "rgba(0, 0, 255, 0.5)", RGBA{0, 0, 1, 0.5})
	assertRGBA(t, "hsl(0, 100%, 50%)", RGBA{1, 0, 0, 1})
	assertRGBA(t, "hsl(120, 100%, 25%)", RGBA{0, 0.5, 0, 1})
	assertRGBA(t, "hsla(240, 100%, 50%, 0.25)", RGBA{0, 0, 1, 0.25})

	// channels are clamped
	assertRGBA(t, "rgb(300, -10, 0)", RGBA{1, 0, 0, 1})

	for _, bad := range []string{
		"rgb(255, 0)",          // missing channel
		"rgb(255, 0, 0, 0.5)",  // alpha without rgba
		"rgba(255, 0, 0)",      // rgba without alpha
		"hsl(0, 1, 50%)",       // saturation must be a percentage
		"rgb(1.5, 0, 0)",       // channels are integers
	} {
		if c := ParseColorString(bad); !c.IsNone() {
			t.Fatalf("%q: expected an invalid color, got %v", bad, c)
		}
	}
}
