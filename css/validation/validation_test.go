package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
)

func parse(t *testing.T, decl string) []Declaration {
	t.Helper()
	out, err := ParseDeclarationString(decl)
	if err != nil {
		t.Fatalf("%q: unexpected error %s", decl, err)
	}
	return out
}

func parseOne(t *testing.T, decl string) pr.Value {
	t.Helper()
	out := parse(t, decl)
	if len(out) != 1 {
		t.Fatalf("%q: expected one declaration, got %d", decl, len(out))
	}
	return out[0].Value
}

func assertInvalid(t *testing.T, decl string) {
	t.Helper()
	_, err := ParseDeclarationString(decl)
	if err == nil {
		t.Fatalf("%q: expected an error", decl)
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("%q: error %s does not wrap ErrInvalidValue", decl, err)
	}
}

func assertValue(t *testing.T, decl string, want pr.Value) {
	t.Helper()
	got := parseOne(t, decl)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%q: value mismatch (-want +got):\n%s", decl, diff)
	}
}

func TestWideKeywords(t *testing.T) {
	for _, kw := range []string{"inherit", "initial", "unset", "revert", "revert-layer"} {
		assertValue(t, "opacity: "+kw, pr.Keyword(kw))

		out := parse(t, "margin: "+kw)
		if len(out) != 4 {
			t.Fatalf("expected 4 longhands, got %d", len(out))
		}
		for _, d := range out {
			if d.Value != pr.Keyword(kw) {
				t.Fatalf("longhand %s: got %v, want %s", d.Name, d.Value, kw)
			}
		}
	}
	// wide keywords are only valid alone
	assertInvalid(t, "margin: inherit 1px")
}

func TestPendingSubstitution(t *testing.T) {
	out := parse(t, "margin: var(--m)")
	if len(out) != 4 {
		t.Fatalf("expected 4 longhands, got %d", len(out))
	}
	for _, d := range out {
		if _, ok := d.Value.(pr.RawTokens); !ok {
			t.Fatalf("longhand %s: expected raw tokens, got %T", d.Name, d.Value)
		}
	}

	value := parseOne(t, "width: calc(100% - var(--gutter))")
	if _, ok := value.(pr.RawTokens); !ok {
		t.Fatalf("expected raw tokens, got %T", value)
	}
}

func TestCustomProperty(t *testing.T) {
	out := parse(t, "--accent: #ff0080")
	if len(out) != 1 || out[0].Name != "--accent" || out[0].Property != 0 {
		t.Fatalf("unexpected custom declaration %+v", out)
	}
	if _, ok := out[0].Value.(pr.RawTokens); !ok {
		t.Fatalf("expected raw tokens, got %T", out[0].Value)
	}
}

func TestDriverRejections(t *testing.T) {
	assertInvalid(t, "not-a-property: 1px")
	assertInvalid(t, "-webkit-box-shadow: none")
	assertInvalid(t, "opacity: ")
	assertInvalid(t, "opacity: 0.5 extra") // leftover tokens
	assertInvalid(t, "width: -1px")        // out of range
	assertInvalid(t, "z-index: 1.5")       // not an integer
	assertInvalid(t, "display: 12px")      // wrong category
}

func TestGenericLonghands(t *testing.T) {
	assertValue(t, "opacity: 0.5", pr.Number(0.5))
	assertValue(t, "z-index: -3", pr.Integer(-3))
	assertValue(t, "display: FLEX", pr.Keyword("flex"))
	assertValue(t, "width: 50%", pr.Percentage(50))
	assertValue(t, "margin-top: auto", pr.Keyword("auto"))
	assertValue(t, "color: #ff0000", pr.Color(parser.Color{
		Type: parser.ColorRGBA,
		RGBA: parser.RGBA{R: 1, A: 1},
	}))
	assertValue(t, "letter-spacing: 2px", pr.PxLength(2))
	assertValue(t, "image-resolution: 2x", pr.Resolution(2))
	assertValue(t, "line-height: 1.5", pr.Number(1.5))
	assertValue(t, "width: calc(100% - 10px)",
		pr.Calculated{Expression: "calc(100% - 10px)"})
}

func TestUnitNormalization(t *testing.T) {
	assertValue(t, "margin-top: 1in", pr.PxLength(96))
	assertValue(t, "margin-top: 12pt", pr.PxLength(16))
	assertValue(t, "margin-top: 1pc", pr.PxLength(16))
	assertValue(t, "margin-top: 2.54cm", pr.PxLength(96))
	assertValue(t, "margin-top: 0", pr.PxLength(0))
	assertValue(t, "margin-top: 2em", pr.Length{Unit: pr.Em, Value: 2})

	assertValue(t, "transition-duration: 200ms", pr.Time(0.2))
}

func TestMultiValueLonghand(t *testing.T) {
	assertValue(t, "transition-duration: 1s, 200ms",
		pr.NewCommaList(pr.Time(1), pr.Time(0.2)))
	assertValue(t, "grid-template-columns: 1fr 2fr auto",
		pr.NewList(pr.Flex(1), pr.Flex(2), pr.Keyword("auto")))
	assertValue(t, "grid-template-columns: none", pr.Keyword("none"))
}

func TestRollbackLeavesNoConsumption(t *testing.T) {
	ts := parser.NewTokenStream(parser.RemoveWhitespace(parser.TokenizeString("solid 1px")))
	before := ts.Remaining()
	if _, ok := parseLength(ts); ok {
		t.Fatal("expected the length parse to fail")
	}
	if ts.Remaining() != before {
		t.Fatal("failed attempt consumed tokens")
	}
	if _, ok := parsePosition(ts); ok {
		t.Fatal("expected the position parse to fail")
	}
	if ts.Remaining() != before {
		t.Fatal("failed position attempt consumed tokens")
	}
}
