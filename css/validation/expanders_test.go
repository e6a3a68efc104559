package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
)

// values extracts the parsed values keyed by longhand.
func byProp(decls []Declaration) map[pr.KnownProp]pr.Value {
	out := make(map[pr.KnownProp]pr.Value, len(decls))
	for _, d := range decls {
		out[d.Property] = d.Value
	}
	return out
}

func assertExpansion(t *testing.T, decl string, want map[pr.KnownProp]pr.Value) {
	t.Helper()
	got := byProp(parse(t, decl))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%q: expansion mismatch (-want +got):\n%s", decl, diff)
	}
}

func TestFourSidesExpansion(t *testing.T) {
	// 1 value: all four sides identical
	assertExpansion(t, "margin: 1px", map[pr.KnownProp]pr.Value{
		pr.PMarginTop: pr.PxLength(1), pr.PMarginRight: pr.PxLength(1),
		pr.PMarginBottom: pr.PxLength(1), pr.PMarginLeft: pr.PxLength(1),
	})
	// 2 values: (V, H, V, H)
	assertExpansion(t, "margin: 1px 2px", map[pr.KnownProp]pr.Value{
		pr.PMarginTop: pr.PxLength(1), pr.PMarginRight: pr.PxLength(2),
		pr.PMarginBottom: pr.PxLength(1), pr.PMarginLeft: pr.PxLength(2),
	})
	// 3 values: (T, H, B, H)
	assertExpansion(t, "margin: 1px 2px 3px", map[pr.KnownProp]pr.Value{
		pr.PMarginTop: pr.PxLength(1), pr.PMarginRight: pr.PxLength(2),
		pr.PMarginBottom: pr.PxLength(3), pr.PMarginLeft: pr.PxLength(2),
	})
	// 4 values: (T, R, B, L)
	assertExpansion(t, "margin: 1px 2px 3px 4px", map[pr.KnownProp]pr.Value{
		pr.PMarginTop: pr.PxLength(1), pr.PMarginRight: pr.PxLength(2),
		pr.PMarginBottom: pr.PxLength(3), pr.PMarginLeft: pr.PxLength(4),
	})

	assertInvalid(t, "margin: 1px 2px 3px 4px 5px")
	assertInvalid(t, "margin: 1px solid")
	assertInvalid(t, "padding: -1px")

	// repeated slots share the same value
	out := parse(t, "inset: 1px 2px")
	if out[0].Value != out[2].Value || out[1].Value != out[3].Value {
		t.Fatal("repeated slots should hold equal values")
	}

	assertExpansion(t, "border-width: thin 2px", map[pr.KnownProp]pr.Value{
		pr.PBorderTopWidth: pr.Keyword("thin"), pr.PBorderRightWidth: pr.PxLength(2),
		pr.PBorderBottomWidth: pr.Keyword("thin"), pr.PBorderLeftWidth: pr.PxLength(2),
	})
}

func TestFlexExpansion(t *testing.T) {
	// a single flex factor implies shrink 1 and basis 0%
	assertExpansion(t, "flex: 2", map[pr.KnownProp]pr.Value{
		pr.PFlexGrow: pr.Number(2), pr.PFlexShrink: pr.Number(1),
		pr.PFlexBasis: pr.ZeroPercent,
	})
	assertExpansion(t, "flex: none", map[pr.KnownProp]pr.Value{
		pr.PFlexGrow: pr.Number(0), pr.PFlexShrink: pr.Number(0),
		pr.PFlexBasis: pr.Keyword("auto"),
	})
	assertExpansion(t, "flex: auto", map[pr.KnownProp]pr.Value{
		pr.PFlexGrow: pr.Number(1), pr.PFlexShrink: pr.Number(1),
		pr.PFlexBasis: pr.Keyword("auto"),
	})
	assertExpansion(t, "flex: 2 1 30px", map[pr.KnownProp]pr.Value{
		pr.PFlexGrow: pr.Number(2), pr.PFlexShrink: pr.Number(1),
		pr.PFlexBasis: pr.PxLength(30),
	})
	// a lone basis implies both factors 1
	assertExpansion(t, "flex: 30px", map[pr.KnownProp]pr.Value{
		pr.PFlexGrow: pr.Number(1), pr.PFlexShrink: pr.Number(1),
		pr.PFlexBasis: pr.PxLength(30),
	})
	// a bare 0 is a flex factor, not a zero length
	assertExpansion(t, "flex: 0", map[pr.KnownProp]pr.Value{
		pr.PFlexGrow: pr.Number(0), pr.PFlexShrink: pr.Number(1),
		pr.PFlexBasis: pr.ZeroPercent,
	})

	assertInvalid(t, "flex: -1")
	assertInvalid(t, "flex: 1 2 3 4")
}

func TestFlexFlowExpansion(t *testing.T) {
	assertExpansion(t, "flex-flow: column wrap", map[pr.KnownProp]pr.Value{
		pr.PFlexDirection: pr.Keyword("column"), pr.PFlexWrap: pr.Keyword("wrap"),
	})
	assertExpansion(t, "flex-flow: wrap-reverse", map[pr.KnownProp]pr.Value{
		pr.PFlexDirection: pr.Keyword("row"), pr.PFlexWrap: pr.Keyword("wrap-reverse"),
	})
	assertInvalid(t, "flex-flow: column column")
}

func TestBackgroundExpansion(t *testing.T) {
	pos := pr.Position{
		OriginX: "left", OriginY: "top",
		Pos: pr.Point{
			X: pr.Dimension{Unit: pr.Px, Value: 10},
			Y: pr.Dimension{Unit: pr.Px, Value: 20},
		},
	}
	red := pr.Color(parser.ParseColorString("red"))

	assertExpansion(t, "background: url(a.png) 10px 20px / cover no-repeat, red",
		map[pr.KnownProp]pr.Value{
			pr.PBackgroundColor: red,
			pr.PBackgroundImage: pr.NewCommaList(
				pr.Image{URL: "a.png"}, pr.Image{None: true}),
			pr.PBackgroundRepeat: pr.NewCommaList(
				pr.NewList(pr.Keyword("no-repeat"), pr.Keyword("no-repeat")),
				pr.NewList(pr.Keyword("repeat"), pr.Keyword("repeat"))),
			pr.PBackgroundAttachment: pr.NewCommaList(
				pr.Keyword("scroll"), pr.Keyword("scroll")),
			pr.PBackgroundPosition: pr.NewCommaList(
				pos, pr.InitialValues[pr.PBackgroundPosition]),
			pr.PBackgroundSize: pr.NewCommaList(
				pr.Keyword("cover"), pr.InitialValues[pr.PBackgroundSize]),
			pr.PBackgroundOrigin: pr.NewCommaList(
				pr.Keyword("padding-box"), pr.Keyword("padding-box")),
			pr.PBackgroundClip: pr.NewCommaList(
				pr.Keyword("border-box"), pr.Keyword("border-box")),
		})

	// a color is only legal in the final layer
	assertInvalid(t, "background: red, url(a.png)")
	assertInvalid(t, "background: 10px 20px / bogus")
}

func TestBackgroundSingleLayer(t *testing.T) {
	assertExpansion(t, "background: content-box red", map[pr.KnownProp]pr.Value{
		pr.PBackgroundColor:      pr.Color(parser.ParseColorString("red")),
		pr.PBackgroundImage:      pr.InitialValues[pr.PBackgroundImage],
		pr.PBackgroundRepeat:     pr.InitialValues[pr.PBackgroundRepeat],
		pr.PBackgroundAttachment: pr.InitialValues[pr.PBackgroundAttachment],
		pr.PBackgroundPosition:   pr.InitialValues[pr.PBackgroundPosition],
		pr.PBackgroundSize:       pr.InitialValues[pr.PBackgroundSize],
		// one box keyword sets both origin and clip
		pr.PBackgroundOrigin: pr.Keyword("content-box"),
		pr.PBackgroundClip:   pr.Keyword("content-box"),
	})
}

func TestBorderExpansion(t *testing.T) {
	out := byProp(parse(t, "border: 1px solid red"))
	red := pr.Color(parser.ParseColorString("red"))
	for _, side := range []pr.Shorthand{
		pr.SBorderTop, pr.SBorderRight, pr.SBorderBottom, pr.SBorderLeft,
	} {
		longhands := pr.Longhands[side]
		if out[longhands[0]] != pr.Value(pr.PxLength(1)) {
			t.Fatalf("%s: unexpected width %v", side, out[longhands[0]])
		}
		if out[longhands[1]] != pr.Value(pr.Keyword("solid")) {
			t.Fatalf("%s: unexpected style %v", side, out[longhands[1]])
		}
		if out[longhands[2]] != pr.Value(red) {
			t.Fatalf("%s: unexpected color %v", side, out[longhands[2]])
		}
	}

	assertExpansion(t, "border-top: dotted", map[pr.KnownProp]pr.Value{
		pr.PBorderTopWidth: pr.PxLength(3),
		pr.PBorderTopStyle: pr.Keyword("dotted"),
		pr.PBorderTopColor: pr.InitialValues[pr.PBorderTopColor],
	})
}

func TestBorderRadiusExpansion(t *testing.T) {
	assertExpansion(t, "border-radius: 1px 2px", map[pr.KnownProp]pr.Value{
		pr.PBorderTopLeftRadius:     pr.PxLength(1),
		pr.PBorderTopRightRadius:    pr.PxLength(2),
		pr.PBorderBottomRightRadius: pr.PxLength(1),
		pr.PBorderBottomLeftRadius:  pr.PxLength(2),
	})
	assertExpansion(t, "border-radius: 1px 2px / 3px", map[pr.KnownProp]pr.Value{
		pr.PBorderTopLeftRadius:     pr.NewList(pr.PxLength(1), pr.PxLength(3)),
		pr.PBorderTopRightRadius:    pr.NewList(pr.PxLength(2), pr.PxLength(3)),
		pr.PBorderBottomRightRadius: pr.NewList(pr.PxLength(1), pr.PxLength(3)),
		pr.PBorderBottomLeftRadius:  pr.NewList(pr.PxLength(2), pr.PxLength(3)),
	})
	assertInvalid(t, "border-radius: 1px / 2px / 3px")
	assertInvalid(t, "border-radius: 1px /")
}

func TestFontExpansion(t *testing.T) {
	assertExpansion(t, "font: italic bold 12px/1.5 Georgia, serif",
		map[pr.KnownProp]pr.Value{
			pr.PFontStyle:   pr.Keyword("italic"),
			pr.PFontVariant: pr.InitialValues[pr.PFontVariant],
			pr.PFontWeight:  pr.Keyword("bold"),
			pr.PFontStretch: pr.InitialValues[pr.PFontStretch],
			pr.PFontSize:    pr.PxLength(12),
			pr.PLineHeight:  pr.Number(1.5),
			pr.PFontFamily: pr.NewCommaList(
				pr.String("Georgia"), pr.Keyword("serif")),
		})

	assertExpansion(t, "font: 12px \"Times New Roman\"", map[pr.KnownProp]pr.Value{
		pr.PFontStyle:   pr.InitialValues[pr.PFontStyle],
		pr.PFontVariant: pr.InitialValues[pr.PFontVariant],
		pr.PFontWeight:  pr.InitialValues[pr.PFontWeight],
		pr.PFontStretch: pr.InitialValues[pr.PFontStretch],
		pr.PFontSize:    pr.PxLength(12),
		pr.PLineHeight:  pr.InitialValues[pr.PLineHeight],
		pr.PFontFamily:  pr.NewCommaList(pr.String("Times New Roman")),
	})

	// system fonts are reported and rejected
	assertInvalid(t, "font: caption")
	// the size is mandatory
	assertInvalid(t, "font: bold serif")
	assertInvalid(t, "font: 12px")
}

func TestTextDecorationExpansion(t *testing.T) {
	assertExpansion(t, "text-decoration: underline overline wavy red",
		map[pr.KnownProp]pr.Value{
			pr.PTextDecorationLine: pr.NewList(
				pr.Keyword("underline"), pr.Keyword("overline")),
			pr.PTextDecorationStyle:     pr.Keyword("wavy"),
			pr.PTextDecorationColor:     pr.Color(parser.ParseColorString("red")),
			pr.PTextDecorationThickness: pr.InitialValues[pr.PTextDecorationThickness],
		})
	assertExpansion(t, "text-decoration: none", map[pr.KnownProp]pr.Value{
		pr.PTextDecorationLine:      pr.Keyword("none"),
		pr.PTextDecorationStyle:     pr.InitialValues[pr.PTextDecorationStyle],
		pr.PTextDecorationColor:     pr.InitialValues[pr.PTextDecorationColor],
		pr.PTextDecorationThickness: pr.InitialValues[pr.PTextDecorationThickness],
	})
	assertInvalid(t, "text-decoration: underline underline")
	assertInvalid(t, "text-decoration: none underline")
}

func TestPairExpansions(t *testing.T) {
	assertExpansion(t, "overflow: hidden scroll", map[pr.KnownProp]pr.Value{
		pr.POverflowX: pr.Keyword("hidden"), pr.POverflowY: pr.Keyword("scroll"),
	})
	assertExpansion(t, "overflow: hidden", map[pr.KnownProp]pr.Value{
		pr.POverflowX: pr.Keyword("hidden"), pr.POverflowY: pr.Keyword("hidden"),
	})
	assertExpansion(t, "gap: 10px 2em", map[pr.KnownProp]pr.Value{
		pr.PRowGap:    pr.PxLength(10),
		pr.PColumnGap: pr.Length{Unit: pr.Em, Value: 2},
	})
	assertExpansion(t, "place-items: center", map[pr.KnownProp]pr.Value{
		pr.PAlignItems: pr.Keyword("center"), pr.PJustifyItems: pr.Keyword("center"),
	})
	assertInvalid(t, "overflow: hidden scroll auto")
}

func TestGenericExpansions(t *testing.T) {
	assertExpansion(t, "list-style: square inside", map[pr.KnownProp]pr.Value{
		pr.PListStyleType:     pr.Keyword("square"),
		pr.PListStylePosition: pr.Keyword("inside"),
		pr.PListStyleImage:    pr.InitialValues[pr.PListStyleImage],
	})
	assertExpansion(t, "columns: 12em auto", map[pr.KnownProp]pr.Value{
		pr.PColumnWidth: pr.Length{Unit: pr.Em, Value: 12},
		pr.PColumnCount: pr.Keyword("auto"),
	})
	assertExpansion(t, "columns: 3", map[pr.KnownProp]pr.Value{
		pr.PColumnWidth: pr.InitialValues[pr.PColumnWidth],
		pr.PColumnCount: pr.Integer(3),
	})
	assertInvalid(t, "list-style: inside inside")
}
