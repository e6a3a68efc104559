package validation

import (
	"testing"

	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
)

func TestAspectRatio(t *testing.T) {
	// both orders normalize to auto first
	want := pr.NewList(pr.Keyword("auto"), pr.Ratio{Num: 16, Den: 9})
	assertValue(t, "aspect-ratio: auto 16 / 9", want)
	assertValue(t, "aspect-ratio: 16 / 9 auto", want)

	assertValue(t, "aspect-ratio: auto", pr.Keyword("auto"))
	assertValue(t, "aspect-ratio: 16 / 9", pr.Ratio{Num: 16, Den: 9})
	assertValue(t, "aspect-ratio: 2", pr.Ratio{Num: 2, Den: 1})

	assertInvalid(t, "aspect-ratio: 0 / 9")
	assertInvalid(t, "aspect-ratio: 16 / -9")
	assertInvalid(t, "aspect-ratio: auto auto")
	assertInvalid(t, "aspect-ratio: 16 / 9 16 / 9")
}

func TestFontFeatureSettings(t *testing.T) {
	assertValue(t, "font-feature-settings: normal", pr.Keyword("normal"))

	// duplicate tags keep the last occurrence
	assertValue(t, `font-feature-settings: "liga" 0, "liga" 1`,
		pr.NewCommaList(pr.OpenTypeTag{Tag: "liga", Value: 1}))

	// the result is sorted by tag, omitted values default to 1
	assertValue(t, `font-feature-settings: "tnum", "liga" off`,
		pr.NewCommaList(
			pr.OpenTypeTag{Tag: "liga", Value: 0},
			pr.OpenTypeTag{Tag: "tnum", Value: 1},
		))
	assertValue(t, `font-feature-settings: "kern" on`,
		pr.NewCommaList(pr.OpenTypeTag{Tag: "kern", Value: 1}))

	assertInvalid(t, `font-feature-settings: "toolong" 1`)
	assertInvalid(t, `font-feature-settings: "liga" -1`)
	assertInvalid(t, "font-feature-settings: liga")
}

func TestFontVariationSettings(t *testing.T) {
	assertValue(t, `font-variation-settings: "wght" 650.5`,
		pr.NewCommaList(pr.OpenTypeTag{Tag: "wght", Value: 650.5}))
	assertValue(t, "font-variation-settings: normal", pr.Keyword("normal"))
}

func TestBackgroundRepeatLonghand(t *testing.T) {
	assertValue(t, "background-repeat: repeat-x",
		pr.NewList(pr.Keyword("repeat"), pr.Keyword("no-repeat")))
	assertValue(t, "background-repeat: repeat-y",
		pr.NewList(pr.Keyword("no-repeat"), pr.Keyword("repeat")))
	assertValue(t, "background-repeat: no-repeat",
		pr.NewList(pr.Keyword("no-repeat"), pr.Keyword("no-repeat")))
	assertValue(t, "background-repeat: space round",
		pr.NewList(pr.Keyword("space"), pr.Keyword("round")))
	// axis pairs do not combine with a second keyword
	assertInvalid(t, "background-repeat: repeat-x repeat")
	assertInvalid(t, "background-repeat: bogus")
}

func TestBackgroundSizeLonghand(t *testing.T) {
	assertValue(t, "background-size: cover", pr.Keyword("cover"))
	assertValue(t, "background-size: 50% auto",
		pr.NewList(pr.Percentage(50), pr.Keyword("auto")))
	assertValue(t, "background-size: 10px",
		pr.NewList(pr.PxLength(10), pr.Keyword("auto")))
	assertValue(t, "background-size: cover, 10px 20px",
		pr.NewCommaList(
			pr.Keyword("cover"),
			pr.NewList(pr.PxLength(10), pr.PxLength(20)),
		))
	assertInvalid(t, "background-size: -10px")
}

func TestPositionLonghands(t *testing.T) {
	center := pr.Dimension{Unit: pr.Perc, Value: 50}
	assertValue(t, "background-position: center", pr.Position{
		OriginX: "left", OriginY: "top",
		Pos: pr.Point{X: center, Y: center},
	})
	assertValue(t, "object-position: right 10px bottom 20px", pr.Position{
		OriginX: "right", OriginY: "bottom",
		Pos: pr.Point{
			X: pr.Dimension{Unit: pr.Px, Value: 10},
			Y: pr.Dimension{Unit: pr.Px, Value: 20},
		},
	})
	assertValue(t, "transform-origin: top left", pr.Position{
		OriginX: "left", OriginY: "top",
		Pos: pr.Point{X: pr.Dimension{Unit: pr.Perc}, Y: pr.Dimension{Unit: pr.Perc}},
	})
	assertValue(t, "background-position: 25% 75%", pr.Position{
		OriginX: "left", OriginY: "top",
		Pos: pr.Point{
			X: pr.Dimension{Unit: pr.Perc, Value: 25},
			Y: pr.Dimension{Unit: pr.Perc, Value: 75},
		},
	})
	assertInvalid(t, "background-position: left left")
}

func TestQuotes(t *testing.T) {
	assertValue(t, "quotes: auto", pr.Keyword("auto"))
	assertValue(t, "quotes: none", pr.Keyword("none"))
	assertValue(t, `quotes: "«" "»"`,
		pr.NewList(pr.String("«"), pr.String("»")))
	assertValue(t, `quotes: "«" "»" "‹" "›"`,
		pr.NewList(pr.String("«"), pr.String("»"), pr.String("‹"), pr.String("›")))
	assertInvalid(t, `quotes: "«"`)
	assertInvalid(t, "quotes: a b")
}

func TestFontFamilyLonghand(t *testing.T) {
	assertValue(t, "font-family: Georgia, serif",
		pr.NewCommaList(pr.String("Georgia"), pr.Keyword("serif")))
	assertValue(t, "font-family: Times New Roman, sans-serif",
		pr.NewCommaList(pr.String("Times New Roman"), pr.Keyword("sans-serif")))
	assertValue(t, `font-family: "Helvetica Neue"`,
		pr.NewCommaList(pr.String("Helvetica Neue")))
	assertInvalid(t, "font-family: 12px")
	assertInvalid(t, `font-family: "a" extra`)
}

func TestTextDecorationLineLonghand(t *testing.T) {
	assertValue(t, "text-decoration-line: underline", pr.Keyword("underline"))
	assertValue(t, "text-decoration-line: underline line-through",
		pr.NewList(pr.Keyword("underline"), pr.Keyword("line-through")))
	assertValue(t, "text-decoration-line: none", pr.Keyword("none"))
	assertInvalid(t, "text-decoration-line: underline underline")
	assertInvalid(t, "text-decoration-line: underline none")
}
