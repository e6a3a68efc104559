package properties

import (
	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

// ValueType is a bitmask of the value categories a property accepts.
type ValueType uint32

const (
	TKeyword ValueType = 1 << iota
	TCustomIdent
	TColor
	TImage
	TPosition
	TRatio
	TOpenTypeTag
	TString
	TUrl
	TInteger
	TNumber
	TAngle
	TFlex
	TFrequency
	TLength
	TResolution
	TTime
	TPercentage
)

// Descriptor is the registry entry of one longhand: which categories
// it accepts, its keyword set, how many space-separated values one
// declaration may carry, and whether numeric values must be >= 0.
type Descriptor struct {
	Keywords    utils.Set
	Types       ValueType
	MaxValues   int // 0 means 1
	NonNegative bool
}

func kw(values ...string) utils.Set { return utils.NewSet(values...) }

var descriptors = map[KnownProp]Descriptor{
	PBackgroundAttachment: {Keywords: kw("scroll", "fixed", "local")},
	PBackgroundClip:       {Keywords: kw("border-box", "padding-box", "content-box")},
	PBackgroundColor:      {Types: TColor},
	// "none" goes through the image recognizer
	PBackgroundImage:    {Types: TImage},
	PBackgroundOrigin:   {Keywords: kw("border-box", "padding-box", "content-box")},
	PBackgroundPosition: {Types: TPosition},
	PBackgroundRepeat: {
		Keywords:  kw("repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round"),
		MaxValues: 2,
	},
	PBackgroundSize: {
		Types: TLength | TPercentage, Keywords: kw("cover", "contain", "auto"),
		MaxValues: 2, NonNegative: true,
	},

	PBorderTopWidth:    borderWidthDesc,
	PBorderRightWidth:  borderWidthDesc,
	PBorderBottomWidth: borderWidthDesc,
	PBorderLeftWidth:   borderWidthDesc,
	PBorderTopStyle:    borderStyleDesc,
	PBorderRightStyle:  borderStyleDesc,
	PBorderBottomStyle: borderStyleDesc,
	PBorderLeftStyle:   borderStyleDesc,
	PBorderTopColor:    {Types: TColor},
	PBorderRightColor:  {Types: TColor},
	PBorderBottomColor: {Types: TColor},
	PBorderLeftColor:   {Types: TColor},

	PBorderTopLeftRadius:     radiusDesc,
	PBorderTopRightRadius:    radiusDesc,
	PBorderBottomRightRadius: radiusDesc,
	PBorderBottomLeftRadius:  radiusDesc,

	PMarginTop:     marginDesc,
	PMarginRight:   marginDesc,
	PMarginBottom:  marginDesc,
	PMarginLeft:    marginDesc,
	PPaddingTop:    paddingDesc,
	PPaddingRight:  paddingDesc,
	PPaddingBottom: paddingDesc,
	PPaddingLeft:   paddingDesc,
	PTop:           marginDesc,
	PRight:         marginDesc,
	PBottom:        marginDesc,
	PLeft:          marginDesc,

	PWidth:  sizeDesc,
	PHeight: sizeDesc,
	PMinWidth: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("auto", "min-content", "max-content", "fit-content"),
	},
	PMinHeight: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("auto", "min-content", "max-content", "fit-content"),
	},
	PMaxWidth: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("none", "min-content", "max-content", "fit-content"),
	},
	PMaxHeight: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("none", "min-content", "max-content", "fit-content"),
	},

	PFlexGrow:   {Types: TNumber, NonNegative: true},
	PFlexShrink: {Types: TNumber, NonNegative: true},
	PFlexBasis: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("auto", "content", "min-content", "max-content", "fit-content"),
	},
	PFlexDirection: {Keywords: kw("row", "row-reverse", "column", "column-reverse")},
	PFlexWrap:      {Keywords: kw("nowrap", "wrap", "wrap-reverse")},

	PRowGap:    {Types: TLength | TPercentage, Keywords: kw("normal"), NonNegative: true},
	PColumnGap: {Types: TLength | TPercentage, Keywords: kw("normal"), NonNegative: true},

	PFontStyle:   {Keywords: kw("normal", "italic", "oblique")},
	PFontVariant: {Keywords: kw("normal", "small-caps")},
	PFontWeight: {
		Types: TNumber, NonNegative: true,
		Keywords: kw("normal", "bold", "bolder", "lighter"),
	},
	PFontStretch: {
		Types: TPercentage, NonNegative: true,
		Keywords: kw(
			"normal", "ultra-condensed", "extra-condensed", "condensed",
			"semi-condensed", "semi-expanded", "expanded", "extra-expanded",
			"ultra-expanded",
		),
	},
	PFontSize: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw(
			"xx-small", "x-small", "small", "medium", "large", "x-large",
			"xx-large", "xxx-large", "smaller", "larger",
		),
	},
	PLineHeight: {
		Types: TNumber | TLength | TPercentage, NonNegative: true,
		Keywords: kw("normal"),
	},
	PFontFamily: {
		Types: TString | TCustomIdent,
		Keywords: kw(
			"serif", "sans-serif", "monospace", "cursive", "fantasy",
			"system-ui", "ui-serif", "ui-sans-serif", "ui-monospace",
		),
		MaxValues: 32,
	},
	PFontFeatureSettings:   {Types: TOpenTypeTag, Keywords: kw("normal"), MaxValues: 32},
	PFontVariationSettings: {Types: TOpenTypeTag, Keywords: kw("normal"), MaxValues: 32},

	PLetterSpacing: {Types: TLength, Keywords: kw("normal")},
	PWordSpacing:   {Types: TLength | TPercentage, Keywords: kw("normal")},

	PTextDecorationLine: {
		Keywords:  kw("none", "underline", "overline", "line-through", "blink"),
		MaxValues: 3,
	},
	PTextDecorationStyle: {Keywords: kw("solid", "double", "dotted", "dashed", "wavy")},
	PTextDecorationColor: {Types: TColor},
	PTextDecorationThickness: {
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("auto", "from-font"),
	},

	PListStyleType: {
		Types: TString,
		Keywords: kw(
			"disc", "circle", "square", "decimal", "decimal-leading-zero",
			"lower-alpha", "lower-latin", "lower-roman", "upper-alpha",
			"upper-latin", "upper-roman", "none",
		),
	},
	PListStylePosition: {Keywords: kw("inside", "outside")},
	PListStyleImage:    {Types: TImage},

	PColumnWidth: {Types: TLength, Keywords: kw("auto"), NonNegative: true},
	PColumnCount: {Types: TInteger, Keywords: kw("auto"), NonNegative: true},

	POverflowX: {Keywords: kw("visible", "hidden", "clip", "scroll", "auto")},
	POverflowY: {Keywords: kw("visible", "hidden", "clip", "scroll", "auto")},

	PDisplay: {Keywords: kw(
		"block", "inline", "inline-block", "flex", "inline-flex", "grid",
		"inline-grid", "none", "contents", "flow-root", "list-item",
		"table", "inline-table", "table-row", "table-cell", "table-caption",
		"table-row-group", "table-header-group", "table-footer-group",
		"table-column", "table-column-group",
	)},
	PColor:      {Types: TColor},
	POpacity:    {Types: TNumber | TPercentage},
	PZIndex:     {Types: TInteger, Keywords: kw("auto")},
	PVisibility: {Keywords: kw("visible", "hidden", "collapse")},
	PWhiteSpace: {Keywords: kw(
		"normal", "pre", "nowrap", "pre-wrap", "pre-line", "break-spaces",
	)},
	PTextAlign: {Keywords: kw(
		"left", "right", "center", "justify", "start", "end",
	)},
	PTextTransform: {Keywords: kw(
		"none", "capitalize", "uppercase", "lowercase", "full-width",
	)},
	PFloat:     {Keywords: kw("left", "right", "none", "inline-start", "inline-end")},
	PClear:     {Keywords: kw("none", "left", "right", "both", "inline-start", "inline-end")},
	PPosition:  {Keywords: kw("static", "relative", "absolute", "fixed", "sticky")},
	PBoxSizing: {Keywords: kw("content-box", "border-box")},
	PDirection: {Keywords: kw("ltr", "rtl")},

	PAspectRatio:     {Types: TRatio, Keywords: kw("auto"), MaxValues: 2},
	PTransformOrigin: {Types: TPosition},
	PObjectFit:       {Keywords: kw("fill", "contain", "cover", "none", "scale-down")},
	PObjectPosition:  {Types: TPosition},

	PAlignItems: {Keywords: kw(
		"normal", "stretch", "center", "start", "end", "flex-start",
		"flex-end", "baseline", "self-start", "self-end",
	)},
	PJustifyItems: {Keywords: kw(
		"normal", "stretch", "center", "start", "end", "flex-start",
		"flex-end", "baseline", "self-start", "self-end", "left", "right",
		"legacy",
	)},

	PQuotes:          {Types: TString, Keywords: kw("auto", "none"), MaxValues: 32},
	PImageResolution: {Types: TResolution, Keywords: kw("from-image"), NonNegative: true},

	PTransitionDuration: {Types: TTime, NonNegative: true, MaxValues: 32},
	PTransitionDelay:    {Types: TTime, MaxValues: 32},

	PGridTemplateColumns: trackListDesc,
	PGridTemplateRows:    trackListDesc,
}

var (
	borderWidthDesc = Descriptor{
		Types: TLength, NonNegative: true,
		Keywords: kw("thin", "medium", "thick"),
	}
	borderStyleDesc = Descriptor{Keywords: kw(
		"none", "hidden", "dotted", "dashed", "solid", "double", "groove",
		"ridge", "inset", "outset",
	)}
	radiusDesc = Descriptor{
		Types: TLength | TPercentage, NonNegative: true, MaxValues: 2,
	}
	marginDesc  = Descriptor{Types: TLength | TPercentage, Keywords: kw("auto")}
	paddingDesc = Descriptor{Types: TLength | TPercentage, NonNegative: true}
	sizeDesc    = Descriptor{
		Types: TLength | TPercentage, NonNegative: true,
		Keywords: kw("auto", "min-content", "max-content", "fit-content"),
	}
	trackListDesc = Descriptor{
		Types: TFlex | TLength | TPercentage, NonNegative: true,
		Keywords: kw("none", "auto", "min-content", "max-content"), MaxValues: 32,
	}
)

// Describe returns the registry entry of the property. A zero
// Descriptor is returned for properties outside the registry.
func Describe(p KnownProp) Descriptor { return descriptors[p] }

// Accepts reports whether the property accepts at least one of the
// given value categories.
func Accepts(p KnownProp, types ValueType) bool {
	return descriptors[p].Types&types != 0
}

// AcceptsKeyword reports whether keyword (lowercased) is in the
// property's keyword set.
func AcceptsKeyword(p KnownProp, keyword string) bool {
	return descriptors[p].Keywords.Has(keyword)
}

// MaxValueCount returns how many space-separated values one
// declaration of the property may hold (at least 1).
func MaxValueCount(p KnownProp) int {
	if m := descriptors[p].MaxValues; m > 1 {
		return m
	}
	return 1
}

var (
	currentColor = Color(parser.Color{Type: parser.ColorCurrentColor})
	transparent  = Color(parser.Color{Type: parser.ColorRGBA})
	black        = Color(parser.Color{
		Type: parser.ColorRGBA,
		RGBA: parser.RGBA{A: 1},
	})
	initialPosition = Position{
		OriginX: "left", OriginY: "top",
		Pos: Point{X: Dimension{Unit: Perc}, Y: Dimension{Unit: Perc}},
	}
	centerPosition = Position{
		OriginX: "left", OriginY: "top",
		Pos: Point{
			X: Dimension{Unit: Perc, Value: 50},
			Y: Dimension{Unit: Perc, Value: 50},
		},
	}
)

// InitialValues holds the registered initial value of every longhand.
// Shorthand expansion assigns these to longhands the declaration
// leaves implicit.
var InitialValues = map[KnownProp]Value{
	PBackgroundAttachment: Keyword("scroll"),
	PBackgroundClip:       Keyword("border-box"),
	PBackgroundColor:      transparent,
	PBackgroundImage:      Image{None: true},
	PBackgroundOrigin:     Keyword("padding-box"),
	PBackgroundPosition:   initialPosition,
	PBackgroundRepeat:     NewList(Keyword("repeat"), Keyword("repeat")),
	PBackgroundSize:       NewList(Keyword("auto"), Keyword("auto")),

	PBorderTopWidth:    PxLength(3),
	PBorderRightWidth:  PxLength(3),
	PBorderBottomWidth: PxLength(3),
	PBorderLeftWidth:   PxLength(3),
	PBorderTopStyle:    Keyword("none"),
	PBorderRightStyle:  Keyword("none"),
	PBorderBottomStyle: Keyword("none"),
	PBorderLeftStyle:   Keyword("none"),
	PBorderTopColor:    currentColor,
	PBorderRightColor:  currentColor,
	PBorderBottomColor: currentColor,
	PBorderLeftColor:   currentColor,

	PBorderTopLeftRadius:     PxLength(0),
	PBorderTopRightRadius:    PxLength(0),
	PBorderBottomRightRadius: PxLength(0),
	PBorderBottomLeftRadius:  PxLength(0),

	PMarginTop:     PxLength(0),
	PMarginRight:   PxLength(0),
	PMarginBottom:  PxLength(0),
	PMarginLeft:    PxLength(0),
	PPaddingTop:    PxLength(0),
	PPaddingRight:  PxLength(0),
	PPaddingBottom: PxLength(0),
	PPaddingLeft:   PxLength(0),
	PTop:           Keyword("auto"),
	PRight:         Keyword("auto"),
	PBottom:        Keyword("auto"),
	PLeft:          Keyword("auto"),

	PWidth:     Keyword("auto"),
	PHeight:    Keyword("auto"),
	PMinWidth:  Keyword("auto"),
	PMinHeight: Keyword("auto"),
	PMaxWidth:  Keyword("none"),
	PMaxHeight: Keyword("none"),

	PFlexGrow:      Number(0),
	PFlexShrink:    Number(1),
	PFlexBasis:     Keyword("auto"),
	PFlexDirection: Keyword("row"),
	PFlexWrap:      Keyword("nowrap"),

	PRowGap:    Keyword("normal"),
	PColumnGap: Keyword("normal"),

	PFontStyle:             Keyword("normal"),
	PFontVariant:           Keyword("normal"),
	PFontWeight:            Keyword("normal"),
	PFontStretch:           Keyword("normal"),
	PFontSize:              Keyword("medium"),
	PLineHeight:            Keyword("normal"),
	PFontFamily:            NewCommaList(Keyword("serif")),
	PFontFeatureSettings:   Keyword("normal"),
	PFontVariationSettings: Keyword("normal"),

	PLetterSpacing: Keyword("normal"),
	PWordSpacing:   Keyword("normal"),

	PTextDecorationLine:      Keyword("none"),
	PTextDecorationStyle:     Keyword("solid"),
	PTextDecorationColor:     currentColor,
	PTextDecorationThickness: Keyword("auto"),

	PListStyleType:     Keyword("disc"),
	PListStylePosition: Keyword("outside"),
	PListStyleImage:    Image{None: true},

	PColumnWidth: Keyword("auto"),
	PColumnCount: Keyword("auto"),

	POverflowX: Keyword("visible"),
	POverflowY: Keyword("visible"),

	PDisplay:       Keyword("inline"),
	PColor:         black,
	POpacity:       Number(1),
	PZIndex:        Keyword("auto"),
	PVisibility:    Keyword("visible"),
	PWhiteSpace:    Keyword("normal"),
	PTextAlign:     Keyword("start"),
	PTextTransform: Keyword("none"),
	PFloat:         Keyword("none"),
	PClear:         Keyword("none"),
	PPosition:      Keyword("static"),
	PBoxSizing:     Keyword("content-box"),
	PDirection:     Keyword("ltr"),

	PAspectRatio:     Keyword("auto"),
	PTransformOrigin: centerPosition,
	PObjectFit:       Keyword("fill"),
	PObjectPosition:  centerPosition,

	PAlignItems:   Keyword("normal"),
	PJustifyItems: Keyword("legacy"),

	PQuotes:          Keyword("auto"),
	PImageResolution: Resolution(1),

	PTransitionDuration: Time(0),
	PTransitionDelay:    Time(0),

	PGridTemplateColumns: Keyword("none"),
	PGridTemplateRows:    Keyword("none"),
}
