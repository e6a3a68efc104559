package properties

// KnownProp identifies one supported longhand property. The zero
// value is invalid.
type KnownProp uint8

const (
	PBackgroundAttachment KnownProp = iota + 1
	PBackgroundClip
	PBackgroundColor
	PBackgroundImage
	PBackgroundOrigin
	PBackgroundPosition
	PBackgroundRepeat
	PBackgroundSize

	PBorderTopWidth
	PBorderTopStyle
	PBorderTopColor
	PBorderRightWidth
	PBorderRightStyle
	PBorderRightColor
	PBorderBottomWidth
	PBorderBottomStyle
	PBorderBottomColor
	PBorderLeftWidth
	PBorderLeftStyle
	PBorderLeftColor

	PBorderTopLeftRadius
	PBorderTopRightRadius
	PBorderBottomRightRadius
	PBorderBottomLeftRadius

	PMarginTop
	PMarginRight
	PMarginBottom
	PMarginLeft
	PPaddingTop
	PPaddingRight
	PPaddingBottom
	PPaddingLeft
	PTop
	PRight
	PBottom
	PLeft

	PWidth
	PHeight
	PMinWidth
	PMinHeight
	PMaxWidth
	PMaxHeight

	PFlexGrow
	PFlexShrink
	PFlexBasis
	PFlexDirection
	PFlexWrap

	PRowGap
	PColumnGap

	PFontStyle
	PFontVariant
	PFontWeight
	PFontStretch
	PFontSize
	PLineHeight
	PFontFamily
	PFontFeatureSettings
	PFontVariationSettings

	PLetterSpacing
	PWordSpacing

	PTextDecorationLine
	PTextDecorationStyle
	PTextDecorationColor
	PTextDecorationThickness

	PListStyleType
	PListStylePosition
	PListStyleImage

	PColumnWidth
	PColumnCount

	POverflowX
	POverflowY

	PDisplay
	PColor
	POpacity
	PZIndex
	PVisibility
	PWhiteSpace
	PTextAlign
	PTextTransform
	PFloat
	PClear
	PPosition
	PBoxSizing
	PDirection

	PAspectRatio
	PTransformOrigin
	PObjectFit
	PObjectPosition

	PAlignItems
	PJustifyItems

	PQuotes
	PImageResolution

	PTransitionDuration
	PTransitionDelay

	PGridTemplateColumns
	PGridTemplateRows

	NbProperties
)

var propNames = [NbProperties]string{
	PBackgroundAttachment: "background-attachment",
	PBackgroundClip:       "background-clip",
	PBackgroundColor:      "background-color",
	PBackgroundImage:      "background-image",
	PBackgroundOrigin:     "background-origin",
	PBackgroundPosition:   "background-position",
	PBackgroundRepeat:     "background-repeat",
	PBackgroundSize:       "background-size",

	PBorderTopWidth:    "border-top-width",
	PBorderTopStyle:    "border-top-style",
	PBorderTopColor:    "border-top-color",
	PBorderRightWidth:  "border-right-width",
	PBorderRightStyle:  "border-right-style",
	PBorderRightColor:  "border-right-color",
	PBorderBottomWidth: "border-bottom-width",
	PBorderBottomStyle: "border-bottom-style",
	PBorderBottomColor: "border-bottom-color",
	PBorderLeftWidth:   "border-left-width",
	PBorderLeftStyle:   "border-left-style",
	PBorderLeftColor:   "border-left-color",

	PBorderTopLeftRadius:     "border-top-left-radius",
	PBorderTopRightRadius:    "border-top-right-radius",
	PBorderBottomRightRadius: "border-bottom-right-radius",
	PBorderBottomLeftRadius:  "border-bottom-left-radius",

	PMarginTop:     "margin-top",
	PMarginRight:   "margin-right",
	PMarginBottom:  "margin-bottom",
	PMarginLeft:    "margin-left",
	PPaddingTop:    "padding-top",
	PPaddingRight:  "padding-right",
	PPaddingBottom: "padding-bottom",
	PPaddingLeft:   "padding-left",
	PTop:           "top",
	PRight:         "right",
	PBottom:        "bottom",
	PLeft:          "left",

	PWidth:     "width",
	PHeight:    "height",
	PMinWidth:  "min-width",
	PMinHeight: "min-height",
	PMaxWidth:  "max-width",
	PMaxHeight: "max-height",

	PFlexGrow:      "flex-grow",
	PFlexShrink:    "flex-shrink",
	PFlexBasis:     "flex-basis",
	PFlexDirection: "flex-direction",
	PFlexWrap:      "flex-wrap",

	PRowGap:    "row-gap",
	PColumnGap: "column-gap",

	PFontStyle:             "font-style",
	PFontVariant:           "font-variant",
	PFontWeight:            "font-weight",
	PFontStretch:           "font-stretch",
	PFontSize:              "font-size",
	PLineHeight:            "line-height",
	PFontFamily:            "font-family",
	PFontFeatureSettings:   "font-feature-settings",
	PFontVariationSettings: "font-variation-settings",

	PLetterSpacing: "letter-spacing",
	PWordSpacing:   "word-spacing",

	PTextDecorationLine:      "text-decoration-line",
	PTextDecorationStyle:     "text-decoration-style",
	PTextDecorationColor:     "text-decoration-color",
	PTextDecorationThickness: "text-decoration-thickness",

	PListStyleType:     "list-style-type",
	PListStylePosition: "list-style-position",
	PListStyleImage:    "list-style-image",

	PColumnWidth: "column-width",
	PColumnCount: "column-count",

	POverflowX: "overflow-x",
	POverflowY: "overflow-y",

	PDisplay:       "display",
	PColor:         "color",
	POpacity:       "opacity",
	PZIndex:        "z-index",
	PVisibility:    "visibility",
	PWhiteSpace:    "white-space",
	PTextAlign:     "text-align",
	PTextTransform: "text-transform",
	PFloat:         "float",
	PClear:         "clear",
	PPosition:      "position",
	PBoxSizing:     "box-sizing",
	PDirection:     "direction",

	PAspectRatio:     "aspect-ratio",
	PTransformOrigin: "transform-origin",
	PObjectFit:       "object-fit",
	PObjectPosition:  "object-position",

	PAlignItems:   "align-items",
	PJustifyItems: "justify-items",

	PQuotes:          "quotes",
	PImageResolution: "image-resolution",

	PTransitionDuration: "transition-duration",
	PTransitionDelay:    "transition-delay",

	PGridTemplateColumns: "grid-template-columns",
	PGridTemplateRows:    "grid-template-rows",
}

func (p KnownProp) String() string {
	if p >= NbProperties {
		return "<invalid property>"
	}
	return propNames[p]
}

// Shorthand identifies one supported shorthand property.
type Shorthand uint8

const (
	SBackground Shorthand = iota + 1
	SBorder
	SBorderTop
	SBorderRight
	SBorderBottom
	SBorderLeft
	SBorderWidth
	SBorderStyle
	SBorderColor
	SBorderRadius
	SMargin
	SPadding
	SInset
	SFlex
	SFlexFlow
	SFont
	SGap
	SListStyle
	SColumns
	STextDecoration
	SOverflow
	SPlaceItems

	NbShorthands
)

var shorthandNames = [NbShorthands]string{
	SBackground:     "background",
	SBorder:         "border",
	SBorderTop:      "border-top",
	SBorderRight:    "border-right",
	SBorderBottom:   "border-bottom",
	SBorderLeft:     "border-left",
	SBorderWidth:    "border-width",
	SBorderStyle:    "border-style",
	SBorderColor:    "border-color",
	SBorderRadius:   "border-radius",
	SMargin:         "margin",
	SPadding:        "padding",
	SInset:          "inset",
	SFlex:           "flex",
	SFlexFlow:       "flex-flow",
	SFont:           "font",
	SGap:            "gap",
	SListStyle:      "list-style",
	SColumns:        "columns",
	STextDecoration: "text-decoration",
	SOverflow:       "overflow",
	SPlaceItems:     "place-items",
}

func (s Shorthand) String() string {
	if s >= NbShorthands {
		return "<invalid shorthand>"
	}
	return shorthandNames[s]
}

// Longhands maps each shorthand to its expanded longhand properties,
// in canonical order. Positional box shorthands list (top, right,
// bottom, left).
var Longhands = map[Shorthand][]KnownProp{
	SBackground: {
		PBackgroundColor, PBackgroundImage, PBackgroundRepeat,
		PBackgroundAttachment, PBackgroundPosition, PBackgroundSize,
		PBackgroundOrigin, PBackgroundClip,
	},
	SBorder: {
		PBorderTopWidth, PBorderTopStyle, PBorderTopColor,
		PBorderRightWidth, PBorderRightStyle, PBorderRightColor,
		PBorderBottomWidth, PBorderBottomStyle, PBorderBottomColor,
		PBorderLeftWidth, PBorderLeftStyle, PBorderLeftColor,
	},
	SBorderTop:    {PBorderTopWidth, PBorderTopStyle, PBorderTopColor},
	SBorderRight:  {PBorderRightWidth, PBorderRightStyle, PBorderRightColor},
	SBorderBottom: {PBorderBottomWidth, PBorderBottomStyle, PBorderBottomColor},
	SBorderLeft:   {PBorderLeftWidth, PBorderLeftStyle, PBorderLeftColor},
	SBorderWidth:  {PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth},
	SBorderStyle:  {PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle},
	SBorderColor:  {PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor},
	SBorderRadius: {
		PBorderTopLeftRadius, PBorderTopRightRadius,
		PBorderBottomRightRadius, PBorderBottomLeftRadius,
	},
	SMargin:  {PMarginTop, PMarginRight, PMarginBottom, PMarginLeft},
	SPadding: {PPaddingTop, PPaddingRight, PPaddingBottom, PPaddingLeft},
	SInset:   {PTop, PRight, PBottom, PLeft},
	SFlex:    {PFlexGrow, PFlexShrink, PFlexBasis},
	SFlexFlow: {
		PFlexDirection, PFlexWrap,
	},
	SFont: {
		PFontStyle, PFontVariant, PFontWeight, PFontStretch,
		PFontSize, PLineHeight, PFontFamily,
	},
	SGap:       {PRowGap, PColumnGap},
	SListStyle: {PListStyleType, PListStylePosition, PListStyleImage},
	SColumns:   {PColumnWidth, PColumnCount},
	STextDecoration: {
		PTextDecorationLine, PTextDecorationStyle,
		PTextDecorationColor, PTextDecorationThickness,
	},
	SOverflow:   {POverflowX, POverflowY},
	SPlaceItems: {PAlignItems, PJustifyItems},
}

var (
	// PropertyFromName resolves a lowercased longhand name.
	PropertyFromName = map[string]KnownProp{}
	// ShorthandFromName resolves a lowercased shorthand name.
	ShorthandFromName = map[string]Shorthand{}
)

func init() {
	for p := KnownProp(1); p < NbProperties; p++ {
		PropertyFromName[propNames[p]] = p
	}
	for s := Shorthand(1); s < NbShorthands; s++ {
		ShorthandFromName[shorthandNames[s]] = s
	}
}
