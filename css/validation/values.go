// Package validation turns tokenized declaration values into typed
// style values: atomic recognizers, property-directed dispatch,
// list and layer parsing, shorthand expansion and the top-level
// declaration driver.
package validation

import (
	"math"
	"strings"

	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

type Fl = utils.Fl

// Every recognizer consumes nothing when it fails: attempts run
// inside a transaction that is only committed on success.

// lengthUnits maps a unit to its storage unit and conversion factor.
// Absolute units collapse to pixels.
var lengthUnits = map[string]struct {
	unit   pr.Unit
	factor Fl
}{
	"px":   {pr.Px, 1},
	"in":   {pr.Px, 96},
	"cm":   {pr.Px, 96. / 2.54},
	"mm":   {pr.Px, 9.6 / 2.54},
	"q":    {pr.Px, 2.4 / 2.54},
	"pt":   {pr.Px, 96. / 72},
	"pc":   {pr.Px, 16},
	"em":   {pr.Em, 1},
	"rem":  {pr.Rem, 1},
	"ex":   {pr.Ex, 1},
	"ch":   {pr.Ch, 1},
	"vw":   {pr.Vw, 1},
	"vh":   {pr.Vh, 1},
	"vmin": {pr.Vmin, 1},
	"vmax": {pr.Vmax, 1},
}

// angleUnits converts to degrees.
var angleUnits = map[string]Fl{
	"deg":  1,
	"grad": 360. / 400,
	"rad":  180 / math.Pi,
	"turn": 360,
}

// timeUnits converts to seconds.
var timeUnits = map[string]Fl{"s": 1, "ms": 1e-3}

// frequencyUnits converts to hertz.
var frequencyUnits = map[string]Fl{"hz": 1, "khz": 1e3}

// resolutionUnits converts to dots per pixel.
var resolutionUnits = map[string]Fl{
	"dppx": 1,
	"x":    1,
	"dpi":  1. / 96,
	"dpcm": 2.54 / 96,
}

var wideKeywords = utils.NewSet("inherit", "initial", "unset", "revert", "revert-layer")

var mathFunctions = utils.NewSet("calc", "min", "max", "clamp")

// parseKeyword consumes one identifier and returns it lowercased.
func parseKeyword(ts *parser.TokenStream) (pr.Keyword, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if ident, ok := ts.Next().(parser.Ident); ok {
		tx.Commit()
		return pr.Keyword(utils.AsciiLower(ident.Value)), true
	}
	return "", false
}

// parseCustomIdent consumes one identifier that is not reserved
// (CSS-wide keywords and "default"), preserving its case.
func parseCustomIdent(ts *parser.TokenStream) (pr.CustomIdent, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	ident, ok := ts.Next().(parser.Ident)
	if !ok {
		return "", false
	}
	lower := utils.AsciiLower(ident.Value)
	if wideKeywords.Has(lower) || lower == "default" {
		return "", false
	}
	tx.Commit()
	return pr.CustomIdent(ident.Value), true
}

func parseString(ts *parser.TokenStream) (pr.String, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if str, ok := ts.Next().(parser.String); ok {
		tx.Commit()
		return pr.String(str.Value), true
	}
	return "", false
}

func parseURL(ts *parser.TokenStream) (string, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	switch token := ts.Next().(type) {
	case parser.URL:
		tx.Commit()
		return token.Value, true
	case parser.FunctionBlock:
		// url("...") tokenizes as a function with one string argument
		if utils.AsciiLower(token.Name) == "url" {
			args := parser.RemoveWhitespace(*token.Arguments)
			if len(args) == 1 {
				if str, ok := args[0].(parser.String); ok {
					tx.Commit()
					return str.Value, true
				}
			}
		}
	}
	return "", false
}

func parseInteger(ts *parser.TokenStream) (pr.Integer, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if number, ok := ts.Next().(parser.Number); ok && number.IsInteger {
		tx.Commit()
		return pr.Integer(number.Int()), true
	}
	return 0, false
}

func parseNumber(ts *parser.TokenStream) (pr.Number, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if number, ok := ts.Next().(parser.Number); ok {
		tx.Commit()
		return pr.Number(number.Value), true
	}
	return 0, false
}

func parsePercentage(ts *parser.TokenStream) (pr.Percentage, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if percentage, ok := ts.Next().(parser.Percentage); ok {
		tx.Commit()
		return pr.Percentage(percentage.Value), true
	}
	return 0, false
}

// parseLength consumes a dimension with a length unit, or the
// unitless zero. Absolute units are normalized to pixels.
func parseLength(ts *parser.TokenStream) (pr.Length, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	switch token := ts.Next().(type) {
	case parser.Dimension:
		if conv, in := lengthUnits[utils.AsciiLower(token.Unit)]; in {
			tx.Commit()
			return pr.Length{Unit: conv.unit, Value: token.Value * conv.factor}, true
		}
	case parser.Number:
		if token.Value == 0 {
			tx.Commit()
			return pr.PxLength(0), true
		}
	}
	return pr.Length{}, false
}

func parseAngle(ts *parser.TokenStream) (pr.Angle, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if dim, ok := ts.Next().(parser.Dimension); ok {
		if factor, in := angleUnits[utils.AsciiLower(dim.Unit)]; in {
			tx.Commit()
			return pr.Angle(dim.Value * factor), true
		}
	}
	return 0, false
}

func parseTime(ts *parser.TokenStream) (pr.Time, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if dim, ok := ts.Next().(parser.Dimension); ok {
		if factor, in := timeUnits[utils.AsciiLower(dim.Unit)]; in {
			tx.Commit()
			return pr.Time(dim.Value * factor), true
		}
	}
	return 0, false
}

func parseFrequency(ts *parser.TokenStream) (pr.Frequency, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if dim, ok := ts.Next().(parser.Dimension); ok {
		if factor, in := frequencyUnits[utils.AsciiLower(dim.Unit)]; in {
			tx.Commit()
			return pr.Frequency(dim.Value * factor), true
		}
	}
	return 0, false
}

func parseResolution(ts *parser.TokenStream) (pr.Resolution, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if dim, ok := ts.Next().(parser.Dimension); ok {
		if factor, in := resolutionUnits[utils.AsciiLower(dim.Unit)]; in {
			tx.Commit()
			return pr.Resolution(dim.Value * factor), true
		}
	}
	return 0, false
}

func parseFlex(ts *parser.TokenStream) (pr.Flex, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if dim, ok := ts.Next().(parser.Dimension); ok {
		if utils.AsciiLower(dim.Unit) == "fr" && dim.Value >= 0 {
			tx.Commit()
			return pr.Flex(dim.Value), true
		}
	}
	return 0, false
}

// parseRatio consumes <number [0,inf]> [ / <number [0,inf]> ].
// Degenerate ratios (a zero component) are rejected.
func parseRatio(ts *parser.TokenStream) (pr.Ratio, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	num, ok := ts.Next().(parser.Number)
	if !ok || num.Value <= 0 {
		return pr.Ratio{}, false
	}
	ratio := pr.Ratio{Num: num.Value, Den: 1}

	slash := ts.BeginTransaction()
	ts.DiscardWhitespace()
	if parser.IsLiteral(ts.Peek(), "/") {
		ts.Next()
		ts.DiscardWhitespace()
		den, ok := ts.Next().(parser.Number)
		if !ok || den.Value <= 0 {
			// a slash without a valid denominator invalidates the
			// whole ratio, not just the suffix
			return pr.Ratio{}, false
		}
		ratio.Den = den.Value
		slash.Commit()
	}
	slash.Rollback()
	tx.Commit()
	return ratio, true
}

// parseColorValue consumes one color component value.
func parseColorValue(ts *parser.TokenStream) (pr.Color, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	token := ts.Next()
	if token == nil {
		return pr.Color{}, false
	}
	color := parser.ParseColor(token)
	if color.IsNone() {
		return pr.Color{}, false
	}
	tx.Commit()
	return pr.Color(color), true
}

var gradientFunctions = utils.NewSet(
	"linear-gradient", "radial-gradient", "conic-gradient",
	"repeating-linear-gradient", "repeating-radial-gradient",
	"repeating-conic-gradient",
)

// parseImage consumes none, a url, or a gradient function. Gradient
// arguments are kept in textual form for downstream resolution.
func parseImage(ts *parser.TokenStream) (pr.Image, bool) {
	if url, ok := parseURL(ts); ok {
		return pr.Image{URL: url}, true
	}
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	switch token := ts.Next().(type) {
	case parser.Ident:
		if utils.AsciiLower(token.Value) == "none" {
			tx.Commit()
			return pr.Image{None: true}, true
		}
	case parser.FunctionBlock:
		if gradientFunctions.Has(utils.AsciiLower(token.Name)) {
			tx.Commit()
			return pr.Image{Gradient: parser.Serialize([]parser.Token{token})}, true
		}
	}
	return pr.Image{}, false
}

// parseOpenTypeTag consumes one feature/variation setting: a
// 4-character string tag, then an optional integer or on/off (for
// feature settings) or number (for variation settings). An omitted
// value means 1.
func parseOpenTypeTag(ts *parser.TokenStream) (pr.OpenTypeTag, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	str, ok := ts.Next().(parser.String)
	if !ok || !validTag(str.Value) {
		return pr.OpenTypeTag{}, false
	}
	out := pr.OpenTypeTag{Tag: str.Value, Value: 1}
	tx.Commit()

	value := ts.BeginTransaction()
	defer value.Rollback()
	ts.DiscardWhitespace()
	switch token := ts.Next().(type) {
	case parser.Number:
		if token.Value >= 0 {
			out.Value = token.Value
			value.Commit()
		}
	case parser.Ident:
		switch utils.AsciiLower(token.Value) {
		case "on":
			out.Value = 1
			value.Commit()
		case "off":
			out.Value = 0
			value.Commit()
		}
	}
	return out, true
}

// tags are 4 printable ASCII characters
func validTag(tag string) bool {
	if len(tag) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if tag[i] < 0x20 || tag[i] > 0x7E {
			return false
		}
	}
	return true
}

// parseCalc consumes a math function (calc, min, max, clamp) into a
// deferred Calculated value.
func parseCalc(ts *parser.TokenStream) (pr.Calculated, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if fn, ok := ts.Next().(parser.FunctionBlock); ok {
		if mathFunctions.Has(utils.AsciiLower(fn.Name)) {
			tx.Commit()
			return pr.Calculated{Expression: parser.Serialize([]parser.Token{fn})}, true
		}
	}
	return pr.Calculated{}, false
}

// isMathFunction reports whether the next token, if any, is a math
// function, without consuming it.
func isMathFunction(ts *parser.TokenStream) bool {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	fn, ok := ts.Next().(parser.FunctionBlock)
	return ok && mathFunctions.Has(utils.AsciiLower(fn.Name))
}

// ---------------------------- position -----------------------------

var (
	horizontalKeywords = utils.NewSet("left", "right", "center")
	verticalKeywords   = utils.NewSet("top", "bottom", "center")
)

type positionComponent struct {
	keyword string // "" when a dimension was parsed
	dim     pr.Dimension
}

func parsePositionComponent(ts *parser.TokenStream) (positionComponent, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	switch token := ts.Next().(type) {
	case parser.Ident:
		name := utils.AsciiLower(token.Value)
		if horizontalKeywords.Has(name) || verticalKeywords.Has(name) {
			tx.Commit()
			return positionComponent{keyword: name}, true
		}
	case parser.Dimension:
		ts.Reconsume()
		if length, ok := parseLength(ts); ok {
			tx.Commit()
			return positionComponent{dim: pr.Dimension(length)}, true
		}
	case parser.Percentage:
		tx.Commit()
		return positionComponent{dim: pr.Dimension{Unit: pr.Perc, Value: token.Value}}, true
	case parser.Number:
		if token.Value == 0 {
			tx.Commit()
			return positionComponent{dim: pr.Dimension{Unit: pr.Px}}, true
		}
	}
	return positionComponent{}, false
}

func horizontalSide(c positionComponent) (origin string, offset pr.Dimension, ok bool) {
	switch c.keyword {
	case "":
		return "left", c.dim, true
	case "left", "right":
		return c.keyword, pr.Dimension{Unit: pr.Perc}, true
	case "center":
		return "left", pr.Dimension{Unit: pr.Perc, Value: 50}, true
	}
	return "", pr.Dimension{}, false
}

func verticalSide(c positionComponent) (origin string, offset pr.Dimension, ok bool) {
	switch c.keyword {
	case "":
		return "top", c.dim, true
	case "top", "bottom":
		return c.keyword, pr.Dimension{Unit: pr.Perc}, true
	case "center":
		return "top", pr.Dimension{Unit: pr.Perc, Value: 50}, true
	}
	return "", pr.Dimension{}, false
}

// parsePosition consumes a <position>: one or two axis components, or
// the edge-offset form (side keyword each followed by an optional
// offset, both axes, either axis first). Longest form wins.
func parsePosition(ts *parser.TokenStream) (pr.Position, bool) {
	if pos, ok := parseEdgeOffsetPosition(ts); ok {
		return pos, true
	}
	if pos, ok := parseTwoValuePosition(ts); ok {
		return pos, true
	}
	return parseSingleValuePosition(ts)
}

func parseEdgeOffsetPosition(ts *parser.TokenStream) (pr.Position, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()

	first, ok := parseEdge(ts)
	if !ok {
		return pr.Position{}, false
	}
	second, ok := parseEdge(ts)
	if !ok {
		return pr.Position{}, false
	}
	var h, v edge
	switch {
	case first.horizontal() && second.vertical():
		h, v = first, second
	case first.vertical() && second.horizontal():
		h, v = second, first
	default:
		return pr.Position{}, false
	}
	hOrigin, hOffset, _ := horizontalSide(positionComponent{keyword: h.side})
	vOrigin, vOffset, _ := verticalSide(positionComponent{keyword: v.side})
	if h.hasOffset {
		hOffset = h.offset
	}
	if v.hasOffset {
		vOffset = v.offset
	}
	tx.Commit()
	return pr.Position{
		OriginX: hOrigin, OriginY: vOrigin,
		Pos: pr.Point{X: hOffset, Y: vOffset},
	}, true
}

type edge struct {
	side      string
	offset    pr.Dimension
	hasOffset bool
}

func (e edge) horizontal() bool { return e.side == "left" || e.side == "right" || e.side == "center" }
func (e edge) vertical() bool   { return e.side == "top" || e.side == "bottom" || e.side == "center" }

// parseEdge consumes a side keyword and, except for center, an
// optional offset dimension.
func parseEdge(ts *parser.TokenStream) (edge, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	ident, ok := ts.Next().(parser.Ident)
	if !ok {
		return edge{}, false
	}
	side := utils.AsciiLower(ident.Value)
	if !horizontalKeywords.Has(side) && !verticalKeywords.Has(side) {
		return edge{}, false
	}
	out := edge{side: side}
	tx.Commit()
	if side != "center" {
		if c, ok := parsePositionComponent(ts); ok && c.keyword == "" {
			out.offset, out.hasOffset = c.dim, true
		}
	}
	return out, true
}

func parseTwoValuePosition(ts *parser.TokenStream) (pr.Position, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	c1, ok := parsePositionComponent(ts)
	if !ok {
		return pr.Position{}, false
	}
	c2, ok := parsePositionComponent(ts)
	if !ok {
		return pr.Position{}, false
	}
	hOrigin, hOffset, ok := horizontalSide(c1)
	if !ok {
		return pr.Position{}, false
	}
	vOrigin, vOffset, ok := verticalSide(c2)
	if !ok {
		return pr.Position{}, false
	}
	tx.Commit()
	return pr.Position{
		OriginX: hOrigin, OriginY: vOrigin,
		Pos: pr.Point{X: hOffset, Y: vOffset},
	}, true
}

func parseSingleValuePosition(ts *parser.TokenStream) (pr.Position, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	c, ok := parsePositionComponent(ts)
	if !ok {
		return pr.Position{}, false
	}
	center := pr.Dimension{Unit: pr.Perc, Value: 50}
	if c.keyword == "top" || c.keyword == "bottom" {
		vOrigin, vOffset, _ := verticalSide(c)
		tx.Commit()
		return pr.Position{
			OriginX: "left", OriginY: vOrigin,
			Pos: pr.Point{X: center, Y: vOffset},
		}, true
	}
	hOrigin, hOffset, ok := horizontalSide(c)
	if !ok {
		return pr.Position{}, false
	}
	tx.Commit()
	return pr.Position{
		OriginX: hOrigin, OriginY: "top",
		Pos: pr.Point{X: hOffset, Y: center},
	}, true
}

// nonNegative rejects negative numerics for properties registered as
// non-negative.
func nonNegative(p pr.KnownProp, value Fl) bool {
	return value >= 0 || !pr.Describe(p).NonNegative
}

func hasPrefix(token parser.Token) bool {
	ident, ok := token.(parser.Ident)
	return ok && strings.HasPrefix(ident.Value, "-")
}
