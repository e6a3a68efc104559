package validation

import (
	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

// An expander parses a shorthand value and assigns every longhand of
// the shorthand, falling back to registered initial values for the
// components the declaration leaves implicit.
type expander func(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error)

var expanders = map[pr.Shorthand]expander{
	pr.SBackground:     expandBackground,
	pr.SBorder:         expandBorder,
	pr.SBorderTop:      expandBorderSide,
	pr.SBorderRight:    expandBorderSide,
	pr.SBorderBottom:   expandBorderSide,
	pr.SBorderLeft:     expandBorderSide,
	pr.SBorderWidth:    expandFourSides,
	pr.SBorderStyle:    expandFourSides,
	pr.SBorderColor:    expandFourSides,
	pr.SBorderRadius:   expandBorderRadius,
	pr.SMargin:         expandFourSides,
	pr.SPadding:        expandFourSides,
	pr.SInset:          expandFourSides,
	pr.SFlex:           expandFlex,
	pr.SFlexFlow:       expandGeneric,
	pr.SFont:           expandFont,
	pr.SGap:            expandPair,
	pr.SListStyle:      expandGeneric,
	pr.SColumns:        expandGeneric,
	pr.STextDecoration: expandTextDecoration,
	pr.SOverflow:       expandPair,
	pr.SPlaceItems:     expandPair,
}

// assignments accumulates longhand values during one expansion.
type assignments struct {
	sh     pr.Shorthand
	values map[pr.KnownProp]pr.Value
}

func newAssignments(sh pr.Shorthand) assignments {
	return assignments{sh: sh, values: make(map[pr.KnownProp]pr.Value)}
}

func (a assignments) set(p pr.KnownProp, v pr.Value) { a.values[p] = v }

func (a assignments) has(p pr.KnownProp) bool {
	_, in := a.values[p]
	return in
}

// finalize fills unassigned longhands with their initial values and
// returns the declarations in canonical longhand order.
func (a assignments) finalize() []Declaration {
	longhands := pr.Longhands[a.sh]
	out := make([]Declaration, len(longhands))
	for i, p := range longhands {
		value, in := a.values[p]
		if !in {
			value = pr.InitialValues[p]
		}
		out[i] = Declaration{Name: p.String(), Property: p, Value: value}
	}
	return out
}

// fourSidesIndices maps a declared value count to the source index of
// each side in (top, right, bottom, left) order.
var fourSidesIndices = [5][4]int{
	1: {0, 0, 0, 0},
	2: {0, 1, 0, 1},
	3: {0, 1, 2, 1},
	4: {0, 1, 2, 3},
}

// expandFourSides handles the positional box shorthands: one to four
// values distributed to (top, right, bottom, left), repeated slots
// sharing the same value instance.
func expandFourSides(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	longhands := pr.Longhands[sh]
	ts := parser.NewTokenStream(tokens)
	var values []pr.Value
	for len(values) < 4 {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		value, ok := parseValueFor(ts, longhands[0])
		if !ok {
			return nil, newSyntaxError(sh.String(), "invalid value %s", parser.Serialize(ts.Rest()))
		}
		values = append(values, value)
	}
	ts.DiscardWhitespace()
	if len(values) == 0 || ts.HasNext() {
		return nil, newSyntaxError(sh.String(), "expected 1 to 4 values, got %s", parser.Serialize(tokens))
	}
	indices := fourSidesIndices[len(values)]
	out := make([]Declaration, 4)
	for i, p := range longhands {
		out[i] = Declaration{Name: p.String(), Property: p, Value: values[indices[i]]}
	}
	return out, nil
}

// expandGeneric is the exhaustive fallback: each declared value is
// matched against the still-unassigned longhands, in registry order.
func expandGeneric(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	ts := parser.NewTokenStream(tokens)
	assigned, err := parseGeneric(ts, sh.String(), pr.Longhands[sh])
	if err != nil {
		return nil, err
	}
	out := newAssignments(sh)
	for p, v := range assigned {
		out.set(p, v)
	}
	return out.finalize(), nil
}

// parseGeneric consumes the whole stream against a shrinking
// candidate set. At least one value must be matched.
func parseGeneric(ts *parser.TokenStream, name string, candidates []pr.KnownProp) (map[pr.KnownProp]pr.Value, error) {
	remaining := append([]pr.KnownProp(nil), candidates...)
	assigned := make(map[pr.KnownProp]pr.Value)
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		hit, ok := parseValueForProperties(ts, remaining)
		if !ok {
			return nil, newSyntaxError(name, "unexpected %s", parser.Serialize(ts.Rest()))
		}
		assigned[hit.prop] = hit.value
		remaining = removeProp(remaining, hit.prop)
	}
	if len(assigned) == 0 {
		return nil, newSyntaxError(name, "empty value")
	}
	return assigned, nil
}

func removeProp(props []pr.KnownProp, p pr.KnownProp) []pr.KnownProp {
	out := props[:0]
	for _, candidate := range props {
		if candidate != p {
			out = append(out, candidate)
		}
	}
	return out
}

// expandPair handles two-longhand shorthands (overflow, gap,
// place-items): one value fills both slots with the same instance,
// two values fill them in order.
func expandPair(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	longhands := pr.Longhands[sh]
	ts := parser.NewTokenStream(tokens)
	first, ok := parseValueFor(ts, longhands[0])
	if !ok {
		return nil, newSyntaxError(sh.String(), "invalid value %s", parser.Serialize(tokens))
	}
	second, hasSecond := parseValueFor(ts, longhands[1])
	ts.DiscardWhitespace()
	if ts.HasNext() {
		return nil, newSyntaxError(sh.String(), "unexpected %s", parser.Serialize(ts.Rest()))
	}
	if !hasSecond {
		second = first
	}
	return []Declaration{
		{Name: longhands[0].String(), Property: longhands[0], Value: first},
		{Name: longhands[1].String(), Property: longhands[1], Value: second},
	}, nil
}

// ---------------------------- background ---------------------------

// layerCandidates are the longhands directly matchable inside one
// background layer. Size is only reachable through "/" after a
// position, and color is added for the final layer only.
var layerCandidates = []pr.KnownProp{
	pr.PBackgroundImage, pr.PBackgroundRepeat, pr.PBackgroundAttachment,
	pr.PBackgroundPosition, pr.PBackgroundOrigin, pr.PBackgroundClip,
}

// expandBackground parses comma-separated layers. Each layer matches
// sub-values in any order against a shrinking candidate set; a color
// is only legal in the final layer; "/ <size>" attaches to the
// preceding position; one box keyword sets both origin and clip.
func expandBackground(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	layers := parser.SplitOnComma(tokens)
	perLayer := make([]map[pr.KnownProp]pr.Value, len(layers))
	var color pr.Value
	for i, layer := range layers {
		final := i == len(layers)-1
		assigned, layerColor, err := parseBackgroundLayer(layer, final)
		if err != nil {
			return nil, err
		}
		perLayer[i] = assigned
		if layerColor != nil {
			color = layerColor
		}
	}

	out := newAssignments(sh)
	if color != nil {
		out.set(pr.PBackgroundColor, color)
	}
	layered := append(append([]pr.KnownProp(nil), layerCandidates...), pr.PBackgroundSize)
	for _, p := range layered {
		if len(layers) == 1 {
			if value, in := perLayer[0][p]; in {
				out.set(p, value)
			}
			continue
		}
		values := make([]pr.Value, len(layers))
		for i, assigned := range perLayer {
			value, in := assigned[p]
			if !in {
				value = pr.InitialValues[p]
			}
			values[i] = value
		}
		out.set(p, pr.NewCommaList(values...))
	}
	return out.finalize(), nil
}

func parseBackgroundLayer(tokens []parser.Token, final bool) (map[pr.KnownProp]pr.Value, pr.Value, error) {
	ts := parser.NewTokenStream(tokens)
	remaining := append([]pr.KnownProp(nil), layerCandidates...)
	if final {
		remaining = append(remaining, pr.PBackgroundColor)
	}
	assigned := make(map[pr.KnownProp]pr.Value)
	var color pr.Value
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		// repeat has its own two-axis grammar
		if !contains(assigned, pr.PBackgroundRepeat) {
			if repeat, ok := parseBackgroundRepeatValue(ts); ok {
				assigned[pr.PBackgroundRepeat] = repeat
				remaining = removeProp(remaining, pr.PBackgroundRepeat)
				continue
			}
		}
		hit, ok := parseValueForProperties(ts, remaining)
		if !ok {
			if !final && layerHasColor(ts) {
				return nil, nil, newSyntaxError("background", "color is only allowed in the final layer")
			}
			return nil, nil, newSyntaxError("background", "unexpected %s", parser.Serialize(ts.Rest()))
		}
		remaining = removeProp(remaining, hit.prop)
		if hit.prop == pr.PBackgroundColor {
			color = hit.value
			continue
		}
		assigned[hit.prop] = hit.value
		if hit.prop == pr.PBackgroundPosition {
			if size, ok, err := parseSlashSize(ts); err != nil {
				return nil, nil, err
			} else if ok {
				assigned[pr.PBackgroundSize] = size
			}
		}
	}
	if len(assigned) == 0 && color == nil {
		return nil, nil, newSyntaxError("background", "empty layer")
	}
	// one box keyword sets both origin and clip
	if origin, in := assigned[pr.PBackgroundOrigin]; in {
		if !contains(assigned, pr.PBackgroundClip) {
			assigned[pr.PBackgroundClip] = origin
		}
	}
	return assigned, color, nil
}

func contains(m map[pr.KnownProp]pr.Value, p pr.KnownProp) bool {
	_, in := m[p]
	return in
}

// layerHasColor reports whether the unconsumed tokens start with a
// color, used only for a sharper error message.
func layerHasColor(ts *parser.TokenStream) bool {
	_, ok := parseColorValue(ts)
	return ok
}

// parseSlashSize consumes "/ <size>" if present.
func parseSlashSize(ts *parser.TokenStream) (pr.Value, bool, error) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	ts.DiscardWhitespace()
	if !parser.IsLiteral(ts.Peek(), "/") {
		return nil, false, nil
	}
	ts.Next()
	size, ok := parseBackgroundSizeValue(ts)
	if !ok {
		return nil, false, newSyntaxError("background", "expected a size after /")
	}
	tx.Commit()
	return size, true, nil
}

var repeatSingle = utils.NewSet("repeat", "no-repeat", "space", "round")

// parseBackgroundRepeatValue consumes a <repeat-style> and normalizes
// it to a two-axis list.
func parseBackgroundRepeatValue(ts *parser.TokenStream) (pr.Value, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	first, ok := parseKeyword(ts)
	if !ok {
		return nil, false
	}
	switch first {
	case "repeat-x":
		tx.Commit()
		return pr.NewList(pr.Keyword("repeat"), pr.Keyword("no-repeat")), true
	case "repeat-y":
		tx.Commit()
		return pr.NewList(pr.Keyword("no-repeat"), pr.Keyword("repeat")), true
	}
	if !repeatSingle.Has(string(first)) {
		return nil, false
	}
	tx.Commit()
	second := first
	opt := ts.BeginTransaction()
	defer opt.Rollback()
	if kw, ok := parseKeyword(ts); ok && repeatSingle.Has(string(kw)) {
		second = kw
		opt.Commit()
	}
	return pr.NewList(first, second), true
}

// parseBackgroundSizeValue consumes a <bg-size>: cover, contain, or
// one or two of auto | <length-percentage>, always normalized to a
// two-value list (second value auto when omitted).
func parseBackgroundSizeValue(ts *parser.TokenStream) (pr.Value, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	if kw, ok := parseKeyword(ts); ok {
		switch kw {
		case "cover", "contain":
			tx.Commit()
			return kw, true
		case "auto":
		default:
			return nil, false
		}
		// auto falls through as a first component
		second, ok := parseSizeComponent(ts)
		if !ok {
			second = pr.Keyword("auto")
		}
		tx.Commit()
		return pr.NewList(pr.Keyword("auto"), second), true
	}
	first, ok := parseSizeComponent(ts)
	if !ok {
		return nil, false
	}
	second, ok := parseSizeComponent(ts)
	if !ok {
		second = pr.Keyword("auto")
	}
	tx.Commit()
	return pr.NewList(first, second), true
}

func parseSizeComponent(ts *parser.TokenStream) (pr.Value, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	if kw, ok := parseKeyword(ts); ok {
		if kw == "auto" {
			tx.Commit()
			return kw, true
		}
		return nil, false
	}
	if length, ok := parseLength(ts); ok && length.Value >= 0 {
		tx.Commit()
		return length, true
	}
	if perc, ok := parsePercentage(ts); ok && perc >= 0 {
		tx.Commit()
		return perc, true
	}
	return nil, false
}

// ------------------------------ flex -------------------------------

// expandFlex implements the flex shorthand: none keyword, or any
// order of up to two flex factors and one basis. Grow is tried before
// basis so a bare 0 is a factor, not a zero length.
func expandFlex(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	out := newAssignments(sh)
	stripped := parser.RemoveWhitespace(tokens)
	if len(stripped) == 1 {
		switch parser.LowerIdent(stripped[0]) {
		case "none":
			out.set(pr.PFlexGrow, pr.Number(0))
			out.set(pr.PFlexShrink, pr.Number(0))
			out.set(pr.PFlexBasis, pr.Keyword("auto"))
			return out.finalize(), nil
		}
	}

	ts := parser.NewTokenStream(tokens)
	assigned, err := parseGeneric(ts, sh.String(), []pr.KnownProp{
		pr.PFlexGrow, pr.PFlexShrink, pr.PFlexBasis,
	})
	if err != nil {
		return nil, err
	}
	// a shrink factor alone is not a valid flex value
	if _, in := assigned[pr.PFlexShrink]; in {
		if _, in := assigned[pr.PFlexGrow]; !in {
			return nil, newSyntaxError(sh.String(), "shrink factor without grow factor")
		}
	}
	for p, v := range assigned {
		out.set(p, v)
	}
	// the shorthand defaults differ from the longhand initials:
	// omitted factors are 1 and an omitted basis is 0%
	if !out.has(pr.PFlexGrow) {
		out.set(pr.PFlexGrow, pr.Number(1))
	}
	if !out.has(pr.PFlexShrink) {
		out.set(pr.PFlexShrink, pr.Number(1))
	}
	if !out.has(pr.PFlexBasis) {
		out.set(pr.PFlexBasis, pr.ZeroPercent)
	}
	return out.finalize(), nil
}

// ------------------------------ font -------------------------------

var systemFonts = utils.NewSet(
	"caption", "icon", "menu", "message-box", "small-caption", "status-bar",
)

// expandFont implements the font shorthand: optional style, variant,
// weight and stretch before the mandatory size, an optional
// /line-height, then the mandatory family list. System font keywords
// are reported and rejected.
func expandFont(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	stripped := parser.RemoveWhitespace(tokens)
	if len(stripped) == 1 && systemFonts.Has(parser.LowerIdent(stripped[0])) {
		Diagnostics.Printf("system font %s is not supported", parser.Serialize(stripped))
		return nil, newSyntaxError(sh.String(), "system fonts are not supported")
	}

	out := newAssignments(sh)
	ts := parser.NewTokenStream(tokens)
	remaining := []pr.KnownProp{pr.PFontStyle, pr.PFontVariant, pr.PFontWeight, pr.PFontStretch}
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			return nil, newSyntaxError(sh.String(), "missing font size")
		}
		if size, ok := parseValueFor(ts, pr.PFontSize); ok {
			out.set(pr.PFontSize, size)
			break
		}
		hit, ok := parseValueForProperties(ts, remaining)
		if !ok {
			return nil, newSyntaxError(sh.String(), "unexpected %s", parser.Serialize(ts.Rest()))
		}
		out.set(hit.prop, hit.value)
		remaining = removeProp(remaining, hit.prop)
	}

	ts.DiscardWhitespace()
	if parser.IsLiteral(ts.Peek(), "/") {
		ts.Next()
		height, ok := parseValueFor(ts, pr.PLineHeight)
		if !ok {
			return nil, newSyntaxError(sh.String(), "expected a line height after /")
		}
		out.set(pr.PLineHeight, height)
	}

	ts.DiscardWhitespace()
	family, err := parseFontFamilyValue(ts.Rest())
	if err != nil {
		return nil, err
	}
	out.set(pr.PFontFamily, family)
	return out.finalize(), nil
}

// ----------------------------- borders -----------------------------

// expandBorder parses width/style/color once and replicates the
// values on all four sides (shared instances).
func expandBorder(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	ts := parser.NewTokenStream(tokens)
	assigned, err := parseGeneric(ts, sh.String(), []pr.KnownProp{
		pr.PBorderTopWidth, pr.PBorderTopStyle, pr.PBorderTopColor,
	})
	if err != nil {
		return nil, err
	}
	out := newAssignments(sh)
	for _, side := range []pr.Shorthand{
		pr.SBorderTop, pr.SBorderRight, pr.SBorderBottom, pr.SBorderLeft,
	} {
		longhands := pr.Longhands[side]
		if width, in := assigned[pr.PBorderTopWidth]; in {
			out.set(longhands[0], width)
		}
		if style, in := assigned[pr.PBorderTopStyle]; in {
			out.set(longhands[1], style)
		}
		if color, in := assigned[pr.PBorderTopColor]; in {
			out.set(longhands[2], color)
		}
	}
	return out.finalize(), nil
}

// expandBorderSide handles border-top/right/bottom/left.
func expandBorderSide(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	return expandGeneric(sh, tokens)
}

// expandBorderRadius implements the slash grammar: horizontal radii,
// then optional "/" and vertical radii, each side positionally
// expanded to the four corners.
func expandBorderRadius(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	var horizontal, vertical []parser.Token
	target := &horizontal
	for _, token := range tokens {
		if parser.IsLiteral(token, "/") {
			if target == &vertical {
				return nil, newSyntaxError(sh.String(), "expected a single /")
			}
			target = &vertical
		} else {
			*target = append(*target, token)
		}
	}
	hValues, err := parseRadii(sh, horizontal)
	if err != nil {
		return nil, err
	}
	longhands := pr.Longhands[sh]
	out := make([]Declaration, 4)
	if target == &vertical {
		vValues, err := parseRadii(sh, vertical)
		if err != nil {
			return nil, err
		}
		for i, p := range longhands {
			out[i] = Declaration{
				Name: p.String(), Property: p,
				Value: pr.NewList(hValues[i], vValues[i]),
			}
		}
	} else {
		for i, p := range longhands {
			out[i] = Declaration{Name: p.String(), Property: p, Value: hValues[i]}
		}
	}
	return out, nil
}

// parseRadii expands 1 to 4 radius values positionally, to
// (top-left, top-right, bottom-right, bottom-left).
func parseRadii(sh pr.Shorthand, tokens []parser.Token) ([4]pr.Value, error) {
	ts := parser.NewTokenStream(tokens)
	var values []pr.Value
	for len(values) < 4 {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		var value pr.Value
		if length, ok := parseLength(ts); ok && length.Value >= 0 {
			value = length
		} else if perc, ok := parsePercentage(ts); ok && perc >= 0 {
			value = perc
		} else {
			return [4]pr.Value{}, newSyntaxError(sh.String(), "invalid radius %s", parser.Serialize(ts.Rest()))
		}
		values = append(values, value)
	}
	ts.DiscardWhitespace()
	if len(values) == 0 || ts.HasNext() {
		return [4]pr.Value{}, newSyntaxError(sh.String(), "expected 1 to 4 radii")
	}
	indices := fourSidesIndices[len(values)]
	var out [4]pr.Value
	for i := range out {
		out[i] = values[indices[i]]
	}
	return out, nil
}

// -------------------------- text-decoration ------------------------

var decorationLines = utils.NewSet("underline", "overline", "line-through", "blink")

// expandTextDecoration allows several line keywords plus at most one
// style, color and thickness, in any order.
func expandTextDecoration(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	out := newAssignments(sh)
	ts := parser.NewTokenStream(tokens)
	remaining := []pr.KnownProp{
		pr.PTextDecorationStyle, pr.PTextDecorationColor, pr.PTextDecorationThickness,
	}
	var lines []pr.Value
	sawNone := false
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		if kw, ok := peekKeyword(ts); ok && (decorationLines.Has(kw) || kw == "none") {
			parseKeyword(ts)
			if kw == "none" {
				if sawNone || len(lines) > 0 {
					return nil, newSyntaxError(sh.String(), "none excludes other line keywords")
				}
				sawNone = true
			} else {
				if sawNone || hasValue(lines, pr.Keyword(kw)) {
					return nil, newSyntaxError(sh.String(), "duplicate line keyword %s", kw)
				}
				lines = append(lines, pr.Keyword(kw))
			}
			continue
		}
		hit, ok := parseValueForProperties(ts, remaining)
		if !ok {
			return nil, newSyntaxError(sh.String(), "unexpected %s", parser.Serialize(ts.Rest()))
		}
		out.set(hit.prop, hit.value)
		remaining = removeProp(remaining, hit.prop)
	}
	switch {
	case sawNone:
		out.set(pr.PTextDecorationLine, pr.Keyword("none"))
	case len(lines) == 1:
		out.set(pr.PTextDecorationLine, lines[0])
	case len(lines) > 1:
		out.set(pr.PTextDecorationLine, pr.NewList(lines...))
	}
	if len(out.values) == 0 {
		return nil, newSyntaxError(sh.String(), "empty value")
	}
	return out.finalize(), nil
}

func peekKeyword(ts *parser.TokenStream) (string, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	kw, ok := parseKeyword(ts)
	return string(kw), ok
}

func hasValue(values []pr.Value, v pr.Value) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
