package validation

import (
	"sort"

	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

// A longhandParser parses the full value of one longhand whose
// grammar the generic single/list path cannot express. It must
// consume every token or fail.
type longhandParser func(p pr.KnownProp, tokens []parser.Token) (pr.Value, error)

var bespokeLonghands = map[pr.KnownProp]longhandParser{
	pr.PAspectRatio:           parseAspectRatioValue,
	pr.PFontFeatureSettings:   parseFontSettings,
	pr.PFontVariationSettings: parseFontSettings,
	pr.PFontFamily:            parseFontFamily,
	pr.PBackgroundRepeat:      parseBackgroundRepeat,
	pr.PBackgroundSize:        parseBackgroundSize,
	pr.PBackgroundPosition:    parseLayeredPosition,
	pr.PQuotes:                parseQuotes,
	pr.PTransitionDuration:    parseTimeList,
	pr.PTransitionDelay:       parseTimeList,
	pr.PGridTemplateColumns:   parseTrackList,
	pr.PGridTemplateRows:      parseTrackList,
	pr.PTextDecorationLine:    parseDecorationLine,
}

// parseAspectRatioValue implements `auto || <ratio>`: either
// component alone, or both in either order (normalized auto first).
func parseAspectRatioValue(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	ts := parser.NewTokenStream(tokens)
	var (
		auto  bool
		ratio *pr.Ratio
	)
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		if kw, ok := peekKeyword(ts); ok && kw == "auto" && !auto {
			parseKeyword(ts)
			auto = true
			continue
		}
		if ratio == nil {
			if r, ok := parseRatio(ts); ok {
				ratio = &r
				continue
			}
		}
		return nil, newSyntaxError(p.String(), "unexpected %s", parser.Serialize(ts.Rest()))
	}
	switch {
	case auto && ratio != nil:
		return pr.NewList(pr.Keyword("auto"), *ratio), nil
	case auto:
		return pr.Keyword("auto"), nil
	case ratio != nil:
		return *ratio, nil
	}
	return nil, newSyntaxError(p.String(), "empty value")
}

// parseFontSettings implements font-feature-settings and
// font-variation-settings: normal, or a comma list of tag/value
// pairs. Duplicate tags keep the last occurrence; the result is
// sorted by tag.
func parseFontSettings(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	stripped := parser.RemoveWhitespace(tokens)
	if len(stripped) == 1 && parser.LowerIdent(stripped[0]) == "normal" {
		return pr.Keyword("normal"), nil
	}
	byTag := map[string]pr.OpenTypeTag{}
	for _, chunk := range parser.SplitOnComma(tokens) {
		ts := parser.NewTokenStream(chunk)
		tag, ok := parseOpenTypeTag(ts)
		if !ok {
			return nil, newSyntaxError(p.String(), "invalid setting %s", parser.Serialize(chunk))
		}
		ts.DiscardWhitespace()
		if ts.HasNext() {
			return nil, newSyntaxError(p.String(), "unexpected %s", parser.Serialize(ts.Rest()))
		}
		byTag[tag.Tag] = tag
	}
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	values := make([]pr.Value, len(tags))
	for i, tag := range tags {
		values[i] = byTag[tag]
	}
	return pr.NewCommaList(values...), nil
}

var genericFamilies = utils.NewSet(
	"serif", "sans-serif", "monospace", "cursive", "fantasy",
	"system-ui", "ui-serif", "ui-sans-serif", "ui-monospace",
)

func parseFontFamily(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	return parseFontFamilyValue(tokens)
}

// parseFontFamilyValue parses a comma list of family names: a string,
// a generic family keyword, or a sequence of identifiers joined with
// single spaces.
func parseFontFamilyValue(tokens []parser.Token) (pr.Value, error) {
	var families []pr.Value
	for _, chunk := range parser.SplitOnComma(tokens) {
		chunk = parser.RemoveWhitespace(chunk)
		if len(chunk) == 0 {
			return nil, newSyntaxError("font-family", "empty family name")
		}
		if str, ok := chunk[0].(parser.String); ok {
			if len(chunk) > 1 {
				return nil, newSyntaxError("font-family", "unexpected %s", parser.Serialize(chunk[1:]))
			}
			families = append(families, pr.String(str.Value))
			continue
		}
		if len(chunk) == 1 {
			if name := parser.LowerIdent(chunk[0]); genericFamilies.Has(name) {
				families = append(families, pr.Keyword(name))
				continue
			}
		}
		name := ""
		for i, token := range chunk {
			ident, ok := token.(parser.Ident)
			if !ok {
				return nil, newSyntaxError("font-family", "invalid family name %s", parser.Serialize(chunk))
			}
			if i > 0 {
				name += " "
			}
			name += ident.Value
		}
		families = append(families, pr.String(name))
	}
	return pr.NewCommaList(families...), nil
}

// parseBackgroundRepeat accepts one <repeat-style> per layer.
func parseBackgroundRepeat(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	return parseLayered(p, tokens, func(ts *parser.TokenStream) (pr.Value, bool) {
		return parseBackgroundRepeatValue(ts)
	})
}

func parseBackgroundSize(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	return parseLayered(p, tokens, parseBackgroundSizeValue)
}

func parseLayeredPosition(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	return parseLayered(p, tokens, func(ts *parser.TokenStream) (pr.Value, bool) {
		pos, ok := parsePosition(ts)
		return pos, ok
	})
}

// parseLayered parses a comma list with one item per layer. A single
// layer yields the item value itself.
func parseLayered(p pr.KnownProp, tokens []parser.Token, item func(*parser.TokenStream) (pr.Value, bool)) (pr.Value, error) {
	var values []pr.Value
	for _, chunk := range parser.SplitOnComma(tokens) {
		ts := parser.NewTokenStream(chunk)
		value, ok := item(ts)
		if !ok {
			return nil, newSyntaxError(p.String(), "invalid value %s", parser.Serialize(chunk))
		}
		ts.DiscardWhitespace()
		if ts.HasNext() {
			return nil, newSyntaxError(p.String(), "unexpected %s", parser.Serialize(ts.Rest()))
		}
		values = append(values, value)
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return pr.NewCommaList(values...), nil
}

// parseQuotes accepts auto, none, or one or more pairs of strings.
func parseQuotes(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	stripped := parser.RemoveWhitespace(tokens)
	if len(stripped) == 1 {
		switch parser.LowerIdent(stripped[0]) {
		case "auto", "none":
			return pr.Keyword(parser.LowerIdent(stripped[0])), nil
		}
	}
	if len(stripped) == 0 || len(stripped)%2 != 0 {
		return nil, newSyntaxError(p.String(), "expected pairs of strings")
	}
	values := make([]pr.Value, len(stripped))
	for i, token := range stripped {
		str, ok := token.(parser.String)
		if !ok {
			return nil, newSyntaxError(p.String(), "expected a string, got %s", token.Kind())
		}
		values[i] = pr.String(str.Value)
	}
	return pr.NewList(values...), nil
}

// parseTimeList accepts a comma list of times; negative values are
// rejected for durations through the registry.
func parseTimeList(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	return parseLayered(p, tokens, func(ts *parser.TokenStream) (pr.Value, bool) {
		time, ok := parseTime(ts)
		if !ok || !nonNegative(p, Fl(time)) {
			return nil, false
		}
		return time, true
	})
}

// parseTrackList accepts none or a space list of track sizes.
func parseTrackList(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	stripped := parser.RemoveWhitespace(tokens)
	if len(stripped) == 1 && parser.LowerIdent(stripped[0]) == "none" {
		return pr.Keyword("none"), nil
	}
	ts := parser.NewTokenStream(tokens)
	var values []pr.Value
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		value, ok := parseValueFor(ts, p)
		if !ok {
			return nil, newSyntaxError(p.String(), "invalid track size %s", parser.Serialize(ts.Rest()))
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, newSyntaxError(p.String(), "empty value")
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return pr.NewList(values...), nil
}

// parseDecorationLine accepts none or a combination of distinct line
// keywords.
func parseDecorationLine(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	ts := parser.NewTokenStream(tokens)
	var lines []pr.Value
	for {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		kw, ok := parseKeyword(ts)
		if !ok {
			return nil, newSyntaxError(p.String(), "unexpected %s", parser.Serialize(ts.Rest()))
		}
		if kw == "none" {
			if len(lines) > 0 || func() bool { ts.DiscardWhitespace(); return ts.HasNext() }() {
				return nil, newSyntaxError(p.String(), "none excludes other line keywords")
			}
			return pr.Keyword("none"), nil
		}
		if !decorationLines.Has(string(kw)) || hasValue(lines, kw) {
			return nil, newSyntaxError(p.String(), "invalid line keyword %s", kw)
		}
		lines = append(lines, kw)
	}
	switch len(lines) {
	case 0:
		return nil, newSyntaxError(p.String(), "empty value")
	case 1:
		return lines[0], nil
	}
	return pr.NewList(lines...), nil
}
