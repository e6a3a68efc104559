package validation

import (
	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
)

// propertyAndValue is one dispatch hit: the candidate longhand the
// value was matched to, and the parsed value.
type propertyAndValue struct {
	prop  pr.KnownProp
	value pr.Value
}

// anyNumeric is the mask of categories a math function can stand for.
const anyNumeric = pr.TInteger | pr.TNumber | pr.TAngle | pr.TFlex |
	pr.TFrequency | pr.TLength | pr.TResolution | pr.TTime | pr.TPercentage

func firstAccepting(props []pr.KnownProp, types pr.ValueType) (pr.KnownProp, bool) {
	for _, p := range props {
		if pr.Accepts(p, types) {
			return p, true
		}
	}
	return 0, false
}

// parseValueForProperties parses one value from the stream against a
// set of candidate longhands, trying value categories in a fixed
// priority order. The first category that parses AND whose value
// passes some candidate's registry acceptance wins; that candidate is
// returned with the value. Nothing is consumed on failure.
func parseValueForProperties(ts *parser.TokenStream, props []pr.KnownProp) (propertyAndValue, bool) {
	// keywords bind tighter than any typed category
	if kw, ok := parseKeywordFor(ts, props); ok {
		return kw, true
	}

	// a math function stands for whichever numeric category a
	// candidate accepts; its range is checked at resolution time
	if isMathFunction(ts) {
		if p, ok := firstAccepting(props, anyNumeric); ok {
			calc, _ := parseCalc(ts)
			return propertyAndValue{p, calc}, true
		}
	}

	if p, ok := firstAccepting(props, pr.TCustomIdent); ok {
		if ident, okV := parseCustomIdent(ts); okV {
			return propertyAndValue{p, ident}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TColor); ok {
		if color, okV := parseColorValue(ts); okV {
			return propertyAndValue{p, color}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TImage); ok {
		if image, okV := parseImage(ts); okV {
			return propertyAndValue{p, image}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TPosition); ok {
		if pos, okV := parsePosition(ts); okV {
			return propertyAndValue{p, pos}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TRatio); ok {
		if ratio, okV := parseRatio(ts); okV {
			return propertyAndValue{p, ratio}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TOpenTypeTag); ok {
		if tag, okV := parseOpenTypeTag(ts); okV {
			return propertyAndValue{p, tag}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TString); ok {
		if str, okV := parseString(ts); okV {
			return propertyAndValue{p, str}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TUrl); ok {
		if url, okV := parseURL(ts); okV {
			return propertyAndValue{p, pr.String(url)}, true
		}
	}
	// range-checked categories roll back a parsed-but-rejected value
	attempt := func(p pr.KnownProp, parse func() (pr.Value, bool)) (propertyAndValue, bool) {
		tx := ts.BeginTransaction()
		if value, ok := parse(); ok {
			tx.Commit()
			return propertyAndValue{p, value}, true
		}
		tx.Rollback()
		return propertyAndValue{}, false
	}
	if p, ok := firstAccepting(props, pr.TInteger); ok {
		if hit, ok := attempt(p, func() (pr.Value, bool) {
			n, okV := parseInteger(ts)
			return n, okV && nonNegative(p, Fl(n))
		}); ok {
			return hit, true
		}
	}
	if p, ok := firstAccepting(props, pr.TNumber); ok {
		if hit, ok := attempt(p, func() (pr.Value, bool) {
			n, okV := parseNumber(ts)
			return n, okV && nonNegative(p, Fl(n))
		}); ok {
			return hit, true
		}
	}
	if p, ok := firstAccepting(props, pr.TAngle); ok {
		if angle, okV := parseAngle(ts); okV {
			return propertyAndValue{p, angle}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TFlex); ok {
		if flex, okV := parseFlex(ts); okV {
			return propertyAndValue{p, flex}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TFrequency); ok {
		if freq, okV := parseFrequency(ts); okV {
			return propertyAndValue{p, freq}, true
		}
	}
	if p, ok := firstAccepting(props, pr.TLength); ok {
		if hit, ok := attempt(p, func() (pr.Value, bool) {
			length, okV := parseLength(ts)
			return length, okV && nonNegative(p, length.Value)
		}); ok {
			return hit, true
		}
	}
	if p, ok := firstAccepting(props, pr.TResolution); ok {
		if hit, ok := attempt(p, func() (pr.Value, bool) {
			res, okV := parseResolution(ts)
			return res, okV && nonNegative(p, Fl(res))
		}); ok {
			return hit, true
		}
	}
	if p, ok := firstAccepting(props, pr.TTime); ok {
		if hit, ok := attempt(p, func() (pr.Value, bool) {
			time, okV := parseTime(ts)
			return time, okV && nonNegative(p, Fl(time))
		}); ok {
			return hit, true
		}
	}
	if p, ok := firstAccepting(props, pr.TPercentage); ok {
		if hit, ok := attempt(p, func() (pr.Value, bool) {
			perc, okV := parsePercentage(ts)
			return perc, okV && nonNegative(p, Fl(perc))
		}); ok {
			return hit, true
		}
	}
	return propertyAndValue{}, false
}

func parseKeywordFor(ts *parser.TokenStream, props []pr.KnownProp) (propertyAndValue, bool) {
	tx := ts.BeginTransaction()
	defer tx.Rollback()
	keyword, ok := parseKeyword(ts)
	if !ok {
		return propertyAndValue{}, false
	}
	for _, p := range props {
		if pr.AcceptsKeyword(p, string(keyword)) {
			tx.Commit()
			return propertyAndValue{p, keyword}, true
		}
	}
	return propertyAndValue{}, false
}

// parseValueFor parses one value for a single longhand.
func parseValueFor(ts *parser.TokenStream, p pr.KnownProp) (pr.Value, bool) {
	out, ok := parseValueForProperties(ts, []pr.KnownProp{p})
	if !ok {
		return nil, false
	}
	return out.value, true
}
