package validation

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/LadybirdBrowser/ladybird-sub002/css/parser"
	pr "github.com/LadybirdBrowser/ladybird-sub002/css/properties"
	"github.com/LadybirdBrowser/ladybird-sub002/logger"
	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

// ErrInvalidValue is the sentinel wrapped by every SyntaxError.
var ErrInvalidValue = errors.New("invalid property value")

// SyntaxError is the only externally visible parse failure: the
// declaration does not conform and should be dropped by the caller.
type SyntaxError struct {
	Property string
	Message  string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Property, e.Message)
}

func (e SyntaxError) Unwrap() error { return ErrInvalidValue }

func newSyntaxError(property, format string, args ...interface{}) SyntaxError {
	return SyntaxError{Property: property, Message: fmt.Sprintf(format, args...)}
}

// Diagnostics receives non-fatal notices (unsupported constructs,
// dropped declarations). Replacing it never changes parse results.
var Diagnostics *log.Logger = logger.WarningLogger

// Declaration is one longhand assignment produced by a parse: a
// longhand declaration yields one, a shorthand as many as it has
// longhands. Custom properties yield one with a zero Property.
type Declaration struct {
	Name     string
	Property pr.KnownProp
	Value    pr.Value
}

// ParseDeclaration validates one declaration: the property name and
// its tokenized value. Shorthands are expanded to their longhands;
// values containing var(), attr() or env() are kept unresolved as
// RawTokens for later substitution.
func ParseDeclaration(name string, tokens []parser.Token) ([]Declaration, error) {
	name = utils.AsciiLower(strings.TrimSpace(name))
	tokens = parser.RemoveWhitespace(tokens)

	if strings.HasPrefix(name, "--") {
		return []Declaration{{Name: name, Value: pr.RawTokens(tokens)}}, nil
	}
	if strings.HasPrefix(name, "-") {
		Diagnostics.Printf("prefixed property %s is not supported", name)
		return nil, newSyntaxError(name, "unsupported prefixed property")
	}
	if len(tokens) == 0 {
		return nil, newSyntaxError(name, "empty value")
	}

	if sh, in := pr.ShorthandFromName[name]; in {
		if kw, ok := wideKeyword(tokens); ok {
			return assignAll(sh, kw), nil
		}
		if parser.ContainsSubstitution(tokens) {
			return assignAll(sh, pr.RawTokens(tokens)), nil
		}
		exp := expanders[sh]
		if exp == nil {
			exp = expandGeneric
		}
		return exp(sh, tokens)
	}

	if p, in := pr.PropertyFromName[name]; in {
		if kw, ok := wideKeyword(tokens); ok {
			return []Declaration{{Name: name, Property: p, Value: kw}}, nil
		}
		if parser.ContainsSubstitution(tokens) {
			return []Declaration{{Name: name, Property: p, Value: pr.RawTokens(tokens)}}, nil
		}
		value, err := ParseValue(p, tokens)
		if err != nil {
			return nil, err
		}
		return []Declaration{{Name: name, Property: p, Value: value}}, nil
	}

	Diagnostics.Printf("unknown property %s", name)
	return nil, newSyntaxError(name, "unknown property")
}

// ParseValue validates the value of one longhand. The whole token
// sequence must be consumed.
func ParseValue(p pr.KnownProp, tokens []parser.Token) (pr.Value, error) {
	if bespoke := bespokeLonghands[p]; bespoke != nil {
		return bespoke(p, tokens)
	}
	ts := parser.NewTokenStream(tokens)
	max := pr.MaxValueCount(p)
	var values []pr.Value
	for len(values) < max {
		ts.DiscardWhitespace()
		if !ts.HasNext() {
			break
		}
		value, ok := parseValueFor(ts, p)
		if !ok {
			break
		}
		values = append(values, value)
	}
	ts.DiscardWhitespace()
	if len(values) == 0 || ts.HasNext() {
		if ts.HasNext() && hasPrefix(ts.Peek()) {
			Diagnostics.Printf("%s: prefixed value %s is not supported", p, parser.Serialize(ts.Rest()))
		}
		return nil, newSyntaxError(p.String(), "invalid value %s", parser.Serialize(tokens))
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return pr.NewList(values...), nil
}

// Expand validates and expands one shorthand value.
func Expand(sh pr.Shorthand, tokens []parser.Token) ([]Declaration, error) {
	exp := expanders[sh]
	if exp == nil {
		exp = expandGeneric
	}
	return exp(sh, parser.RemoveWhitespace(tokens))
}

func wideKeyword(tokens []parser.Token) (pr.Keyword, bool) {
	if len(tokens) == 1 {
		if kw := parser.LowerIdent(tokens[0]); wideKeywords.Has(kw) {
			return pr.Keyword(kw), true
		}
	}
	return "", false
}

// assignAll gives the same value to every longhand of the shorthand.
func assignAll(sh pr.Shorthand, value pr.Value) []Declaration {
	longhands := pr.Longhands[sh]
	out := make([]Declaration, len(longhands))
	for i, p := range longhands {
		out[i] = Declaration{Name: p.String(), Property: p, Value: value}
	}
	return out
}

// ParseDeclarationString parses "name: value".
func ParseDeclarationString(decl string) ([]Declaration, error) {
	name, value, found := strings.Cut(decl, ":")
	if !found {
		return nil, newSyntaxError(strings.TrimSpace(decl), "expected name: value")
	}
	return ParseDeclaration(name, parser.TokenizeString(value))
}
