package parser

import (
	"fmt"
	"strconv"

	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

// A Token is one component value: a preserved token or a
// function/block grouping with its own nested component values.
// Tokens are immutable once produced by the tokenizer.
type Token interface {
	Kind() Kind
	Pos() Pos
}

type Kind uint8

const (
	KWhitespace Kind = iota
	KComment
	KIdent
	KAtKeyword
	KHash
	KString
	KURL
	KNumber
	KPercentage
	KDimension
	KLiteral
	KFunctionBlock
	KParenthesesBlock
	KSquareBracketsBlock
	KCurlyBracketsBlock
	KParseError
)

func (k Kind) String() string {
	switch k {
	case KWhitespace:
		return "whitespace"
	case KComment:
		return "comment"
	case KIdent:
		return "ident"
	case KAtKeyword:
		return "at-keyword"
	case KHash:
		return "hash"
	case KString:
		return "string"
	case KURL:
		return "url"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KLiteral:
		return "literal"
	case KFunctionBlock:
		return "function"
	case KParenthesesBlock:
		return "() block"
	case KSquareBracketsBlock:
		return "[] block"
	case KCurlyBracketsBlock:
		return "{} block"
	case KParseError:
		return "error"
	default:
		return "<invalid kind>"
	}
}

// Pos is a position in the tokenized source, used in diagnostics.
type Pos struct {
	Line, Column uint32
}

func newPosition(line, column int) Pos {
	return Pos{Line: uint32(line), Column: uint32(column)}
}

type Whitespace struct {
	pos   Pos
	Value string
}

type Comment struct {
	pos   Pos
	Value string
}

type Ident struct {
	pos   Pos
	Value string
}

type AtKeyword struct {
	pos   Pos
	Value string
}

type Hash struct {
	pos          Pos
	Value        string
	IsIdentifier bool
}

type String struct {
	pos   Pos
	Value string
}

type URL struct {
	pos   Pos
	Value string
}

// NumericToken is the common part of number, percentage and
// dimension tokens.
type NumericToken struct {
	pos            Pos
	Representation string
	IsInteger      bool
	Value          utils.Fl
}

type (
	Number     NumericToken
	Percentage NumericToken
)

type Dimension struct {
	NumericToken
	Unit string
}

// Literal is a delimiter token: ",", "/", ":", "!", etc.
type Literal struct {
	pos   Pos
	Value string
}

type FunctionBlock struct {
	pos       Pos
	Name      string
	Arguments *[]Token
}

type ParenthesesBlock struct {
	pos     Pos
	Content *[]Token
}

type SquareBracketsBlock struct {
	pos     Pos
	Content *[]Token
}

type CurlyBracketsBlock struct {
	pos     Pos
	Content *[]Token
}

type ParseError struct {
	pos     Pos
	What    string
	Message string
}

func (t Whitespace) Kind() Kind          { return KWhitespace }
func (t Comment) Kind() Kind             { return KComment }
func (t Ident) Kind() Kind               { return KIdent }
func (t AtKeyword) Kind() Kind           { return KAtKeyword }
func (t Hash) Kind() Kind                { return KHash }
func (t String) Kind() Kind              { return KString }
func (t URL) Kind() Kind                 { return KURL }
func (t Number) Kind() Kind              { return KNumber }
func (t Percentage) Kind() Kind          { return KPercentage }
func (t Dimension) Kind() Kind           { return KDimension }
func (t Literal) Kind() Kind             { return KLiteral }
func (t FunctionBlock) Kind() Kind       { return KFunctionBlock }
func (t ParenthesesBlock) Kind() Kind    { return KParenthesesBlock }
func (t SquareBracketsBlock) Kind() Kind { return KSquareBracketsBlock }
func (t CurlyBracketsBlock) Kind() Kind  { return KCurlyBracketsBlock }
func (t ParseError) Kind() Kind          { return KParseError }

func (t Whitespace) Pos() Pos          { return t.pos }
func (t Comment) Pos() Pos             { return t.pos }
func (t Ident) Pos() Pos               { return t.pos }
func (t AtKeyword) Pos() Pos           { return t.pos }
func (t Hash) Pos() Pos                { return t.pos }
func (t String) Pos() Pos              { return t.pos }
func (t URL) Pos() Pos                 { return t.pos }
func (t Number) Pos() Pos              { return t.pos }
func (t Percentage) Pos() Pos          { return t.pos }
func (t Dimension) Pos() Pos           { return t.pos }
func (t Literal) Pos() Pos             { return t.pos }
func (t FunctionBlock) Pos() Pos       { return t.pos }
func (t ParenthesesBlock) Pos() Pos    { return t.pos }
func (t SquareBracketsBlock) Pos() Pos { return t.pos }
func (t CurlyBracketsBlock) Pos() Pos  { return t.pos }
func (t ParseError) Pos() Pos          { return t.pos }

// IsInt returns true for numbers written without a fractional part
// or exponent.
func (t Number) IsInt() bool { return t.IsInteger }

// Int returns the value truncated to an integer.
func (t Number) Int() int { return int(t.Value) }

// NewIdent builds an identifier token, used by expanders to inject
// synthesized keywords.
func NewIdent(value string, pos Pos) Ident { return Ident{pos: pos, Value: value} }

func NewLiteral(value string, pos Pos) Literal { return Literal{pos: pos, Value: value} }

func NewWhitespace(value string, pos Pos) Whitespace { return Whitespace{pos: pos, Value: value} }

func NewString(value string, pos Pos) String { return String{pos: pos, Value: value} }

func NewNumber(value utils.Fl, pos Pos) Number {
	isInt := value == utils.Fl(int(value))
	return Number{
		pos:            pos,
		Representation: strconv.FormatFloat(float64(value), 'g', -1, 64),
		IsInteger:      isInt,
		Value:          value,
	}
}

func NewPercentage(value utils.Fl, pos Pos) Percentage {
	return Percentage(NewNumber(value, pos))
}

func NewDimension(n Number, unit string) Dimension {
	return Dimension{NumericToken: NumericToken(n), Unit: unit}
}

func NewFunctionBlock(pos Pos, name string, arguments []Token) FunctionBlock {
	return FunctionBlock{pos: pos, Name: name, Arguments: &arguments}
}

// IsLiteral returns true if token is a literal with the given value.
func IsLiteral(token Token, value string) bool {
	lit, ok := token.(Literal)
	return ok && lit.Value == value
}

// IsIdent returns true if token is an identifier matching value,
// ASCII case-insensitively.
func IsIdent(token Token, value string) bool {
	ident, ok := token.(Ident)
	return ok && utils.AsciiLower(ident.Value) == value
}

// RemoveWhitespace returns a new slice without whitespace or comment
// tokens (at the top level only, nested blocks are left untouched).
func RemoveWhitespace(tokens []Token) []Token {
	var out []Token
	for _, token := range tokens {
		if token.Kind() != KWhitespace && token.Kind() != KComment {
			out = append(out, token)
		}
	}
	return out
}

// SplitOnComma splits tokens on top-level commas. The sub-lists still
// contain whitespace; an empty input yields one empty sub-list.
func SplitOnComma(tokens []Token) [][]Token {
	out := [][]Token{nil}
	for _, token := range tokens {
		if IsLiteral(token, ",") {
			out = append(out, nil)
		} else {
			out[len(out)-1] = append(out[len(out)-1], token)
		}
	}
	return out
}

func (t ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", t.pos.Line, t.pos.Column, t.Message)
}

// FunctionContainsSubstitution reports whether the function (or any
// block nested in it) is, or contains, an arbitrary-substitution
// marker: var(), attr() or env().
func FunctionContainsSubstitution(fn FunctionBlock) bool {
	switch utils.AsciiLower(fn.Name) {
	case "var", "attr", "env":
		return true
	}
	return ContainsSubstitution(*fn.Arguments)
}

// ContainsSubstitution reports whether any token of the list, at any
// nesting depth, is a substitution function.
func ContainsSubstitution(tokens []Token) bool {
	for _, token := range tokens {
		switch token := token.(type) {
		case FunctionBlock:
			if FunctionContainsSubstitution(token) {
				return true
			}
		case ParenthesesBlock:
			if ContainsSubstitution(*token.Content) {
				return true
			}
		case SquareBracketsBlock:
			if ContainsSubstitution(*token.Content) {
				return true
			}
		case CurlyBracketsBlock:
			if ContainsSubstitution(*token.Content) {
				return true
			}
		}
	}
	return false
}

// LowerIdent returns the ASCII-lowercased name of an identifier
// token, or "" for any other token.
func LowerIdent(token Token) string {
	if ident, ok := token.(Ident); ok {
		return utils.AsciiLower(ident.Value)
	}
	return ""
}
