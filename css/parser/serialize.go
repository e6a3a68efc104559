package parser

import (
	"strings"
)

// Serialize returns a CSS text form of the tokens, used in
// diagnostics. It is not guaranteed to round-trip escapes exactly.
func Serialize(tokens []Token) string {
	var sb strings.Builder
	serializeTo(tokens, &sb)
	return sb.String()
}

func serializeTo(tokens []Token, sb *strings.Builder) {
	for _, token := range tokens {
		switch token := token.(type) {
		case Whitespace:
			sb.WriteString(token.Value)
		case Comment:
			sb.WriteString("/*")
			sb.WriteString(token.Value)
			sb.WriteString("*/")
		case Ident:
			sb.WriteString(token.Value)
		case AtKeyword:
			sb.WriteByte('@')
			sb.WriteString(token.Value)
		case Hash:
			sb.WriteByte('#')
			sb.WriteString(token.Value)
		case String:
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(token.Value, `"`, `\"`))
			sb.WriteByte('"')
		case URL:
			sb.WriteString(`url("`)
			sb.WriteString(token.Value)
			sb.WriteString(`")`)
		case Number:
			sb.WriteString(token.Representation)
		case Percentage:
			sb.WriteString(token.Representation)
			sb.WriteByte('%')
		case Dimension:
			sb.WriteString(token.Representation)
			sb.WriteString(token.Unit)
		case Literal:
			sb.WriteString(token.Value)
		case FunctionBlock:
			sb.WriteString(token.Name)
			sb.WriteByte('(')
			serializeTo(*token.Arguments, sb)
			sb.WriteByte(')')
		case ParenthesesBlock:
			sb.WriteByte('(')
			serializeTo(*token.Content, sb)
			sb.WriteByte(')')
		case SquareBracketsBlock:
			sb.WriteByte('[')
			serializeTo(*token.Content, sb)
			sb.WriteByte(']')
		case CurlyBracketsBlock:
			sb.WriteByte('{')
			serializeTo(*token.Content, sb)
			sb.WriteByte('}')
		case ParseError:
			sb.WriteString("<error>")
		}
	}
}
