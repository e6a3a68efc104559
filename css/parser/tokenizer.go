package parser

import (
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

var (
	numberRe    = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)
	hexEscapeRe = regexp.MustCompile(`^([0-9A-Fa-f]{1,6})[ \n\t]?`)
)

type nestedBlock struct {
	tokens  *[]Token
	endChar byte
}

// Tokenize parses a list of component values.
// CSS comments are always skipped: the returned values (and
// recursively their blocks and functions) contain no Comment token.
func Tokenize(css []byte) []Token {
	css = bytes.ReplaceAll(css, []byte("\u0000"), []byte("\uFFFD"))
	css = bytes.ReplaceAll(css, []byte("\r\n"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\r"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\f"), []byte("\n"))

	length := len(css)
	tokenStartPos, pos := 0, 0
	line, lastNewline := 1, -1
	var out []Token  // possibly nested tokens
	ts := &out       // current stack of tokens
	var endChar byte // Pop the stack when encountering this character.
	var stack []nestedBlock

mainLoop:
	for pos < length {
		newline := bytes.LastIndexByte(css[tokenStartPos:pos], '\n')
		if newline != -1 {
			newline += tokenStartPos
			line += 1 + bytes.Count(css[tokenStartPos:newline], []byte{'\n'})
			lastNewline = newline
		}
		// First character in a line is in column 1.
		column := pos - lastNewline
		tokenPos := newPosition(line, column)

		tokenStartPos = pos
		c := css[pos]

		switch c {
		case ' ', '\n', '\t':
			pos++
			for ; pos < length; pos++ {
				u := css[pos]
				if !(u == ' ' || u == '\n' || u == '\t') {
					break
				}
			}
			*ts = append(*ts, Whitespace{pos: tokenPos, Value: string(css[tokenStartPos:pos])})
			continue
		}

		if isIdentStart(css, pos) {
			var value string
			value, pos = consumeIdent(css, pos)
			if !(pos < length && css[pos] == '(') { // Not a function
				*ts = append(*ts, Ident{pos: tokenPos, Value: value})
				continue
			}
			pos++ // Skip the "("
			if utils.AsciiLower(value) == "url" {
				urlPos := pos
				for urlPos < length && (css[urlPos] == ' ' || css[urlPos] == '\n' || css[urlPos] == '\t') {
					urlPos++
				}
				if urlPos >= length || (css[urlPos] != '"' && css[urlPos] != '\'') {
					var (
						addValue bool
						err      error
					)
					value, pos, addValue, err = consumeUrl(css, pos)
					if addValue {
						*ts = append(*ts, URL{pos: tokenPos, Value: value})
					}
					if err != nil {
						*ts = append(*ts, ParseError{pos: tokenPos, What: err.Error(), Message: err.Error()})
					}
					continue
				}
			}
			funcBlock := FunctionBlock{
				pos:       tokenPos,
				Name:      utils.AsciiLower(value),
				Arguments: new([]Token),
			}
			*ts = append(*ts, funcBlock)
			stack = append(stack, nestedBlock{tokens: ts, endChar: endChar})
			endChar = ')'
			ts = funcBlock.Arguments
			continue
		}

		match := numberRe.FindIndex(css[pos:])
		if match != nil {
			repr := string(css[pos+match[0] : pos+match[1]])
			pos += match[1]
			value, _ := strconv.ParseFloat(repr, 64)
			if value == 0 {
				value = 0. // workaround -0
			}
			_, errInt := strconv.ParseInt(repr, 10, 0)
			n := NumericToken{
				pos:            tokenPos,
				Representation: repr,
				IsInteger:      errInt == nil,
				Value:          utils.Fl(value),
			}
			if pos < length && isIdentStart(css, pos) {
				var unit string
				unit, pos = consumeIdent(css, pos)
				*ts = append(*ts, Dimension{NumericToken: n, Unit: utils.AsciiLower(unit)})
			} else if pos < length && css[pos] == '%' {
				pos++
				*ts = append(*ts, Percentage(n))
			} else {
				*ts = append(*ts, Number(n))
			}
			continue
		}
		switch c {
		case '@':
			pos++
			if pos < length && isIdentStart(css, pos) {
				var ident string
				ident, pos = consumeIdent(css, pos)
				*ts = append(*ts, AtKeyword{pos: tokenPos, Value: ident})
			} else {
				*ts = append(*ts, Literal{pos: tokenPos, Value: "@"})
			}
		case '#':
			pos++
			if pos < length {
				r, _ := utf8.DecodeRune(css[pos:])
				if ('0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '-' || r == '_') ||
					r > 0x7F || // Non-ASCII
					(r == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))) { // Valid escape
					isIdentifier := isIdentStart(css, pos)
					var ident string
					ident, pos = consumeIdent(css, pos)
					*ts = append(*ts, Hash{pos: tokenPos, Value: ident, IsIdentifier: isIdentifier})
					continue
				}
			}
			*ts = append(*ts, Literal{pos: tokenPos, Value: "#"})
		case '{':
			brack := CurlyBracketsBlock{pos: tokenPos, Content: new([]Token)}
			*ts = append(*ts, brack)
			stack = append(stack, nestedBlock{tokens: ts, endChar: endChar})
			endChar = '}'
			ts = brack.Content
			pos++
		case '[':
			brack := SquareBracketsBlock{pos: tokenPos, Content: new([]Token)}
			*ts = append(*ts, brack)
			stack = append(stack, nestedBlock{tokens: ts, endChar: endChar})
			endChar = ']'
			ts = brack.Content
			pos++
		case '(':
			brack := ParenthesesBlock{pos: tokenPos, Content: new([]Token)}
			*ts = append(*ts, brack)
			stack = append(stack, nestedBlock{tokens: ts, endChar: endChar})
			endChar = ')'
			ts = brack.Content
			pos++
		case 0: // never equal to endChar
		case endChar: // Matching }, ] or )
			// The top-level endChar is 0, so we never get here if the stack is empty.
			var block nestedBlock
			block, stack = stack[len(stack)-1], stack[:len(stack)-1]
			ts, endChar = block.tokens, block.endChar
			pos++
		case '}', ']', ')':
			*ts = append(*ts, ParseError{pos: tokenPos, What: string(rune(c)), Message: "Unmatched " + string(rune(c))})
			pos++
		case '\'', '"':
			quotedString, newPos, addValue, err := consumeQuotedString(css, pos)
			pos = newPos
			if addValue {
				*ts = append(*ts, String{pos: tokenPos, Value: quotedString})
			}
			if err != nil {
				*ts = append(*ts, ParseError{pos: tokenPos, What: err.Error(), Message: "bad string token"})
			}
		default:
			switch {
			case bytes.HasPrefix(css[pos:], []byte("/*")): // Comment
				index := bytes.Index(css[pos+2:], []byte("*/"))
				if index == -1 {
					break mainLoop
				}
				pos += 2 + index + 2
			case c == '~' || c == '|' || c == '^' || c == '$' || c == '*':
				pos++
				if bytes.HasPrefix(css[pos:], []byte{'='}) {
					pos++
					*ts = append(*ts, Literal{pos: tokenPos, Value: string(rune(c)) + "="})
				} else {
					*ts = append(*ts, Literal{pos: tokenPos, Value: string(rune(c))})
				}
			default:
				r, w := utf8.DecodeRune(css[pos:])
				pos += w
				*ts = append(*ts, Literal{pos: tokenPos, Value: string(r)})
			}
		}
	}
	return out
}

// TokenizeString is a convenience wrapper around Tokenize.
func TokenizeString(css string) []Token {
	return Tokenize([]byte(css))
}

const nonPrintable = "\"'(\x00\x01\x02\x03\x04\x05\x06\x07\x08\x0b\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f\x7f"

// Return true if the given character is a name-start code point.
func isNameStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
	c, _ := utf8.DecodeRune(css[pos:])
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// Return true if the given position is the start of a CSS identifier.
func isIdentStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
	if isNameStart(css, pos) {
		return true
	} else if css[pos] == '-' {
		pos++
		if pos >= len(css) {
			return false
		}
		// Name-start code point or hyphen
		nameStart := isNameStart(css, pos) || css[pos] == '-'
		// Valid escape
		validEscape := css[pos] == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))
		return nameStart || validEscape
	} else if css[pos] == '\\' {
		return !bytes.HasPrefix(css[pos:], []byte("\\\n"))
	}
	return false
}

func consumeIdent(value []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-a-name
	var chunks strings.Builder
	L := len(value)
	startPos := pos
	for pos < L {
		c, w := utf8.DecodeRune(value[pos:])
		if strings.ContainsRune("abcdefghijklmnopqrstuvwxyz-_0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", c) || c > 0x7F {
			pos += w
		} else if c == '\\' && !bytes.HasPrefix(value[pos:], []byte("\\\n")) {
			// Valid escape
			chunks.Write(value[startPos:pos])
			var car string
			car, pos = consumeEscape(value, pos+w)
			chunks.WriteString(car)
			startPos = pos
		} else {
			break
		}
	}
	chunks.Write(value[startPos:pos])
	return chunks.String(), pos
}

// http://dev.w3.org/csswg/css-syntax/#consume-a-url-token
func consumeUrl(css []byte, pos int) (value string, newPos int, addValue bool, err error) {
	length := len(css)
	// Skip whitespace
	for pos < length && strings.ContainsRune(" \n\t", rune(css[pos])) {
		pos++
	}
	if pos >= length { // EOF
		return "", pos, true, errors.New("eof-in-url")
	}
	c := rune(css[pos])
	if c == '"' || c == '\'' {
		value, pos, addValue, err = consumeQuotedString(css, pos)
	} else if c == ')' {
		return "", pos + 1, true, nil
	} else {
		var chunks strings.Builder
		startPos := pos
	mainLoop:
		for {
			if pos >= length { // EOF
				chunks.Write(css[startPos:pos])
				return chunks.String(), pos, true, errors.New("eof-in-url")
			}
			c, w := utf8.DecodeRune(css[pos:])
			switch {
			case c == ')':
				chunks.Write(css[startPos:pos])
				pos += w
				return chunks.String(), pos, true, nil
			case c == ' ' || c == '\n' || c == '\t':
				chunks.Write(css[startPos:pos])
				value = chunks.String()
				pos += w
				break mainLoop
			case c == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n")):
				// Valid escape
				chunks.Write(css[startPos:pos])
				var cs string
				cs, pos = consumeEscape(css, pos+w)
				chunks.WriteString(cs)
				startPos = pos
			default:
				pos += w
				// http://dev.w3.org/csswg/css-syntax/#non-printable-character
				if strings.ContainsRune(nonPrintable, c) {
					err = errors.New("non printable char")
					break mainLoop
				}
			}
		}
	}

	if err == nil {
		for pos < length {
			r, w := utf8.DecodeRune(css[pos:])
			if strings.ContainsRune(" \n\t", r) {
				pos += w
			} else {
				break
			}
		}
		if pos < length {
			if css[pos] == ')' {
				return value, pos + 1, true, nil
			}
		} else {
			return value, pos, true, errors.New("eof-in-url")
		}
	}

	// http://dev.w3.org/csswg/css-syntax/#consume-the-remnants-of-a-bad-url0
	for pos < length {
		if bytes.HasPrefix(css[pos:], []byte("\\)")) {
			pos += 2
		} else if css[pos] == ')' {
			pos++
			break
		} else {
			_, w := utf8.DecodeRune(css[pos:])
			pos += w
		}
	}
	return "", pos, false, errors.New("bad-url")
}

// Returns the unescaped value.
// http://dev.w3.org/csswg/css-syntax/#consume-a-string-token
// css[pos] is assumed to be a quote.
func consumeQuotedString(css []byte, pos int) (string, int, bool, error) {
	quote := rune(css[pos])
	pos++
	var chunks strings.Builder
	length := len(css)
	startPos := pos
	hasBroken := false
mainLoop:
	for pos < length {
		c, w := utf8.DecodeRune(css[pos:])
		switch c {
		case quote:
			chunks.Write(css[startPos:pos])
			pos += w
			hasBroken = true
			break mainLoop
		case '\\':
			chunks.Write(css[startPos:pos])
			pos += w
			if pos < length {
				if css[pos] == '\n' { // Ignore escaped newlines
					pos++
				} else {
					var cs string
					cs, pos = consumeEscape(css, pos)
					chunks.WriteString(cs)
				}
			} // else: Escaped EOF, do nothing
			startPos = pos
		case '\n': // Unescaped newline
			return "", pos, false, errors.New("bad-string")
		default:
			pos += w
		}
	}
	var err error
	if !hasBroken {
		chunks.Write(css[startPos:pos])
		err = errors.New("eof-in-string")
	}
	return chunks.String(), pos, true, err
}

// Return (unescapedChar, newPos).
// Assumes a valid escape: pos is just after '\' and not followed by '\n'.
func consumeEscape(css []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-an-escaped-character
	hexMatch := hexEscapeRe.FindSubmatch(css[pos:])
	if len(hexMatch) >= 2 {
		codepoint, _ := strconv.ParseInt(string(hexMatch[1]), 16, 0)
		char := "\uFFFD"
		if 0 < codepoint && codepoint <= unicode.MaxRune {
			char = string(rune(codepoint))
		}
		return char, pos + len(hexMatch[0])
	} else if pos < len(css) {
		r, w := utf8.DecodeRune(css[pos:])
		return string(r), pos + w
	} else {
		return "\uFFFD", pos
	}
}
