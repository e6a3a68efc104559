package parser

import (
	"testing"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, token := range tokens {
		out[i] = token.Kind()
	}
	return out
}

func assertKinds(t *testing.T, css string, want ...Kind) []Token {
	t.Helper()
	tokens := TokenizeString(css)
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", css, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: got %v, want %v", css, got, want)
		}
	}
	return tokens
}

func TestTokenizeBasics(t *testing.T) {
	tokens := assertKinds(t, "1px solid red",
		KDimension, KWhitespace, KIdent, KWhitespace, KIdent)
	dim := tokens[0].(Dimension)
	if dim.Value != 1 || dim.Unit != "px" || !dim.IsInteger {
		t.Fatalf("unexpected dimension %+v", dim)
	}
	if tokens[2].(Ident).Value != "solid" {
		t.Fatalf("unexpected ident %+v", tokens[2])
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := assertKinds(t, "12 -4.5 50% 2e3",
		KNumber, KWhitespace, KNumber, KWhitespace, KPercentage, KWhitespace, KNumber)
	if n := tokens[0].(Number); !n.IsInteger || n.Int() != 12 {
		t.Fatalf("unexpected number %+v", n)
	}
	if n := tokens[2].(Number); n.IsInteger || n.Value != -4.5 {
		t.Fatalf("unexpected number %+v", n)
	}
	if p := tokens[4].(Percentage); p.Value != 50 {
		t.Fatalf("unexpected percentage %+v", p)
	}
	if n := tokens[6].(Number); n.Value != 2000 {
		t.Fatalf("unexpected number %+v", n)
	}
}

func TestTokenizeFunctionsAndBlocks(t *testing.T) {
	tokens := assertKinds(t, "rgb(1, 2, 3)", KFunctionBlock)
	fn := tokens[0].(FunctionBlock)
	if fn.Name != "rgb" {
		t.Fatalf("unexpected function name %s", fn.Name)
	}
	args := RemoveWhitespace(*fn.Arguments)
	if len(args) != 5 { // 1 , 2 , 3
		t.Fatalf("unexpected arguments %v", kinds(args))
	}

	tokens = assertKinds(t, "calc( (1px + 2px) * 3 )", KFunctionBlock)
	inner := RemoveWhitespace(*tokens[0].(FunctionBlock).Arguments)
	if _, ok := inner[0].(ParenthesesBlock); !ok {
		t.Fatalf("expected a nested block, got %v", inner[0].Kind())
	}
}

func TestTokenizeURL(t *testing.T) {
	tokens := assertKinds(t, "url(a.png)", KURL)
	if tokens[0].(URL).Value != "a.png" {
		t.Fatalf("unexpected url %+v", tokens[0])
	}
	// quoted urls keep the function form
	tokens = assertKinds(t, `url("b.png")`, KFunctionBlock)
	if tokens[0].(FunctionBlock).Name != "url" {
		t.Fatalf("unexpected function %+v", tokens[0])
	}
}

func TestTokenizeHashAndString(t *testing.T) {
	tokens := assertKinds(t, `#ff0000 "liga"`, KHash, KWhitespace, KString)
	if h := tokens[0].(Hash); h.Value != "ff0000" {
		t.Fatalf("unexpected hash %+v", h)
	}
	if s := tokens[2].(String); s.Value != "liga" {
		t.Fatalf("unexpected string %+v", s)
	}
}

func TestTokenizeLiteralsAndComments(t *testing.T) {
	assertKinds(t, "16 / 9", KNumber, KWhitespace, KLiteral, KWhitespace, KNumber)
	assertKinds(t, "a,b", KIdent, KLiteral, KIdent)
	// comments are skipped
	assertKinds(t, "red /* not blue */ green",
		KIdent, KWhitespace, KWhitespace, KIdent)
}

func TestSplitOnComma(t *testing.T) {
	tokens := RemoveWhitespace(TokenizeString("url(a.png) 10px, red"))
	chunks := SplitOnComma(tokens)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 2 || len(chunks[1]) != 1 {
		t.Fatalf("unexpected chunk sizes %d %d", len(chunks[0]), len(chunks[1]))
	}
}

func TestContainsSubstitution(t *testing.T) {
	if !ContainsSubstitution(TokenizeString("var(--x)")) {
		t.Fatal("var() not detected")
	}
	if !ContainsSubstitution(TokenizeString("calc(1px + var(--x))")) {
		t.Fatal("nested var() not detected")
	}
	if ContainsSubstitution(TokenizeString("calc(1px + 2px)")) {
		t.Fatal("false positive substitution")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, css := range []string{
		"1px solid red",
		"url(\"a.png\") 10px 20px / cover no-repeat, red",
		"rgb(1, 2, 3)",
	} {
		got := Serialize(TokenizeString(css))
		if got != css {
			t.Fatalf("serialize mismatch: %q != %q", got, css)
		}
	}
}
