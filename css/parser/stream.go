package parser

// TokenStream is a positional cursor over a list of component
// values, with nestable save points for backtracking parsers.
//
// A typical grammar attempt looks like:
//
//	tx := ts.BeginTransaction()
//	defer tx.Rollback()
//	... consume tokens ...
//	tx.Commit()
//
// Rollback after Commit is a no-op, so a failed attempt (early
// return) restores the exact position the transaction was opened at.
type TokenStream struct {
	tokens []Token
	pos    int
}

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// HasNext returns true if at least one token remains.
func (ts *TokenStream) HasNext() bool { return ts.pos < len(ts.tokens) }

// Remaining returns the number of unconsumed tokens.
func (ts *TokenStream) Remaining() int { return len(ts.tokens) - ts.pos }

// Peek returns the next token without consuming it, or nil at the
// end of the stream.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return nil
	}
	return ts.tokens[ts.pos]
}

// Next consumes and returns the next token, or nil at the end of the
// stream.
func (ts *TokenStream) Next() Token {
	if ts.pos >= len(ts.tokens) {
		return nil
	}
	token := ts.tokens[ts.pos]
	ts.pos++
	return token
}

// Reconsume pushes back the last consumed token, so that the next
// call to Next returns it again. It panics if nothing was consumed.
func (ts *TokenStream) Reconsume() {
	if ts.pos == 0 {
		panic("Reconsume called on a stream at position 0")
	}
	ts.pos--
}

// DiscardWhitespace consumes whitespace and comment tokens.
func (ts *TokenStream) DiscardWhitespace() {
	for ts.pos < len(ts.tokens) {
		k := ts.tokens[ts.pos].Kind()
		if k != KWhitespace && k != KComment {
			break
		}
		ts.pos++
	}
}

// Rest returns the unconsumed tokens, without consuming them.
func (ts *TokenStream) Rest() []Token { return ts.tokens[ts.pos:] }

// Transaction is a save point on a TokenStream.
type Transaction struct {
	ts        *TokenStream
	saved     int
	committed bool
}

// BeginTransaction records the current position. Transactions nest:
// each one restores its own saved position on rollback.
func (ts *TokenStream) BeginTransaction() Transaction {
	return Transaction{ts: ts, saved: ts.pos}
}

// Commit keeps the tokens consumed since the transaction began.
func (tx *Transaction) Commit() { tx.committed = true }

// Rollback restores the saved position, unless Commit was called.
func (tx *Transaction) Rollback() {
	if !tx.committed {
		tx.ts.pos = tx.saved
	}
}
