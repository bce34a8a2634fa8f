package token

type tokenOpts struct {
	wrap bool
}

type TokenOpt func(*tokenOpts)

// TokenWrap surrounds the token stream with a synthetic '{' and '}' so that
// a document body tokenizes as a single object. The synthetic tokens are
// not part of the text, so an unterminated comment or string at the end of
// the document cannot swallow them.
func TokenWrap() TokenOpt {
	return func(o *tokenOpts) { o.wrap = true }
}

type tkState struct {
	doc       *PosDoc
	toks      []Token
	cur       []byte
	start     int
	inString  bool
	inComment bool
	escaped   bool
}

func (ts *tkState) emit(tt TokenType, off int, b []byte) {
	ts.toks = append(ts.toks, Token{
		Type:  tt,
		Pos:   ts.doc.Pos(off),
		Bytes: b,
	})
}

func (ts *tkState) flush() {
	if len(ts.cur) == 0 {
		return
	}
	ts.emit(TLiteral, ts.start, ts.cur)
	ts.cur = nil
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func isSeparator(c byte) bool {
	return c == '=' || c == ',' || c == ':'
}

func structural(c byte) (TokenType, bool) {
	switch c {
	case '{':
		return TLCurl, true
	case '}':
		return TRCurl, true
	case '[':
		return TLSquare, true
	case ']':
		return TRSquare, true
	}
	return 0, false
}

// Tokenize splits src into tokens. It never fails: an unterminated quoted
// string is flushed as a TString at the end of input, and structural
// imbalance is left for the parser to report.
func Tokenize(src []byte, opts ...TokenOpt) []Token {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	ts := &tkState{doc: NewPosDoc(src)}
	if o.wrap {
		ts.emit(TLCurl, 0, []byte{'{'})
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case ts.inComment:
			if c == '\n' {
				ts.inComment = false
			}
		case ts.inString:
			switch {
			case ts.escaped:
				if c == 'n' {
					c = '\n'
				}
				ts.cur = append(ts.cur, c)
				ts.escaped = false
			case c == '\\':
				ts.escaped = true
			case c == '"':
				// empty quoted strings are tokens too
				b := ts.cur
				if b == nil {
					b = []byte{}
				}
				ts.emit(TString, ts.start, b)
				ts.cur = nil
				ts.inString = false
			default:
				ts.cur = append(ts.cur, c)
			}
		default:
			if tt, ok := structural(c); ok {
				ts.flush()
				ts.emit(tt, i, []byte{c})
				continue
			}
			switch {
			case isSeparator(c), isWhitespace(c):
				ts.flush()
			case c == '#':
				ts.flush()
				ts.inComment = true
			case c == '"':
				ts.flush()
				ts.inString = true
				ts.start = i
			default:
				if len(ts.cur) == 0 {
					ts.start = i
				}
				ts.cur = append(ts.cur, c)
			}
		}
	}
	if len(ts.cur) != 0 {
		tt := TLiteral
		if ts.inString {
			tt = TString
		}
		ts.emit(tt, ts.start, ts.cur)
	}
	if o.wrap {
		ts.toks = append(ts.toks, Token{Type: TRCurl, Pos: ts.doc.End(), Bytes: []byte{'}'}})
	}
	return ts.toks
}

// Strings returns the text of each token.
func Strings(toks []Token) []string {
	res := make([]string, len(toks))
	for i := range toks {
		res[i] = toks[i].String()
	}
	return res
}
