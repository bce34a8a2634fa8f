package token

import (
	"fmt"
)

type TokenType int

const (
	TLiteral TokenType = iota
	TString
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLiteral: "TLiteral",
		TString:  "TString",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsStructural reports whether t opens or closes a container.
func (t TokenType) IsStructural() bool {
	switch t {
	case TLCurl, TRCurl, TLSquare, TRSquare:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token text. For a TString this is the unescaped
// content without the surrounding quotes.
func (t *Token) String() string {
	return string(t.Bytes)
}
