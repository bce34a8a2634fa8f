package parse

import (
	"fmt"

	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/token"
)

// ImbalanceErr reports a container which is not closed, or closed by the
// wrong symbol, or a closer without an opener.
type ImbalanceErr struct {
	Open, Close *token.Token
}

func (i *ImbalanceErr) Unwrap() error {
	return ir.ErrStructural
}

func (i *ImbalanceErr) Error() string {
	switch {
	case i.Open == nil && i.Close == nil:
		return fmt.Sprintf("%s: unexpected end of document", ir.ErrStructural)
	case i.Open == nil:
		return fmt.Sprintf("%s: unexpected %q at %s", ir.ErrStructural, i.Close.Bytes, i.Close.Pos)
	case i.Close == nil:
		return fmt.Sprintf("%s: unterminated %q at %s", ir.ErrStructural, i.Open.Bytes, i.Open.Pos)
	}
	return fmt.Sprintf("%s: %q at %s closed by %q at %s", ir.ErrStructural,
		i.Open.Bytes, i.Open.Pos, i.Close.Bytes, i.Close.Pos)
}

// UnexpectedErr reports a token which cannot appear where it was found.
type UnexpectedErr struct {
	Tok  *token.Token
	Want string
}

func (u *UnexpectedErr) Unwrap() error {
	return ir.ErrStructural
}

func (u *UnexpectedErr) Error() string {
	return fmt.Sprintf("%s: expected %s, got %q at %s", ir.ErrStructural, u.Want, u.Tok.Bytes, u.Tok.Pos)
}
