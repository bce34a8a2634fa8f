package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token) error {
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.Line(), t.Pos.Col()
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", line, col, t.Type, t.Bytes); err != nil {
			return err
		}
	}
	return nil
}
