package encode

import (
	"strings"

	"github.com/gon-format/go-gon/token"
)

// EscapeString renders s as a single GON scalar token. s is written bare
// when it reads back as exactly itself; otherwise it is quoted. Newlines,
// backslashes and double quotes are always escaped, which forces quoting.
func EscapeString(s string) string {
	toks := token.Tokenize([]byte(s))
	quote := len(toks) != 1 || toks[0].Type != token.TLiteral || string(toks[0].Bytes) != s
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			quote = true
			b.WriteString(`\n`)
		case '\\':
			quote = true
			b.WriteString(`\\`)
		case '"':
			quote = true
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	if quote {
		return `"` + b.String() + `"`
	}
	return b.String()
}
