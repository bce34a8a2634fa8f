package parse

import (
	"github.com/gon-format/go-gon/debug"
	"github.com/gon-format/go-gon/ir"
	"github.com/gon-format/go-gon/token"
)

// Parse parses a document. The text is wrapped in an implicit object.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseTokens(token.Tokenize(d, token.TokenWrap()), opts...)
}

// ParseValue parses exactly one value.
func ParseValue(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseTokens(token.Tokenize(d), opts...)
}

// ParseTokens parses exactly one value from toks.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{reporter: ir.Abort}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{toks: toks, opts: pOpts}
	res, err := p.value(nil)
	if err == nil && p.i < len(toks) {
		err = &UnexpectedErr{Tok: &toks[p.i], Want: "end of document"}
	}
	if err != nil {
		if debug.Parse() {
			debug.Logger().Debug("parse failed", "error", err, "tokens", len(toks), "at", p.i)
		}
		if err = pOpts.reporter.Report(err); err != nil {
			return nil, err
		}
		return ir.Missing(), nil
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) track(y *ir.Node, t *token.Token) {
	if p.opts.positions != nil {
		p.opts.positions[y] = t.Pos
	}
}

// value parses the value starting at the current token. open is the
// innermost enclosing container opener, if any.
func (p *parser) value(open *token.Token) (*ir.Node, error) {
	if p.i >= len(p.toks) {
		return nil, &ImbalanceErr{Open: open}
	}
	t := &p.toks[p.i]
	p.i++
	switch t.Type {
	case token.TLCurl:
		return p.object(t)
	case token.TLSquare:
		return p.array(t)
	case token.TRCurl, token.TRSquare:
		return nil, &ImbalanceErr{Open: open, Close: t}
	default:
		y := Scalar(string(t.Bytes))
		p.track(y, t)
		return y, nil
	}
}

func (p *parser) object(open *token.Token) (*ir.Node, error) {
	y := ir.NewObject()
	p.track(y, open)
	for {
		if p.i >= len(p.toks) {
			return nil, &ImbalanceErr{Open: open}
		}
		t := &p.toks[p.i]
		switch t.Type {
		case token.TRCurl:
			p.i++
			return y, nil
		case token.TRSquare:
			return nil, &ImbalanceErr{Open: open, Close: t}
		case token.TLCurl, token.TLSquare:
			return nil, &UnexpectedErr{Tok: t, Want: "field name"}
		}
		p.i++
		c, err := p.value(open)
		if err != nil {
			return nil, err
		}
		c.Name = string(t.Bytes)
		y.AddChild(c)
	}
}

func (p *parser) array(open *token.Token) (*ir.Node, error) {
	y := ir.NewArray()
	p.track(y, open)
	for {
		if p.i >= len(p.toks) {
			return nil, &ImbalanceErr{Open: open}
		}
		t := &p.toks[p.i]
		switch t.Type {
		case token.TRSquare:
			p.i++
			return y, nil
		case token.TRCurl:
			return nil, &ImbalanceErr{Open: open, Close: t}
		}
		c, err := p.value(open)
		if err != nil {
			return nil, err
		}
		y.AddChild(c)
	}
}
