package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc records newline offsets of a document so that byte offsets can be
// turned into line and column numbers.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the zero based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) End() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

// Line is 1 based.
func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l + 1
}

// Col is 1 based.
func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c + 1
}

func (p Pos) String() string {
	d := p.D.d
	sample := string(d[max(0, min(p.I, len(d))-5):min(p.I+5, len(d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
