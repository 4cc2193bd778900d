package token

import (
	"fmt"
	"strconv"
)

// PosDoc is the document positions refer to.
type PosDoc struct {
	d []byte
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: d}
}

// LineCol returns the 0-based line and column of byte offset off.
func (d *PosDoc) LineCol(off int) (int, int) {
	line, col := 0, 0
	for i := 0; i < off && i < len(d.d); i++ {
		if d.d[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, l, c)
}
