package bitblast

import (
	"fmt"
	"slices"

	"volt/internal/diag"
	"volt/internal/netlist"
	"volt/internal/source"
)

// blaster несёт состояние прохода: модуль, кеш битовых расширений и
// глобальные константы.
type blaster struct {
	mod      *netlist.Module
	reporter diag.Reporter
	bits     map[string][]*netlist.Signal
	zero     *netlist.Signal
	one      *netlist.Signal
}

// Run lowers every high-level gate of the module into 1-bit primitives.
// The primitive sequence fully replaces the high-level one; multi-bit
// signals are expanded into per-bit signals and retired. The module is
// mutated in place.
func Run(mod *netlist.Module, reporter diag.Reporter) error {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	b := &blaster{
		mod:      mod,
		reporter: reporter,
		bits:     make(map[string][]*netlist.Signal),
		zero:     mod.GetOrCreate(netlist.FalseName, 1, 0),
		one:      mod.GetOrCreate(netlist.TrueName, 1, 0),
	}

	// Предварительное расширение шин: имена фиксируются до добавления
	// временных сигналов.
	parents := slices.Clone(mod.Names())
	for _, name := range parents {
		s := mod.Get(name)
		if netlist.IsConstName(s.Name) {
			continue // константы разворачиваются в $false/$true по месту
		}
		b.getBits(s)
	}

	for _, g := range mod.Gates {
		if err := b.lowerGate(g); err != nil {
			return err
		}
	}

	// Высокоуровневая последовательность полностью заменена.
	mod.Gates = nil

	// Родительские шины и закодированные константы вытеснены битами.
	for _, name := range parents {
		s := mod.Get(name)
		if s == nil {
			continue
		}
		if netlist.IsConstName(s.Name) || s.Width > 1 {
			mod.Remove(name)
		}
	}
	return nil
}

// getBits returns the 1-bit representation of a signal, creating
// <name>_<i> signals (LSB first) for buses. Direction and register flags
// are copied from the parent.
func (b *blaster) getBits(sig *netlist.Signal) []*netlist.Signal {
	if sig.Width == 1 {
		return []*netlist.Signal{sig}
	}
	if bits, ok := b.bits[sig.Name]; ok {
		return bits
	}

	var flags netlist.Flag
	if sig.Input {
		flags |= netlist.FlagInput
	}
	if sig.Output {
		flags |= netlist.FlagOutput
	}
	if sig.Reg {
		flags |= netlist.FlagReg
	}

	bits := make([]*netlist.Signal, 0, sig.Width)
	for i := 0; i < sig.Width; i++ {
		bits = append(bits, b.mod.GetOrCreate(netlist.BitName(sig.Name, i), 1, flags))
	}
	b.bits[sig.Name] = bits
	return bits
}

// operandBits returns exactly width bits for an operand. Encoded constants
// become references to the global constants; short rows are zero-extended
// on the high end, long rows truncated.
func (b *blaster) operandBits(sig *netlist.Signal, width int) []*netlist.Signal {
	var row []*netlist.Signal
	if netlist.IsConstName(sig.Name) {
		value, w := netlist.ParseConstName(sig.Name, width)
		row = make([]*netlist.Signal, 0, w)
		for i := 0; i < w; i++ {
			if value>>uint(i)&1 == 1 {
				row = append(row, b.one)
			} else {
				row = append(row, b.zero)
			}
		}
	} else {
		row = slices.Clone(b.getBits(sig))
	}

	for len(row) < width {
		row = append(row, b.zero)
	}
	return row[:width]
}

func (b *blaster) tmp(tag string) *netlist.Signal {
	return b.mod.Fresh("tmp_"+tag, 1)
}

func (b *blaster) xor2(x, y, out *netlist.Signal) {
	b.mod.AddPrim(netlist.PrimXor, []*netlist.Signal{x, y}, out)
}

func (b *blaster) and2(x, y, out *netlist.Signal) {
	b.mod.AddPrim(netlist.PrimAnd, []*netlist.Signal{x, y}, out)
}

func (b *blaster) or2(x, y, out *netlist.Signal) {
	b.mod.AddPrim(netlist.PrimOr, []*netlist.Signal{x, y}, out)
}

func (b *blaster) not1(x, out *netlist.Signal) {
	b.mod.AddPrim(netlist.PrimNot, []*netlist.Signal{x}, out)
}

// mux2 соблюдает соглашение [select, true, false].
func (b *blaster) mux2(sel, d1, d0, out *netlist.Signal) {
	b.mod.AddPrim(netlist.PrimMux, []*netlist.Signal{sel, d1, d0}, out)
}

func (b *blaster) dff(d, clk, q *netlist.Signal) {
	b.mod.AddPrim(netlist.PrimDFF, []*netlist.Signal{d, clk}, q)
}

func (b *blaster) lowerGate(g netlist.HighGate) error {
	switch g.Op {
	case netlist.HighAnd, netlist.HighOr:
		b.lowerBitwise(g)
	case netlist.HighEq:
		b.lowerEq(g)
	case netlist.HighMux:
		b.lowerMux(g)
	case netlist.HighAdd:
		b.lowerAdd(g)
	case netlist.HighDFFEnRst:
		b.lowerDFFEnRst(g)
	case netlist.HighNot:
		b.lowerNot(g)
	case netlist.HighBuf:
		b.lowerBuf(g)
	default:
		diag.ReportError(b.reporter, diag.BlastUnsupportedOp, source.Span{},
			fmt.Sprintf("unsupported gate operation %s", g.Op))
		return fmt.Errorf("bitblast: unsupported gate operation %s", g.Op)
	}
	return nil
}

// lowerBitwise: одна примитивная операция того же типа на каждую битовую
// позицию, попарно по двум операндам.
func (b *blaster) lowerBitwise(g netlist.HighGate) {
	w := g.Out.Width
	aBits := b.operandBits(g.Inputs[0], w)
	bBits := b.operandBits(g.Inputs[1], w)
	outBits := b.getBits(g.Out)

	for i := 0; i < w; i++ {
		if g.Op == netlist.HighAnd {
			b.and2(aBits[i], bBits[i], outBits[i])
		} else {
			b.or2(aBits[i], bBits[i], outBits[i])
		}
	}
}

// lowerEq: (A0 xnor B0) & (A1 xnor B1) & ... сведённое в один бит.
func (b *blaster) lowerEq(g netlist.HighGate) {
	a, bIn := g.Inputs[0], g.Inputs[1]
	w := max(a.Width, bIn.Width)
	aBits := b.operandBits(a, w)
	bBits := b.operandBits(bIn, w)
	outBit := b.getBits(g.Out)[0]

	xnorBits := make([]*netlist.Signal, 0, w)
	for i := 0; i < w; i++ {
		tXor := b.tmp("xor_eq")
		tXnor := b.tmp("xnor_eq")
		b.xor2(aBits[i], bBits[i], tXor)
		b.not1(tXor, tXnor)
		xnorBits = append(xnorBits, tXnor)
	}

	switch {
	case len(xnorBits) == 0:
		// Сравнение нулевой ширины истинно по определению.
		b.and2(b.one, b.one, outBit)
	case len(xnorBits) == 1:
		// Единственный бит буферизуется через AND с единицей.
		b.and2(xnorBits[0], b.one, outBit)
	default:
		curr := xnorBits[0]
		for i := 1; i < len(xnorBits); i++ {
			next := b.tmp("and_red")
			b.and2(curr, xnorBits[i], next)
			curr = next
		}
		b.and2(curr, b.one, outBit)
	}
}

// lowerMux: селектор принудительно берётся из бита 0.
func (b *blaster) lowerMux(g netlist.HighGate) {
	w := g.Out.Width
	selBit := b.operandBits(g.Inputs[0], 1)[0]
	tBits := b.operandBits(g.Inputs[1], w)
	fBits := b.operandBits(g.Inputs[2], w)
	outBits := b.getBits(g.Out)

	for i := 0; i < w; i++ {
		b.mux2(selBit, tBits[i], fBits[i], outBits[i])
	}
}

// lowerAdd: ripple-carry. Перенос начинается с $false; на каждый бит —
// сумма из двух XOR и перенос из трёх AND и двух OR.
func (b *blaster) lowerAdd(g netlist.HighGate) {
	w := g.Out.Width
	aBits := b.operandBits(g.Inputs[0], w)
	bBits := b.operandBits(g.Inputs[1], w)
	outBits := b.getBits(g.Out)

	carry := b.zero
	for i := 0; i < w; i++ {
		t1 := b.tmp("xor")
		b.xor2(aBits[i], bBits[i], t1)
		b.xor2(t1, carry, outBits[i])

		tAB := b.tmp("and")
		tAC := b.tmp("and")
		tBC := b.tmp("and")
		b.and2(aBits[i], bBits[i], tAB)
		b.and2(aBits[i], carry, tAC)
		b.and2(bBits[i], carry, tBC)

		tOr := b.tmp("or")
		cNext := b.tmp("or")
		b.or2(tAB, tAC, tOr)
		b.or2(tOr, tBC, cNext)
		carry = cNext
	}
	// Перенос из старшего бита отбрасывается (усечение по ширине).
}

// lowerDFFEnRst разворачивает макрос регистра: на каждый бит MUX по
// enable, затем MUX по reset (reset приоритетнее) и примитивный DFF.
func (b *blaster) lowerDFFEnRst(g netlist.HighGate) {
	dEn, qOld, en, dRst, rst, clk := g.Inputs[0], g.Inputs[1], g.Inputs[2], g.Inputs[3], g.Inputs[4], g.Inputs[5]
	w := g.Out.Width

	dEnBits := b.operandBits(dEn, w)
	dRstBits := b.operandBits(dRst, w)
	qOldBits := b.operandBits(qOld, w)
	qBits := b.getBits(g.Out)

	enBit := b.operandBits(en, 1)[0]
	rstBit := b.operandBits(rst, 1)[0]
	clkBit := b.operandBits(clk, 1)[0]

	for i := 0; i < w; i++ {
		muxEn := b.tmp("mux")
		b.mux2(enBit, dEnBits[i], qOldBits[i], muxEn)

		muxRst := b.tmp("mux")
		b.mux2(rstBit, dRstBits[i], muxEn, muxRst)

		b.dff(muxRst, clkBit, qBits[i])
	}
}

func (b *blaster) lowerNot(g netlist.HighGate) {
	w := g.Out.Width
	inBits := b.operandBits(g.Inputs[0], w)
	outBits := b.getBits(g.Out)
	for i := 0; i < w; i++ {
		b.not1(inBits[i], outBits[i])
	}
}

// lowerBuf: нативного буфера среди примитивов нет, используется AND с $true.
func (b *blaster) lowerBuf(g netlist.HighGate) {
	w := g.Out.Width
	inBits := b.operandBits(g.Inputs[0], w)
	outBits := b.getBits(g.Out)
	for i := 0; i < w; i++ {
		b.and2(inBits[i], b.one, outBits[i])
	}
}
