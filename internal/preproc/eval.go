package preproc

import (
	"fmt"
	"strconv"
	"strings"

	"cexpand/internal/diag"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

// evalConstExpr evaluates a fully expanded #if controlling expression.
// Errors are reported once against span and yield zero.
func (p *Preprocessor) evalConstExpr(toks []pTok, span source.Span) int64 {
	ev := &evaluator{p: p, toks: toks, span: span}
	val := ev.conditional()
	if ev.pos < len(ev.toks) {
		ev.fail(fmt.Sprintf("extra token %q after expression", ev.toks[ev.pos].tok.Text))
	}
	if ev.bad {
		return 0
	}
	return val
}

type evaluator struct {
	p    *Preprocessor
	toks []pTok
	pos  int
	span source.Span
	bad  bool
}

func (ev *evaluator) fail(msg string) {
	if !ev.bad {
		diag.ReportError(ev.p.reporter, diag.PPBadIfExpr, ev.span, msg)
	}
	ev.bad = true
}

func (ev *evaluator) peek() token.Kind {
	if ev.pos >= len(ev.toks) {
		return token.EOF
	}
	return ev.toks[ev.pos].tok.Kind
}

func (ev *evaluator) next() pTok {
	t := ev.toks[ev.pos]
	ev.pos++
	return t
}

func (ev *evaluator) eat(k token.Kind) bool {
	if ev.peek() == k {
		ev.pos++
		return true
	}
	return false
}

func (ev *evaluator) conditional() int64 {
	cond := ev.logicalOr()
	if !ev.eat(token.Question) {
		return cond
	}
	then := ev.conditional()
	if !ev.eat(token.Colon) {
		ev.fail("missing ':' in conditional expression")
		return 0
	}
	els := ev.conditional()
	if cond != 0 {
		return then
	}
	return els
}

func (ev *evaluator) logicalOr() int64 {
	v := ev.logicalAnd()
	for ev.eat(token.PipePipe) {
		r := ev.logicalAnd()
		v = boolVal(v != 0 || r != 0)
	}
	return v
}

func (ev *evaluator) logicalAnd() int64 {
	v := ev.bitOr()
	for ev.eat(token.AmpAmp) {
		r := ev.bitOr()
		v = boolVal(v != 0 && r != 0)
	}
	return v
}

func (ev *evaluator) bitOr() int64 {
	v := ev.bitXor()
	for ev.eat(token.Pipe) {
		v |= ev.bitXor()
	}
	return v
}

func (ev *evaluator) bitXor() int64 {
	v := ev.bitAnd()
	for ev.eat(token.Caret) {
		v ^= ev.bitAnd()
	}
	return v
}

func (ev *evaluator) bitAnd() int64 {
	v := ev.equality()
	for ev.eat(token.Amp) {
		v &= ev.equality()
	}
	return v
}

func (ev *evaluator) equality() int64 {
	v := ev.relational()
	for {
		switch {
		case ev.eat(token.EqEq):
			v = boolVal(v == ev.relational())
		case ev.eat(token.BangEq):
			v = boolVal(v != ev.relational())
		default:
			return v
		}
	}
}

func (ev *evaluator) relational() int64 {
	v := ev.shift()
	for {
		switch {
		case ev.eat(token.Lt):
			v = boolVal(v < ev.shift())
		case ev.eat(token.LtEq):
			v = boolVal(v <= ev.shift())
		case ev.eat(token.Gt):
			v = boolVal(v > ev.shift())
		case ev.eat(token.GtEq):
			v = boolVal(v >= ev.shift())
		default:
			return v
		}
	}
}

func (ev *evaluator) shift() int64 {
	v := ev.additive()
	for {
		switch {
		case ev.eat(token.Shl):
			v <<= uint64(ev.additive()) & 63
		case ev.eat(token.Shr):
			v >>= uint64(ev.additive()) & 63
		default:
			return v
		}
	}
}

func (ev *evaluator) additive() int64 {
	v := ev.multiplicative()
	for {
		switch {
		case ev.eat(token.Plus):
			v += ev.multiplicative()
		case ev.eat(token.Minus):
			v -= ev.multiplicative()
		default:
			return v
		}
	}
}

func (ev *evaluator) multiplicative() int64 {
	v := ev.unary()
	for {
		switch {
		case ev.eat(token.Star):
			v *= ev.unary()
		case ev.eat(token.Slash):
			r := ev.unary()
			if r == 0 {
				ev.fail("division by zero")
				return 0
			}
			v /= r
		case ev.eat(token.Percent):
			r := ev.unary()
			if r == 0 {
				ev.fail("modulo by zero")
				return 0
			}
			v %= r
		default:
			return v
		}
	}
}

func (ev *evaluator) unary() int64 {
	switch {
	case ev.eat(token.Plus):
		return ev.unary()
	case ev.eat(token.Minus):
		return -ev.unary()
	case ev.eat(token.Bang):
		return boolVal(ev.unary() == 0)
	case ev.eat(token.Tilde):
		return ^ev.unary()
	}
	return ev.primary()
}

func (ev *evaluator) primary() int64 {
	switch ev.peek() {
	case token.LParen:
		ev.pos++
		v := ev.conditional()
		if !ev.eat(token.RParen) {
			ev.fail("missing ')'")
		}
		return v

	case token.Num:
		return ev.intLiteral(ev.next().tok.Text)

	case token.CharConst:
		return charValue(ev.next().tok.Text)

	case token.Ident:
		// Surviving identifiers are undefined macros; they evaluate to zero.
		ev.pos++
		return 0

	case token.EOF:
		ev.fail("expression ends unexpectedly")
		return 0
	}

	t := ev.next()
	ev.fail(fmt.Sprintf("unexpected token %q", t.tok.Text))
	return 0
}

// intLiteral parses a C integer literal, ignoring u/l suffixes. Floats have
// no business in an #if.
func (ev *evaluator) intLiteral(text string) int64 {
	trimmed := strings.TrimRight(text, "uUlL")
	if trimmed == "" {
		ev.fail(fmt.Sprintf("invalid integer literal %q", text))
		return 0
	}
	v, err := strconv.ParseUint(trimmed, 0, 64)
	if err != nil {
		ev.fail(fmt.Sprintf("invalid integer literal %q", text))
		return 0
	}
	return int64(v)
}

// charValue returns the numeric value of a character constant like 'x' or
// '\n'. Malformed constants come out as zero.
func charValue(text string) int64 {
	if len(text) < 3 || text[0] != '\'' {
		return 0
	}
	body := text[1 : len(text)-1]
	if body == "" {
		return 0
	}
	if body[0] != '\\' {
		return int64(body[0])
	}
	if len(body) < 2 {
		return 0
	}
	switch body[1] {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 'a':
		return 7
	case 'b':
		return 8
	case 'f':
		return 12
	case 'v':
		return 11
	case 'x':
		v, err := strconv.ParseUint(body[2:], 16, 8)
		if err != nil {
			return 0
		}
		return int64(v)
	default:
		return int64(body[1])
	}
}

func boolVal(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
