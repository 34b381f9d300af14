// measure/expr.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxExpressionDepth = 32

// ExpressionError reports the part of an arithmetic expression that could
// not be evaluated.
type ExpressionError struct {
	Input      string
	Start, End int // byte offsets of the offending text
	Err        error
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("invalid expression: %s>>>%s<<<%s: %v", e.Input[:e.Start],
		e.Input[e.Start:e.End], e.Input[e.End:], e.Err)
}

func (e *ExpressionError) Unwrap() error { return e.Err }

// exprValue is either a dimensionless scalar or a quantity.
type exprValue struct {
	scalar     float64
	q          VariantQuantity
	isQuantity bool
}

type exprParser struct {
	f        QuantityFormat
	input    string
	pos      int
	depth    int
	dims     []Dimension
	implicit AnyUnit
}

// parseExpression evaluates input as an arithmetic expression over
// quantities and scalars with the usual precedence:
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/") unary }
//	unary   := ("-" | "+") unary | primary
//	primary := "(" expr ")" [symbol] | literal
//
// A scalar combined additively with a quantity is taken to be in the
// quantity's unit; products and quotients of two quantities are rejected.
func (f QuantityFormat) parseExpression(input string, dims []Dimension, implicit AnyUnit) (VariantQuantity, error) {
	p := &exprParser{f: f, input: input, dims: dims, implicit: implicit}

	v, err := p.expr()
	if err != nil {
		return VariantQuantity{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return VariantQuantity{}, p.errorf(p.pos, len(p.input), "%w: unexpected text", ErrInvalidQuantity)
	}

	if !v.isQuantity {
		if !implicit.IsValid() {
			return VariantQuantity{}, p.errorf(0, len(p.input), "%w: no unit symbol", ErrInvalidQuantity)
		}
		return VariantOf(v.scalar, implicit), nil
	}
	if !slices.Contains(dims, v.q.Dimension()) {
		return VariantQuantity{}, p.errorf(0, len(p.input), "%w: %s not allowed", ErrIncompatibleDimension,
			v.q.Dimension())
	}
	return v.q, nil
}

func (p *exprParser) errorf(start, end int, format string, args ...any) error {
	return &ExpressionError{Input: p.input, Start: start, End: end, Err: fmt.Errorf(format, args...)}
}

func (p *exprParser) wrap(start, end int, err error) error {
	var ee *ExpressionError
	if errors.As(err, &ee) {
		return err
	}
	return &ExpressionError{Input: p.input, Start: start, End: end, Err: err}
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) {
		r, sz := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += sz
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *exprParser) expr() (exprValue, error) {
	start := p.pos
	v, err := p.term()
	if err != nil {
		return v, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return v, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return rhs, err
		}
		if v, err = apply(op, v, rhs); err != nil {
			return v, p.wrap(start, p.pos, err)
		}
	}
}

func (p *exprParser) term() (exprValue, error) {
	start := p.pos
	v, err := p.unary()
	if err != nil {
		return v, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return v, nil
		}
		p.pos++
		rhs, err := p.unary()
		if err != nil {
			return rhs, err
		}
		if v, err = apply(op, v, rhs); err != nil {
			return v, p.wrap(start, p.pos, err)
		}
	}
}

func (p *exprParser) unary() (exprValue, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		if err != nil {
			return v, err
		}
		if v.isQuantity {
			v.q = v.q.Negate()
		} else {
			v.scalar = -v.scalar
		}
		return v, nil
	case '+':
		p.pos++
		return p.unary()
	default:
		return p.primary()
	}
}

func (p *exprParser) primary() (exprValue, error) {
	if p.peek() != '(' {
		return p.literal()
	}

	start := p.pos
	p.pos++
	if p.depth++; p.depth > maxExpressionDepth {
		return exprValue{}, p.errorf(start, len(p.input), "%w: too deeply nested", ErrInvalidQuantity)
	}
	v, err := p.expr()
	p.depth--
	if err != nil {
		return v, err
	}
	if p.peek() != ')' {
		return v, p.errorf(start, p.pos, "%w: missing ')'", ErrInvalidQuantity)
	}
	p.pos++

	// An optional unit symbol applies to a parenthesized scalar, as in
	// "(3 + 4) m".
	symStart := p.pos
	if sym := strings.TrimSpace(p.scan()); sym != "" {
		if v.isQuantity {
			return v, p.errorf(symStart, p.pos, "%w: unit applied to a quantity", ErrInvalidQuantity)
		}
		units, err := ParseSymbol(sym, p.f.Locale, p.dims...)
		if err != nil {
			return v, p.wrap(symStart, p.pos, err)
		}
		return exprValue{q: VariantOf(v.scalar, units[0]), isQuantity: true}, nil
	}
	return v, nil
}

func (p *exprParser) literal() (exprValue, error) {
	p.skipSpace()
	start := p.pos
	text := strings.TrimSpace(p.scan())
	if text == "" {
		return exprValue{}, p.errorf(start, min(start+1, len(p.input)), "%w: operand expected", ErrInvalidQuantity)
	}

	if v, n, ok := parseNumber(text); ok && n == len(text) {
		return exprValue{scalar: v}, nil
	}
	q, err := p.f.parse(text, p.dims, AnyUnit{}, true)
	if err != nil {
		return exprValue{}, p.wrap(start, p.pos, err)
	}
	return exprValue{q: q, isQuantity: true}, nil
}

// scan advances over operand text: everything up to the next operator or
// parenthesis. A '/' between two letters is part of a unit symbol such as
// "km/h" rather than a division.
func (p *exprParser) scan() string {
	start := p.pos
	for p.pos < len(p.input) {
		switch c := p.input[p.pos]; c {
		case '+', '-', '*', '(', ')':
			return p.input[start:p.pos]
		case '/':
			if !p.slashInSymbol(start) {
				return p.input[start:p.pos]
			}
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *exprParser) slashInSymbol(start int) bool {
	before, _ := utf8.DecodeLastRuneInString(p.input[start:p.pos])
	after, _ := utf8.DecodeRuneInString(p.input[p.pos+1:])
	isSymbolRune := func(r rune) bool {
		return r != utf8.RuneError && !unicode.IsSpace(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+-*/()", r)
	}
	return isSymbolRune(before) && isSymbolRune(after)
}

func apply(op byte, a, b exprValue) (exprValue, error) {
	switch {
	case !a.isQuantity && !b.isQuantity:
		switch op {
		case '+':
			return exprValue{scalar: a.scalar + b.scalar}, nil
		case '-':
			return exprValue{scalar: a.scalar - b.scalar}, nil
		case '*':
			return exprValue{scalar: a.scalar * b.scalar}, nil
		default:
			return exprValue{scalar: a.scalar / b.scalar}, nil
		}

	case a.isQuantity && !b.isQuantity:
		switch op {
		case '+':
			return exprValue{q: a.q.AddValue(b.scalar), isQuantity: true}, nil
		case '-':
			return exprValue{q: a.q.SubtractValue(b.scalar), isQuantity: true}, nil
		case '*':
			return exprValue{q: a.q.Multiply(b.scalar), isQuantity: true}, nil
		default:
			return exprValue{q: a.q.Divide(b.scalar), isQuantity: true}, nil
		}

	case !a.isQuantity && b.isQuantity:
		// The scalar is taken to be in the unit of the quantity.
		s := VariantOf(a.scalar, b.q.unit)
		switch op {
		case '+':
			return exprValue{q: b.q.AddValue(a.scalar), isQuantity: true}, nil
		case '-':
			return exprValue{q: s.SubtractValue(b.q.value), isQuantity: true}, nil
		case '*':
			return exprValue{q: b.q.Multiply(a.scalar), isQuantity: true}, nil
		default:
			return exprValue{q: s.Divide(b.q.value), isQuantity: true}, nil
		}

	default:
		var q VariantQuantity
		var err error
		switch op {
		case '+':
			q, err = a.q.Add(b.q)
		case '-':
			q, err = a.q.Subtract(b.q)
		default:
			err = fmt.Errorf("%w: %c of two quantities", ErrUnsupportedOperation, op)
		}
		return exprValue{q: q, isQuantity: true}, err
	}
}
