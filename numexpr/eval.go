// Package numexpr evaluates restricted integer expressions with
// arbitrary precision.
//
// The grammar covers numeric literals in every base [big.Int.SetString]
// accepts with base 0 (decimal, 0x hex, 0b binary, 0o or leading-zero octal,
// with optional _ digit separators), the binary operators | ^ & << >> + - * /
// %, the unary operators + - ^, and parentheses. It is a deliberate
// replacement for handing user input to a general-purpose evaluator: the same
// convenience for writing masks and shifts, with nothing else reachable.
package numexpr

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrShiftCount     = errors.New("invalid shift count")
)

// MaxShift is the largest accepted shift amount, in bits. Shifting further
// than this is almost certainly a typo, and a huge left shift would otherwise
// allocate without bound.
const MaxShift = 1 << 20

// Binary operator precedence, loosest first. Matches the conventional
// arithmetic-expression ordering, so 1|1<<3 is 1|(1<<3) and 2+3<<1 is (2+3)<<1.
var precedence = map[string]int{
	"|":  1,
	"^":  2,
	"&":  3,
	"<<": 4,
	">>": 4,
	"+":  5,
	"-":  5,
	"*":  6,
	"/":  6,
	"%":  6,
}

// Eval evaluates src as an integer expression.
//
// Errors returned (check with [errors.Is]): [ErrSyntax], [ErrDivisionByZero],
// [ErrShiftCount].
func Eval(src string) (*big.Int, error) {
	p := parser{scan: scanner{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != tokenEOF {
		return nil, fmt.Errorf("offset %d: unexpected %q: %w", p.tok.Pos, p.tok.Text, ErrSyntax)
	}
	return value, nil
}

type parser struct {
	scan scanner
	tok  token
}

func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expr implements precedence climbing: it consumes operators that bind at
// least as tightly as minPrec, evaluating as it goes.
func (p *parser) expr(minPrec int) (*big.Int, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == tokenOperator && precedence[p.tok.Text] >= minPrec {
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.expr(precedence[op.Text] + 1)
		if err != nil {
			return nil, err
		}
		lhs, err = applyBinary(op, lhs, rhs)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *parser) unary() (*big.Int, error) {
	switch p.tok.Kind {
	case tokenOperator:
		op := p.tok
		if op.Text != "+" && op.Text != "-" && op.Text != "^" {
			return nil, fmt.Errorf("offset %d: unexpected %q: %w", op.Pos, op.Text, ErrSyntax)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.unary()
		if err != nil {
			return nil, err
		}
		switch op.Text {
		case "-":
			value = new(big.Int).Neg(value)
		case "^":
			value = new(big.Int).Not(value)
		}
		return value, nil

	case tokenLeftParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != tokenRightParen {
			return nil, fmt.Errorf("offset %d: missing closing parenthesis: %w", p.tok.Pos, ErrSyntax)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return value, nil

	case tokenNumber:
		value, ok := new(big.Int).SetString(p.tok.Text, 0)
		if !ok {
			return nil, fmt.Errorf("offset %d: invalid numeric literal %q: %w", p.tok.Pos, p.tok.Text, ErrSyntax)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return value, nil

	default:
		return nil, fmt.Errorf("offset %d: unexpected end of expression: %w", p.tok.Pos, ErrSyntax)
	}
}

func applyBinary(op token, x, y *big.Int) (*big.Int, error) {
	z := new(big.Int)
	switch op.Text {
	case "+":
		return z.Add(x, y), nil
	case "-":
		return z.Sub(x, y), nil
	case "*":
		return z.Mul(x, y), nil
	case "/":
		if y.Sign() == 0 {
			return nil, fmt.Errorf("offset %d: %w", op.Pos, ErrDivisionByZero)
		}
		return z.Quo(x, y), nil
	case "%":
		if y.Sign() == 0 {
			return nil, fmt.Errorf("offset %d: %w", op.Pos, ErrDivisionByZero)
		}
		return z.Rem(x, y), nil
	case "&":
		return z.And(x, y), nil
	case "|":
		return z.Or(x, y), nil
	case "^":
		return z.Xor(x, y), nil
	case "<<", ">>":
		if y.Sign() < 0 || !y.IsUint64() || y.Uint64() > MaxShift {
			return nil, fmt.Errorf("offset %d: shift by %s: %w", op.Pos, y, ErrShiftCount)
		}
		n := uint(y.Uint64())
		if op.Text == "<<" {
			return z.Lsh(x, n), nil
		}
		return z.Rsh(x, n), nil
	default:
		return nil, fmt.Errorf("offset %d: unknown operator %q: %w", op.Pos, op.Text, ErrSyntax)
	}
}
