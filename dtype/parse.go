package dtype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax is returned (wrapped) by Parse for malformed dtype strings.
var ErrSyntax = errors.New("invalid dtype syntax")

// Parse reads the canonical form produced by DataType.String, e.g.
// "List(Array(Int8, 3))", "Datetime(ns)", "Decimal(10, 2)" or "Decimal(*, 2)".
// Whitespace between tokens is ignored.
func Parse(s string) (DataType, error) {
	p := &parser{src: s}

	dt, err := p.dtype()
	if err != nil {
		return DataType{}, err
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return DataType{}, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}

	return dt, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level tables.
func MustParse(s string) DataType {
	dt, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return dt
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s (in %q at offset %d)", ErrSyntax, fmt.Sprintf(format, args...), p.src, p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++

	return nil
}

func (p *parser) word() string {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *parser) number() (int, error) {
	w := p.word()

	n, err := strconv.Atoi(w)
	if err != nil || n < 0 {
		return 0, p.errorf("expected a non-negative integer, got %q", w)
	}

	return n, nil
}

// wildcard consumes a '*' placeholder for an unset parameter.
func (p *parser) wildcard() bool {
	if p.peek() == '*' {
		p.pos++
		return true
	}

	return false
}

func (p *parser) dtype() (DataType, error) {
	name := p.word()
	kind := KindFromName(name)
	if kind == KindUnknown {
		return DataType{}, p.errorf("unknown dtype %q", name)
	}

	if p.peek() != '(' {
		return Of(kind), nil
	}
	p.pos++

	dt, err := p.params(kind)
	if err != nil {
		return DataType{}, err
	}

	if err := p.expect(')'); err != nil {
		return DataType{}, err
	}

	return dt, nil
}

func (p *parser) params(kind Kind) (DataType, error) {
	switch kind {
	case KindDatetime, KindDuration:
		unit, err := ParseTimeUnit(strings.TrimSpace(p.word()))
		if err != nil {
			return DataType{}, p.errorf("%v", err)
		}

		return DataType{kind: kind, unit: unit}, nil

	case KindList:
		inner, err := p.dtype()
		if err != nil {
			return DataType{}, err
		}

		return List(inner), nil

	case KindArray:
		var inner DataType
		if !p.wildcard() {
			var err error
			if inner, err = p.dtype(); err != nil {
				return DataType{}, err
			}
		}

		width := 0
		if p.peek() == ',' {
			p.pos++

			var err error
			if width, err = p.number(); err != nil {
				return DataType{}, err
			}
		}

		return Array(inner, width), nil

	case KindDecimal:
		dt := Of(KindDecimal)
		if !p.wildcard() {
			precision, err := p.number()
			if err != nil {
				return DataType{}, err
			}
			dt = dt.WithPrecision(precision)
		}

		if p.peek() == ',' {
			p.pos++

			scale, err := p.number()
			if err != nil {
				return DataType{}, err
			}
			dt = dt.WithScale(scale)
		}

		return dt, nil

	default:
		return DataType{}, p.errorf("dtype %s takes no parameters", kind.Name())
	}
}
