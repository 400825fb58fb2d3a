// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package expr compiles user-supplied integrand expressions into Go
// closures. The grammar is deliberately tiny: numeric literals, the
// variable x, the operators + - * / ^, unary minus, and parentheses.
// Nothing else parses, which is the whole point: the original dashboard
// fed user input to an unrestricted evaluator, and this package replaces
// that with a closed arithmetic language.
//
// Precedence follows the usual convention: ^ binds tightest and is
// right-associative, then * /, then + -.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax indicates the expression does not conform to the grammar.
var ErrSyntax = errors.New("invalid expression")

// Func is a compiled single-variable function.
type Func func(x float64) float64

// Compile parses src and returns a closure evaluating it.
//
// Runtime float behavior follows IEEE semantics: division by zero yields
// Inf, 0^0 yields 1 (math.Pow). Compilation is where rejection happens;
// a compiled function never fails.
func Compile(src string) (Func, error) {
	p := &parser{src: src}
	p.next()
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, p.tok.text, p.tok.pos)
	}
	return f, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokVariable
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind  tokenKind
	text  string
	value float64 // set for tokNumber
	pos   int
}

type parser struct {
	src string
	off int
	tok token
}

// next scans the following token into p.tok.
func (p *parser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	start := p.off
	if p.off >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	c := p.src[p.off]
	switch c {
	case '+':
		p.off++
		p.tok = token{kind: tokPlus, text: "+", pos: start}
	case '-':
		p.off++
		p.tok = token{kind: tokMinus, text: "-", pos: start}
	case '*':
		p.off++
		p.tok = token{kind: tokStar, text: "*", pos: start}
	case '/':
		p.off++
		p.tok = token{kind: tokSlash, text: "/", pos: start}
	case '^':
		p.off++
		p.tok = token{kind: tokCaret, text: "^", pos: start}
	case '(':
		p.off++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case ')':
		p.off++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case 'x', 'X':
		p.off++
		p.tok = token{kind: tokVariable, text: "x", pos: start}
	default:
		if unicode.IsDigit(rune(c)) || c == '.' {
			for p.off < len(p.src) &&
				(unicode.IsDigit(rune(p.src[p.off])) || p.src[p.off] == '.') {
				p.off++
			}
			text := p.src[start:p.off]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				p.tok = token{kind: tokInvalid, text: text, pos: start}
				return
			}
			p.tok = token{kind: tokNumber, text: text, value: v, pos: start}
			return
		}
		p.off++
		p.tok = token{kind: tokInvalid, text: string(c), pos: start}
	}
}

// parseExpr := term (('+'|'-') term)*
func (p *parser) parseExpr() (Func, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		if op == tokPlus {
			left = func(x float64) float64 { return l(x) + r(x) }
		} else {
			left = func(x float64) float64 { return l(x) - r(x) }
		}
	}
	return left, nil
}

// parseTerm := unary (('*'|'/') unary)*
func (p *parser) parseTerm() (Func, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokStar || p.tok.kind == tokSlash {
		op := p.tok.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l, r := left, right
		if op == tokStar {
			left = func(x float64) float64 { return l(x) * r(x) }
		} else {
			left = func(x float64) float64 { return l(x) / r(x) }
		}
	}
	return left, nil
}

// parseUnary := '-' unary | power
func (p *parser) parseUnary() (Func, error) {
	if p.tok.kind == tokMinus {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return -inner(x) }, nil
	}
	return p.parsePower()
}

// parsePower := atom ('^' unary)?   (right-associative)
func (p *parser) parsePower() (Func, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokCaret {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		b, e := base, exp
		return func(x float64) float64 { return math.Pow(b(x), e(x)) }, nil
	}
	return base, nil
}

// parseAtom := number | 'x' | '(' expr ')'
func (p *parser) parseAtom() (Func, error) {
	switch p.tok.kind {
	case tokNumber:
		v := p.tok.value
		p.next()
		return func(float64) float64 { return v }, nil
	case tokVariable:
		p.next()
		return func(x float64) float64 { return x }, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("%w: missing ')' at position %d", ErrSyntax, p.tok.pos)
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, p.tok.text, p.tok.pos)
	}
}

// Normalize trims src and rewrites the common Python spelling "**" to
// "^" so expressions copied from the original course material compile.
func Normalize(src string) string {
	return strings.ReplaceAll(strings.TrimSpace(src), "**", "^")
}
