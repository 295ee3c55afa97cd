// Package svg converts between the path model and the SVG path mini-language.
//
// The supported grammar is the subset the editor produces: absolute and
// relative moveto (M/m) and cubic curveto (C/c), with Z/z accepted and
// ignored. Numbers may carry a sign, fraction, and exponent, separated by
// whitespace or commas. Repeated coordinate tuples after one command letter
// are interpreted under that command; extra pairs after a moveto are
// implicit line-tos, converted into straight cubic segments.
package svg

import (
	"strconv"

	"github.com/go-drift/pathkit/pkg/errors"
	"github.com/go-drift/pathkit/pkg/geometry"
	"github.com/go-drift/pathkit/pkg/path"
)

const parseOp = "svg.Parse"

type tokenKind int

const (
	tokenCommand tokenKind = iota
	tokenNumber
)

// token is one command letter or numeric operand with its input offset.
type token struct {
	kind tokenKind
	cmd  byte
	num  float64
	pos  int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenize flattens input into command and number tokens. It fails on any
// character that is neither a letter, a separator, nor part of a number.
func tokenize(input string) ([]token, *errors.Error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isLetter(c):
			toks = append(toks, token{kind: tokenCommand, cmd: c, pos: i})
			i++
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		default:
			num, next, ok := scanNumber(input, i)
			if !ok {
				return nil, errors.Syntaxf(parseOp, i, "invalid character %q in path data", c)
			}
			toks = append(toks, token{kind: tokenNumber, num: num, pos: i})
			i = next
		}
	}
	return toks, nil
}

// scanNumber reads an optionally signed decimal with optional fraction and
// exponent starting at i. A trailing dot or a bare exponent letter is not
// consumed: the following character is left for the next token.
func scanNumber(input string, i int) (num float64, next int, ok bool) {
	j := i
	if j < len(input) && (input[j] == '+' || input[j] == '-') {
		j++
	}
	intDigits := 0
	for j < len(input) && isDigit(input[j]) {
		j++
		intDigits++
	}
	fracDigits := 0
	if j < len(input) && input[j] == '.' {
		k := j + 1
		for k < len(input) && isDigit(input[k]) {
			k++
			fracDigits++
		}
		if fracDigits > 0 {
			j = k
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, i, false
	}
	if j < len(input) && (input[j] == 'e' || input[j] == 'E') {
		k := j + 1
		if k < len(input) && (input[k] == '+' || input[k] == '-') {
			k++
		}
		expDigits := 0
		for k < len(input) && isDigit(input[k]) {
			k++
			expDigits++
		}
		if expDigits > 0 {
			j = k
		}
	}
	num, err := strconv.ParseFloat(input[i:j], 64)
	if err != nil {
		return 0, i, false
	}
	return num, j, true
}

// parser consumes the token stream while maintaining the running current
// point used to resolve relative coordinates.
type parser struct {
	toks []token
	i    int
	cur  geometry.Point
}

func (ps *parser) hasNumber() bool {
	return ps.i < len(ps.toks) && ps.toks[ps.i].kind == tokenNumber
}

func (ps *parser) number(cmd token) (float64, *errors.Error) {
	if !ps.hasNumber() {
		return 0, errors.Syntaxf(parseOp, cmd.pos,
			"incomplete %q command: expected more operands", cmd.cmd)
	}
	n := ps.toks[ps.i].num
	ps.i++
	return n, nil
}

func (ps *parser) pair(cmd token, relative bool) (geometry.Point, *errors.Error) {
	x, err := ps.number(cmd)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := ps.number(cmd)
	if err != nil {
		return geometry.Point{}, err
	}
	pt := geometry.Pt(x, y)
	if relative {
		pt = pt.Add(ps.cur)
	}
	return pt, nil
}

// Parse converts path text into a Path. On failure it returns a KindSyntax
// error (malformed input) or a KindValidation error (no segments); the
// caller's live path must be replaced only on success.
func Parse(input string) (path.Path, error) {
	toks, terr := tokenize(input)
	if terr != nil {
		return nil, terr
	}

	ps := &parser{toks: toks}
	var p path.Path
	for ps.i < len(ps.toks) {
		cmd := ps.toks[ps.i]
		if cmd.kind != tokenCommand {
			return nil, errors.Syntaxf(parseOp, cmd.pos,
				"number %v outside any command", cmd.num)
		}
		ps.i++

		switch cmd.cmd {
		case 'M', 'm':
			if len(p) != 0 {
				return nil, errors.Syntaxf(parseOp, cmd.pos,
					"path may contain only one moveto")
			}
			relative := cmd.cmd == 'm'
			pt, err := ps.pair(cmd, relative)
			if err != nil {
				return nil, err
			}
			p = append(p, path.MoveTo{Point: pt})
			ps.cur = pt

			// Extra pairs after a moveto are implicit line-tos, emitted
			// as straight cubics via the thirds rule.
			for ps.hasNumber() {
				pt, err := ps.pair(cmd, relative)
				if err != nil {
					return nil, err
				}
				p = p.AppendPoint(pt)
				ps.cur = pt
			}

		case 'C', 'c':
			if len(p) == 0 {
				return nil, errors.Syntaxf(parseOp, cmd.pos,
					"path must begin with a moveto")
			}
			relative := cmd.cmd == 'c'
			if !ps.hasNumber() {
				return nil, errors.Syntaxf(parseOp, cmd.pos,
					"incomplete %q command: expected more operands", cmd.cmd)
			}
			for ps.hasNumber() {
				c1, err := ps.pair(cmd, relative)
				if err != nil {
					return nil, err
				}
				c2, err := ps.pair(cmd, relative)
				if err != nil {
					return nil, err
				}
				to, err := ps.pair(cmd, relative)
				if err != nil {
					return nil, err
				}
				p = append(p, path.CubicTo{Control1: c1, Control2: c2, To: to})
				ps.cur = to
			}

		case 'Z', 'z':
			// Accepted and ignored: no closing segment is emitted and the
			// current point is left where it is.

		default:
			return nil, errors.Syntaxf(parseOp, cmd.pos,
				"unsupported path command: %q", cmd.cmd)
		}
	}

	if len(p) == 0 {
		return nil, errors.Validationf(parseOp, "no path commands found")
	}
	return p, nil
}
