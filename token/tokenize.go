package token

import (
	"fmt"
)

// Tokenize splits a signature into tokens.  The result always ends with a
// TEOF token.
func Tokenize(d []byte) ([]Token, error) {
	posDoc := &PosDoc{d: d}
	var res []Token
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch {
		case isSpace(c):
			i++
			continue
		case isNameStart(c):
			j := scanName(d, i)
			res = append(res, Token{Type: TName, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
			continue
		case isDigit(c), c == '-' && i+1 < n && isDigit(d[i+1]):
			j := scanNumber(d, i)
			res = append(res, Token{Type: TNumber, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
			continue
		case c == '"' || c == '\'':
			j, err := scanQuoted(d, i)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			res = append(res, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
			continue
		case c == '-' && i+1 < n && d[i+1] == '>':
			res = append(res, Token{Type: TArrow, Pos: posDoc.Pos(i), Bytes: d[i : i+2]})
			i += 2
			continue
		case c == '.':
			if i+2 < n && d[i+1] == '.' && d[i+2] == '.' {
				res = append(res, Token{Type: TEllipsis, Pos: posDoc.Pos(i), Bytes: d[i : i+3]})
				i += 3
				continue
			}
			return nil, UnexpectedErr("'.'", posDoc.Pos(i))
		}
		tt, ok := punct[c]
		if !ok {
			return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrBadChar, c), posDoc.Pos(i))
		}
		res = append(res, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		i++
	}
	res = append(res, Token{Type: TEOF, Pos: posDoc.Pos(n)})
	return res, nil
}

var punct = map[byte]TokenType{
	'(': TLParen,
	')': TRParen,
	'[': TLSquare,
	']': TRSquare,
	',': TComma,
	'*': TStar,
	'?': TQuestion,
	'!': TBang,
	'|': TPipe,
	'=': TEquals,
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

// scanName scans an identifier, joining "::" namespace separators and
// ".overload" suffixes into one name.
func scanName(d []byte, i int) int {
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case isNameChar(c):
			i++
		case c == ':' && i+2 < n && d[i+1] == ':' && isNameStart(d[i+2]):
			i += 2
		case c == '.' && i+1 < n && isNameStart(d[i+1]):
			i++
		default:
			return i
		}
	}
	return i
}

func scanNumber(d []byte, i int) int {
	n := len(d)
	if d[i] == '-' {
		i++
	}
	for i < n {
		c := d[i]
		switch {
		case isDigit(c), c == '.':
			i++
		case c == 'e' || c == 'E':
			i++
			if i < n && (d[i] == '-' || d[i] == '+') {
				i++
			}
		default:
			return i
		}
	}
	return i
}

func scanQuoted(d []byte, i int) (int, error) {
	q := d[i]
	n := len(d)
	for j := i + 1; j < n; j++ {
		switch d[j] {
		case '\\':
			j++
		case q:
			return j + 1, nil
		}
	}
	return 0, ErrUnterminated
}
