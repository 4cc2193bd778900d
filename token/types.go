package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TName TokenType = iota
	TNumber
	TString
	TLParen
	TRParen
	TLSquare
	TRSquare
	TComma
	TStar
	TQuestion
	TBang
	TPipe
	TEquals
	TArrow
	TEllipsis
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TName:     "TName",
		TNumber:   "TNumber",
		TString:   "TString",
		TLParen:   "TLParen",
		TRParen:   "TRParen",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TComma:    "TComma",
		TStar:     "TStar",
		TQuestion: "TQuestion",
		TBang:     "TBang",
		TPipe:     "TPipe",
		TEquals:   "TEquals",
		TArrow:    "TArrow",
		TEllipsis: "TEllipsis",
		TEOF:      "TEOF",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	if t.Type == TEOF {
		return "end of signature"
	}
	return string(t.Bytes)
}

var (
	ErrUnterminated = errors.New("unterminated")
	ErrBadChar      = errors.New("bad character")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
