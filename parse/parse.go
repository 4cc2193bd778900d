package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/opreg/schema"
	"github.com/signadot/opreg/token"
)

var builtinTypes = map[string]bool{
	"Tensor":            true,
	"int":               true,
	"float":             true,
	"bool":              true,
	"str":               true,
	"complex":           true,
	"number":            true,
	"Scalar":            true,
	"ScalarType":        true,
	"Layout":            true,
	"MemoryFormat":      true,
	"Device":            true,
	"Generator":         true,
	"QScheme":           true,
	"Storage":           true,
	"Stream":            true,
	"Dimname":           true,
	"ConstQuantizerPtr": true,
	"Capsule":           true,
	"Any":               true,
	"None":              true,
	"NoneType":          true,
}

type parser struct {
	src  []byte
	toks []token.Token
	i    int
	opts parseOpts
}

func newParser(text string, opts []ParseOption) (*parser, error) {
	src := []byte(text)
	toks, err := token.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p := &parser{src: src, toks: toks}
	for _, o := range opts {
		o(&p.opts)
	}
	return p, nil
}

// Schema parses an operator declaration.
func Schema(text string, opts ...ParseOption) (*schema.FunctionSchema, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return nil, err
	}
	s, err := p.schema()
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", text, err)
	}
	return s, nil
}

// Type parses a single type, e.g. "Tensor?[]".  Alias annotations are
// accepted and dropped.
func Type(text string, opts ...ParseOption) (*schema.Type, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return nil, err
	}
	t, _, _, err := p.annotatedType()
	if err != nil {
		return nil, fmt.Errorf("error parsing type %q: %w", text, err)
	}
	if err := p.expect(token.TEOF, "end of type"); err != nil {
		return nil, fmt.Errorf("error parsing type %q: %w", text, err)
	}
	return t, nil
}

// OperatorName parses "ns::name[.overload]".
func OperatorName(text string) (schema.OperatorName, error) {
	p, err := newParser(text, nil)
	if err != nil {
		return schema.OperatorName{}, err
	}
	n, err := p.operatorName()
	if err != nil {
		return schema.OperatorName{}, err
	}
	if err := p.expect(token.TEOF, "end of name"); err != nil {
		return schema.OperatorName{}, err
	}
	return n, nil
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	if t.Type != token.TEOF {
		p.i++
	}
	return t
}

func (p *parser) accept(tt token.TokenType) bool {
	if p.peek().Type == tt {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(tt token.TokenType, what string) error {
	t := p.next()
	if t.Type != tt {
		return p.errAt(t, what)
	}
	return nil
}

func (p *parser) errAt(t *token.Token, what string) error {
	return fmt.Errorf("%w: %w (got %s)", ErrParse, token.ExpectedErr(what, t.Pos), t.String())
}

func (p *parser) operatorName() (schema.OperatorName, error) {
	t := p.next()
	if t.Type != token.TName {
		return schema.OperatorName{}, p.errAt(t, "operator name")
	}
	full := string(t.Bytes)
	i := strings.Index(full, "::")
	if i <= 0 || i+2 >= len(full) {
		return schema.OperatorName{}, fmt.Errorf("%w: %q at %s", ErrNoNamespace, full, t.Pos)
	}
	name, overload := full, ""
	if j := strings.IndexByte(full[i+2:], '.'); j != -1 {
		name, overload = full[:i+2+j], full[i+2+j+1:]
	}
	return schema.OperatorName{Name: name, OverloadName: overload}, nil
}

func (p *parser) schema() (*schema.FunctionSchema, error) {
	n, err := p.operatorName()
	if err != nil {
		return nil, err
	}
	s := &schema.FunctionSchema{Name: n.Name, OverloadName: n.OverloadName}
	if err := p.expect(token.TLParen, "'('"); err != nil {
		return nil, err
	}
	if err := p.arguments(s); err != nil {
		return nil, err
	}
	if err := p.expect(token.TArrow, "'->'"); err != nil {
		return nil, err
	}
	if err := p.returns(s); err != nil {
		return nil, err
	}
	if err := p.expect(token.TEOF, "end of schema"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) arguments(s *schema.FunctionSchema) error {
	if p.accept(token.TRParen) {
		return nil
	}
	kw := false
	for {
		switch {
		case p.accept(token.TStar):
			if kw {
				return p.errAt(&p.toks[p.i-1], "a single '*'")
			}
			kw = true
		case p.accept(token.TEllipsis):
			s.IsVararg = true
			return p.expect(token.TRParen, "')' after '...'")
		default:
			a, err := p.argument(true)
			if err != nil {
				return err
			}
			a.KwargOnly = kw
			s.Arguments = append(s.Arguments, *a)
		}
		if p.accept(token.TRParen) {
			return nil
		}
		if err := p.expect(token.TComma, "',' or ')'"); err != nil {
			return err
		}
	}
}

func (p *parser) returns(s *schema.FunctionSchema) error {
	if p.accept(token.TEllipsis) {
		s.IsVarret = true
		return nil
	}
	if !p.accept(token.TLParen) {
		r, err := p.argument(false)
		if err != nil {
			return err
		}
		s.Returns = append(s.Returns, *r)
		return nil
	}
	s.Returns = []schema.Argument{}
	if p.accept(token.TRParen) {
		return nil
	}
	for {
		r, err := p.argument(false)
		if err != nil {
			return err
		}
		s.Returns = append(s.Returns, *r)
		if p.accept(token.TRParen) {
			return nil
		}
		if err := p.expect(token.TComma, "',' or ')'"); err != nil {
			return err
		}
	}
}

// argument parses "type [name] [= default]".  Names are required for
// arguments and optional for returns; defaults are only allowed on
// arguments.
func (p *parser) argument(isArg bool) (*schema.Argument, error) {
	t, alias, n, err := p.annotatedType()
	if err != nil {
		return nil, err
	}
	a := &schema.Argument{Type: t, Alias: alias, N: n}
	if tok := p.peek(); tok.Type == token.TName {
		p.next()
		a.Name = string(tok.Bytes)
	} else if isArg {
		return nil, p.errAt(tok, "argument name")
	}
	if isArg && p.accept(token.TEquals) {
		d, err := p.defaultValue()
		if err != nil {
			return nil, err
		}
		a.Default = &d
	}
	return a, nil
}

// defaultValue returns the raw text of a default value, up to the next ','
// or ')' at nesting depth 0.
func (p *parser) defaultValue() (string, error) {
	start := p.peek()
	var last *token.Token
	depth := 0
	for {
		t := p.peek()
		switch t.Type {
		case token.TEOF:
			return "", p.errAt(t, "default value")
		case token.TLParen, token.TLSquare:
			depth++
		case token.TRParen, token.TRSquare:
			if depth == 0 {
				if last == nil {
					return "", p.errAt(t, "default value")
				}
				return p.rawText(start, last), nil
			}
			depth--
		case token.TComma:
			if depth == 0 {
				if last == nil {
					return "", p.errAt(t, "default value")
				}
				return p.rawText(start, last), nil
			}
		}
		last = p.next()
	}
}

func (p *parser) rawText(from, to *token.Token) string {
	return string(p.src[from.Pos.I : to.Pos.I+len(to.Bytes)])
}

func (p *parser) aliasInfo() (*schema.AliasInfo, error) {
	a := &schema.AliasInfo{}
	for {
		t := p.next()
		if t.Type != token.TName {
			return nil, p.errAt(t, "alias set")
		}
		a.Sets = append(a.Sets, string(t.Bytes))
		if !p.accept(token.TPipe) {
			break
		}
	}
	a.IsWrite = p.accept(token.TBang)
	if err := p.expect(token.TRParen, "')' closing alias annotation"); err != nil {
		return nil, err
	}
	return a, nil
}

// annotatedType parses a type together with its alias annotation and, when
// the outermost type is a fixed size list, its size.
func (p *parser) annotatedType() (*schema.Type, *schema.AliasInfo, *int, error) {
	t, err := p.baseType()
	if err != nil {
		return nil, nil, nil, err
	}
	var alias *schema.AliasInfo
	if p.accept(token.TLParen) {
		if alias, err = p.aliasInfo(); err != nil {
			return nil, nil, nil, err
		}
	}
	var n *int
	for {
		switch {
		case p.accept(token.TQuestion):
			t = schema.Optional(t)
			n = nil
		case p.accept(token.TLSquare):
			n = nil
			if tok := p.peek(); tok.Type == token.TNumber {
				p.next()
				v, err := strconv.Atoi(string(tok.Bytes))
				if err != nil || v < 0 {
					return nil, nil, nil, p.errAt(tok, "list size")
				}
				n = &v
			}
			if err := p.expect(token.TRSquare, "']'"); err != nil {
				return nil, nil, nil, err
			}
			t = schema.List(t)
			contained := alias
			alias = nil
			if p.accept(token.TLParen) {
				if alias, err = p.aliasInfo(); err != nil {
					return nil, nil, nil, err
				}
			}
			if contained != nil {
				if alias == nil {
					alias = &schema.AliasInfo{}
				}
				alias.Contained = contained
			}
		default:
			return t, alias, n, nil
		}
	}
}

func (p *parser) baseType() (*schema.Type, error) {
	if p.accept(token.TLParen) {
		ts, err := p.typeList("tuple element type")
		if err != nil {
			return nil, err
		}
		return schema.Tuple(ts...), nil
	}
	t := p.next()
	if t.Type != token.TName {
		return nil, p.errAt(t, "type")
	}
	name := string(t.Bytes)
	switch name {
	case "Dict":
		if err := p.expect(token.TLParen, "'(' after Dict"); err != nil {
			return nil, err
		}
		ts, err := p.typeList("dict type")
		if err != nil {
			return nil, err
		}
		if len(ts) != 2 {
			return nil, fmt.Errorf("%w: Dict takes 2 types, got %d at %s", ErrParse, len(ts), t.Pos)
		}
		return schema.Dict(ts[0], ts[1]), nil
	case "Future":
		if err := p.expect(token.TLParen, "'(' after Future"); err != nil {
			return nil, err
		}
		ts, err := p.typeList("future type")
		if err != nil {
			return nil, err
		}
		if len(ts) != 1 {
			return nil, fmt.Errorf("%w: Future takes 1 type, got %d at %s", ErrParse, len(ts), t.Pos)
		}
		return schema.Future(ts[0]), nil
	}
	if builtinTypes[name] {
		return schema.Named(name), nil
	}
	if c := name[0]; c >= 'a' && c <= 'z' && !strings.ContainsAny(name, ":.") {
		return schema.Var(name), nil
	}
	if p.opts.strictTypes {
		return nil, fmt.Errorf("%w %q at %s", ErrUnknownType, name, t.Pos)
	}
	return schema.Named(name), nil
}

// typeList parses "T {, T} )" after an opening paren.
func (p *parser) typeList(what string) ([]*schema.Type, error) {
	var res []*schema.Type
	if p.accept(token.TRParen) {
		return res, nil
	}
	for {
		t, _, _, err := p.annotatedType()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		res = append(res, t)
		if p.accept(token.TRParen) {
			return res, nil
		}
		if err := p.expect(token.TComma, "',' or ')'"); err != nil {
			return nil, err
		}
	}
}
