package opreg

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/signadot/opreg/parse"
	"github.com/signadot/opreg/schema"
)

type countingParser struct {
	n atomic.Int32
}

func (c *countingParser) parse(sig string) (*schema.FunctionSchema, error) {
	c.n.Add(1)
	return parse.Schema(sig)
}

func literalErr(r *Registry, lit *Literal) (op *Operator, err error) {
	defer func() {
		if x := recover(); x != nil {
			err = x.(error)
		}
	}()
	return r.GetOperatorForLiteral(lit), nil
}

func TestLiteralCache(t *testing.T) {
	c := &countingParser{}
	r := New(WithParser(c.parse))
	add := MustOperator("aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor", FromSchema)
	r.Register(add)

	lit := Lit("aten::add(Tensor self, Tensor other, *, Scalar alpha) -> Tensor")
	first := r.GetOperatorForLiteral(lit)
	if first != add {
		t.Fatalf("GetOperatorForLiteral() = %v, want %s", first, add)
	}
	second := r.GetOperatorForLiteral(lit)
	if second != first {
		t.Errorf("second lookup returned a different operator")
	}
	if n := c.n.Load(); n != 1 {
		t.Errorf("parser called %d times, want 1", n)
	}

	// same text, different handle
	other := Lit(lit.String())
	if r.GetOperatorForLiteral(other) != add {
		t.Errorf("GetOperatorForLiteral(other) did not resolve")
	}
	if n := c.n.Load(); n != 2 {
		t.Errorf("parser called %d times, want 2", n)
	}
}

func TestLiteralCacheConcurrent(t *testing.T) {
	c := &countingParser{}
	r := New(WithParser(c.parse))
	r.Register(MustOperator("test::lit(int a) -> int", PureFunction))
	lit := Lit("test::lit(int a) -> int")
	r.GetOperatorForLiteral(lit)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.GetOperatorForLiteral(lit)
			}
		}()
	}
	wg.Wait()
	if n := c.n.Load(); n != 1 {
		t.Errorf("parser called %d times, want 1", n)
	}
}

func TestLiteralSeesLaterRegistration(t *testing.T) {
	r := New()
	lit := Lit("test::later(int a) -> int")
	if _, err := literalErr(r, lit); !errors.Is(err, ErrOperatorNotFound) {
		t.Fatalf("lookup before registration error = %v", err)
	}
	op := MustOperator("test::later(int a) -> int", FromSchema)
	r.Register(op)
	if got := r.GetOperatorForLiteral(lit); got != op {
		t.Errorf("GetOperatorForLiteral() = %v after registration", got)
	}
}

func TestLiteralCacheHitFlushes(t *testing.T) {
	r := New()
	op := MustOperator("test::hit(int a) -> int", FromSchema)
	r.Register(op)
	lit := Lit("test::hit(int a) -> int")
	r.GetOperatorForLiteral(lit)

	r.Register(MustOperator("test::hit(float a) -> float", FromSchema))
	if got := r.GetOperatorForLiteral(lit); got != op {
		t.Fatalf("GetOperatorForLiteral() = %v, want %s", got, op)
	}
	r.mu.Lock()
	n := len(r.pending)
	r.mu.Unlock()
	if n != 0 {
		t.Errorf("%d operators still pending after a cached lookup", n)
	}
}

func TestLiteralNotFound(t *testing.T) {
	r := New()
	r.Register(MustOperator("aten::add(Tensor self, Tensor other) -> Tensor", FromSchema))
	r.Register(MustOperator("aten::add(Tensor self, Scalar other) -> Tensor", FromSchema))

	_, err := literalErr(r, Lit("aten::add(Tensor self, Scalar othr) -> Tensor"))
	if !errors.Is(err, ErrOperatorNotFound) {
		t.Fatalf("error = %v, want ErrOperatorNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error %v is not a *NotFoundError", err)
	}
	if nf.Closest == nil {
		t.Fatalf("no closest operator reported")
	}
	if got := nf.Closest.Canonical(); got != "aten::add(Tensor self, Scalar other) -> Tensor" {
		t.Errorf("Closest = %s", got)
	}
	msg := err.Error()
	for _, want := range []string{"aten::add(Tensor self, Scalar othr) -> Tensor", "oth{+e+}r"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not contain %q", msg, want)
		}
	}
}

func TestLiteralSuggestions(t *testing.T) {
	r := New()
	r.Register(MustOperator("aten::add(Tensor self, Tensor other) -> Tensor", FromSchema))
	_, err := r.LookupSignature("aten::ad(Tensor self, Tensor other) -> Tensor")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error %v is not a *NotFoundError", err)
	}
	if nf.Closest != nil {
		t.Errorf("Closest = %s for a symbol with no operators", nf.Closest)
	}
	if len(nf.Suggestions) != 1 || nf.Suggestions[0].QualString() != "aten::add" {
		t.Errorf("Suggestions = %v, want [aten::add]", nf.Suggestions)
	}
}

func TestLiteralParseFailure(t *testing.T) {
	r := New()
	_, err := literalErr(r, Lit("aten::add(Tensor self"))
	if !errors.Is(err, ErrOperatorNotFound) || !errors.Is(err, parse.ErrParse) {
		t.Errorf("error = %v, want ErrOperatorNotFound and parse.ErrParse", err)
	}
}

func TestSignatureDiff(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"abc", "abc", "abc"},
		{"f(bool a) -> int", "f(int a) -> int", "f([-bool-]{+int+} a) -> int"},
		{"f() -> ", "f() -> int", "f() -> {+int+}"},
	}
	for _, tt := range tests {
		if got := SignatureDiff(tt.from, tt.to); got != tt.want {
			t.Errorf("SignatureDiff(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
