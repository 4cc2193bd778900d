package opreg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/opreg/symbol"
)

func quals(syms []symbol.Symbol) []string {
	res := make([]string, len(syms))
	for i, s := range syms {
		res[i] = s.QualString()
	}
	return res
}

func similarRegistry(opts ...Option) *Registry {
	r := New(opts...)
	for _, sig := range []string{
		"aten::add(Tensor self, Tensor other) -> Tensor",
		"aten::sub(Tensor self, Tensor other) -> Tensor",
		"aten::addr(Tensor self, Tensor vec1, Tensor vec2) -> Tensor",
		"aten::adds(Tensor self) -> Tensor",
		"aten::mul(Tensor self, Tensor other) -> Tensor",
		"aten::matmul(Tensor self, Tensor other) -> Tensor",
	} {
		r.Register(MustOperator(sig, FromSchema))
	}
	return r
}

func TestFindSimilarOperators(t *testing.T) {
	tests := []struct {
		query string
		opts  []Option
		want  []string
	}{
		// exact match first, then distance 1 in registration order
		{query: "aten::add", want: []string{"aten::add", "aten::addr", "aten::adds"}},
		{query: "aten::ad", want: []string{"aten::add", "aten::addr", "aten::adds"}},
		{query: "aten::mull", want: []string{"aten::mul"}},
		{query: "aten::sup", want: []string{"aten::sub", "aten::mul"}},
		{query: "aten::xyzzy", want: []string{}},
		// "not" costs three edits
		{query: "notaten::add", want: []string{}},
		{query: "notaten::add", opts: []Option{WithMaxEditDistance(3)}, want: []string{"aten::add"}},
		{query: "aten::add", opts: []Option{WithMaxEditDistance(0)}, want: []string{"aten::add"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := similarRegistry(tt.opts...)
			got := quals(r.FindSimilarOperators(symbol.FromQualString(tt.query)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindSimilarOperators(%s) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFindSimilarOrdersByDistance(t *testing.T) {
	r := New()
	r.Register(MustOperator("test::abcd(int a) -> int", FromSchema))
	r.Register(MustOperator("test::abc(int a) -> int", FromSchema))
	got := quals(r.FindSimilarOperators(symbol.FromQualString("test::abc")))
	want := []string{"test::abc", "test::abcd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindSimilarOperators() mismatch (-want +got):\n%s", diff)
	}
}
