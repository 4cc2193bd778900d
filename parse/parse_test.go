package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/opreg/schema"
)

func TestSchemaRoundTrip(t *testing.T) {
	ins := []string{
		"aten::add(Tensor self, Tensor other) -> Tensor",
		"aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor",
		"aten::add_.Tensor(Tensor(a!) self, Tensor other, *, Scalar alpha=1) -> Tensor(a!)",
		"aten::sum.dim_IntList(Tensor self, int[1] dim, bool keepdim=False, *, ScalarType? dtype=None) -> Tensor",
		"aten::max.dim(Tensor self, int dim, bool keepdim=False) -> (Tensor values, Tensor indices)",
		"aten::split.Tensor(Tensor(a) self, int split_size, int dim=0) -> Tensor(a)[]",
		"aten::cat(Tensor[] tensors, int dim=0) -> Tensor",
		"aten::wait(Future(t) self) -> t",
		"aten::keys.str(Dict(str, t) self) -> str[]",
		"aten::pad(Tensor self, int[2] pad, str mode=\"constant\", float? value=None) -> Tensor",
		"prim::Print(...) -> ()",
		"prim::Constant(...) -> ...",
		"prim::TupleIndex(Any tup, int i) -> Any",
		"aten::to(Tensor(a) self, Device? device, ScalarType? dtype=None, bool non_blocking=False, bool copy=False) -> Tensor(a|b)",
		"aten::f(Tensor(a)? self) -> Tensor(a)?",
		"aten::g(Tensor(a!)[] xs, Tensor(b)?[] ys, Tensor[](c)? zs, Tensor(d)[]? ws) -> ()",
	}
	for _, in := range ins {
		t.Run(in, func(t *testing.T) {
			s, err := Schema(in)
			if err != nil {
				t.Fatalf("Schema() error = %v", err)
			}
			if got := s.String(); got != in {
				t.Errorf("Schema(%q).String() = %q", in, got)
			}
			again, err := Schema(s.String())
			if err != nil {
				t.Fatalf("Schema(String()) error = %v", err)
			}
			if diff := cmp.Diff(s, again); diff != "" {
				t.Errorf("Schema(String()) mismatch (-first +again):\n%s", diff)
			}
		})
	}
}

func TestSchemaStructure(t *testing.T) {
	s, err := Schema("aten::add_.Scalar(Tensor(a!) self, Scalar other, *, Scalar alpha=-1.5) -> Tensor(a!)")
	if err != nil {
		t.Fatal(err)
	}
	want := &schema.FunctionSchema{
		Name:         "aten::add_",
		OverloadName: "Scalar",
		Arguments: []schema.Argument{
			{Name: "self", Type: schema.Named("Tensor"), Alias: &schema.AliasInfo{Sets: []string{"a"}, IsWrite: true}},
			{Name: "other", Type: schema.Named("Scalar")},
			{Name: "alpha", Type: schema.Named("Scalar"), KwargOnly: true, Default: ptr("-1.5")},
		},
		Returns: []schema.Argument{
			{Type: schema.Named("Tensor"), Alias: &schema.AliasInfo{Sets: []string{"a"}, IsWrite: true}},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Schema() mismatch (-want +got):\n%s", diff)
	}
}

func ptr[T any](v T) *T { return &v }

func TestSchemaVarret(t *testing.T) {
	s, err := Schema("prim::ListConstruct(...) -> ...")
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsVararg || !s.IsVarret {
		t.Errorf("IsVararg = %v, IsVarret = %v, want both true", s.IsVararg, s.IsVarret)
	}
	if len(s.Arguments) != 0 || len(s.Returns) != 0 {
		t.Errorf("varret schema has arguments %v returns %v", s.Arguments, s.Returns)
	}
}

func TestListAliases(t *testing.T) {
	s, err := Schema("aten::split(Tensor(a) self, int n) -> Tensor(a)[](b!)")
	if err != nil {
		t.Fatal(err)
	}
	r := s.Returns[0]
	if r.Type.String() != "Tensor[]" {
		t.Errorf("return type = %s", r.Type)
	}
	want := &schema.AliasInfo{Sets: []string{"b"}, IsWrite: true, Contained: &schema.AliasInfo{Sets: []string{"a"}}}
	if diff := cmp.Diff(want, r.Alias); diff != "" {
		t.Errorf("alias mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalDeterminism(t *testing.T) {
	// same shape written differently
	pairs := [][2]string{
		{
			"aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor",
			"aten::add(Tensor   self,Tensor other,*,Scalar alpha)->Tensor",
		},
		{
			"aten::add_.Tensor(Tensor(a!) self, Tensor other) -> Tensor(a!)",
			"aten::add_(Tensor self, Tensor other) -> Tensor",
		},
		{
			"aten::max.dim(Tensor self, int dim) -> (Tensor values, Tensor indices)",
			"aten::max(Tensor self, int dim) -> (Tensor, Tensor)",
		},
		{
			"aten::pad(Tensor self, int[2] pad) -> Tensor",
			"aten::pad(Tensor self, int[] pad) -> Tensor",
		},
	}
	for _, pair := range pairs {
		a, err := Schema(pair[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := Schema(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if schema.Canonical(a) != schema.Canonical(b) {
			t.Errorf("Canonical(%q) = %q\nCanonical(%q) = %q", pair[0], schema.Canonical(a), pair[1], schema.Canonical(b))
		}
		again, _ := Schema(pair[0])
		if schema.Canonical(a) != schema.Canonical(again) {
			t.Errorf("Canonical not deterministic for %q", pair[0])
		}
	}
}

func TestCanonicalExample(t *testing.T) {
	s, err := Schema("aten::add(Tensor self, Tensor other) -> Tensor")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := schema.Canonical(s), "aten::add(Tensor self, Tensor other) -> Tensor"; got != want {
		t.Errorf("Canonical() = %q, want %q", got, want)
	}
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"no namespace", "add(Tensor self) -> Tensor", ErrNoNamespace},
		{"no arrow", "aten::add(Tensor self) Tensor", ErrParse},
		{"missing name", "aten::add(Tensor) -> Tensor", ErrParse},
		{"two stars", "aten::f(*, int a, *, int b) -> ()", ErrParse},
		{"ellipsis not last", "aten::f(..., int a) -> ()", ErrParse},
		{"trailing", "aten::f() -> () x", ErrParse},
		{"bad dict", "aten::f(Dict(str) d) -> ()", ErrParse},
		{"empty default", "aten::f(int a=) -> ()", ErrParse},
		{"unterminated", `aten::f(str a="x) -> ()`, ErrParse},
		{"bad list size", "aten::f(int[-1] a) -> ()", ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Schema(tt.in)
			if !errors.Is(err, tt.err) {
				t.Errorf("Schema(%q) error = %v, want %v", tt.in, err, tt.err)
			}
		})
	}
}

func TestStrictTypes(t *testing.T) {
	in := "aten::f(Widget w) -> ()"
	if _, err := Schema(in); err != nil {
		t.Errorf("Schema(%q) error = %v", in, err)
	}
	if _, err := Schema(in, ParseStrictTypes()); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Schema(%q, ParseStrictTypes()) error = %v, want ErrUnknownType", in, err)
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		in   string
		want *schema.Type
	}{
		{"Tensor", schema.Named("Tensor")},
		{"Tensor?[]", schema.List(schema.Optional(schema.Named("Tensor")))},
		{"int[]?", schema.Optional(schema.List(schema.Named("int")))},
		{"Dict(str, t)", schema.Dict(schema.Named("str"), schema.Var("t"))},
		{"(int, Tensor)", schema.Tuple(schema.Named("int"), schema.Named("Tensor"))},
		{"Future(Tensor(a))", schema.Future(schema.Named("Tensor"))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Type(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Type(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestOperatorName(t *testing.T) {
	tests := []struct {
		in   string
		want schema.OperatorName
	}{
		{"aten::add", schema.OperatorName{Name: "aten::add"}},
		{"aten::add.Tensor", schema.OperatorName{Name: "aten::add", OverloadName: "Tensor"}},
		{"aten::add_.out", schema.OperatorName{Name: "aten::add_", OverloadName: "out"}},
	}
	for _, tt := range tests {
		got, err := OperatorName(tt.in)
		if err != nil {
			t.Fatalf("OperatorName(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("OperatorName(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if _, err := OperatorName("add"); !errors.Is(err, ErrNoNamespace) {
		t.Errorf("OperatorName(\"add\") error = %v, want ErrNoNamespace", err)
	}
}
