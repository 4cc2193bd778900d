package symbol

import (
	"errors"
	"sync"
	"testing"
)

func TestFromQualString(t *testing.T) {
	tests := []struct {
		qual   string
		ns     Symbol
		unqual string
		domain string
	}{
		{"aten::add", Aten, "add", "aten"},
		{"prim::Constant", Prim, "Constant", "prim"},
		{"onnx::Reshape", Onnx, "Reshape", "onnx"},
		{"attr::value", Attr, "value", "attr"},
		{"custom::thing", FromQualString("namespaces::custom"), "thing", "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.qual, func(t *testing.T) {
			s := FromQualString(tt.qual)
			if got := s.QualString(); got != tt.qual {
				t.Errorf("QualString() = %q, want %q", got, tt.qual)
			}
			if got := s.UnqualString(); got != tt.unqual {
				t.Errorf("UnqualString() = %q, want %q", got, tt.unqual)
			}
			if got := s.NS(); got != tt.ns {
				t.Errorf("NS() = %s, want %s", got, tt.ns)
			}
			if got := s.DomainString(); got != tt.domain {
				t.Errorf("DomainString() = %q, want %q", got, tt.domain)
			}
			if !s.Is(tt.ns) {
				t.Errorf("%s.Is(%s) = false", s, tt.ns)
			}
		})
	}
}

func TestInternIdentity(t *testing.T) {
	a := FromQualString("aten::mul")
	b := FromQualString("aten::mul")
	if a != b {
		t.Errorf("interning the same string twice gave %d and %d", a, b)
	}
	if FromDomainAndUnqual("aten", "mul") != a {
		t.Errorf("FromDomainAndUnqual(aten, mul) != aten::mul")
	}
	if FromDomainAndUnqual("namespaces::aten", "mul") != a {
		t.Errorf("FromDomainAndUnqual(namespaces::aten, mul) != aten::mul")
	}
}

func TestNamespaceOfNamespace(t *testing.T) {
	if Namespaces.NS() != Namespaces {
		t.Errorf("Namespaces.NS() = %s", Namespaces.NS())
	}
	if Prim.NS() != Namespaces {
		t.Errorf("Prim.NS() = %s", Prim.NS())
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "add", "::add", "aten::", "a::b::c"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrBadSymbol) {
			t.Errorf("Parse(%q) error = %v, want ErrBadSymbol", in, err)
		}
	}
}

func TestFromQualStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromQualString(\"nonamespace\") did not panic")
		}
	}()
	FromQualString("nonamespace")
}

func TestConcurrentIntern(t *testing.T) {
	names := []string{"test::a", "test::b", "test::c", "test::d"}
	res := make([][]Symbol, 8)
	var wg sync.WaitGroup
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, n := range names {
				res[i] = append(res[i], FromQualString(n))
			}
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(res); i++ {
		for j := range names {
			if res[i][j] != res[0][j] {
				t.Errorf("goroutine %d interned %s as %d, goroutine 0 as %d", i, names[j], res[i][j], res[0][j])
			}
		}
	}
}
