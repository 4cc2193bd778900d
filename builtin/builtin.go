// Package builtin registers the standard operator library with the default
// registry.  Import it for its side effect:
//
//	import _ "github.com/signadot/opreg/builtin"
//
// The package also exports literal handles for the signatures the rest of
// a program resolves most often.
package builtin

import (
	"github.com/signadot/opreg/opreg"
)

type decl struct {
	sig  string
	kind opreg.AliasAnalysisKind
}

var decls = []decl{
	// arithmetic
	{"aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor", opreg.FromSchema},
	{"aten::add.Scalar(Tensor self, Scalar other, Scalar alpha=1) -> Tensor", opreg.FromSchema},
	{"aten::add.int(int a, int b) -> int", opreg.PureFunction},
	{"aten::add.float(float a, float b) -> float", opreg.PureFunction},
	{"aten::add.str(str a, str b) -> str", opreg.PureFunction},
	{"aten::add_.Tensor(Tensor(a!) self, Tensor other, *, Scalar alpha=1) -> Tensor(a!)", opreg.FromSchema},
	{"aten::add.out(Tensor self, Tensor other, *, Scalar alpha=1, Tensor(a!) out) -> Tensor(a!)", opreg.FromSchema},
	{"aten::sub.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor", opreg.FromSchema},
	{"aten::sub.int(int a, int b) -> int", opreg.PureFunction},
	{"aten::mul.Tensor(Tensor self, Tensor other) -> Tensor", opreg.FromSchema},
	{"aten::mul.Scalar(Tensor self, Scalar other) -> Tensor", opreg.FromSchema},
	{"aten::mul_.Tensor(Tensor(a!) self, Tensor other) -> Tensor(a!)", opreg.FromSchema},
	{"aten::mul.int(int a, int b) -> int", opreg.PureFunction},
	{"aten::div.Tensor(Tensor self, Tensor other) -> Tensor", opreg.FromSchema},
	{"aten::neg(Tensor self) -> Tensor", opreg.FromSchema},

	// activations and reductions
	{"aten::relu(Tensor self) -> Tensor", opreg.FromSchema},
	{"aten::relu_(Tensor(a!) self) -> Tensor(a!)", opreg.FromSchema},
	{"aten::sigmoid(Tensor self) -> Tensor", opreg.FromSchema},
	{"aten::tanh(Tensor self) -> Tensor", opreg.FromSchema},
	{"aten::softmax.int(Tensor self, int dim, ScalarType? dtype=None) -> Tensor", opreg.FromSchema},
	{"aten::sum(Tensor self, *, ScalarType? dtype=None) -> Tensor", opreg.FromSchema},
	{"aten::sum.dim_IntList(Tensor self, int[1] dim, bool keepdim=False, *, ScalarType? dtype=None) -> Tensor", opreg.FromSchema},
	{"aten::mean(Tensor self, *, ScalarType? dtype=None) -> Tensor", opreg.FromSchema},
	{"aten::max(Tensor self) -> Tensor", opreg.FromSchema},
	{"aten::max.dim(Tensor self, int dim, bool keepdim=False) -> (Tensor values, Tensor indices)", opreg.FromSchema},

	// linear algebra and shape
	{"aten::matmul(Tensor self, Tensor other) -> Tensor", opreg.FromSchema},
	{"aten::mm(Tensor self, Tensor mat2) -> Tensor", opreg.FromSchema},
	{"aten::t(Tensor(a) self) -> Tensor(a)", opreg.FromSchema},
	{"aten::view(Tensor(a) self, int[] size) -> Tensor(a)", opreg.FromSchema},
	{"aten::reshape(Tensor(a) self, int[] shape) -> Tensor(a)", opreg.FromSchema},
	{"aten::cat(Tensor[] tensors, int dim=0) -> Tensor", opreg.FromSchema},
	{"aten::split.Tensor(Tensor(a) self, int split_size, int dim=0) -> Tensor(a)[]", opreg.FromSchema},
	{"aten::size.int(Tensor self, int dim) -> int", opreg.PureFunction},
	{"aten::to.dtype(Tensor self, ScalarType dtype, bool non_blocking=False, bool copy=False) -> Tensor", opreg.FromSchema},
	{"aten::to.device(Tensor self, Device device, ScalarType dtype, bool non_blocking=False, bool copy=False) -> Tensor", opreg.FromSchema},

	// containers and futures
	{"aten::len.t(t[] a) -> int", opreg.PureFunction},
	{"aten::append.t(t[](a!) self, t el) -> t[](a!)", opreg.FromSchema},
	{"aten::__getitem__.t(t[](a) list, int idx) -> t", opreg.FromSchema},
	{"aten::keys.str(Dict(str, t) self) -> str[]", opreg.FromSchema},
	{"aten::wait(Future(t) self) -> t", opreg.Conservative},

	// un-schematized primitives
	{"prim::Constant(...) -> ...", opreg.InternalSpecialCase},
	{"prim::Uninitialized(...) -> ...", opreg.InternalSpecialCase},
	{"prim::ListConstruct(...) -> ...", opreg.InternalSpecialCase},
	{"prim::ListUnpack(...) -> ...", opreg.InternalSpecialCase},
	{"prim::TupleConstruct(...) -> ...", opreg.InternalSpecialCase},
	{"prim::TupleUnpack(...) -> ...", opreg.InternalSpecialCase},
	{"prim::TupleIndex(...) -> ...", opreg.InternalSpecialCase},
	{"prim::TupleSlice(...) -> ...", opreg.InternalSpecialCase},
	{"prim::DictConstruct(...) -> ...", opreg.InternalSpecialCase},
	{"prim::Print(...) -> ...", opreg.Conservative},
	{"prim::GetAttr(...) -> ...", opreg.InternalSpecialCase},
	{"prim::SetAttr(...) -> ...", opreg.InternalSpecialCase},
	{"prim::CreateObject(...) -> ...", opreg.InternalSpecialCase},
	{"prim::fork(...) -> ...", opreg.InternalSpecialCase},
	{"prim::isinstance(...) -> ...", opreg.InternalSpecialCase},
	{"prim::unchecked_cast(...) -> ...", opreg.InternalSpecialCase},
	{"prim::Load(...) -> ...", opreg.InternalSpecialCase},
	{"prim::Store(...) -> ...", opreg.InternalSpecialCase},
	{"prim::Drop(...) -> ...", opreg.InternalSpecialCase},
	{"prim::profile(...) -> ...", opreg.InternalSpecialCase},
}

var ops = func() []*opreg.Operator {
	res := make([]*opreg.Operator, len(decls))
	for i := range decls {
		res[i] = opreg.MustOperator(decls[i].sig, decls[i].kind)
	}
	return res
}()

// Operators returns the standard operators in registration order.
func Operators() []*opreg.Operator {
	res := make([]*opreg.Operator, len(ops))
	copy(res, ops)
	return res
}

// Install registers the standard operators with r.
func Install(r *opreg.Registry) {
	for _, op := range ops {
		r.Register(op)
	}
}

func init() {
	Install(opreg.Default())
}
