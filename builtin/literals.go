package builtin

import "github.com/signadot/opreg/opreg"

var (
	AddTensor  = opreg.Lit("aten::add(Tensor self, Tensor other, *, Scalar alpha) -> Tensor")
	AddScalar  = opreg.Lit("aten::add(Tensor self, Scalar other, Scalar alpha) -> Tensor")
	AddInt     = opreg.Lit("aten::add(int a, int b) -> int")
	SubTensor  = opreg.Lit("aten::sub(Tensor self, Tensor other, *, Scalar alpha) -> Tensor")
	MulTensor  = opreg.Lit("aten::mul(Tensor self, Tensor other) -> Tensor")
	MulScalar  = opreg.Lit("aten::mul(Tensor self, Scalar other) -> Tensor")
	Relu       = opreg.Lit("aten::relu(Tensor self) -> Tensor")
	Matmul     = opreg.Lit("aten::matmul(Tensor self, Tensor other) -> Tensor")
	Cat        = opreg.Lit("aten::cat(Tensor[] tensors, int dim) -> Tensor")
	MaxDim     = opreg.Lit("aten::max(Tensor self, int dim, bool keepdim) -> (Tensor, Tensor)")
	SizeInt    = opreg.Lit("aten::size(Tensor self, int dim) -> int")
	ListLen    = opreg.Lit("aten::len(t[] a) -> int")
	Wait       = opreg.Lit("aten::wait(Future(t) self) -> t")
	Constant   = opreg.Lit("prim::Constant(...) -> ...")
	ListUnpack = opreg.Lit("prim::ListUnpack(...) -> ...")
	TupleIndex = opreg.Lit("prim::TupleIndex(...) -> ...")
)
