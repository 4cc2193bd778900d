package lits

import "github.com/signadot/opreg/opreg"

const reluSig = "aten::relu(Tensor self) -> Tensor"

var (
	good     = opreg.Lit("aten::add(Tensor self, Tensor other, *, Scalar alpha) -> Tensor")
	viaConst = opreg.Lit(reluSig)
	drifted  = opreg.Lit("aten::add(Tensor self, int other) -> Tensor")
	broken   = opreg.Lit("aten::add(Tensor self")
)

func dynamic(s string) *opreg.Literal {
	return opreg.Lit(s)
}
