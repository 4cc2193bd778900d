package exempt

import "github.com/signadot/opreg/symbol"

var (
	// PrinterHandled are the operators the printer prints with a special
	// case.
	PrinterHandled = SetOf(
		"prim::Constant",
		"prim::Uninitialized",
		"prim::fork",
		"prim::ListConstruct",
		"prim::DictConstruct",
		"prim::ListUnpack",
		"prim::Print",
		"prim::PythonOp",
		"prim::TupleConstruct",
		"prim::TupleIndex",
		"prim::TupleSlice",
		"prim::TupleUnpack",
		"prim::CreateObject",
		"prim::GetAttr",
		"prim::SetAttr",
		"prim::CallFunction",
		"prim::isinstance",
		"prim::unchecked_cast",
	)

	// PrinterUnneeded are operators that only appear after export, so the
	// printer never sees them.
	PrinterUnneeded = SetOf(
		"onnx::Reshape",
		"onnx::Shape",
		"prim::AutogradZero",
		"prim::AutogradAnyNonZero",
		"prim::AutogradAdd",
		"prim::ConstantChunk",
		"prim::DifferentiableGraph",
		"prim::BroadcastSizes",
		"prim::ChunkSizes",
		"prim::Drop",
		"prim::FusedConcat",
		"prim::FusionGroup",
		"prim::Load",
		"prim::MMTreeReduce",
		"prim::MMBatchSide",
		"prim::Store",
		"prim::profile",
	)

	// PrinterRequiredNamespaces are the namespaces whose operators need a
	// printer case.  Operators in any other namespace are printed
	// generically.
	PrinterRequiredNamespaces = NewSet(symbol.Prim, symbol.Aten, symbol.Onnx)

	// AliasHandled are the operators alias analysis models with a special
	// case.
	AliasHandled = SetOf(
		"prim::If",
		"prim::Loop",
		"prim::FusionGroup",
		"prim::DifferentiableGraph",
		"prim::Constant",
		"prim::Uninitialized",
		"prim::DictConstruct",
		"prim::ListConstruct",
		"prim::TupleConstruct",
		"prim::AutogradZero",
		"prim::FusedConcat",
		"prim::GradOf",
		"prim::MMTreeReduce",
		"prim::MMBatchSide",
		"prim::BroadcastSizes",
		"prim::ChunkSizes",
		"prim::Function",
		"prim::TupleUnpack",
		"prim::TupleIndex",
		"prim::TupleSlice",
		"prim::ListUnpack",
		"prim::PythonOp",
		"prim::ConstantChunk",
		"prim::BroadcastingChunk",
		"prim::fork",
		"prim::CreateObject",
		"prim::AutogradAdd",
		"prim::GetAttr",
		"prim::SetAttr",
		"prim::profile",
		"prim::Print",
		"prim::CallFunction",
		"prim::CallMethod",
		"aten::wait",
		"prim::isinstance",
		"prim::unchecked_cast",
	)

	// AliasNotHandled are operators alias analysis must never see.  They
	// count as handled: nothing needs to be added for them.
	AliasNotHandled = SetOf(
		"prim::Load",
		"prim::Store",
		"prim::Drop",
		"onnx::Reshape",
		"onnx::Shape",
		"prim::AutogradAdd",
	)
)
