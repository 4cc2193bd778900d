package opreg

import "errors"

var (
	ErrMissingPrinterCase = errors.New("missing printer special case")
	ErrMissingAliasCase   = errors.New("missing alias analysis special case")
	ErrContradictoryAlias = errors.New("contradictory alias analysis kind")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrNilOperator        = errors.New("nil operator")
	ErrBadAliasKind       = errors.New("bad alias analysis kind")
)
