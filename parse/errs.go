package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrUnknownType = fmt.Errorf("%w: unknown type", ErrParse)
	ErrNoNamespace = fmt.Errorf("%w: operator name must be namespace qualified", ErrParse)
)
