package parse

type parseOpts struct {
	strictTypes bool
}

type ParseOption func(*parseOpts)

// ParseStrictTypes rejects type names which are neither builtin types nor
// type variables, instead of treating them as named (class) types.
func ParseStrictTypes() ParseOption {
	return func(o *parseOpts) { o.strictTypes = true }
}
