package parse

type parseOpts struct {
	name string
}

type ParseOption func(*parseOpts)

// ParseName names the lexer and parser nodes, "metaL" by default.
func ParseName(name string) ParseOption {
	return func(o *parseOpts) { o.name = name }
}
