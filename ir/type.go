package ir

import "fmt"

// Kind is the variant tag of a Node.  It is fixed when the node is built.
type Kind int

const (
	SymbolKind Kind = iota
	StringKind
	NumberKind
	IntegerKind
	HexKind
	BinKind
	VectorKind
	DictKind
	StackKind
	QueueKind
	VMKind
	CommandKind
	LexerKind
	ParserKind
)

var kindNames = map[Kind]string{
	SymbolKind:  "symbol",
	StringKind:  "string",
	NumberKind:  "number",
	IntegerKind: "integer",
	HexKind:     "hex",
	BinKind:     "bin",
	VectorKind:  "vector",
	DictKind:    "dict",
	StackKind:   "stack",
	QueueKind:   "queue",
	VMKind:      "vm",
	CommandKind: "command",
	LexerKind:   "lexer",
	ParserKind:  "parser",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		SymbolKind,
		StringKind,
		NumberKind,
		IntegerKind,
		HexKind,
		BinKind,
		VectorKind,
		DictKind,
		StackKind,
		QueueKind,
		VMKind,
		CommandKind,
		LexerKind,
		ParserKind,
	}
}

// Family groups kinds into the four top level node families.
type Family int

const (
	PrimitiveFamily Family = iota
	ContainerFamily
	ActiveFamily
	MetaFamily
)

func (f Family) String() string {
	switch f {
	case PrimitiveFamily:
		return "primitive"
	case ContainerFamily:
		return "container"
	case ActiveFamily:
		return "active"
	case MetaFamily:
		return "meta"
	default:
		return "<unknown family>"
	}
}

func (k Kind) Family() Family {
	switch k {
	case VectorKind, DictKind, StackKind, QueueKind:
		return ContainerFamily
	case VMKind, CommandKind:
		return ActiveFamily
	case LexerKind, ParserKind:
		return MetaFamily
	default:
		return PrimitiveFamily
	}
}

// IsNumeric reports whether nodes of kind k carry a parsed number.
func (k Kind) IsNumeric() bool {
	switch k {
	case NumberKind, IntegerKind, HexKind, BinKind:
		return true
	default:
		return false
	}
}
