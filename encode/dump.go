package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/eds/ir"
)

// SeenMark ends the header of a node already dumped in the same call.
const SeenMark = " _/"

type DumpState struct {
	Color func(ir.Family, ColorAttr, string) string
}

// Dump writes the textual tree of root to w.  Every node gets a header
// line
//
//	\n<tabs><edge> = <kind:value> @<id>
//
// indented one tab per depth, where the edge part is absent for the root.
func Dump(root *ir.Node, w io.Writer, opts ...DumpOption) error {
	ds := &DumpState{}
	for _, opt := range opts {
		opt(ds)
	}
	return Walk(root, func(s *Step) error {
		return writeString(w, header(s, ds))
	})
}

// DumpString is Dump into a string.
func DumpString(root *ir.Node, opts ...DumpOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(root, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func header(s *Step, ds *DumpState) string {
	b := &strings.Builder{}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("\t", s.Depth))
	if s.Parent != nil {
		attr := NestIndexColor
		if s.InSlot {
			attr = SlotKeyColor
		}
		b.WriteString(ds.color(s.Node.Kind().Family(), attr, s.Edge()))
		b.WriteString(" = ")
	}
	b.WriteString(ds.color(s.Node.Kind().Family(), HeaderColor, s.Node.String()))
	if s.Seen {
		b.WriteString(ds.color(s.Node.Kind().Family(), SeenColor, SeenMark))
	}
	return b.String()
}

func (ds *DumpState) color(f ir.Family, a ColorAttr, s string) string {
	if ds.Color == nil {
		return s
	}
	return ds.Color(f, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
