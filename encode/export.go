package encode

import (
	"io"
	"strconv"

	"github.com/signadot/eds/ir"

	"github.com/emicklei/dot"
	"github.com/goccy/go-yaml"
)

// WriteYAML writes the collected records as a YAML document with a nodes
// and an edges list.
func (r *RecordSink) WriteYAML(w io.Writer) error {
	d, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// DOTSink builds a Graphviz digraph from the record stream.
type DOTSink struct {
	Comment string
	g       *dot.Graph
}

func NewDOTSink(comment string) *DOTSink {
	g := dot.NewGraph(dot.Directed)
	g.Attr("size", "9,9")
	return &DOTSink{Comment: comment, g: g}
}

func dotID(id ir.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (d *DOTSink) Node(rec NodeRecord) error {
	d.g.Node(dotID(rec.ID)).Label(rec.Label)
	return nil
}

func (d *DOTSink) Edge(rec EdgeRecord) error {
	from := d.g.Node(dotID(rec.From))
	to := d.g.Node(dotID(rec.To))
	d.g.Edge(from, to, rec.Label).Attr("color", rec.Color)
	return nil
}

func (d *DOTSink) String() string {
	if d.Comment == "" {
		return d.g.String()
	}
	return "// " + d.Comment + "\n" + d.g.String()
}

func (d *DOTSink) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// WriteDOT exports the graph reachable from root as Graphviz DOT.
func WriteDOT(root *ir.Node, w io.Writer) error {
	sink := NewDOTSink(root.String())
	if err := Graph(root, sink); err != nil {
		return err
	}
	_, err := sink.WriteTo(w)
	return err
}

// WriteRecords exports the graph reachable from root as YAML records.
func WriteRecords(root *ir.Node, w io.Writer) error {
	sink := &RecordSink{}
	if err := Graph(root, sink); err != nil {
		return err
	}
	return sink.WriteYAML(w)
}
