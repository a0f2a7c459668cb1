package encode

import (
	"fmt"

	"github.com/signadot/eds/ir"
)

// Edge colors of a graph export.
const (
	SlotColor = "blue"
	NestColor = "red"
)

type NodeRecord struct {
	ID    ir.ID  `yaml:"id"`
	Label string `yaml:"label"`
}

type EdgeRecord struct {
	From  ir.ID  `yaml:"from"`
	To    ir.ID  `yaml:"to"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// GraphSink receives the record stream of a graph export.
type GraphSink interface {
	Node(NodeRecord) error
	Edge(EdgeRecord) error
}

// NodeLabel is the "kind:value" label of n in a graph export.
func NodeLabel(n *ir.Node) string {
	return fmt.Sprintf("%s:%s", n.Kind(), n.Render())
}

// Graph walks root like Dump and sends one node record per distinct node
// and one edge record per edge followed.  An edge into a node that was
// already exported is still sent, but the node is not described again.
func Graph(root *ir.Node, sink GraphSink) error {
	return Walk(root, func(s *Step) error {
		if !s.Seen {
			rec := NodeRecord{ID: s.Node.ID(), Label: NodeLabel(s.Node)}
			if err := sink.Node(rec); err != nil {
				return err
			}
		}
		if s.Parent == nil {
			return nil
		}
		rec := EdgeRecord{
			From:  s.Parent.ID(),
			To:    s.Node.ID(),
			Label: "/" + s.Edge(),
			Color: NestColor,
		}
		if s.InSlot {
			rec.Label = s.Key
			rec.Color = SlotColor
		}
		return sink.Edge(rec)
	})
}

// RecordSink keeps the records it receives.
type RecordSink struct {
	Nodes []NodeRecord `yaml:"nodes"`
	Edges []EdgeRecord `yaml:"edges"`
}

func (r *RecordSink) Node(rec NodeRecord) error {
	r.Nodes = append(r.Nodes, rec)
	return nil
}

func (r *RecordSink) Edge(rec EdgeRecord) error {
	r.Edges = append(r.Edges, rec)
	return nil
}
