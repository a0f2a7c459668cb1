package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/eds/ir"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestGraphRecords(t *testing.T) {
	a := ir.NewArena()
	vm := a.VM("metaL")
	bye := a.Command("BYE", nil)
	hex, _ := a.Hex("0x1f")
	vm.BindByValue(bye).Push(hex).Push(bye)

	sink := &RecordSink{}
	if err := Graph(vm, sink); err != nil {
		t.Fatal(err)
	}
	wantNodes := []NodeRecord{
		{ID: vm.ID(), Label: "vm:metaL"},
		{ID: bye.ID(), Label: "command:BYE"},
		{ID: hex.ID(), Label: "hex:0x1f"},
	}
	wantEdges := []EdgeRecord{
		{From: vm.ID(), To: bye.ID(), Label: "BYE", Color: SlotColor},
		{From: vm.ID(), To: hex.ID(), Label: "/0", Color: NestColor},
		{From: vm.ID(), To: bye.ID(), Label: "/1", Color: NestColor},
	}
	if diff := cmp.Diff(wantNodes, sink.Nodes); diff != "" {
		t.Errorf("nodes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantEdges, sink.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
}

func TestGraphSelfCycle(t *testing.T) {
	a := ir.NewArena()
	n := a.Queue("q")
	n.SetSlot("self", n)
	sink := &RecordSink{}
	if err := Graph(n, sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.Nodes) != 1 || len(sink.Edges) != 1 {
		t.Fatalf("got %d nodes %d edges", len(sink.Nodes), len(sink.Edges))
	}
	want := EdgeRecord{From: n.ID(), To: n.ID(), Label: "self", Color: SlotColor}
	if sink.Edges[0] != want {
		t.Errorf("edge %+v, want %+v", sink.Edges[0], want)
	}
}

func TestWriteDOT(t *testing.T) {
	a := ir.NewArena()
	vm := a.VM("metaL")
	vec := a.Vector("v")
	vm.SetSlot("v", vec).Push(vec)
	buf := bytes.NewBuffer(nil)
	if err := WriteDOT(vm, buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"// " + vm.String(),
		"digraph",
		"vm:metaL",
		"vector:v",
		"blue",
		"red",
		"/0",
		"9,9",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestWriteRecords(t *testing.T) {
	a := ir.NewArena()
	vm := a.VM("metaL")
	vm.Push(a.Symbol("x"))
	buf := bytes.NewBuffer(nil)
	if err := WriteRecords(vm, buf); err != nil {
		t.Fatal(err)
	}
	back := &RecordSink{}
	if err := yaml.Unmarshal(buf.Bytes(), back); err != nil {
		t.Fatalf("%v in\n%s", err, buf.String())
	}
	if len(back.Nodes) != 2 || len(back.Edges) != 1 {
		t.Fatalf("got %+v", back)
	}
	if back.Edges[0].Label != "/0" || back.Edges[0].Color != NestColor {
		t.Errorf("edge %+v", back.Edges[0])
	}
}

func TestGraphDiamond(t *testing.T) {
	a := ir.NewArena()
	root := a.Dict("root")
	left := a.Vector("left")
	right := a.Vector("right")
	leaf := a.Symbol("L")
	root.SetSlot("a", left).SetSlot("b", right)
	left.Push(leaf)
	right.Push(leaf)

	sink := &RecordSink{}
	if err := Graph(root, sink); err != nil {
		t.Fatal(err)
	}
	wantNodes := []NodeRecord{
		{ID: root.ID(), Label: "dict:root"},
		{ID: left.ID(), Label: "vector:left"},
		{ID: leaf.ID(), Label: "symbol:L"},
		{ID: right.ID(), Label: "vector:right"},
	}
	wantEdges := []EdgeRecord{
		{From: root.ID(), To: left.ID(), Label: "a", Color: SlotColor},
		{From: left.ID(), To: leaf.ID(), Label: "/0", Color: NestColor},
		{From: root.ID(), To: right.ID(), Label: "b", Color: SlotColor},
		{From: right.ID(), To: leaf.ID(), Label: "/0", Color: NestColor},
	}
	if diff := cmp.Diff(wantNodes, sink.Nodes); diff != "" {
		t.Errorf("nodes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantEdges, sink.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
}
