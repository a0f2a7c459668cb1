package ir

import (
	"sync"
	"testing"
)

func TestArenaIDs(t *testing.T) {
	a := NewArena()
	b := NewArena()
	x := a.Symbol("x")
	y := b.Symbol("y")
	z := a.Symbol("z")
	if !(x.ID() < y.ID() && y.ID() < z.ID()) {
		t.Errorf("ids not increasing: %d %d %d", x.ID(), y.ID(), z.ID())
	}
	if got, ok := a.Lookup(x.ID()); !ok || got != x {
		t.Errorf("Lookup(%d) = %v, %v", x.ID(), got, ok)
	}
	if _, ok := a.Lookup(y.ID()); ok {
		t.Errorf("arena a resolved a node built by b")
	}
}

func TestArenaConcurrent(t *testing.T) {
	a := NewArena()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				a.Symbol("s")
			}
		}()
	}
	wg.Wait()
	if a.Len() != 800 {
		t.Errorf("Len() = %d, want 800", a.Len())
	}
}

func TestCollect(t *testing.T) {
	a := NewArena()
	root := a.VM("metaL")
	kept := a.Vector("kept")
	loop := a.Dict("loop")
	garbage := a.Symbol("garbage")
	garbageCycle := a.Vector("cycle")
	garbageCycle.Push(garbageCycle)

	root.SetSlot("kept", kept)
	kept.Push(loop)
	loop.SetSlot("back", root)

	if got := a.Collect(root); got != 2 {
		t.Errorf("Collect() = %d, want 2", got)
	}
	for _, n := range []*Node{root, kept, loop} {
		if _, ok := a.Lookup(n.ID()); !ok {
			t.Errorf("%s was released", n)
		}
	}
	for _, n := range []*Node{garbage, garbageCycle} {
		if _, ok := a.Lookup(n.ID()); ok {
			t.Errorf("%s was kept", n)
		}
	}
	if a.Collect(root) != 0 {
		t.Errorf("second Collect released more nodes")
	}
}
