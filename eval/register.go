package eval

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Builtin{}
)

func Register(b Builtin) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[b.String()]
	if present {
		return fmt.Errorf("%s: %w", b, ErrBuiltinExists)
	}
	d[b.String()] = b
	return nil
}

func init() {
	Register(Bye())
	Register(Dup())
	Register(Drop())
	Register(Swap())
	Register(Over())
	Register(Press())
	Register(DropAll())
	Register(Show())
}

func Lookup(s string) Builtin {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Builtins returns the registered builtins ordered by name.
func Builtins() []Builtin {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Builtin, 0, len(d))
	for _, b := range d {
		res = append(res, b)
	}
	slices.SortFunc(res, func(a, b Builtin) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
