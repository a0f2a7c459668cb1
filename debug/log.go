package debug

import (
	"fmt"
	"os"

	"github.com/signadot/eds/encode"
	"github.com/signadot/eds/ir"
)

// Logf writes to stderr.  Node arguments are rendered as tree dumps.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		if x == nil {
			args[i] = "<nil>"
			continue
		}
		args[i] = encode.DumpString(x)
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
