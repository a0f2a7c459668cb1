package token

import "github.com/signadot/eds/debug"

// LogTokens writes toks to the debug log under msg.
func LogTokens(toks []Token, msg string) {
	debug.Logf("%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		debug.Logf("\t%s %q %s\n", t.Type, t.String(), t.Pos)
	}
}
