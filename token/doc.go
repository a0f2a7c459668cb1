// Package token provides tokenization of metaL source text.
//
// A [Lexer] recognizes, in this order of precedence:
//
//   - line comments, from '#' to the end of the line, which are dropped
//   - a newline, which counts a line and ends a statement ([TNewline])
//   - an integer, [+-]?[0-9]+, carried as an integer node ([TInteger])
//   - a symbol, a run of characters other than white space, control
//     characters, '#', '+' and '@', carried as a symbol node ([TSymbol]);
//     format characters such as the zero width joiner belong to symbols
//
// Space, tab, carriage return and '+' only separate tokens, so '+' never
// occurs inside a symbol.  '@', control characters and invalid UTF-8
// stop lexing with a [*TokenizeErr].
package token
