package lexer

import "git.sr.ht/~mango/egg/grammar"

const bq = "`"

const (
	exprSemicolon = `;`
	exprNewline   = `\n`

	exprPipe           = `\|`
	exprRedirect       = `>`
	exprRedirectAppend = `>>`

	// A run of characters that are not blanks, backslashes, or quotes.  A
	// blank or quote is allowed when escaped by an odd number of backslashes.
	exprUnquoted = `([^\s\\'"` + bq + `]|(\\(\\{2})*[\s"'` + bq + `]))`

	// Quoted strings may span lines and end at the first closing quote that
	// is not escaped.
	exprDoubleQuoted = `"((\\{2})*|((.|\n)*?[^\\](\\{2})*))"`
	exprSingleQuoted = `'((\\{2})*|((.|\n)*?[^\\](\\{2})*))'`
	exprBackQuoted   = bq + `((\\{2})*|((.|\n)*?[^\\](\\{2})*))` + bq

	exprLiteral = `(` + exprUnquoted + `|` + exprDoubleQuoted + `|` +
		exprSingleQuoted + `|` + exprBackQuoted + `)+`
)

// DefaultPatterns returns the token patterns of the shell in priority order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		MustCompile(grammar.LineEnd, exprSemicolon),
		MustCompile(grammar.LineEnd, exprNewline),
		MustCompile(grammar.Pipe, exprPipe),
		MustCompile(grammar.Redirect, exprRedirect),
		MustCompile(grammar.RedirectAppend, exprRedirectAppend),
		MustCompile(grammar.Literal, exprLiteral),
	}
}
