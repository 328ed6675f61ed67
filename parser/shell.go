package parser

import "git.sr.ht/~mango/egg/grammar"

// Shell returns the grammar of the shell:
//
//	program         := exec_chain*
//	exec_chain      := exec (pipe_exec | redirect_exec | LINE_END+)
//	exec            := LITERAL+
//	pipe_exec       := PIPE exec_chain
//	redirect_exec   := (REDIRECT | REDIRECT_APPEND) redirect_target
//	redirect_target := LITERAL (pipe_exec | redirect_exec | LINE_END+)
//
// Line ends are matched but left out of the syntax tree.
func Shell() *grammar.Grammar {
	return grammar.New(grammar.Program, map[grammar.Symbol]grammar.Rule{
		grammar.Program: grammar.Sym(grammar.ExecChain).Star(),
		grammar.ExecChain: grammar.Sym(grammar.Exec).
			Then(continuation()),
		grammar.Exec: grammar.Tok(grammar.Literal).Plus(),
		grammar.PipeExec: grammar.Tok(grammar.Pipe).
			ThenSym(grammar.ExecChain),
		grammar.RedirectExec: grammar.Tok(grammar.Redirect).
			OrTok(grammar.RedirectAppend).
			ThenSym(grammar.RedirectTarget),
		grammar.RedirectTarget: grammar.Tok(grammar.Literal).
			Then(continuation()),
	})
}

// continuation matches whatever may follow a command or a redirect target.
func continuation() grammar.Rule {
	return grammar.Sym(grammar.PipeExec).
		OrSym(grammar.RedirectExec).
		Or(grammar.Tok(grammar.LineEnd).Plus().Discard())
}
