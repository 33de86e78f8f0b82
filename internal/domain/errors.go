package domain

import "fmt"

// Grammar violations reported by ParseDefinition.
const (
	MsgUnterminatedString = "unterminated string"
	MsgMissingBracket     = "missing ']'"
	MsgInvalidDefinition  = "invalid definition"
	MsgInvalidIdentifier  = "invalid identifier"
	MsgMissingID          = "missing id"
)

// GrammarError reports a manifest line that violates the definition grammar.
// Line is 1-based and zero until the caller driving the parse attaches it.
type GrammarError struct {
	Line int
	Msg  string
}

func (e *GrammarError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s in line %d", e.Msg, e.Line)
	}

	return e.Msg
}

func grammarError(msg string) error {
	return &GrammarError{Msg: msg}
}

// SemanticError reports a manifest that parses but can not be compiled,
// e.g. two entries resolving to the same identifier.
type SemanticError struct {
	ID string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("duplicate id '%s'", e.ID)
}
