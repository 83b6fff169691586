package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrInvalidNonTerminal = newSemanticError("invalid non-terminal symbol")
	semErrInvalidTerminal    = newSemanticError("invalid terminal symbol")
	semErrNoStartSymbol      = newSemanticError("a grammar needs a start symbol")
	semErrUndefinedStart     = newSemanticError("a start symbol must be a declared non-terminal symbol")
	semErrUndefinedLHS       = newSemanticError("the LHS of a rule must be a declared non-terminal symbol")
	semErrUndefinedSym       = newSemanticError("undefined symbol")
)
