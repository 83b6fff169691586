package parser

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	// lexical errors
	synErrInvalidToken = newSyntaxError("invalid token")

	// syntax errors
	synErrUnexpectedEOF     = newSyntaxError("unexpected EOF")
	synErrInvalidNum        = newSyntaxError("a count must be a non-negative integer")
	synErrInvalidNonTerm    = newSyntaxError("invalid non-terminal symbol; a non-terminal must be an upper-case letter")
	synErrInvalidTerm       = newSyntaxError("invalid terminal symbol; a terminal must be a lower-case letter, a digit, an arithmetic operator, or a bracket")
	synErrExtraSymbols      = newSyntaxError("too many symbols; a symbol list must end with the line")
	synErrMalformedRule     = newSyntaxError("malformed rule; a rule must look like `X -> product`")
	synErrRuleInvalidLHS    = newSyntaxError("the LHS of a rule must be a non-terminal symbol")
	synErrInvalidStart      = newSyntaxError("invalid start symbol; a start symbol must be a non-terminal symbol")
	synErrStartNoNewline    = newSyntaxError("a start symbol must be followed by a newline")
	synErrTooFewWords       = newSyntaxError("too few words")
	synErrUnexpectedContent = newSyntaxError("unexpected content after the last word")
)
