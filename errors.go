package mathparser

// Error is the kind of failure of an evaluation. Every error returned by the
// package for bad input is an Error, so callers can compare directly:
//
//	if err == mathparser.MismatchedParenthesis { ... }
//
// errors.Is works as well.
type Error int

const (
	// MismatchedParenthesis indicates an open parenthesis with no matching
	// close parenthesis or the reverse.
	MismatchedParenthesis Error = iota + 1
	// InvalidNotation indicates a malformed operator sequence, an operator
	// without enough operands, or a token that should have been a number but
	// is not.
	InvalidNotation
	// InvalidFunction indicates an unknown function name, a call with the
	// wrong number of arguments, or a call that cannot be split into a name
	// and arguments.
	InvalidFunction
)

func (err Error) Error() string {
	switch err {
	case MismatchedParenthesis:
		return "Mismatched parenthesis"
	case InvalidNotation:
		return "Invalid notation"
	case InvalidFunction:
		return "Invalid function"
	default:
		return "mathparser: unknown error"
	}
}
