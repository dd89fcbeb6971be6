package aggregate

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidInput
	KindUnsupportedLanguage
	KindSimulatedCompileError
	KindEvaluationException
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindUnsupportedLanguage:
		return "UnsupportedLanguage"
	case KindSimulatedCompileError:
		return "SimulatedCompileError"
	case KindEvaluationException:
		return "EvaluationException"
	default:
		return "None"
	}
}

// CompileError is a failure that ends up in Result.Errors rather than being
// returned to the caller.
type CompileError struct {
	Kind    ErrorKind
	Message string
}

func NewCompileError(kind ErrorKind, msg string) *CompileError {
	return &CompileError{Kind: kind, Message: msg}
}

func (e *CompileError) Error() string {
	return e.Message
}
