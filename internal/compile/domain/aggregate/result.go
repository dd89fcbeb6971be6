package aggregate

// Result is what every compile call returns, successful or not.
type Result struct {
	Success       bool     `json:"success"`
	Output        []string `json:"output"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	ExecutionTime int64    `json:"executionTime"`
	MemoryUsage   *int64   `json:"memoryUsage,omitempty"`
	ExitCode      int      `json:"exitCode"`
	
	// Kind classifies the first failure; it is not part of the wire format.
	Kind ErrorKind `json:"-"`
}

func NewResult() *Result {
	return &Result{
		Output:   []string{},
		Errors:   []string{},
		Warnings: []string{},
	}
}

// FailedResult is the result of a call rejected before or by a simulator.
func FailedResult(err *CompileError) *Result {
	r := NewResult()
	r.Fail(err)
	return r.Seal()
}

func (r *Result) Print(lines ...string) {
	r.Output = append(r.Output, lines...)
}

func (r *Result) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddError records a message without classifying it (console.error).
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *Result) Fail(err *CompileError) {
	if r.Kind == KindNone {
		r.Kind = err.Kind
	}
	r.Errors = append(r.Errors, err.Message)
}

// Seal enforces success == no errors and the matching exit code.
func (r *Result) Seal() *Result {
	if r.Output == nil {
		r.Output = []string{}
	}
	if r.Errors == nil {
		r.Errors = []string{}
	}
	if r.Warnings == nil {
		r.Warnings = []string{}
	}
	r.Success = len(r.Errors) == 0
	if r.Success {
		r.ExitCode = 0
	} else if r.ExitCode == 0 {
		r.ExitCode = 1
	}
	if r.ExecutionTime < 0 {
		r.ExecutionTime = 0
	}
	return r
}
