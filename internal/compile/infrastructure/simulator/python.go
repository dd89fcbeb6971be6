package simulator

import (
	"context"
	"regexp"
	"strings"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

const (
	msgPythonDefinitions = "Function/Class definitions processed"
	msgPythonImport      = "Import statements detected: the sandbox supports a limited set of libraries"
	msgPythonNoOutput    = "No output produced — possible syntax/runtime error or unsupported constructs in sandbox"
)

// print( with a single string literal argument, optionally an f-string.
// Triple quotes are tried first so """x""" is not read as "" followed by "x".
var pythonPrint = regexp.MustCompile(`(?s)print\(\s*[fF]?(?:"""(.*?)"""|'''(.*?)'''|"((?:[^"\\\n]|\\.)*)"|'((?:[^'\\\n]|\\.)*)')`)

type Python struct{}

func NewPython() *Python {
	return &Python{}
}

func (p *Python) Language() vo.Language {
	return vo.Python
}

func (p *Python) Simulate(_ context.Context, req *aggregate.Request) *aggregate.Result {
	code := req.Code
	result := aggregate.NewResult()
	
	for _, loc := range pythonPrint.FindAllStringSubmatchIndex(code, -1) {
		if text, ok := firstGroup(code, loc); ok {
			result.Print(unescapeNewlines(text))
		}
	}
	captured := len(result.Output)
	
	if strings.Contains(code, "def ") || strings.Contains(code, "class ") {
		result.Print(msgPythonDefinitions)
	}
	if req.Settings.Warnings && strings.Contains(code, "import ") {
		result.Warn(msgPythonImport)
	}
	
	// the extractor only understands literal arguments; anything else that
	// would print is assumed to have failed in the sandbox
	if captured == 0 && pythonProducesOutput(code) {
		result.Fail(aggregate.NewCompileError(aggregate.KindSimulatedCompileError, msgPythonNoOutput))
	}
	return result.Seal()
}

func pythonProducesOutput(code string) bool {
	for _, marker := range []string{"print(", `"""`, "'''", "def ", "class "} {
		if strings.Contains(code, marker) {
			return true
		}
	}
	return false
}
