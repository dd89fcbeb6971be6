package simulator

import (
	"context"
	"regexp"
	"strings"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

const msgCppAuto = "Use of 'auto' requires C++11 or later"

var cppCout = regexp.MustCompile(`cout\s*<<\s*([^;]*);`)

type Cpp struct{}

func NewCpp() *Cpp {
	return &Cpp{}
}

func (c *Cpp) Language() vo.Language {
	return vo.Cpp
}

func (c *Cpp) Simulate(_ context.Context, req *aggregate.Request) *aggregate.Result {
	if !strings.Contains(req.Code, "int main") {
		return missingEntryPoint(msgNoMainFunction)
	}
	
	result := aggregate.NewResult()
	for _, m := range cppCout.FindAllStringSubmatch(req.Code, -1) {
		result.Print(coutLine(m[1]))
	}
	if req.Settings.Warnings && strings.Contains(req.Code, "auto ") {
		result.Warn(msgCppAuto)
	}
	return result.Seal()
}

// coutLine flattens one `cout << a << b` chain. Quoted operands lose their
// quotes, endl is dropped and anything else is passed through as written,
// so a chain of only endl yields an empty line.
func coutLine(chain string) string {
	var b strings.Builder
	for _, operand := range strings.Split(chain, "<<") {
		operand = strings.TrimSpace(operand)
		switch {
		case operand == "endl" || operand == "std::endl" || operand == "":
		case len(operand) >= 2 && strings.HasPrefix(operand, `"`) && strings.HasSuffix(operand, `"`):
			b.WriteString(unescapeNewlines(operand[1 : len(operand)-1]))
		default:
			b.WriteString(operand)
		}
	}
	return b.String()
}
