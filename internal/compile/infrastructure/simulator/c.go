package simulator

import (
	"context"
	"regexp"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

var (
	cMain   = regexp.MustCompile(`int\s+main\s*\(`)
	cPrintf = regexp.MustCompile(`printf\(\s*"((?:[^"\\]|\\.)*)"`)
)

type C struct{}

func NewC() *C {
	return &C{}
}

func (c *C) Language() vo.Language {
	return vo.C
}

// Simulate prints the format string of every printf call; arguments are not
// substituted.
func (c *C) Simulate(_ context.Context, req *aggregate.Request) *aggregate.Result {
	if !cMain.MatchString(req.Code) {
		return missingEntryPoint(msgNoMainFunction)
	}
	
	result := aggregate.NewResult()
	for _, m := range cPrintf.FindAllStringSubmatch(req.Code, -1) {
		result.Print(unescapeNewlines(m[1]))
	}
	return result.Seal()
}
