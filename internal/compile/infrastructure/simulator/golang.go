package simulator

import (
	"context"
	"regexp"
	"strings"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

const msgGoGoroutine = "Goroutines detected: execution order is not guaranteed in simulation"

// a call ends at the ")" followed by ";", "}", a comment or the end of the
// line, so nested calls keep their parentheses and calls on one line split
var goPrintln = regexp.MustCompile(`(?m)fmt\.Println\((.*?)\)\s*(?:;|\}|//|$)`)

var goQuotes = strings.NewReplacer(`"`, "", "`", "")

type Go struct{}

func NewGo() *Go {
	return &Go{}
}

func (g *Go) Language() vo.Language {
	return vo.Go
}

func (g *Go) Simulate(_ context.Context, req *aggregate.Request) *aggregate.Result {
	if !strings.Contains(req.Code, "func main") {
		return missingEntryPoint(msgNoMainFunction)
	}
	
	result := aggregate.NewResult()
	for _, m := range goPrintln.FindAllStringSubmatch(req.Code, -1) {
		result.Print(goQuotes.Replace(m[1]))
	}
	if req.Settings.Warnings && strings.Contains(req.Code, "go func") {
		result.Warn(msgGoGoroutine)
	}
	return result.Seal()
}
