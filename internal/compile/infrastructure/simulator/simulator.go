package simulator

import (
	"context"
	"strings"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

// Simulator produces a result for one language without invoking a real
// toolchain. Failures are reported inside the returned result.
type Simulator interface {
	Language() vo.Language
	Simulate(ctx context.Context, req *aggregate.Request) *aggregate.Result
}

const (
	msgNoMainMethod   = "No main method found"
	msgNoMainFunction = "No main function found"
)

func missingEntryPoint(msg string) *aggregate.Result {
	return aggregate.FailedResult(aggregate.NewCompileError(aggregate.KindSimulatedCompileError, msg))
}

// unescapeNewlines turns the two-character sequence \n into a line break.
// Other escapes are left as written.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// firstGroup returns the first participating capture group of a submatch
// index slice.
func firstGroup(src string, loc []int) (string, bool) {
	for g := 1; 2*g+1 < len(loc); g++ {
		if loc[2*g] >= 0 {
			return src[loc[2*g]:loc[2*g+1]], true
		}
	}
	return "", false
}
