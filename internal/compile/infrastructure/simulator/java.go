package simulator

import (
	"context"
	"regexp"
	"strings"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

const msgJavaVar = "Use of 'var' requires Java 10 or later"

var (
	javaMain    = regexp.MustCompile(`public\s+static\s+void\s+main\s*\(`)
	javaPrintln = regexp.MustCompile(`System\.out\.println\(\s*"((?:[^"\\]|\\.)*)"`)
)

type Java struct{}

func NewJava() *Java {
	return &Java{}
}

func (j *Java) Language() vo.Language {
	return vo.Java
}

func (j *Java) Simulate(_ context.Context, req *aggregate.Request) *aggregate.Result {
	if !javaMain.MatchString(req.Code) {
		return missingEntryPoint(msgNoMainMethod)
	}
	
	result := aggregate.NewResult()
	for _, m := range javaPrintln.FindAllStringSubmatch(req.Code, -1) {
		result.Print(unescapeNewlines(m[1]))
	}
	if req.Settings.Warnings && strings.Contains(req.Code, "var ") {
		result.Warn(msgJavaVar)
	}
	return result.Seal()
}
