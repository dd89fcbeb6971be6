package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
	
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
)

const (
	defaultMaxCodeLength = 50000
	
	msgEmptyCode     = "Code cannot be empty"
	msgDangerousCode = "Code contains potentially dangerous operations"
)

// dangerousPatterns is a coarse screen applied to every language. A match
// anywhere in the text rejects it, identifiers included; it is not a sandbox.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)import\s+(os|subprocess)\b`),
	regexp.MustCompile(`(?i)from\s+(os|subprocess)\b`),
	regexp.MustCompile(`(?i)require\s*\(\s*['"](child_process|fs)['"]\s*\)`),
	regexp.MustCompile(`(?i)exec\s*\(`),
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)system\s*\(`),
	regexp.MustCompile(`(?i)__import__`),
	regexp.MustCompile(`(?i)file\s*\(`),
	regexp.MustCompile(`(?i)open\s*\(`),
	regexp.MustCompile(`\.\.[/\\]`),
	regexp.MustCompile(`(?i)rm\s+-rf`),
	regexp.MustCompile(`(?i)del `),
}

// Validator rejects empty, oversized and suspicious code before dispatch.
type Validator struct {
	maxLength  int
	msgTooLong string
}

func NewValidator(conf *viper.Viper) *Validator {
	maxLength := conf.GetInt("app.compiler.max_code_length")
	if maxLength <= 0 {
		maxLength = defaultMaxCodeLength
	}
	p := message.NewPrinter(language.English)
	return &Validator{
		maxLength:  maxLength,
		msgTooLong: p.Sprintf("Code is too long (maximum %d characters)", maxLength),
	}
}

// Validate applies the rules in order and reports the first failure.
func (v *Validator) Validate(req *aggregate.Request) *aggregate.CompileError {
	if strings.TrimSpace(req.Code) == "" {
		return aggregate.NewCompileError(aggregate.KindInvalidInput, msgEmptyCode)
	}
	if utf8.RuneCountInString(req.Code) > v.maxLength {
		return aggregate.NewCompileError(aggregate.KindInvalidInput, v.msgTooLong)
	}
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(req.Code) {
			return aggregate.NewCompileError(aggregate.KindInvalidInput, msgDangerousCode)
		}
	}
	return nil
}
