package convert

import (
	"fmt"
	"time"
	
	"github.com/google/uuid"
	
	v1 "github.com/Wenrh2004/playground/api/v1"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

const (
	LineInfo    = "info"
	LineStdout  = "stdout"
	LineWarning = "warning"
	LineError   = "error"
	LineSuccess = "success"
)

// SettingsConvert applies the defaults for omitted fields.
func SettingsConvert(s *v1.CompileSettings) aggregate.Settings {
	if s == nil {
		return aggregate.DefaultSettings()
	}
	settings := aggregate.Settings{
		Optimization: vo.ParseOptimization(s.Optimization),
		Warnings:     true,
		StrictMode:   s.StrictMode,
		DebugInfo:    s.DebugInfo,
		CustomFlags:  s.CustomFlags,
	}
	if s.Warnings != nil {
		settings.Warnings = *s.Warnings
	}
	return settings
}

func SettingsBodyConvert(s aggregate.Settings) v1.CompileSettings {
	warnings := s.Warnings
	return v1.CompileSettings{
		Optimization: string(s.Optimization),
		Warnings:     &warnings,
		StrictMode:   s.StrictMode,
		DebugInfo:    s.DebugInfo,
		CustomFlags:  s.CustomFlags,
	}
}

func CompileRequestConvert(req *v1.CompileRequest) *aggregate.Request {
	return &aggregate.Request{
		Code:     req.Code,
		Language: vo.Language(req.Language),
		Settings: SettingsConvert(req.Settings),
	}
}

func CompileResponseConvert(req *aggregate.Request, result *aggregate.Result, now time.Time) *v1.CompileResponseBody {
	return &v1.CompileResponseBody{
		CompileResultBody: v1.CompileResultBody{
			Success:       result.Success,
			Output:        result.Output,
			Errors:        result.Errors,
			Warnings:      result.Warnings,
			ExecutionTime: result.ExecutionTime,
			MemoryUsage:   result.MemoryUsage,
			ExitCode:      result.ExitCode,
		},
		Settings: SettingsBodyConvert(req.Settings),
		Lines:    OutputLines(req, result, now),
	}
}

// OutputLines decorates a result for display: a header, stdout, warnings,
// errors and a closing status line, all stamped with now.
func OutputLines(req *aggregate.Request, result *aggregate.Result, now time.Time) []v1.OutputLine {
	lines := make([]v1.OutputLine, 0, len(result.Output)+len(result.Warnings)+len(result.Errors)+2)
	add := func(typ, content string) {
		lines = append(lines, v1.OutputLine{
			ID:        uuid.NewString(),
			Type:      typ,
			Content:   content,
			Timestamp: now,
		})
	}
	
	add(LineInfo, fmt.Sprintf("Running %s (optimization: %s)", req.Language.DisplayName(), req.Settings.Optimization))
	for _, out := range result.Output {
		add(LineStdout, out)
	}
	for _, w := range result.Warnings {
		add(LineWarning, w)
	}
	for _, e := range result.Errors {
		add(LineError, e)
	}
	if result.Success {
		add(LineSuccess, fmt.Sprintf("Execution completed in %dms (exit code %d)", result.ExecutionTime, result.ExitCode))
	} else {
		add(LineError, fmt.Sprintf("Execution failed in %dms (exit code %d)", result.ExecutionTime, result.ExitCode))
	}
	return lines
}

func LanguagesConvert() []v1.LanguageBody {
	body := make([]v1.LanguageBody, 0, len(vo.Languages))
	for _, l := range vo.Languages {
		body = append(body, v1.LanguageBody{
			ID:         l.String(),
			Name:       l.DisplayName(),
			FileSuffix: l.FileSuffix(),
			Template:   l.Template(),
		})
	}
	return body
}
