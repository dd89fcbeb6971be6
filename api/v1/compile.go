package v1

import "time"

type CompileSettings struct {
	Optimization string `json:"optimization" enums:"none,basic,aggressive"`
	// Warnings defaults to true when omitted.
	Warnings    *bool  `json:"warnings,omitempty"`
	StrictMode  bool   `json:"strictMode"`
	DebugInfo   bool   `json:"debugInfo"`
	CustomFlags string `json:"customFlags"`
}

// CompileRequest carries no validation tags: empty or oversized code is
// reported in the compile result, not as a bad request.
type CompileRequest struct {
	Code     string           `json:"code"`
	Language string           `json:"language" enums:"javascript,python,java,cpp,c,go"`
	Settings *CompileSettings `json:"settings,omitempty"`
}

type OutputLine struct {
	ID        string    `json:"id"`
	Type      string    `json:"type" enums:"info,stdout,warning,error,success"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type CompileResultBody struct {
	Success       bool     `json:"success"`
	Output        []string `json:"output"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	ExecutionTime int64    `json:"executionTime"`
	MemoryUsage   *int64   `json:"memoryUsage,omitempty"`
	ExitCode      int      `json:"exitCode"`
}

type CompileResponseBody struct {
	CompileResultBody
	Settings CompileSettings `json:"settings"`
	Lines    []OutputLine    `json:"lines"`
}

type CompileResponse struct {
	Response
	Data CompileResponseBody `json:"data"`
}

type LanguageBody struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FileSuffix string `json:"file_suffix"`
	Template   string `json:"template"`
}

type LanguagesResponse struct {
	Response
	Data []LanguageBody `json:"data"`
}
