package aggregate

import (
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

// Settings tune a single compile call. Only Warnings changes what the
// simulators produce; the rest is echoed back.
type Settings struct {
	Optimization vo.Optimization `json:"optimization"`
	Warnings     bool            `json:"warnings"`
	StrictMode   bool            `json:"strictMode"`
	DebugInfo    bool            `json:"debugInfo"`
	CustomFlags  string          `json:"customFlags"`
}

func DefaultSettings() Settings {
	return Settings{
		Optimization: vo.OptimizationNone,
		Warnings:     true,
	}
}

// Normalize fills in the optimization level when it is missing or unknown.
func (s Settings) Normalize() Settings {
	s.Optimization = vo.ParseOptimization(string(s.Optimization))
	return s
}

// Request is one compile call. It is not modified while it is processed.
type Request struct {
	Code     string      `json:"code"`
	Language vo.Language `json:"language"`
	Settings Settings    `json:"settings"`
}
