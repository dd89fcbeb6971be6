package simulator

import (
	"github.com/spf13/viper"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/pkg/log"
)

// Registry holds one simulator per supported language.
type Registry struct {
	javascript Simulator
	python     Simulator
	java       Simulator
	cpp        Simulator
	c          Simulator
	golang     Simulator
}

func NewRegistry(conf *viper.Viper, logger *log.Logger) *Registry {
	return &Registry{
		javascript: NewJavaScript(conf, logger),
		python:     NewPython(),
		java:       NewJava(),
		cpp:        NewCpp(),
		c:          NewC(),
		golang:     NewGo(),
	}
}

// Dispatch picks the simulator for lang. Adding a language means adding a
// case here and a constant in vo.
func (r *Registry) Dispatch(lang vo.Language) (Simulator, error) {
	switch lang {
	case vo.JavaScript:
		return r.javascript, nil
	case vo.Python:
		return r.python, nil
	case vo.Java:
		return r.java, nil
	case vo.Cpp:
		return r.cpp, nil
	case vo.C:
		return r.c, nil
	case vo.Go:
		return r.golang, nil
	default:
		return nil, aggregate.NewCompileError(aggregate.KindUnsupportedLanguage, "Unsupported language: "+lang.String())
	}
}
