package simulator

import (
	"errors"
	"testing"
	
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/pkg/log"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry(viper.New(), log.NewNop())
	
	for _, lang := range vo.Languages {
		sim, err := r.Dispatch(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, lang, sim.Language())
	}
	
	for _, lang := range []vo.Language{"rust", "JavaScript", "golang", ""} {
		_, err := r.Dispatch(lang)
		var compileErr *aggregate.CompileError
		require.True(t, errors.As(err, &compileErr), lang)
		assert.Equal(t, aggregate.KindUnsupportedLanguage, compileErr.Kind)
		assert.Equal(t, "Unsupported language: "+string(lang), compileErr.Message)
	}
}
