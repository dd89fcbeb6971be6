package vo

import (
	"testing"
	
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageIsSupported(t *testing.T) {
	for _, l := range Languages {
		assert.True(t, l.IsSupported(), l)
		assert.NotEmpty(t, l.FileSuffix(), l)
		assert.NotEmpty(t, l.Template(), l)
	}
	for _, l := range []Language{"rust", "JavaScript", "js", "c++", "golang", ""} {
		assert.False(t, l.IsSupported(), l)
	}
}

func TestParseOptimization(t *testing.T) {
	assert.Equal(t, OptimizationNone, ParseOptimization(""))
	assert.Equal(t, OptimizationNone, ParseOptimization("extreme"))
	assert.Equal(t, OptimizationBasic, ParseOptimization("basic"))
	assert.Equal(t, OptimizationAggressive, ParseOptimization("aggressive"))
}

func TestStatusJSON(t *testing.T) {
	raw, err := sonic.Marshal(*Success)
	require.NoError(t, err)
	assert.Equal(t, `"Success"`, string(raw))
	
	var s Status
	require.NoError(t, sonic.Unmarshal([]byte(`"Failed"`), &s))
	assert.Equal(t, *Failed, s)
	assert.True(t, s.IsFinished())
	assert.False(t, Pending.IsFinished())
	
	assert.Error(t, sonic.Unmarshal([]byte(`"Running"`), &s))
}
