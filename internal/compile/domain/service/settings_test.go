package service

import (
	"context"
	"testing"
	
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

func TestSettingsDefaultsAndSave(t *testing.T) {
	s := NewSettingsDomainService(newDomainService(), &memSettingsStore{data: map[string]aggregate.UserSettings{}})
	ctx := context.Background()
	
	got, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, aggregate.DefaultSettings(), got.Settings)
	assert.True(t, got.Settings.Warnings)
	
	saved, err := s.Save(ctx, "alice", aggregate.Settings{Optimization: "bogus", StrictMode: true, CustomFlags: "-O2"})
	require.NoError(t, err)
	assert.Equal(t, vo.OptimizationNone, saved.Settings.Optimization)
	
	got, err = s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, saved.Settings, got.Settings)
	assert.False(t, got.Settings.Warnings)
	assert.Equal(t, "-O2", got.Settings.CustomFlags)
}
