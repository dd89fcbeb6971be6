package aggregate

import (
	"testing"
	
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

func TestSealDerivesSuccessFromErrors(t *testing.T) {
	r := NewResult()
	r.Print("hi")
	r.Warn("careful")
	r.Seal()
	assert.True(t, r.Success)
	assert.Equal(t, 0, r.ExitCode)
	
	r.AddError("bad")
	r.Seal()
	assert.False(t, r.Success)
	assert.Equal(t, 1, r.ExitCode)
	assert.Equal(t, KindNone, r.Kind)
}

func TestSealFillsNilSlices(t *testing.T) {
	r := (&Result{ExecutionTime: -3}).Seal()
	assert.Equal(t, []string{}, r.Output)
	assert.Equal(t, []string{}, r.Errors)
	assert.Equal(t, []string{}, r.Warnings)
	assert.Zero(t, r.ExecutionTime)
}

func TestFailedResult(t *testing.T) {
	r := FailedResult(NewCompileError(KindInvalidInput, "Code cannot be empty"))
	assert.False(t, r.Success)
	assert.Equal(t, []string{"Code cannot be empty"}, r.Errors)
	assert.Empty(t, r.Output)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 1, r.ExitCode)
	assert.Equal(t, KindInvalidInput, r.Kind)
}

func TestResultWireFormat(t *testing.T) {
	raw, err := sonic.Marshal(NewResult().Seal())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"output":[],"errors":[],"warnings":[],"executionTime":0,"exitCode":0}`, string(raw))
}

func TestTaskFinish(t *testing.T) {
	task := &Task{ID: "abc", Request: Request{Language: vo.Python}, Status: *vo.Pending}
	assert.Equal(t, "abc.py", task.GetFileName())
	
	task.Finish(FailedResult(NewCompileError(KindSimulatedCompileError, "x")))
	assert.Equal(t, *vo.Failed, task.Status)
	
	task.Finish(NewResult().Seal())
	assert.Equal(t, *vo.Success, task.Status)
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{Optimization: "weird", Warnings: true}.Normalize()
	assert.Equal(t, vo.OptimizationNone, s.Optimization)
	assert.True(t, s.Warnings)
	assert.Equal(t, vo.OptimizationNone, DefaultSettings().Optimization)
}
