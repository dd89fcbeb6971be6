package simulator

import (
	"context"
	"testing"
	"time"
	
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/pkg/log"
)

func newTestJavaScript(settings map[string]any) *JavaScript {
	conf := viper.New()
	for k, v := range settings {
		conf.Set(k, v)
	}
	return NewJavaScript(conf, log.NewNop())
}

func runJS(t *testing.T, js *JavaScript, code string) *aggregate.Result {
	t.Helper()
	return js.Simulate(context.Background(), request(vo.JavaScript, code, true))
}

func TestJavaScriptConsole(t *testing.T) {
	js := newTestJavaScript(nil)
	
	res := runJS(t, js, `console.log("hi")`)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"hi"}, res.Output)
	assert.Equal(t, []string{}, res.Errors)
	assert.Equal(t, 0, res.ExitCode)
	
	res = runJS(t, js, `console.log({a: 1}, [1, "b"], "x", 2, null, undefined, true)`)
	assert.Equal(t, []string{`{"a":1} [1,"b"] x 2 null undefined true`}, res.Output)
	
	res = runJS(t, js, `console.warn("careful"); console.log(new Error("e"), function f() {}.name)`)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"careful"}, res.Warnings)
	assert.Equal(t, []string{"Error: e f"}, res.Output)
	
	res = runJS(t, js, `console.error("bad", 1)`)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"bad 1"}, res.Errors)
	assert.Equal(t, 1, res.ExitCode)
}

func TestJavaScriptException(t *testing.T) {
	js := newTestJavaScript(nil)
	
	res := runJS(t, js, `throw new Error("boom")`)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"boom"}, res.Errors)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, aggregate.KindEvaluationException, res.Kind)
	
	res = runJS(t, js, "console.log(\"before\")\nconsole.warn(\"w\")\nundefinedFn()\nconsole.log(\"after\")")
	assert.Equal(t, []string{"before"}, res.Output)
	assert.Equal(t, []string{"w"}, res.Warnings)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "undefinedFn")
	
	res = runJS(t, js, `throw "plain"`)
	assert.Equal(t, []string{"plain"}, res.Errors)
	
	res = runJS(t, js, `let = ;`)
	assert.False(t, res.Success)
	assert.Len(t, res.Errors, 1)

	// pending timers are dropped once the code has thrown
	res = runJS(t, js, `
console.log("first");
setTimeout(() => console.log("late"), 10);
setTimeout(() => { throw new Error("t") }, 5);
throw new Error("boom");
`)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"first"}, res.Output)
	assert.Equal(t, []string{"boom"}, res.Errors)
	assert.Equal(t, 1, res.ExitCode)

	res = runJS(t, js, `
setTimeout(() => console.log("late"), 20);
await new Promise(resolve => setTimeout(resolve, 5));
console.log("resumed");
throw new Error("after await");
`)
	assert.Equal(t, []string{"resumed"}, res.Output)
	assert.Equal(t, []string{"after await"}, res.Errors)
}

func TestJavaScriptTimersAndPromises(t *testing.T) {
	js := newTestJavaScript(nil)
	
	res := runJS(t, js, `
setTimeout(() => console.log("late"), 30);
setTimeout((a, b) => console.log("early", a, b), 5, 1, 2);
Promise.resolve(3).then(v => console.log("micro", v));
console.log("sync");
`)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"sync", "micro 3", "early 1 2", "late"}, res.Output)
	
	res = runJS(t, js, `
await new Promise(resolve => setTimeout(resolve, 5));
console.log("after await");
`)
	assert.Equal(t, []string{"after await"}, res.Output)
	
	res = runJS(t, js, `setTimeout(() => { throw new Error("in timer") }, 0); setTimeout(() => console.log("still runs"), 1)`)
	assert.Equal(t, []string{"in timer"}, res.Errors)
	assert.Equal(t, []string{"still runs"}, res.Output)
}

func TestJavaScriptTimerDelayIsClamped(t *testing.T) {
	js := newTestJavaScript(map[string]any{"app.compiler.javascript.max_timer_delay": "20ms"})
	
	start := time.Now()
	res := runJS(t, js, `setTimeout(() => console.log("done"), 1e12)`)
	assert.Equal(t, []string{"done"}, res.Output)
	assert.Less(t, time.Since(start), time.Second)
	
	res = runJS(t, js, `setTimeout(() => console.log("b"), 1e12); setTimeout(() => console.log("a"), -5)`)
	assert.Equal(t, []string{"a", "b"}, res.Output)
}

func TestJavaScriptUnhandledRejection(t *testing.T) {
	js := newTestJavaScript(nil)
	
	res := runJS(t, js, `Promise.reject(new Error("nope")); console.log("ran")`)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"ran"}, res.Output)
	assert.Equal(t, []string{"Uncaught (in promise) nope"}, res.Errors)
	
	res = runJS(t, js, `Promise.reject(new Error("caught")).catch(e => console.log(e.message))`)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"caught"}, res.Output)
}

func TestJavaScriptInterrupt(t *testing.T) {
	js := newTestJavaScript(map[string]any{"app.compiler.javascript.timeout": "100ms"})
	
	res := runJS(t, js, `console.log("start"); while (true) {}`)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"start"}, res.Output)
	assert.Equal(t, []string{msgTimeLimit}, res.Errors)
	
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res = js.Simulate(ctx, request(vo.JavaScript, `while (true) {}`, false))
	assert.Equal(t, []string{msgCancelled}, res.Errors)
}

func TestJavaScriptIsolation(t *testing.T) {
	js := newTestJavaScript(nil)
	
	res := runJS(t, js, `globalThis.leak = 1; console.log(typeof leak)`)
	assert.Equal(t, []string{"number"}, res.Output)
	
	res = runJS(t, js, `console.log(typeof leak, typeof require, typeof process)`)
	assert.Equal(t, []string{"undefined undefined undefined"}, res.Output)
}
