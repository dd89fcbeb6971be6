package simulator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/pkg/log"
)

const (
	defaultMaxTimerDelay = time.Second
	defaultJSTimeout     = 5 * time.Second
	defaultMaxCallStack  = 4096

	msgTimeLimit = "Execution interrupted: time limit exceeded"
	msgCancelled = "Execution interrupted: cancelled"
)

// jsBindings are the only names the submitted code gets as parameters of the
// wrapping function. console and setTimeout are host objects; the rest are
// the runtime's own built-ins.
var jsBindings = []string{"console", "setTimeout", "Date", "Math", "JSON", "Promise", "Array", "Object", "String", "Number", "Boolean"}

// JavaScript evaluates the code in a fresh goja runtime per call.
type JavaScript struct {
	logger        *log.Logger
	maxTimerDelay time.Duration
	timeout       time.Duration
	maxCallStack  int
}

func NewJavaScript(conf *viper.Viper, logger *log.Logger) *JavaScript {
	js := &JavaScript{
		logger:        logger,
		maxTimerDelay: conf.GetDuration("app.compiler.javascript.max_timer_delay"),
		timeout:       conf.GetDuration("app.compiler.javascript.timeout"),
		maxCallStack:  conf.GetInt("app.compiler.javascript.max_call_stack"),
	}
	if js.maxTimerDelay <= 0 {
		js.maxTimerDelay = defaultMaxTimerDelay
	}
	if js.timeout <= 0 {
		js.timeout = defaultJSTimeout
	}
	if js.maxCallStack <= 0 {
		js.maxCallStack = defaultMaxCallStack
	}
	return js
}

func (j *JavaScript) Language() vo.Language {
	return vo.JavaScript
}

func (j *JavaScript) Simulate(ctx context.Context, req *aggregate.Request) *aggregate.Result {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	e := newEvaluation(j.maxTimerDelay, j.maxCallStack)
	stop := context.AfterFunc(ctx, func() {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			e.vm.Interrupt(msgTimeLimit)
			return
		}
		e.vm.Interrupt(msgCancelled)
	})
	defer stop()

	if err := e.run(ctx, req.Code); err != nil {
		j.logger.WithContext(ctx).Debug("[JavaScript.Simulate]evaluation failed", zap.Error(err))
		e.result.Fail(aggregate.NewCompileError(aggregate.KindEvaluationException, e.message(err)))
	}
	return e.result.Seal()
}

type jsTimer struct {
	seq  int
	due  time.Time
	fn   goja.Callable
	args []goja.Value
}

// evaluation is the state of one call. It is never shared.
type evaluation struct {
	vm            *goja.Runtime
	result        *aggregate.Result
	stringify     goja.Callable
	main          *goja.Promise
	timers        []*jsTimer
	seq           int
	maxTimerDelay time.Duration
	rejected      []*goja.Promise
}

func newEvaluation(maxTimerDelay time.Duration, maxCallStack int) *evaluation {
	vm := goja.New()
	vm.SetMaxCallStackSize(maxCallStack)
	e := &evaluation{
		vm:            vm,
		result:        aggregate.NewResult(),
		maxTimerDelay: maxTimerDelay,
	}
	e.stringify, _ = goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("stringify"))
	vm.SetPromiseRejectionTracker(e.trackRejection)
	return e
}

// run evaluates the code, then drains the timer queue. Promise jobs run
// whenever control returns from the runtime.
func (e *evaluation) run(ctx context.Context, code string) error {
	src := "(async function (" + strings.Join(jsBindings, ", ") + ") {\n" + code + "\n})"
	wrapper, err := e.vm.RunScript("main.js", src)
	if err != nil {
		return err
	}
	fn, ok := goja.AssertFunction(wrapper)
	if !ok {
		return errors.New("code wrapper is not callable")
	}

	args := []goja.Value{e.console(), e.vm.ToValue(e.setTimeout)}
	for _, name := range jsBindings[2:] {
		args = append(args, e.vm.Get(name))
	}
	ret, err := fn(goja.Undefined(), args...)
	if err != nil {
		return err
	}
	e.main, _ = ret.Export().(*goja.Promise)
	if err := e.thrown(); err != nil {
		return err
	}

	if err := e.drainTimers(ctx); err != nil {
		return err
	}
	if err := e.thrown(); err != nil {
		return err
	}

	for _, p := range e.rejected {
		if p != e.main {
			e.result.AddError("Uncaught (in promise) " + e.valueMessage(p.Result()))
		}
	}
	return nil
}

// thrown reports the code's own exception once the wrapper has settled with
// it. Pending timers never run after that.
func (e *evaluation) thrown() error {
	if e.main != nil && e.main.State() == goja.PromiseStateRejected {
		return &rejection{value: e.main.Result()}
	}
	return nil
}

// rejection is the async wrapper settling with an error, i.e. the code threw.
type rejection struct {
	value goja.Value
}

func (r *rejection) Error() string {
	return "rejected: " + r.value.String()
}

func (e *evaluation) drainTimers(ctx context.Context) error {
	for len(e.timers) > 0 {
		if err := e.thrown(); err != nil {
			return err
		}
		next := 0
		for i, t := range e.timers[1:] {
			if t.due.Before(e.timers[next].due) {
				next = i + 1
			}
		}
		t := e.timers[next]
		e.timers = append(e.timers[:next], e.timers[next+1:]...)

		if wait := time.Until(t.due); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return interruptedError(ctx)
			case <-timer.C:
			}
		}

		if _, err := t.fn(goja.Undefined(), t.args...); err != nil {
			var interrupted *goja.InterruptedError
			if errors.As(err, &interrupted) {
				return err
			}
			e.result.AddError(e.message(err))
		}
	}
	return nil
}

func interruptedError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.New(msgTimeLimit)
	}
	return errors.New(msgCancelled)
}

func (e *evaluation) console() goja.Value {
	console := e.vm.NewObject()
	_ = console.Set("log", e.sink(func(line string) { e.result.Print(line) }))
	_ = console.Set("error", e.sink(e.result.AddError))
	_ = console.Set("warn", e.sink(e.result.Warn))
	return console
}

func (e *evaluation) sink(write func(string)) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, e.display(arg))
		}
		write(strings.Join(parts, " "))
		return goja.Undefined()
	}
}

// display stringifies one console argument. Plain objects and arrays go
// through JSON.stringify; functions, errors and primitives use String().
func (e *evaluation) display(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return v.String()
	}
	if _, isFn := goja.AssertFunction(v); isFn || obj.ClassName() == "Error" {
		return v.String()
	}
	if e.stringify != nil {
		if s, err := e.stringify(goja.Undefined(), v); err == nil && !goja.IsUndefined(s) {
			return s.String()
		}
	}
	return v.String()
}

func (e *evaluation) setTimeout(call goja.FunctionCall) goja.Value {
	fn, ok := goja.AssertFunction(call.Argument(0))
	if !ok {
		panic(e.vm.NewTypeError("setTimeout callback must be a function"))
	}

	// delay is in milliseconds, clamped to [0, maxTimerDelay]
	delay := call.Argument(1).ToFloat()
	if math.IsNaN(delay) || delay < 0 {
		delay = 0
	}
	d := e.maxTimerDelay
	if delay < float64(e.maxTimerDelay/time.Millisecond) {
		d = time.Duration(delay * float64(time.Millisecond))
	}

	var args []goja.Value
	if len(call.Arguments) > 2 {
		args = append(args, call.Arguments[2:]...)
	}
	e.seq++
	e.timers = append(e.timers, &jsTimer{seq: e.seq, due: time.Now().Add(d), fn: fn, args: args})
	return e.vm.ToValue(e.seq)
}

func (e *evaluation) trackRejection(p *goja.Promise, op goja.PromiseRejectionOperation) {
	switch op {
	case goja.PromiseRejectionReject:
		e.rejected = append(e.rejected, p)
	case goja.PromiseRejectionHandle:
		for i, r := range e.rejected {
			if r == p {
				e.rejected = append(e.rejected[:i], e.rejected[i+1:]...)
				break
			}
		}
	}
}

// message turns an evaluation failure into the text reported to the user.
func (e *evaluation) message(err error) string {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Sprint(interrupted.Value())
	}
	var rejected *rejection
	if errors.As(err, &rejected) {
		return e.valueMessage(rejected.value)
	}
	var exception *goja.Exception
	if errors.As(err, &exception) {
		return e.valueMessage(exception.Value())
	}
	return err.Error()
}

// valueMessage prefers the message property of a thrown value.
func (e *evaluation) valueMessage(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if obj, ok := v.(*goja.Object); ok {
		if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) && !goja.IsNull(msg) {
			return msg.String()
		}
	}
	return v.String()
}
