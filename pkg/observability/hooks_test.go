package observability

import (
	"context"
	"testing"
	"time"
)

type testWarningHooks struct{ got []Warning }

func (h *testWarningHooks) OnWarning(w Warning) { h.got = append(h.got, w) }

type testPipelineHooks struct{ calls int }

func (h *testPipelineHooks) OnParseStart(context.Context, string) { h.calls++ }
func (h *testPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
	h.calls++
}
func (h *testPipelineHooks) OnSolveStart(context.Context, string, int)                     { h.calls++ }
func (h *testPipelineHooks) OnSolveComplete(context.Context, string, time.Duration, error) { h.calls++ }
func (h *testPipelineHooks) OnRenderStart(context.Context, []string)                       { h.calls++ }
func (h *testPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.calls++
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	w := NoopWarningHooks{}
	w.OnWarning(Warning{Code: WarnOverlap, Message: "cell 3 taken"})

	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, "figure.toml")
	p.OnParseComplete(ctx, "figure.toml", 4, time.Second, nil)
	p.OnSolveStart(ctx, "figure_0", 4)
	p.OnSolveComplete(ctx, "figure_0", time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/render")
	h.OnResponse(ctx, "POST", "/render", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Warnings().(NoopWarningHooks); !ok {
		t.Error("Warnings() should return NoopWarningHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testWarningHooks{}
	SetWarningHooks(custom)
	if Warnings() != WarningHooks(custom) {
		t.Error("SetWarningHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != PipelineHooks(customPipeline) {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Reset()
	if _, ok := Warnings().(NoopWarningHooks); !ok {
		t.Error("Reset() should restore NoopWarningHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testWarningHooks{}
	SetWarningHooks(custom)
	SetWarningHooks(nil)
	if Warnings() != WarningHooks(custom) {
		t.Error("SetWarningHooks(nil) should keep previous hooks")
	}
}

func TestWarningFunc(t *testing.T) {
	var got []Warning
	h := WarningFunc(func(w Warning) { got = append(got, w) })
	h.OnWarning(Warning{Code: WarnBoundsAdjusted, Message: "widened"})

	if len(got) != 1 || got[0].Code != WarnBoundsAdjusted {
		t.Errorf("WarningFunc did not forward warning, got %v", got)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.OnWarning(Warning{Code: WarnOverlap, Message: "cell 5 taken"})
	r.OnWarning(Warning{Code: WarnOverlap, Message: "cell 5 taken"})
	r.OnWarning(Warning{Code: WarnUnknownAttribute, Message: "no such key"})

	if got := r.Count(WarnOverlap); got != 2 {
		t.Errorf("Count(WarnOverlap) = %d, want 2", got)
	}
	if got := r.Count(WarnBoundsAdjusted); got != 0 {
		t.Errorf("Count(WarnBoundsAdjusted) = %d, want 0", got)
	}
	if got := len(r.Warnings()); got != 3 {
		t.Errorf("len(Warnings()) = %d, want 3", got)
	}

	// Returned slice is a copy
	ws := r.Warnings()
	ws[0].Message = "mutated"
	if r.Warnings()[0].Message == "mutated" {
		t.Error("Warnings() should return a copy")
	}
}
