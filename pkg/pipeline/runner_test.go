package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/observability"
)

func TestExecute(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Formats: []string{FormatXML, FormatJSON, FormatSVG, FormatPNG},
		Labels:  true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if len(result.Layout.Keys) != 88 {
		t.Errorf("Layout keys = %d, want 88", len(result.Layout.Keys))
	}
	if result.Stats.WhiteKeys != 52 || result.Stats.BlackKeys != 36 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	for _, f := range []string{FormatXML, FormatJSON, FormatSVG, FormatPNG} {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if !strings.HasPrefix(string(result.Artifacts[FormatXML]), "<Layout>") {
		t.Error("xml artifact does not start with <Layout>")
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact lacks PNG signature")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	runner := NewRunner(nil)
	opts := Options{Formats: []string{FormatXML, FormatJSON, FormatSVG}}

	a, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	b, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for f, data := range a.Artifacts {
		if !bytes.Equal(data, b.Artifacts[f]) {
			t.Errorf("%s output differs between runs", f)
		}
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{Formats: []string{"pdf"}})
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want %v", err, errs.ErrCodeInvalidFormat)
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestExecuteLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	if _, err := NewRunner(logger).Execute(context.Background(), Options{}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"generated layout", "rendered outputs", "Generated xml"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := NewRunner(nil).Execute(context.Background(), Options{Formats: []string{FormatXML, FormatSVG}}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.generated != 88 {
		t.Errorf("OnGenerateComplete keys = %d, want 88", hooks.generated)
	}
	if len(hooks.artifacts) != 2 {
		t.Errorf("OnArtifact calls = %v, want 2", hooks.artifacts)
	}
	if !hooks.rendered {
		t.Error("OnRenderComplete not called")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks

	mu        sync.Mutex
	generated int
	artifacts []string
	rendered  bool
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, keys int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.generated = keys
}

func (h *recordingHooks) OnArtifact(_ context.Context, format string, _ int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.artifacts = append(h.artifacts, format)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rendered = true
}
