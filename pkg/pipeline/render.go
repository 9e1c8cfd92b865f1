package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
	"github.com/matzehuels/pianolayout/pkg/observability"
	"github.com/matzehuels/pianolayout/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the layout is only read.
func Render(ctx context.Context, l keyboard.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(opts.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			formatStart := time.Now()
			data, err := RenderFormat(l, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			hooks.OnArtifact(gctx, format, len(data), time.Since(formatStart))
			opts.Logger.Debugf("Generated %s: %d bytes", format, len(data))

			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat serializes l in a single format. opts must be validated.
func RenderFormat(l keyboard.Layout, format string, opts Options) ([]byte, error) {
	o := opts.orientation()

	switch format {
	case FormatXML:
		return sink.RenderXML(l, sink.WithXMLOrientation(o)), nil
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONOrientation(o), sink.WithJSONTuning())
	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithOrientation(o), sink.WithSize(opts.Width, opts.Height)}
		if opts.Labels {
			svgOpts = append(svgOpts, sink.WithLabels())
		}
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{
			sink.WithPNGOrientation(o),
			sink.WithPNGSize(opts.Width, opts.Height),
			sink.WithScale(opts.Scale),
		}
		if opts.Labels {
			pngOpts = append(pngOpts, sink.WithPNGLabels())
		}
		return sink.RenderPNG(l, pngOpts...)
	default:
		return nil, ValidateFormat(format)
	}
}
