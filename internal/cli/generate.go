package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/pianolayout/pkg/config"
	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/observability"
	"github.com/matzehuels/pianolayout/pkg/pipeline"
)

// generateFlags holds the generate flags that are not pipeline options.
type generateFlags struct {
	formats    string // comma-separated output formats
	output     string // output file (single format) or base path
	configPath string // explicit config file
	stdout     bool   // write the artifact to stdout instead of a file
}

// generateCommand creates the generate command for writing the keyboard layout.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the 88-key keyboard layout",
		Long: `Generate the 88-key keyboard layout.

The layout is computed from c8 down to a0 and written in every requested
format. XML is the layout description with one normalized rectangle per key;
JSON carries the same geometry plus key metadata; SVG and PNG draw the keys.

Settings are read from --config, or from ./pianolayout.toml when it exists.
Flags given on the command line override the config file.`,
		Example: `  pianolayout generate
  pianolayout generate -f svg,png --labels -o keyboard
  pianolayout generate -f json --orientation horizontal --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := c.resolveOptions(cmd.Flags(), flags, opts)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), resolved, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): xml (default), json, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (default: "+defaultBaseName+")")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: ./"+config.FileName+" if present)")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "write a single text format to stdout")

	cmd.Flags().StringVar(&opts.Orientation, "orientation", "", "long axis of the keyboard: vertical (default), horizontal")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "image width in pixels (svg, png)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "image height in pixels (svg, png)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "pixel scale factor (png)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label the C keys and a0 (svg, png)")

	return cmd
}

// resolveOptions layers the flags the user set over the config file.
func (c *CLI) resolveOptions(fs *pflag.FlagSet, flags generateFlags, flagOpts pipeline.Options) (pipeline.Options, error) {
	if flagOpts.Scale <= 0 {
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput, "scale must be positive, got %v", flagOpts.Scale)
	}
	cfg, path, err := config.LoadOptional(flags.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	if path != "" {
		c.Logger.Debugf("Using config %s", path)
	}

	opts := pipeline.FromConfig(cfg)
	opts.Scale = flagOpts.Scale
	if fs.Changed("format") {
		opts.Formats = pipeline.ParseFormats(flags.formats)
	}
	if fs.Changed("orientation") {
		opts.Orientation = strings.ToLower(flagOpts.Orientation)
	}
	if fs.Changed("width") {
		opts.Width = flagOpts.Width
	}
	if fs.Changed("height") {
		opts.Height = flagOpts.Height
	}
	if fs.Changed("labels") {
		opts.Labels = flagOpts.Labels
	}
	opts.Logger = c.Logger

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	if flags.output != "" {
		if err := errs.ValidateOutputPath(flags.output); err != nil {
			return pipeline.Options{}, err
		}
	}
	if flags.stdout {
		if len(opts.Formats) != 1 || !pipeline.TextFormats[opts.Formats[0]] {
			return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput, "--stdout needs exactly one of xml, json, svg (got %s)", strings.Join(opts.Formats, ","))
		}
		if flags.output != "" {
			return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput, "--stdout and --output are mutually exclusive")
		}
	}
	return opts, nil
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, flags generateFlags) error {
	logger := loggerFromContext(ctx)

	if logger.GetLevel() <= LogDebug {
		observability.SetPipelineHooks(&observability.LogHooks{Logger: logger})
		defer observability.Reset()
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering keyboard...")
	spinner.Start()

	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if flags.stdout {
		_, err := c.Out.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, flags.output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	printSuccess("Keyboard layout complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats)
	return nil
}

// writeArtifacts writes one file per format and returns the paths written.
// A single format is written to output as given; multiple formats share
// output as base path and get the format as extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		path := outputPath(output, format, len(formats))
		if err := errs.ValidateOutputPath(path); err != nil {
			return paths, err
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath returns the file for format. An explicit file name is kept for
// a single format; otherwise the format extension is appended to the base.
func outputPath(output, format string, count int) string {
	if output != "" && count == 1 && filepath.Ext(output) != "" {
		return output
	}
	return basePath(output) + "." + format
}

// basePath derives the base output path from the output flag.
// If output has a format extension (.xml, .svg, etc.), it strips that extension.
func basePath(output string) string {
	if output == "" {
		return defaultBaseName
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
