package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pianolayout/pkg/config"
	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/keyboard"
	"github.com/matzehuels/pianolayout/pkg/pipeline"
)

// keyHeaders are the column titles of the key table.
var keyHeaders = []string{"#", "Key", "Pitch", "MIDI", "Color", "Offset", "Extent", "End", "Cross"}

// keysCommand creates the keys command for inspecting the generated keys.
func (c *CLI) keysCommand() *cobra.Command {
	var (
		color      string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "keys [name...]",
		Short: "Print the generated keys as a table",
		Long: `Print the generated keys as a table.

Keys are listed in generation order from c8 down to a0 with their MIDI note,
their normalized long-axis offset, extent and end, and their cross-axis
extent. Pass key names (e.g. c4 bb3) to list only those keys.`,
		Example: `  pianolayout keys --color black
  pianolayout keys c8 a0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runKeys(cmd.Context(), configPath, color, args)
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "only list keys of one color: white, black")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./"+config.FileName+" if present)")

	return cmd
}

// runKeys generates the layout with the configured tuning and prints it.
func (c *CLI) runKeys(ctx context.Context, configPath, color string, names []string) error {
	var filter *keyboard.Color
	if color != "" {
		col, err := keyboard.ParseColor(color)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid --color")
		}
		filter = &col
	}

	cfg, _, err := config.LoadOptional(configPath)
	if err != nil {
		return err
	}
	opts := pipeline.FromConfig(cfg)
	opts.Logger = loggerFromContext(ctx)

	l, err := pipeline.NewRunner(opts.Logger).Generate(ctx, opts)
	if err != nil {
		return err
	}

	if len(names) > 0 {
		if l, err = selectKeys(l, names); err != nil {
			return err
		}
	}

	rows := keyRows(l, filter)
	fmt.Fprintln(c.Out, renderKeyTable(rows))
	fmt.Fprintln(c.Out, StyleNumber.Render(strconv.Itoa(len(rows)))+StyleDim.Render(" keys"))
	return nil
}

// selectKeys returns the layout restricted to the named keys, in the order
// given.
func selectKeys(l keyboard.Layout, names []string) (keyboard.Layout, error) {
	selected := keyboard.Layout{Tuning: l.Tuning}
	for _, name := range names {
		k, ok := l.Key(strings.ToLower(name))
		if !ok {
			return keyboard.Layout{}, errs.New(errs.ErrCodeInvalidInput, "unknown key %q", name)
		}
		selected.Keys = append(selected.Keys, k)
	}
	return selected, nil
}

// keyRows formats the keys of l, optionally only those of one color.
func keyRows(l keyboard.Layout, filter *keyboard.Color) [][]string {
	var rows [][]string
	for _, k := range l.Keys {
		if filter != nil && k.Color != *filter {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(k.Index),
			k.Name,
			k.Pitch().Name() + strconv.Itoa(k.Octave),
			strconv.Itoa(k.MIDI),
			k.Color.String(),
			strconv.FormatFloat(k.Offset, 'f', 6, 64),
			strconv.FormatFloat(k.Extent, 'f', 6, 64),
			strconv.FormatFloat(k.End(), 'f', 6, 64),
			strconv.FormatFloat(k.CrossExtent, 'f', 2, 64),
		})
	}
	return rows
}

// renderKeyTable draws rows as a bordered table.
func renderKeyTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(keyHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(rows) {
				return cell
			}
			if rows[row][4] == keyboard.Black.String() {
				return cell.Inherit(styleBlackKey)
			}
			return cell.Inherit(styleWhiteKey)
		})

	return t.Render()
}
