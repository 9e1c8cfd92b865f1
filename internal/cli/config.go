package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pianolayout/pkg/config"
	errs "github.com/matzehuels/pianolayout/pkg/errors"
)

// configCommand creates the config command for managing pianolayout.toml.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pianolayout config file",
		Long: `Manage the pianolayout config file.

The config file tunes the keyboard geometry and sets default render options.
It is read from --config or from ./` + config.FileName + ` when present.`,
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand writes the default config.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			return c.runConfigInit(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runConfigInit(path string, force bool) error {
	if err := errs.ValidateOutputPath(path); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	data, err := config.Encode(config.Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.Logger.Debugf("Wrote %d bytes", len(data))

	printSuccess("Config written")
	printFile(path)
	printNewline()
	printNextStep("Generate", appName+" generate --config "+path)
	return nil
}

// configShowCommand prints the effective config.
func (c *CLI) configShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigShow(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./"+config.FileName+" if present)")

	return cmd
}

func (c *CLI) runConfigShow(configPath string) error {
	cfg, path, err := config.LoadOptional(configPath)
	if err != nil {
		return err
	}
	if path == "" {
		c.Logger.Info("No config file found, showing defaults")
	} else {
		c.Logger.Infof("Loaded %s", path)
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = c.Out.Write(data)
	return err
}
