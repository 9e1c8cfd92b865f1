package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/pianolayout/pkg/buildinfo"
)

// testCLI returns a CLI whose logs and piped output are captured.
func testCLI() (*CLI, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out
	return c, &out
}

// execute runs the root command with args.
func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandSubcommands(t *testing.T) {
	c, _ := testCLI()
	root := c.RootCommand()

	want := []string{"completion", "config", "generate", "keys"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered (got %v)", name, got)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	c, _ := testCLI()
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.Contains(out.String(), "pianolayout version "+buildinfo.Version) {
		t.Errorf("--version output = %q", out.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			c, out := testCLI()
			if err := execute(c, "completion", shell); err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(out.String(), "pianolayout") {
				t.Errorf("completion %s output does not mention pianolayout", shell)
			}
		})
	}

	c, _ := testCLI()
	if err := execute(c, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
