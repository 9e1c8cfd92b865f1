package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

func TestKeyRows(t *testing.T) {
	l, err := keyboard.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	rows := keyRows(l, nil)
	if len(rows) != keyboard.NumKeys {
		t.Fatalf("rows = %d, want %d", len(rows), keyboard.NumKeys)
	}

	want := [][]string{
		{"0", "c8", "C8", "108", "white", "0.000000", "0.011364", "0.011364", "1.00"},
		{"1", "b7", "B7", "107", "white", "0.011364", "0.020483", "0.031847", "1.00"},
		{"2", "bb7", "Bb7", "106", "black", "0.022727", "0.011364", "0.034091", "0.60"},
	}
	if diff := cmp.Diff(want, rows[:3]); diff != "" {
		t.Errorf("first rows mismatch (-want +got):\n%s", diff)
	}
	if last := rows[len(rows)-1]; last[1] != "a0" || last[3] != "21" {
		t.Errorf("last row = %v, want a0 / 21", last)
	}

	black := keyboard.Black
	if n := len(keyRows(l, &black)); n != 36 {
		t.Errorf("black rows = %d, want 36", n)
	}
}

func TestRenderKeyTable(t *testing.T) {
	out := renderKeyTable([][]string{{"0", "c8", "C8", "108", "white", "0.000000", "0.011364", "0.011364", "1.00"}})
	for _, want := range append(keyHeaders, "c8", "108") {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestSelectKeys(t *testing.T) {
	l, err := keyboard.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	sel, err := selectKeys(l, []string{"A0", "c4"})
	if err != nil {
		t.Fatalf("selectKeys() error: %v", err)
	}
	var names []string
	for _, k := range sel.Keys {
		names = append(names, k.Name)
	}
	if diff := cmp.Diff([]string{"a0", "c4"}, names); diff != "" {
		t.Errorf("selected keys mismatch (-want +got):\n%s", diff)
	}

	if _, err := selectKeys(l, []string{"fb5"}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("selectKeys(fb5) error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}
}

func TestKeysCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	c, out := testCLI()
	if err := execute(c, "keys", "--color", "black"); err != nil {
		t.Fatalf("keys error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "bb7") || strings.Contains(got, " c8 ") {
		t.Errorf("keys --color black output:\n%s", got)
	}
	if !strings.Contains(got, "36") {
		t.Errorf("keys output missing count:\n%s", got)
	}

	c, out = testCLI()
	if err := execute(c, "keys", "c8", "a0"); err != nil {
		t.Fatalf("keys c8 a0 error: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "a0") || strings.Contains(got, "bb7") {
		t.Errorf("keys c8 a0 output:\n%s", got)
	}

	c, _ = testCLI()
	if err := execute(c, "keys", "--color", "red"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("keys --color red error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}
}
