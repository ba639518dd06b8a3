package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Code.Sprint("candado vault init")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "candado vault ls", "`candado vault ls`"},
		{"Path has no decoration", Path, "vault.cndo", "vault.cndo"},
		{"Flag has no decoration", Flag, "--keyfile", "--keyfile"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "github", "'github'"},
		{"Muted adds parentheses", Muted, "no url", "(no url)"},
		{"Secret has no decoration", Secret, "s3cr3t", "s3cr3t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := Code.Sprintf("candado vault %s", "export")
	want := "`candado vault export`"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !colorDisabled() {
		t.Error("colorDisabled() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !colorDisabled() {
		t.Error("colorDisabled() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}

func TestMask(t *testing.T) {
	if Mask("") != "" {
		t.Error("Mask of empty secret should be empty")
	}
	if got := Mask("hunter2"); strings.Contains(got, "hunter2") {
		t.Errorf("Mask leaked the secret: %q", got)
	}
	if Mask("a") != Mask("a much longer secret value") {
		t.Error("Mask should not reveal secret length")
	}
}

func TestTableRender(t *testing.T) {
	tbl := Table{Headers: []string{"ID", "SERVICE", "ACCOUNT"}}
	tbl.AddRow("1", "github", "me@x.com")
	tbl.AddRow("2", "gitlab")
	tbl.AddRow("3", "notes\nwith newline", "a\tb")

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "SERVICE") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.Contains(lines[3], "notes with newline") {
		t.Errorf("newline should be flattened, got %q", lines[3])
	}
}
