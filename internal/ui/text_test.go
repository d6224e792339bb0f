package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterColored(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	orig := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = orig }()

	result := Key.Sprint("0123456789ABCDEFFEDCBA9876543210")
	if strings.Contains(result, "[") {
		t.Errorf("Key.Sprint should not add brackets when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Key.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "sm4tool keygen", "`sm4tool keygen`"},
		{"Path has no decoration", Path, "notes.txt.sm4", "notes.txt.sm4"},
		{"Flag has no decoration", Flag, "--strict-padding", "--strict-padding"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "[dry-run]", "[dry-run]"},
		{"Info has no decoration", Info, "→", "→"},
		{"Key adds brackets", Key, "00112233445566778899AABBCCDDEEFF", "[00112233445566778899AABBCCDDEEFF]"},
		{"Highlight adds quotes", Highlight, "3f2a9c01d4e5b678", "'3f2a9c01d4e5b678'"},
		{"Muted adds parentheses", Muted, "12 bytes", "(12 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintfPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Code.Sprintf("sm4tool %s", "decrypt"); got != "`sm4tool decrypt`" {
		t.Errorf("Code.Sprintf() = %q", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":       "\n",
		"done":   "done\n",
		"done\n": "done\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNoColorDetection(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if ColorEnabled() {
		t.Error("ColorEnabled() should be false when NO_COLOR is set, even to an empty value")
	}
}
