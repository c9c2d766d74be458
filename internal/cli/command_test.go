package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "doctrans [flags] SOURCE_DIR [MODEL] [GLOSSARY]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "AsciiDoc") {
		t.Errorf("Expected Short description to mention AsciiDoc")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"provider", true},
		{"model", true},
		{"glossary", true},
		{"glossary-mode", true},
		{"ext", true},
		{"chunk-size", true},
		{"delay", true},
		{"progress-file", true},
		{"list-models", true},
		{"verbose", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags_Defaults(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	extFlag := cmd.Flags().Lookup("ext")
	if extFlag == nil {
		t.Fatal("ext flag not found")
	}
	if extFlag.DefValue != ".adoc" {
		t.Errorf("ext default = %s, want .adoc", extFlag.DefValue)
	}

	modeFlag := cmd.Flags().Lookup("glossary-mode")
	if modeFlag == nil {
		t.Fatal("glossary-mode flag not found")
	}
	if modeFlag.DefValue != "post" {
		t.Errorf("glossary-mode default = %s, want post", modeFlag.DefValue)
	}
}

func TestGetOpenAIKey_FromEnv(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "env-key")
	defer os.Unsetenv("OPENAI_API_KEY")

	if key := GetOpenAIKey(); key != "env-key" {
		t.Errorf("GetOpenAIKey = %q, want env-key", key)
	}
}

func TestGetGeminiKey_FromEnv(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "gem-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	if key := GetGeminiKey(); key != "gem-key" {
		t.Errorf("GetGeminiKey = %q, want gem-key", key)
	}
}
