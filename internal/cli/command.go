package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/doctrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "doctrans [flags] SOURCE_DIR [MODEL] [GLOSSARY]",
		Short: "In-place AsciiDoc translation via LLM chat APIs",
		Long: `doctrans walks SOURCE_DIR, translates every matching AsciiDoc file to
English via a chat-completion API and overwrites it in place. Markup is
preserved by instruction, a glossary of fixed term translations is enforced,
and completed files are recorded in a progress file so interrupted runs can
be resumed without retranslating.

MODEL and GLOSSARY may be given as positional arguments (legacy invocation)
or via --model and --glossary.

Examples:
  doctrans docs/                          # Translate docs/ with defaults
  doctrans docs/ DeepSeek-V3.2 terms.json # Legacy positional invocation
  doctrans --provider gemini docs/        # Use the Gemini API instead
  doctrans --list-models                  # Show chat models for the API key`,
		Args:    cobra.MaximumNArgs(3),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.doctrans.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation backend: openai or gemini")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", flags.Model, "Chat model identifier")
	cmd.Flags().StringVarP(&flags.GlossaryFile, "glossary", "g", "", "Glossary JSON file (source term -> target term)")
	cmd.Flags().StringVar(&flags.GlossaryMode, "glossary-mode", flags.GlossaryMode, "When to substitute glossary terms: pre, post or both")
	cmd.Flags().StringVar(&flags.Extension, "ext", flags.Extension, "File name suffix to translate")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", flags.ChunkSize, "Maximum characters per translation request")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause between API requests to respect rate limits")
	cmd.Flags().StringVar(&flags.ProgressFile, "progress-file", flags.ProgressFile, "Progress file recording completed paths")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available chat models for the current API key")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.glossary", cmd.Flags().Lookup("glossary"))
	viper.BindPFlag("translate.glossary_mode", cmd.Flags().Lookup("glossary-mode"))
	viper.BindPFlag("translate.extension", cmd.Flags().Lookup("ext"))
	viper.BindPFlag("translate.chunk_size", cmd.Flags().Lookup("chunk-size"))
	viper.BindPFlag("translate.delay", cmd.Flags().Lookup("delay"))
	viper.BindPFlag("translate.progress_file", cmd.Flags().Lookup("progress-file"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".doctrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".doctrans")
	}

	// Environment variables
	viper.SetEnvPrefix("DOCTRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("gemini.api_key")
}

// GetBaseURL returns the chat-completion endpoint base URL. It is fixed per
// deployment: settable only through the config file or environment, not by
// flag. Empty means the provider default.
func GetBaseURL() string {
	return viper.GetString("openai.base_url")
}
