package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/doctrans/internal/cli"
	"codeberg.org/snonux/doctrans/internal/glossary"
	"codeberg.org/snonux/doctrans/internal/logging"
	"codeberg.org/snonux/doctrans/internal/models"
	"codeberg.org/snonux/doctrans/internal/pacer"
	"codeberg.org/snonux/doctrans/internal/processor"
	"codeberg.org/snonux/doctrans/internal/progress"
	"codeberg.org/snonux/doctrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), cli.GetBaseURL())
		return lister.ListAvailableModels()
	}

	if len(args) < 1 {
		return fmt.Errorf("missing SOURCE_DIR argument")
	}
	sourceDir := args[0]

	// Legacy positional invocation: SOURCE_DIR MODEL GLOSSARY
	if len(args) > 1 {
		flags.Model = args[1]
	}
	if len(args) > 2 {
		flags.GlossaryFile = args[2]
	}

	info, err := os.Stat(sourceDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", sourceDir)
	}

	log, err := logging.New(flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Sync()

	mode, err := glossary.ParseMode(flags.GlossaryMode)
	if err != nil {
		return err
	}

	gloss := glossary.New(nil)
	if flags.GlossaryFile != "" {
		var missing bool
		gloss, missing, err = glossary.Load(flags.GlossaryFile)
		if err != nil {
			return err
		}
		if missing {
			log.Warnf("Glossary file %s not found, continuing without glossary", flags.GlossaryFile)
		}
	}

	opts := translation.Options{
		Model:    flags.Model,
		Glossary: gloss,
		Mode:     mode,
	}

	var translator translation.Translator
	switch flags.Provider {
	case "openai":
		translator, err = translation.NewOpenAI(cli.GetOpenAIKey(), cli.GetBaseURL(), opts)
	case "gemini":
		translator, err = translation.NewGemini(cmd.Context(), cli.GetGeminiKey(), opts)
	default:
		return fmt.Errorf("unknown provider %q (want openai or gemini)", flags.Provider)
	}
	if err != nil {
		return err
	}

	store, err := progress.Load(flags.ProgressFile)
	if err != nil {
		return err
	}

	proc := processor.New(log, translator, pacer.NewFixed(flags.Delay, nil), store,
		flags.Extension, flags.ChunkSize)

	if _, err := proc.Run(cmd.Context(), sourceDir); err != nil {
		return err
	}
	return nil
}
