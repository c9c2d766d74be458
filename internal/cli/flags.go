package cli

import (
	"time"

	"codeberg.org/snonux/doctrans/internal/chunk"
	"codeberg.org/snonux/doctrans/internal/pacer"
	"codeberg.org/snonux/doctrans/internal/progress"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	Provider     string
	Model        string
	GlossaryFile string
	GlossaryMode string
	Extension    string
	ChunkSize    int
	Delay        time.Duration
	ProgressFile string
	ListModels   bool
	Verbose      bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		GlossaryMode: "post",
		Extension:    ".adoc",
		ChunkSize:    chunk.DefaultMaxSize,
		Delay:        pacer.DefaultInterval,
		ProgressFile: progress.DefaultFile,
	}
}
