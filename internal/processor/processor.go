package processor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/doctrans/internal/chunk"
	"codeberg.org/snonux/doctrans/internal/pacer"
	"codeberg.org/snonux/doctrans/internal/progress"
	"codeberg.org/snonux/doctrans/internal/translation"
)

// Processor walks a source tree and translates matching files in place.
type Processor struct {
	log        *zap.SugaredLogger
	translator translation.Translator
	pacer      pacer.Pacer
	store      *progress.Store
	extension  string
	chunkSize  int
}

// Summary reports what a run did.
type Summary struct {
	Translated int
	Skipped    int
	Failed     int
}

// New creates a processor. All collaborators are passed in explicitly so
// tests can substitute a stub translator and a no-op pacer.
func New(log *zap.SugaredLogger, translator translation.Translator, pc pacer.Pacer,
	store *progress.Store, extension string, chunkSize int) *Processor {
	return &Processor{
		log:        log,
		translator: translator,
		pacer:      pc,
		store:      store,
		extension:  extension,
		chunkSize:  chunkSize,
	}
}

// Run translates every file under sourceDir whose name ends in the
// configured extension. A failing file is logged and left untouched; the
// walk continues with the next one. Run only returns an error when the walk
// itself cannot proceed or the context is canceled.
func (p *Processor) Run(ctx context.Context, sourceDir string) (Summary, error) {
	var sum Summary

	files, err := p.collectFiles(sourceDir)
	if err != nil {
		return sum, err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		if p.store.Contains(path) {
			p.log.Infof("Skipping %s: already translated", path)
			sum.Skipped++
			continue
		}

		if err := p.translateFile(ctx, path); err != nil {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			p.log.Errorf("Failed to translate %v", &translation.FileError{Path: path, Err: err})
			sum.Failed++
			continue
		}

		p.store.Add(path)
		if err := p.store.Save(); err != nil {
			// Translation succeeded; losing the bookkeeping only costs a
			// redundant retranslation on the next run.
			p.log.Warnf("Failed to save progress after %s: %v", path, err)
		}
		p.log.Infof("Successfully translated %s", path)
		sum.Translated++
	}

	p.log.Infof("Run complete: %d translated, %d skipped, %d failed",
		sum.Translated, sum.Skipped, sum.Failed)
	return sum, nil
}

// collectFiles enumerates matching files in walk order.
func (p *Processor) collectFiles(sourceDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), p.extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", sourceDir, err)
	}
	return files, nil
}

// translateFile buffers all chunk translations and writes the file once, so
// a failure partway through leaves the original byte-identical on disk.
func (p *Processor) translateFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	chunks := chunk.Split(string(data), p.chunkSize)
	translated := make([]string, 0, len(chunks))
	for i, c := range chunks {
		if err := p.pacer.Wait(ctx); err != nil {
			return err
		}
		p.log.Infof("Translating chunk %d/%d of %s", i+1, len(chunks), path)
		out, err := p.translator.Translate(ctx, c)
		if err != nil {
			return err
		}
		translated = append(translated, out)
	}

	return writeFileAtomic(path, []byte(chunk.Join(translated)))
}

// writeFileAtomic replaces path via a temp file in the same directory and a
// rename, so the original is never left partially overwritten.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
