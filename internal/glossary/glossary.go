// Package glossary loads the fixed term-translation mapping and applies it
// to text. Glossary terms are enforced twice: once in the system prompt sent
// to the model, and once as a literal substitution pass over the text,
// controlled by a Mode.
package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Mode selects when glossary substitution is applied relative to the
// translation call.
type Mode string

const (
	// ModePre substitutes terms in the source text before it is sent.
	ModePre Mode = "pre"
	// ModePost substitutes terms in the model output. This is the default.
	ModePost Mode = "post"
	// ModeBoth applies both passes.
	ModeBoth Mode = "both"
)

// ParseMode validates a mode string from flags or config.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePre, ModePost, ModeBoth:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid glossary mode %q (want pre, post or both)", s)
}

// Glossary maps source-language terms to their fixed target-language
// translations. It is loaded once per run and never mutated afterwards.
type Glossary struct {
	terms map[string]string
	// keys sorted longest-first so overlapping terms substitute
	// deterministically ("поток данни" before "поток").
	ordered []string
}

// New builds a glossary from an in-memory term map.
func New(terms map[string]string) *Glossary {
	g := &Glossary{terms: terms, ordered: make([]string, 0, len(terms))}
	for k := range terms {
		g.ordered = append(g.ordered, k)
	}
	sort.Slice(g.ordered, func(i, j int) bool {
		if len(g.ordered[i]) != len(g.ordered[j]) {
			return len(g.ordered[i]) > len(g.ordered[j])
		}
		return g.ordered[i] < g.ordered[j]
	})
	return g
}

// Load reads a flat JSON object mapping source terms to target terms.
// A missing file degrades to an empty glossary with a nil error and
// missing=true so the caller can log a warning. Malformed JSON is returned
// as an error: a silently corrupt glossary is worse than aborting.
func Load(path string) (g *Glossary, missing bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), true, nil
		}
		return nil, false, fmt.Errorf("failed to read glossary file: %w", err)
	}

	var terms map[string]string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, false, fmt.Errorf("failed to parse glossary file %s: %w", path, err)
	}
	return New(terms), false, nil
}

// Len returns the number of term pairs.
func (g *Glossary) Len() int {
	return len(g.terms)
}

// Apply replaces every occurrence of a source term with its target term.
// Applying it to text that already uses the target terms is a no-op, so the
// pass is idempotent.
func (g *Glossary) Apply(text string) string {
	for _, src := range g.ordered {
		text = strings.ReplaceAll(text, src, g.terms[src])
	}
	return text
}

// PromptLines renders every pair as "source -> target", one per line, for
// inclusion in the translation system prompt.
func (g *Glossary) PromptLines() string {
	lines := make([]string, 0, len(g.ordered))
	for _, src := range g.ordered {
		lines = append(lines, fmt.Sprintf("%s -> %s", src, g.terms[src]))
	}
	return strings.Join(lines, "\n")
}
