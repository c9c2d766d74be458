// Package chunk splits document text into bounded pieces for translation.
// Splitting prefers paragraph boundaries so AsciiDoc blocks are not cut in
// the middle, and Split/Join round-trip exactly.
package chunk

import "strings"

// DefaultMaxSize is the chunk size limit in characters (about 10KB), chosen
// to stay well inside typical chat-completion input limits.
const DefaultMaxSize = 10000

// Split partitions text into ordered chunks of at most maxSize bytes.
// The cut point is the last blank line ("\n\n") that lies strictly after the
// chunk start and fully within the limit; when no blank line exists in range
// the cut happens exactly at the limit, which may split a markup construct.
// Concatenating the returned chunks reproduces text exactly.
func Split(text string, maxSize int) []string {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if len(text) <= maxSize {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + maxSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		// Prefer cutting after the last paragraph break in the window.
		if idx := strings.LastIndex(text[start:end], "\n\n"); idx > 0 {
			end = start + idx + 2
		}
		chunks = append(chunks, text[start:end])
		start = end
	}
	return chunks
}

// Join reassembles translated chunks into a single document. Split keeps all
// separating whitespace inside the chunks, so joining is plain concatenation.
func Join(chunks []string) string {
	return strings.Join(chunks, "")
}
