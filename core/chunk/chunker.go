// Package chunk splits markdown into the small deltas a streaming consumer
// receives. Words approximate tokens; whitespace is kept with the word that
// precedes it, so joining the deltas reproduces the input byte for byte.
package chunk

import "unicode"

// DefaultSize is the number of words per delta when none is configured.
const DefaultSize = 4

// Chunker splits text into word-sized deltas.
type Chunker struct {
	Size int // number of words per delta
}

// New creates a Chunker with the given chunk size.
// Defaults to DefaultSize if size <= 0.
func New(size int) *Chunker {
	if size <= 0 {
		size = DefaultSize
	}
	return &Chunker{Size: size}
}

// Chunk splits the input into deltas of at most Size words each. Leading
// whitespace belongs to the first delta and trailing whitespace to the last.
// A Size of zero or less means DefaultSize.
func (c *Chunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}
	size := c.Size
	if size <= 0 {
		size = DefaultSize
	}

	var (
		chunks []string
		start  int
		words  int
		inWord bool
	)
	for i, r := range text {
		space := unicode.IsSpace(r)
		if !space && !inWord {
			// A new word begins; cut before it once the delta is full.
			if words == size {
				chunks = append(chunks, text[start:i])
				start = i
				words = 0
			}
			words++
		}
		inWord = !space
	}
	return append(chunks, text[start:])
}
