package crossword

// wordlist.go: loading of structure descriptions and candidate word lists.

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadWords reads one candidate word per line from r. Blank lines and
// surrounding whitespace are dropped; normalization (upper-casing,
// deduplication) happens in New.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadWords reads a word list file, one word per line.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// LoadStructure reads a structure description file: a text grid in which
// underscore marks an open cell and any other character marks a blocked
// cell.
func LoadStructure(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
