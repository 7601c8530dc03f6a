// Command gendict builds a gold or silver dictionary JSON blob (spec §6)
// from a plain word\tphonemes TSV source file, the wire format the
// rest of the toolchain around this engine is expected to hand-curate
// entries in before they're checked in as JSON.
//
// A bare two-column line ("word<TAB>phonemes") produces a Simple entry.
// A three-column line ("word<TAB>tag=phonemes[;tag=phonemes...]<TAB>DEFAULT=phonemes")
// is not supported directly; instead, repeat the word across multiple
// lines with a "word@TAG<TAB>phonemes" left column to build up a Tagged
// entry's keys, e.g.:
//
//	read@VB	rˈid
//	read@VBD	rˈɛd
//	read@DEFAULT	rˈid
//
// Usage:
//
//	go run ./cmd/gendict -input gold.tsv -output gold.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/az-ai-labs/g2p-en/lexicon"
	"github.com/az-ai-labs/g2p-en/morph"
)

const scannerBufSize = 1 << 20 // 1 MB, matches the teacher's dictgen tool

func main() {
	inputPath := flag.String("input", "", "path to a word\\tphonemes[\\t...] TSV source file")
	outputPath := flag.String("output", "", "output path for the dictionary JSON blob")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		log.Fatalf("Usage: gendict -input <file.tsv> -output <file.json>")
	}

	entries, err := parseTSV(*inputPath)
	if err != nil {
		log.Fatalf("gendict: %v", err)
	}

	blob, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("gendict: marshal: %v", err)
	}

	// Round-trip through the constructor's own parser before writing
	// anything out: a malformed entry here is a fatal construction error
	// at engine-build time (spec §7a), so catching it at generation time
	// saves a much more confusing failure downstream.
	if _, err := lexicon.NewStore(blob, []byte("{}"), morph.US); err != nil {
		log.Fatalf("gendict: generated dictionary fails to parse: %v", err)
	}

	if err := os.WriteFile(*outputPath, append(blob, '\n'), 0o644); err != nil {
		log.Fatalf("gendict: write output: %v", err)
	}

	log.Printf("Wrote %d entries to %s (%d bytes)", len(entries), *outputPath, len(blob))
}

// parseTSV reads word-to-phoneme entries from path. A left column of
// "word@TAG" folds into a Tagged entry's TAG key instead of producing a
// separate top-level Simple entry for "word@TAG" itself.
func parseTSV(path string) (map[string]*lexicon.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	simple := map[string]string{}
	tagged := map[string]map[string]string{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scannerBufSize), scannerBufSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.SplitN(line, "\t", 2)
		if len(cols) != 2 {
			return nil, fmt.Errorf("line %d: expected word\\tphonemes, got %q", lineNo, line)
		}
		key, phonemes := cols[0], cols[1]

		if word, tag, ok := strings.Cut(key, "@"); ok {
			if tagged[word] == nil {
				tagged[word] = map[string]string{}
			}
			tagged[word][tag] = phonemes
			continue
		}
		simple[key] = phonemes
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	entries := make(map[string]*lexicon.Entry, len(simple)+len(tagged))
	for word, phonemes := range simple {
		entries[word] = lexicon.NewSimpleEntry(phonemes)
	}
	for word, byTag := range tagged {
		entries[word] = lexicon.NewTaggedEntry(byTag)
	}
	return entries, nil
}
