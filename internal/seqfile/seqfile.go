// Package seqfile reads a single protein sequence from plain text or FASTA.
package seqfile

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file types offered when browsing for a sequence.
var Extensions = []string{".fa", ".fasta", ".faa", ".fas", ".seq", ".txt", ".gz"}

// Record is the first entry of a sequence file.
type Record struct {
	ID  string // Header up to the first space; empty for plain text
	Seq string // Raw residues with line breaks removed, not yet normalized
}

// Read returns the first record from r. Header lines start with '>' and
// comment lines with ';'. Anything after the second header is ignored.
func Read(r io.Reader) (Record, error) {
	var rec Record
	var seq strings.Builder
	headers := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16<<20)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			headers++
			if headers > 1 {
				break
			}
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				rec.ID = fields[0]
			}
			continue
		}
		if strings.HasPrefix(line, ";") {
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("reading sequence: %w", err)
	}

	rec.Seq = seq.String()
	return rec, nil
}

// ReadFile reads the first record of path. Files ending in .gz are
// decompressed transparently.
func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("opening sequence file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Record{}, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	rec, err := Read(r)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}
