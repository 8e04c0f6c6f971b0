// Package fasta contains minimal helpers to parse FASTA formatted data used
// by the project. It intentionally keeps parsing simple and conservative.
package fasta

import (
	"bufio"
	"io"
	"strings"
)

// Record represents a single FASTA record (header and sequence).
type Record struct {
	Header   string
	Sequence string
}

// ParseAll reads every FASTA record from r into memory.
func ParseAll(r io.Reader) []Record {
	var records []Record
	reader := NewReader(r)
	for {
		rec, ok := reader.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	return records
}

// Reader streams FASTA records one at a time, so a caller scanning a
// multi-gigabyte genome for ORFs never holds the whole file in memory at
// once.
type Reader struct {
	scanner *bufio.Scanner
	pending string
	done    bool
}

// NewReader wraps r for sequential record-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	return &Reader{scanner: scanner}
}

// Next returns the next record and true, or a zero Record and false once
// the input is exhausted.
func (r *Reader) Next() (Record, bool) {
	if r.done {
		return Record{}, false
	}
	var current Record
	haveHeader := r.pending != ""
	if haveHeader {
		current.Header = strings.TrimPrefix(r.pending, ">")
		r.pending = ""
	}
	var seq strings.Builder
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.HasPrefix(line, ">") {
			if !haveHeader {
				current.Header = strings.TrimPrefix(line, ">")
				haveHeader = true
				continue
			}
			r.pending = line
			current.Sequence = seq.String()
			return current, true
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	r.done = true
	if !haveHeader {
		return Record{}, false
	}
	current.Sequence = seq.String()
	return current, true
}
