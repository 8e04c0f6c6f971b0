// Package translator wraps an external translation tool (seqkit or EMBOSS
// transeq) to cross-check an ORF's nucleotide coordinates by translating
// them to protein independently of internal/orf's own codon tables. It
// stays outside the scanner and CLI control flow so a missing external
// binary degrades to "unverified", never to a hard failure.
package translator

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"taxorf/internal/fasta"
)

// Request is one ORF whose nucleotide sequence should be translated.
type Request struct {
	ID       int
	Sequence string
}

// TranslateAll runs command (typically "seqkit translate -w 0") against
// each request's sequence and returns a map from Request.ID to the
// resulting protein string. If command is empty it returns an empty map
// and no error: external verification is opt-in.
func TranslateAll(requests []Request, command string, perRequestTimeout time.Duration) (map[int]string, error) {
	results := make(map[int]string)
	if command == "" {
		return results, nil
	}
	if perRequestTimeout <= 0 {
		perRequestTimeout = 15 * time.Second
	}

	for _, r := range requests {
		protein, ok := translateOne(command, r.Sequence, perRequestTimeout)
		if ok {
			results[r.ID] = protein
		}
	}
	return results, nil
}

func translateOne(command, sequence string, timeout time.Duration) (string, bool) {
	tf, err := os.CreateTemp("", "orf-*.fasta")
	if err != nil {
		return "", false
	}
	fname := tf.Name()
	defer os.Remove(fname)
	if _, err := tf.WriteString(">query\n" + sequence + "\n"); err != nil {
		tf.Close()
		return "", false
	}
	tf.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", false
	}
	args := append(append([]string{}, fields[1:]...), fname)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", false
	}

	proteins := fasta.ParseAll(strings.NewReader(string(out)))
	if len(proteins) == 0 {
		return "", false
	}
	return proteins[0].Sequence, true
}
