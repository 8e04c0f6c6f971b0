package orf

import (
	"fmt"
	"strconv"
	"strings"
)

const headerPrefix = "[Orf:"

// Format renders loc as a "[Orf: id, from, to, strand, hasIncompleteStart,
// hasIncompleteEnd]" tag, for embedding in a FASTA header (spec.md §4.8).
func Format(loc SequenceLocation) string {
	return fmt.Sprintf("[Orf: %d, %d, %d, %d, %d, %d]",
		loc.ID, loc.From, loc.To, loc.Strand, boolToInt(loc.HasIncompleteStart), boolToInt(loc.HasIncompleteEnd))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Parse scans header for an "[Orf: ...]" tag and decodes it. It fails if no
// such tag is present or if it contains fewer than five integers (spec.md
// §4.8).
func Parse(header string) (SequenceLocation, bool) {
	fields := strings.Fields(header)
	for start, field := range fields {
		if !strings.HasPrefix(field, headerPrefix) {
			continue
		}
		var tag strings.Builder
		tag.WriteString(strings.TrimPrefix(field, headerPrefix))
		closed := strings.Contains(field, "]")
		for i := start + 1; i < len(fields) && !closed; i++ {
			tag.WriteByte(' ')
			tag.WriteString(fields[i])
			closed = strings.Contains(fields[i], "]")
		}
		if !closed {
			return SequenceLocation{}, false
		}
		return parseTag(tag.String())
	}
	return SequenceLocation{}, false
}

func parseTag(tag string) (SequenceLocation, bool) {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimSuffix(tag, "]")
	parts := strings.Split(tag, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		values = append(values, n)
	}
	if len(values) < 5 {
		return SequenceLocation{}, false
	}
	loc := SequenceLocation{
		ID:                 values[0],
		From:               values[1],
		To:                 values[2],
		Strand:             Strand(values[3]),
		HasIncompleteStart: values[4] != 0,
	}
	if len(values) >= 6 {
		loc.HasIncompleteEnd = values[5] != 0
	}
	return loc, true
}
