package orf

import "strings"

// CodonProvider supplies the start/stop codon lists for a genetic code.
// Implementations are an external collaborator (spec.md §6); this package
// only consumes the interface.
type CodonProvider interface {
	StartCodons() []string
	StopCodons() []string
}

// Scanner holds the forward and reverse-complement strands of one
// nucleotide sequence plus the augmented start/stop codon lists. It owns
// mutable strand buffers and is not safe to share across goroutines;
// create one Scanner per concurrent scan (spec.md §5).
type Scanner struct {
	startCodons map[string]bool
	stopCodons  map[string]bool

	sequence          []byte
	reverseComplement []byte
}

// New builds a Scanner from provider's codon lists. When useAllTableStarts
// is false the start list is replaced by the single entry ATG before the
// U-form duplicates are appended (spec.md §6).
func New(provider CodonProvider, useAllTableStarts bool) *Scanner {
	starts := provider.StartCodons()
	if !useAllTableStarts {
		starts = []string{"ATG"}
	}
	return &Scanner{
		startCodons: codonSet(augmentWithUForm(starts)),
		stopCodons:  codonSet(augmentWithUForm(provider.StopCodons())),
	}
}

// augmentWithUForm appends a T->U duplicate of every codon after the
// T-forms, matching the source's TtoU helper (spec.md §6).
func augmentWithUForm(codons []string) []string {
	out := make([]string, 0, len(codons)*2)
	out = append(out, codons...)
	for _, c := range codons {
		out = append(out, strings.ReplaceAll(c, "T", "U"))
	}
	return out
}

func codonSet(codons []string) map[string]bool {
	set := make(map[string]bool, len(codons))
	for _, c := range codons {
		set[c] = true
	}
	return set
}

// SetSequence installs seq as the strand to scan, building its
// reverse complement. It returns false (and leaves the scanner in its
// previous state discarded) if seq is shorter than 3 bases or contains a
// base with no defined complement (spec.md §4.6, §7).
func (s *Scanner) SetSequence(seq []byte) bool {
	upper, rc, ok := reverseComplement(seq)
	if !ok {
		s.sequence, s.reverseComplement = nil, nil
		return false
	}
	s.sequence, s.reverseComplement = upper, rc
	return true
}

// View returns the raw nucleotide bytes a SequenceLocation covers, read
// from whichever strand it was found on.
func (s *Scanner) View(loc SequenceLocation) []byte {
	strand := s.sequence
	if loc.Strand == StrandMinus {
		strand = s.reverseComplement
	}
	if strand == nil || loc.To > len(strand) {
		return nil
	}
	return strand[loc.From:loc.To]
}

// FindAll scans the forward strand (if forwardFrames != 0) and the
// reverse-complement strand (if reverseFrames != 0) independently,
// returning every ORF both discover (spec.md §4.7).
func (s *Scanner) FindAll(minLength, maxLength, maxGaps int, forwardFrames, reverseFrames Frame, startMode StartMode) []SequenceLocation {
	var result []SequenceLocation
	if forwardFrames != 0 {
		result = s.scanStrand(s.sequence, result, minLength, maxLength, maxGaps, forwardFrames, startMode, StrandPlus)
	}
	if reverseFrames != 0 {
		result = s.scanStrand(s.reverseComplement, result, minLength, maxLength, maxGaps, reverseFrames, startMode, StrandMinus)
	}
	return result
}

const framesPerCodon = 3

// frameState is one reading frame's state machine. The initial state is
// inside an ORF with no start codon seen yet, so a stop encountered before
// any start still emits a single ORF from the frame's offset, marked as
// having an incomplete start (spec.md §4.7, §8, §9).
type frameState struct {
	insideOrf bool
	hasStart  bool
	gaps      int
	length    int
	from      int
}

func newFrameStates() [framesPerCodon]frameState {
	var states [framesPerCodon]frameState
	for f := range states {
		states[f] = frameState{insideOrf: true, from: f}
	}
	return states
}

var frameFlags = [framesPerCodon]Frame{Frame1, Frame2, Frame3}

// byteAt returns seq[pos], or 0 (the incomplete-codon sentinel) when pos is
// out of bounds, mirroring the source's reliance on a NUL terminator
// without needing an out-of-bounds slice read.
func byteAt(seq []byte, pos int) byte {
	if pos < 0 || pos >= len(seq) {
		return 0
	}
	return seq[pos]
}

func codonAt(seq []byte, pos int) [3]byte {
	return [3]byte{byteAt(seq, pos), byteAt(seq, pos+1), byteAt(seq, pos+2)}
}

func isIncomplete(codon [3]byte) bool {
	return codon[0] == 0 || codon[1] == 0 || codon[2] == 0
}

func isGapOrN(codon [3]byte) bool {
	for _, b := range codon {
		if b == 'N' || complement(b) == '.' {
			return true
		}
	}
	return false
}

func (s *Scanner) isStart(codon [3]byte) bool {
	return s.startCodons[string(codon[:])]
}

func (s *Scanner) isStop(codon [3]byte) bool {
	return s.stopCodons[string(codon[:])]
}

// scanStrand runs the per-frame state machines over seq. Frame f reads
// codons at offsets f, f+3, f+6, ...; for "AGAATTGCC":
//
//	Frame 0: AGA ATT GCC
//	Frame 1: A GAA TTG CC
//	Frame 2: AG AAT TGC C
func (s *Scanner) scanStrand(seq []byte, result []SequenceLocation, minLength, maxLength, maxGaps int, frames Frame, startMode StartMode, strand Strand) []SequenceLocation {
	length := len(seq)
	if length < framesPerCodon {
		return result
	}
	states := newFrameStates()

	for i := 0; i+framesPerCodon-1 < length; i += framesPerCodon {
		for position := i; position < i+framesPerCodon; position++ {
			frame := position % framesPerCodon
			if frameFlags[frame]&frames == 0 {
				continue
			}
			st := &states[frame]

			codon := codonAt(seq, position)
			thisIncomplete := isIncomplete(codon)
			isLast := !thisIncomplete && isIncomplete(codonAt(seq, position+framesPerCodon))

			var shouldStart bool
			switch startMode {
			case StartToStop:
				shouldStart = !st.insideOrf && s.isStart(codon)
			case AnyToStop:
				shouldStart = !st.insideOrf
			default: // LastStartToStop
				shouldStart = s.isStart(codon)
			}

			if shouldStart && !isLast {
				st.insideOrf = true
				st.hasStart = true
				st.from = position
				st.gaps = 0
				st.length = 0
			}

			if st.insideOrf {
				st.length++
				if isGapOrN(codon) {
					st.gaps++
				}
			}

			stop := s.isStop(codon)
			if st.insideOrf && (stop || isLast) {
				st.insideOrf = false
				to := position
				if isLast {
					to += framesPerCodon
				}
				if to == st.from {
					continue
				}
				if st.gaps > maxGaps || st.length > maxLength || st.length <= minLength {
					continue
				}
				result = append(result, SequenceLocation{
					From:               st.from,
					To:                 to,
					HasIncompleteStart: !st.hasStart,
					HasIncompleteEnd:   !stop,
					Strand:             strand,
				})
			}
		}
	}
	return result
}
