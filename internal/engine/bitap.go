package engine

// Approximate string matching via the bitap (Wu–Manber) bit-parallel
// algorithm. The scoring model: 0.0 is a perfect match at the expected
// location (the text start), error count and match distance from the
// start both worsen the score, and candidates above the configured
// threshold are rejected.

// maxPatternRunes is the bitap word width. Queries are truncated beyond
// it; interactive queries stay far below.
const maxPatternRunes = 64

// matchOptions mirror index.Config for a single match evaluation.
type matchOptions struct {
	threshold      float64
	distance       int
	ignoreLocation bool
}

// bitapScore computes the score for a match with the given error count
// and start location. Lower is better.
func bitapScore(errs, patternLen, location int, opts matchOptions) float64 {
	accuracy := float64(errs) / float64(patternLen)
	if opts.ignoreLocation {
		return accuracy
	}
	if opts.distance == 0 {
		if location != 0 {
			return 1.0
		}
		return accuracy
	}
	return accuracy + float64(location)/float64(opts.distance)
}

// bitapMatch reports the best score of any approximate occurrence of
// pattern in text, and whether that score passes the threshold.
// The error budget is threshold × pattern length, so a longer query
// tolerates more typos.
func bitapMatch(pattern, text []rune, opts matchOptions) (float64, bool) {
	m := len(pattern)
	if m == 0 || len(text) == 0 {
		return 0, false
	}
	if m > maxPatternRunes {
		pattern = pattern[:maxPatternRunes]
		m = maxPatternRunes
	}

	masks := make(map[rune]uint64, m)
	for i, r := range pattern {
		masks[r] |= 1 << i
	}
	endBit := uint64(1) << (m - 1)

	maxErr := int(opts.threshold * float64(m))
	if maxErr >= m {
		maxErr = m - 1
	}

	// r[e] holds the prefix-match bits with exactly ≤e errors; bit i set
	// means pattern[:i+1] matches ending at the current text position.
	r := make([]uint64, maxErr+1)

	best := 0.0
	found := false

	for pos, c := range text {
		cm := masks[c]

		var prevOld uint64 // r[e-1] before this position's update
		for e := 0; e <= maxErr; e++ {
			old := r[e]
			if e == 0 {
				r[0] = ((old << 1) | 1) & cm
			} else {
				// match | substitution+deletion | insertion
				r[e] = (((old << 1) | 1) & cm) | ((prevOld | r[e-1]) << 1) | 1 | prevOld
			}
			prevOld = old
		}

		for e := 0; e <= maxErr; e++ {
			if r[e]&endBit == 0 {
				continue
			}
			start := pos - m + 1
			if start < 0 {
				start = 0
			}
			s := bitapScore(e, m, start, opts)
			if !found || s < best {
				best = s
				found = true
			}
			break // smaller error counts score no worse at this position
		}
	}

	if !found || best > opts.threshold {
		return 0, false
	}
	return best, true
}
