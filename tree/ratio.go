package tree

// RatioSplit determines where to cut weights so that part k receives about
// ratios[k] of the weight, producing len(ratios)-1 cut positions.
//
// Every ratio is re-expressed against the weight that is still unallocated
// when its part is carved off. If a heavy element forces a part to take
// less (or more) than its share, the difference is spread over the
// remaining parts instead of piling up in the last one.
//
// An element that does not fit entirely into the current part is included
// iff that lands closer to the target than leaving it out. When a cut would
// consume the whole remaining suffix, typically because one huge element
// dominates the tail, no further cuts are emitted and the rest forms the
// last part. The branching factor is then not exhausted; this is a known
// limitation of the heuristic, not an error.
func RatioSplit(weights []float64, ratios []float64) []int {
	cuts := []int{}
	if len(weights) == 0 || len(ratios) == 0 {
		return cuts
	}

	base := 0
	rescale := 1.0
	for _, ratio := range ratios[:len(ratios)-1] {
		cum := cumulativeRatios(weights[base:])

		ratio /= rescale
		rescale *= 1 - ratio

		candidate := len(cum) - 1
		for i, c := range cum {
			if c >= ratio {
				candidate = i
				break
			}
		}

		var pos int
		switch {
		case candidate == 0:
			pos = 1
		case ratio-cum[candidate-1] < cum[candidate]-ratio:
			pos = candidate
		default:
			pos = candidate + 1
		}
		pos += base
		base = pos

		if pos >= len(weights) {
			tracer().Debugf("ratio split stops early at %d of %d elements", len(cuts)+1, len(ratios))
			break
		}
		cuts = append(cuts, pos)
	}
	return cuts
}

// cumulativeRatios returns, for every prefix of weights, its share of the
// total weight.
func cumulativeRatios(weights []float64) []float64 {
	cum := make([]float64, len(weights))
	running := 0.0
	for i, w := range weights {
		running += w
		cum[i] = running
	}
	total := cum[len(cum)-1]
	for i := range cum {
		cum[i] /= total
	}
	return cum
}
