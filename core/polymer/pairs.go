package polymer

// Counts tallies overlapping adjacent dimers of one polymer.
type Counts struct {
	GG, LL, GL, LG int
}

// Total is the number of classified adjacent pairs.
func (c Counts) Total() int { return c.GG + c.LL + c.GL + c.LG }

// CountPairs scans every (i, i+1) pair. Polymers shorter than two have no pairs.
func CountPairs(p Polymer) Counts {
	var c Counts
	if len(p) < 2 {
		return c
	}
	prev := p[0]
	for _, cur := range p[1:] {
		switch {
		case prev == G && cur == G:
			c.GG++
		case prev == L && cur == L:
			c.LL++
		case prev == G && cur == L:
			c.GL++
		case prev == L && cur == G:
			c.LG++
		}
		prev = cur
	}
	return c
}
