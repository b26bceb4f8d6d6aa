package polymer

import (
	"testing"

	"lgsim/core/randsrc"
)

func TestCountPairs_Known(t *testing.T) {
	got := CountPairs(Parse("LLGGLG"))
	want := Counts{GG: 1, LL: 1, GL: 1, LG: 2}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestCountPairs_ShortPolymers(t *testing.T) {
	for _, s := range []string{"", "L", "G"} {
		if c := CountPairs(Parse(s)); c != (Counts{}) {
			t.Fatalf("%q: want zero counts, got %+v", s, c)
		}
	}
}

func TestCountPairs_TotalIsLenMinusOne(t *testing.T) {
	src := randsrc.New(17)
	for _, cfg := range []Config{
		{GProb: 0.25},
		{GProb: 0.6, Fixed: true},
		{GProb: 0.25, Dimers: true},
	} {
		g := NewGenerator(cfg, src.Stream(1))
		for n := 2; n < 120; n += 7 {
			p := g.Generate(n)
			if got := CountPairs(p).Total(); got != len(p)-1 {
				t.Fatalf("cfg=%+v n=%d: total %d, want %d", cfg, n, got, len(p)-1)
			}
		}
	}
}

func TestCountPairs_Homopolymer(t *testing.T) {
	c := CountPairs(Parse("GGGG"))
	if c.GG != 3 || c.LL != 0 || c.GL != 0 || c.LG != 0 {
		t.Fatalf("unexpected %+v", c)
	}
}
