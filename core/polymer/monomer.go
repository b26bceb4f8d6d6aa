package polymer

// Monomer is one unit of the chain.
type Monomer byte

const (
	L Monomer = 'L'
	G Monomer = 'G'
)

// Polymer is an ordered chain of monomers. Its length is the degree of
// polymerization.
type Polymer []Monomer

func (p Polymer) String() string { return string(p) }

// Composition returns the number of G and L monomers.
func (p Polymer) Composition() (gs, ls int) {
	for _, m := range p {
		switch m {
		case G:
			gs++
		case L:
			ls++
		}
	}
	return gs, ls
}

// Parse converts a string of 'L'/'G' characters. Other bytes are kept as-is
// and never match a dimer category.
func Parse(s string) Polymer { return Polymer(s) }
