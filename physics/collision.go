package physics

import (
	"github.com/lixenwraith/bubbles/vmath"
)

// ResolvePair separates two overlapping bodies and exchanges their normal velocity components
// Equal masses: the pair ends exactly tangent, tangential velocity is untouched
// Returns false and leaves both bodies alone when they do not overlap
func ResolvePair(a, b *Body) bool {
	overlap := vmath.Overlap(a.Pos, b.Pos, a.Radius, b.Radius)
	if overlap == 0 {
		return false
	}
	n, _ := vmath.Normal(a.Pos, b.Pos)

	// Half the overlap each, along the contact normal
	push := n.Mul(overlap * 0.5)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)

	// Swap normal components
	dvn := vmath.Project(b.Vel, n) - vmath.Project(a.Vel, n)
	a.Vel = a.Vel.Add(n.Mul(dvn))
	b.Vel = b.Vel.Sub(n.Mul(dvn))
	return true
}

// ResolveAll runs one pass of ResolvePair over every unordered pair in index order
// No relaxation: a pair resolved early may be disturbed by a later pair in the same pass
// Returns the number of contacts resolved
func ResolveAll(bodies []Body) int {
	contacts := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if ResolvePair(&bodies[i], &bodies[j]) {
				contacts++
			}
		}
	}
	return contacts
}
