package fixture

import "github.com/dringlabs/fixturegen/pkg/detrand"

// Seed is the fixed seed for the run's random source. Changing it changes
// the byte content of every randomized fixture, so treat it as part of
// the catalog's identity.
const Seed = 42

// Catalog builds all fixture pairs in their fixed order. The order
// matters: builders draw from the shared source strictly in call order,
// so reordering them would change the bytes of every randomized pair
// after the first.
func Catalog(src *detrand.Source) []Pair {
	return []Pair{
		SimpleScatter(),
		HeaderMutation(src),
		Firmware(src),
		TextSubstitution(),
		IdenticalPair(),
	}
}
