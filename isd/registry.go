package isd

// Solvers returns one instance of every built-in Solver, configured with
// reasonable defaults for ad hoc exploration (cmd/isdattack overrides these
// via flags).
func Solvers() []Solver {
	return []Solver{
		NewBruteForce(0),
		NewPrange(0, 1),
		DefaultStern(),
	}
}

// ByName returns the built-in solver with the given Name(), and whether one
// was found.
func ByName(name string) (Solver, bool) {
	for _, s := range Solvers() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
