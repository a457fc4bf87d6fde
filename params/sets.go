package params

// HQC1 returns the HQC-128 parameter set (claimed 128-bit classical
// security), matching NIST category 1.
func HQC1() Parameters {
	return MustNew(Literal{
		Name: "HQC-1",
		N:    17669,
		N1:   46,
		N2:   384,
		K:    128,
		W:    66,
		WR:   75,
		WE:   75,

		RMMultiplicity: 3,
		RSGenerator:    g1Poly,

		SecurityLevel: 128,
	})
}

// HQC3 returns the HQC-192 parameter set (claimed 192-bit classical
// security), matching NIST category 3.
func HQC3() Parameters {
	return MustNew(Literal{
		Name: "HQC-3",
		N:    35851,
		N1:   56,
		N2:   640,
		K:    192,
		W:    100,
		WR:   114,
		WE:   114,

		RMMultiplicity: 5,
		RSGenerator:    g2Poly,

		SecurityLevel: 192,
	})
}

// HQC5 returns the HQC-256 parameter set (claimed 256-bit classical
// security), matching NIST category 5.
func HQC5() Parameters {
	return MustNew(Literal{
		Name: "HQC-5",
		N:    57637,
		N1:   90,
		N2:   640,
		K:    256,
		W:    131,
		WR:   149,
		WE:   149,

		RMMultiplicity: 5,
		RSGenerator:    g3Poly,

		SecurityLevel: 256,
	})
}

// ByName looks up one of the three fixed parameter sets by name ("HQC-1",
// "HQC-3", "HQC-5"), for CLI flag parsing.
func ByName(name string) (Parameters, bool) {
	switch name {
	case "HQC-1":
		return HQC1(), true
	case "HQC-3":
		return HQC3(), true
	case "HQC-5":
		return HQC5(), true
	default:
		return Parameters{}, false
	}
}

// All returns all three fixed parameter sets, in increasing security order.
func All() []Parameters {
	return []Parameters{HQC1(), HQC3(), HQC5()}
}
