// Command isdattack runs an information-set-decoding solver against a
// synthetic HQC-like key-recovery instance, or repeats it over a batch of
// trials and reports success statistics. Grounded on the teacher's
// experiments/boot_precision/boot_precision.go flag+log driver shape.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pqclabs/hqc/isd"
)

var (
	n        = flag.Int("n", 3*358, "cyclic code length")
	w        = flag.Int("w", 3, "secret vector weight")
	solver   = flag.String("solver", "stern", "solver: brute-force, prange, or stern")
	seedHex  = flag.String("seed", "", "32-byte hex seed_pke; all-zero if empty")
	trials   = flag.Int("trials", 1, "number of independent instances to attack")
	maxIters = flag.Uint64("max-iters", 0, "iteration cap for brute-force/prange (0 = unbounded)")
)

func main() {
	flag.Parse()

	s, ok := isd.ByName(*solver)
	if !ok {
		log.Fatalf("unknown solver %q", *solver)
	}
	switch impl := s.(type) {
	case *isd.BruteForce:
		impl.MaxIters = *maxIters
	case *isd.Prange:
		impl.MaxIters = *maxIters
	}

	seed := resolveSeed(*seedHex)

	if *trials > 1 {
		runTrials(s, seed)
		return
	}
	runSingle(s, seed)
}

func resolveSeed(seedHex string) [32]byte {
	var seed [32]byte
	if seedHex == "" {
		return seed
	}
	b, err := hex.DecodeString(seedHex)
	if err != nil {
		log.Fatalf("decoding -seed: %v", err)
	}
	if len(b) != 32 {
		log.Fatalf("-seed must be 32 bytes, got %d", len(b))
	}
	copy(seed[:], b)
	return seed
}

func runSingle(solver isd.Solver, seed [32]byte) {
	inst, err := isd.GenerateInstance(*n, *w, seed)
	if err != nil {
		log.Fatalf("generating instance: %v", err)
	}
	log.Printf("instance: n=%d w=%d solver=%s", inst.N, inst.W, solver.Name())

	y, err := solver.Solve(inst.N, inst.W, inst.H, inst.S)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	if y == nil {
		fmt.Println("no solution found within budget")
		os.Exit(1)
	}

	matchesPlanted := y.Equal(inst.Y)
	fmt.Printf("found y with wt(y)=%d (matches planted secret: %v)\n", y.Weight(), matchesPlanted)
}

func runTrials(solver isd.Solver, seed [32]byte) {
	cfg := isd.TrialConfig{N: *n, W: *w, Trials: *trials, SeedBase: seed[0]}
	report, err := isd.RunTrials(cfg, solver)
	if err != nil {
		log.Fatalf("running trials: %v", err)
	}
	fmt.Println(report)
}
