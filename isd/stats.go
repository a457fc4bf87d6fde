package isd

import (
	"fmt"

	mstats "github.com/montanaflynn/stats"
)

// TrialConfig describes one batch of synthetic ISD instances to attack
// with a single solver, for exploratory benchmarking (cmd/isdattack).
type TrialConfig struct {
	N, W     int
	Trials   int
	SeedBase byte
}

// TrialReport summarizes a batch of Solve() calls against independently
// generated instances, in the repeated-experiment-and-summarize shape the
// teacher's bootstrapping precision experiments use, but over solver
// success/failure outcomes instead of ciphertext precision.
type TrialReport struct {
	SolverName    string
	Trials        int
	Successes     int
	SuccessRate   float64
	StdDevOutcome float64
	MedianOutcome float64
}

func (r TrialReport) String() string {
	return fmt.Sprintf(
		"%s: %d/%d solved, rate=%.4f median=%.0f stddev=%.4f",
		r.SolverName, r.Successes, r.Trials, r.SuccessRate, r.MedianOutcome, r.StdDevOutcome,
	)
}

// RunTrials runs solver against cfg.Trials independently generated
// synthetic instances (one per seed derived from cfg.SeedBase and the
// trial index) and summarizes the binary solved/not-solved outcomes.
func RunTrials(cfg TrialConfig, solver Solver) (TrialReport, error) {
	if cfg.Trials <= 0 {
		return TrialReport{}, &Error{Kind: InvalidParameter, Reason: "trials must be > 0"}
	}

	report := TrialReport{SolverName: solver.Name(), Trials: cfg.Trials}
	outcomes := make([]float64, 0, cfg.Trials)

	for t := 0; t < cfg.Trials; t++ {
		var seedPKE [32]byte
		seedPKE[0] = cfg.SeedBase
		seedPKE[1] = byte(t)
		seedPKE[2] = byte(t >> 8)

		inst, err := GenerateInstance(cfg.N, cfg.W, seedPKE)
		if err != nil {
			return TrialReport{}, err
		}

		y, err := solver.Solve(inst.N, inst.W, inst.H, inst.S)
		if err != nil {
			return TrialReport{}, err
		}

		if y != nil && y.Equal(inst.Y) {
			report.Successes++
			outcomes = append(outcomes, 1)
		} else {
			outcomes = append(outcomes, 0)
		}
	}

	if mean, err := mstats.Mean(outcomes); err == nil {
		report.SuccessRate = mean
	}
	if median, err := mstats.Median(outcomes); err == nil {
		report.MedianOutcome = median
	}
	if stddev, err := mstats.StandardDeviation(outcomes); err == nil {
		report.StdDevOutcome = stddev
	}

	return report, nil
}
