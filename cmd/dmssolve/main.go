package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/necrashter/dmsgo/persist"
	"github.com/necrashter/dmsgo/problem"
)

var (
	scenarioPath *string
	outPath      *string
	horizon      *int
)

func init() {
	scenarioPath = flag.String("scenario", "", "path to the scenario YAML file")
	outPath = flag.String("out", "", "path to write the binary solution to (optional)")
	horizon = flag.Int("horizon", 0, "override the scenario's horizon (0 = keep the scenario's value)")
	flag.Parse()
}

func run() error {
	if *scenarioPath == "" {
		return fmt.Errorf("dmssolve: -scenario is required")
	}
	in, err := FromYaml(*scenarioPath)
	if err != nil {
		return fmt.Errorf("dmssolve: loading %s: %w", *scenarioPath, err)
	}
	if *horizon > 0 {
		in.Horizon = *horizon
	}

	if resolved, err := problem.Build(in); err == nil {
		if comps := resolved.Graph.ConnectedComponents(); len(comps) > 1 {
			fmt.Printf("dmssolve: network has %d disconnected bus components\n", len(comps))
		}
	}

	sol, err := problem.Solve(in)
	if err != nil {
		return err
	}

	fmt.Printf(
		"states=%d horizon=%d (auto=%d, undershoot=%v) optimal=%.6f explore=%s policy=%s peak=%dB\n",
		sol.StateCount(), sol.Horizon, sol.AutoHorizon, sol.Undershoot, sol.OptimalValue(),
		sol.Stats.ExploreWallTime, sol.Stats.PolicyWallTime, sol.Stats.PeakMemoryBytes,
	)

	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("dmssolve: creating %s: %w", *outPath, err)
		}
		defer f.Close()
		if err := persist.Save(f, sol); err != nil {
			return fmt.Errorf("dmssolve: saving %s: %w", *outPath, err)
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
