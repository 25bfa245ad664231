package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/astrolab/orbsim/internal/config"
	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/astrolab/orbsim/internal/metrics"
	"github.com/astrolab/orbsim/internal/sim"
	"github.com/astrolab/orbsim/internal/tui"
)

var (
	preset     string
	configFile string
	steps      int
	sample     int
	outFile    string

	stepsPerFrame int
	frameRate     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbsim",
		Short: "exact-decimal gravitational n-body simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario and print a summary",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "built-in scenario name")
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	runCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (0 = scenario default)")
	runCmd.Flags().IntVar(&sample, "sample", 0, "chart sampling interval in steps (0 = auto)")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "run a scenario with a live terminal view",
		RunE:  watchScenario,
	}
	watchCmd.Flags().StringVar(&preset, "preset", "", "built-in scenario name")
	watchCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	watchCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 10, "simulation steps per frame")
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [preset]",
		Short: "write a built-in scenario out as a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(args[0])
			if cfg == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
			}
			return config.Save(outFile, cfg)
		},
	}
	exportCmd.Flags().StringVar(&outFile, "out", "scenario.yaml", "output file")

	rootCmd.AddCommand(runCmd, watchCmd, presetsCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadScenario resolves --preset / --config into a scenario.
func loadScenario() (*config.Config, error) {
	switch {
	case preset != "" && configFile != "":
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	case configFile != "":
		return config.Load(configFile)
	default:
		return nil, fmt.Errorf("either --preset or --config is required (see `orbsim presets`)")
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}

	system, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}

	n := cfg.Steps
	if steps > 0 {
		n = steps
	}
	if n <= 0 {
		n = config.DefaultSteps
	}

	interval := sample
	if interval <= 0 {
		interval = n / 100
		if interval < 1 {
			interval = 1
		}
	}

	impulseBefore := metrics.TotalRotationalImpulse(system)

	fmt.Printf("running %s for %d steps...\n", cfg.Name, n)
	start := time.Now()

	history := make([]float64, 0, n/interval+1)
	for i := 0; i < n; i++ {
		if err := system.Step(); err != nil {
			return err
		}
		if i%interval == 0 {
			if box, ok := system.BoundingBox(); ok {
				diag, _ := box.Diagonal().Float64()
				history = append(history, diag)
			}
		}
	}

	elapsed := time.Since(start)
	impulseAfter := metrics.TotalRotationalImpulse(system)

	fmt.Printf("completed in %v (%d iterations)\n\n", elapsed, system.IterationCount())

	printBodies(system)
	printConservation(system, impulseBefore, impulseAfter)

	if len(history) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(history, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("bounding box diagonal")))
	}

	return nil
}

func printBodies(system *sim.System) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tPOSITION\tSPEED")

	for _, body := range system.Elements() {
		mass, _ := body.Mass().Float64()
		p := body.Position()
		x, _ := p.X.Float64()
		y, _ := p.Y.Float64()
		z, _ := p.Z.Float64()
		speed, _ := body.Velocity().Length().Float64()
		fmt.Fprintf(w, "%s\t%.4e\t(%.4e, %.4e, %.4e)\t%.4e\n", body.Name(), mass, x, y, z, speed)
	}

	w.Flush()
}

func printConservation(system *sim.System, before, after decmath.Vector) {
	fmt.Println()
	if com, ok := metrics.CenterOfMass(system.Elements()); ok {
		x, _ := com.X.Float64()
		y, _ := com.Y.Float64()
		z, _ := com.Z.Float64()
		fmt.Printf("center of mass:           (%.4e, %.4e, %.4e)\n", x, y, z)
	}

	lb, _ := before.Length().Float64()
	la, _ := after.Length().Float64()
	drift, _ := after.Sub(before).Length().Float64()
	fmt.Printf("rotational impulse before: %.6e\n", lb)
	fmt.Printf("rotational impulse after:  %.6e\n", la)
	fmt.Printf("impulse drift:             %.6e\n", drift)
}

func watchScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	return tui.Run(cfg, stepsPerFrame, frameRate)
}
