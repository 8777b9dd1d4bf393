package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lagsim/internal/config"
	"github.com/san-kum/lagsim/internal/export"
	"github.com/san-kum/lagsim/internal/forces"
	"github.com/san-kum/lagsim/internal/integrator"
	"github.com/san-kum/lagsim/internal/metrics"
	"github.com/san-kum/lagsim/internal/particles"
	"github.com/san-kum/lagsim/internal/steppers"
	"github.com/san-kum/lagsim/internal/storage"
	"github.com/san-kum/lagsim/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	n          int
	gravityY   float64
	epec       bool
	configFile string
	preset     string
	property   string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lagsim",
		Short: "particle time-integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lagsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scheme]",
		Short: "run a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of timesteps")
	runCmd.Flags().IntVar(&n, "n", config.DefaultN, "particle count")
	runCmd.Flags().Float64Var(&gravityY, "gravity", config.DefaultGravity, "vertical body acceleration")
	runCmd.Flags().BoolVar(&epec, "epec", false, "evaluate forces before the first stage too")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	infoCmd := &cobra.Command{
		Use:   "info [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a property of the final state",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&property, "property", "u", "property to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export the final state as an SVG scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")

	watchCmd := &cobra.Command{
		Use:   "watch [scheme]",
		Short: "live view of a running simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  watchSimulation,
	}
	watchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	watchCmd.Flags().IntVar(&n, "n", config.DefaultN, "particle count")
	watchCmd.Flags().Float64Var(&gravityY, "gravity", config.DefaultGravity, "vertical body acceleration")
	watchCmd.Flags().BoolVar(&epec, "epec", false, "evaluate forces before the first stage too")

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list available integration schemes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range steppers.Kinds() {
				presets := config.ListPresets(kind)
				if len(presets) > 0 {
					fmt.Printf("%s (presets: %s)\n", kind, strings.Join(presets, ", "))
				} else {
					fmt.Println(kind)
				}
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, infoCmd, plotCmd, exportCmd, watchCmd, schemesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges flags, an optional preset and an optional file into a
// run configuration.
func resolveConfig(scheme string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(scheme, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for scheme %q", preset, scheme)
		}
		// copy so later mutation never touches the shared preset table
		c := *p
		cfg = &c
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Scheme = scheme
	if preset == "" && configFile == "" {
		cfg.Dt = dt
		cfg.Steps = steps
		cfg.N = n
		cfg.Gravity.Y = gravityY
		cfg.EPEC = epec
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// buildGroup creates a group whose schema matches the scheme, dropped from
// the configured height with the configured horizontal speed.
func buildGroup(cfg *config.Config) *particles.Group {
	name := cfg.Group
	if name == "" {
		name = "fluid"
	}

	var g *particles.Group
	switch cfg.Scheme {
	case "solid_mech":
		g = particles.NewSolidMechGroup(name, cfg.N)
	case "gas_dynamics":
		g = particles.NewGasGroup(name, cfg.N)
	default:
		g = particles.NewWCSPHGroup(name, cfg.N)
	}

	y := g.MustProperty("y")
	u := g.MustProperty("u")
	rho := g.MustProperty("rho")
	for i := range y {
		y[i] = cfg.InitState.Height
		u[i] = cfg.InitState.Speed
		rho[i] = cfg.InitState.Rho
	}
	if len(cfg.OutputArrays) > 0 {
		g.SetOutputArrays(cfg.OutputArrays)
	}
	return g
}

func buildIntegrator(cfg *config.Config) (*integrator.Integrator, integrator.Evaluator, error) {
	st, err := steppers.New(cfg.Scheme)
	if err != nil {
		return nil, nil, err
	}

	g := buildGroup(cfg)
	in, err := integrator.New(g, st, integrator.Config{EvaluateBeforeStage1: cfg.EPEC})
	if err != nil {
		return nil, nil, err
	}

	// rigid-body schemes take the body acceleration through ax, ay, az
	var ev integrator.Evaluator
	if strings.HasPrefix(cfg.Scheme, "rigid_body") {
		ev = forces.NewPrescribedAcceleration(cfg.Gravity.X, cfg.Gravity.Y, cfg.Gravity.Z)
	} else {
		ev = forces.NewConstantGravity(cfg.Gravity.X, cfg.Gravity.Y, cfg.Gravity.Z)
	}
	return in, ev, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[0])
	if err != nil {
		return err
	}

	in, ev, err := buildIntegrator(cfg)
	if err != nil {
		return err
	}

	result, err := in.Run(context.Background(), ev, 0, cfg.Dt, cfg.Steps)
	if err != nil {
		return err
	}
	finalTime := result.Times[len(result.Times)-1]

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(in.Group(), cfg.Scheme, cfg.Dt, result.StepsTaken, finalTime)
	if err != nil {
		return err
	}

	g := in.Group()
	fmt.Printf("run %s: %d particles, %d steps, t=%.4f\n",
		runID, g.Len(), result.StepsTaken, finalTime)
	fmt.Printf("kinetic energy %.4e, mean speed %.4f, mean density %.2f\n",
		metrics.KineticEnergy(g), metrics.MeanSpeed(g), metrics.MeanDensity(g))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snap, err := st.LoadSnapshot(args[0])
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	g, ok := snap.Group(meta.Group)
	if !ok {
		return fmt.Errorf("group %q missing from snapshot", meta.Group)
	}

	path := outFile
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := export.WriteScatterSVG(g, path, 800, 600); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHEME\tPARTICLES\tSTEPS\tFINAL TIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\n",
			run.ID, run.Scheme, run.Particles, run.Steps, run.FinalTime)
	}
	return w.Flush()
}

func runInfo(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snap, err := st.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	g, ok := snap.Group(meta.Group)
	if !ok {
		return fmt.Errorf("group %q missing from snapshot", meta.Group)
	}

	values, err := g.Property(property)
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s by particle index", property)),
	))
	return nil
}

func watchSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Scheme = args[0]
	cfg.Dt = dt
	cfg.N = n
	cfg.Gravity.Y = gravityY
	cfg.EPEC = epec

	in, ev, err := buildIntegrator(cfg)
	if err != nil {
		return err
	}
	return viz.Run(in, ev, cfg.Scheme, cfg.Dt)
}
