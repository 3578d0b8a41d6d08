package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/physlab/internal/acoustics"
	"github.com/san-kum/physlab/internal/api"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/export"
	"github.com/san-kum/physlab/internal/mech"
	"github.com/san-kum/physlab/internal/metrics"
	"github.com/san-kum/physlab/internal/report"
	"github.com/san-kum/physlab/internal/sim"
	"github.com/san-kum/physlab/internal/storage"
	"github.com/san-kum/physlab/internal/viz"
)

var (
	dataDir  string
	dt       float64
	duration float64
	// Atwood knobs
	massTable   float64
	massHanging float64
	mu          float64
	frictionOn  bool
	gravity     float64
	targetM     float64
	velocity    float64
	// Resonance knobs
	frequency float64
	diameter  float64
	tempC     float64
	airLength float64
	bandwidth float64
	// Sweep range
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	// Config file / preset
	configFile string
	preset     string
	// Trial note
	note string
	// Report fields
	reportOut     string
	reportTitle   string
	reportStudent string
	reportCourse  string
	// Export column and SVG size
	column    string
	svgWidth  int
	svgHeight int
	// Server
	addr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "half-Atwood and resonance-tube teaching lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{"atwood"})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [experiment]",
		Short: "resolve forces once and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  solve,
	}
	addAtwoodFlags(solveCmd)
	addResonanceFlags(solveCmd)
	solveCmd.Flags().Float64Var(&velocity, "velocity", 0, "resolve at this cart velocity instead of from rest")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the cart simulation and store the frames",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	addAtwoodFlags(runCmd)
	runCmd.Flags().Float64Var(&velocity, "velocity", 0, "initial cart velocity")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the piston and plot resonance strength",
		RunE:  sweepResonance,
	}
	addResonanceFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.05, "first air length (m)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.5, "last air length (m)")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 90, "samples across the sweep")

	liveCmd := &cobra.Command{
		Use:   "live [experiment]",
		Short: "interactive terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one run column as an SVG curve",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&column, "column", "position", "column to plot (position, velocity, acceleration)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "list logged trials",
		RunE:  listTrials,
	}

	logTrialCmd := &cobra.Command{
		Use:   "log-trial [experiment]",
		Short: "resolve once and append the result to the trial log",
		Args:  cobra.ExactArgs(1),
		RunE:  logTrial,
	}
	addAtwoodFlags(logTrialCmd)
	addResonanceFlags(logTrialCmd)
	logTrialCmd.Flags().StringVar(&note, "note", "", "free-form note")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "render the trial log as a PDF",
		RunE:  renderReport,
	}
	reportCmd.Flags().StringVar(&reportOut, "out", "lab-report.pdf", "output file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report title")
	reportCmd.Flags().StringVar(&reportStudent, "student", "", "student name")
	reportCmd.Flags().StringVar(&reportCourse, "course", "", "course name")

	presetsCmd := &cobra.Command{
		Use:   "presets [experiment]",
		Short: "list available presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for experiment: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	experimentsCmd := &cobra.Command{
		Use:   "experiments",
		Short: "list available experiments",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, d := range experiment.NewRegistry().List() {
				fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
			}
			return w.Flush()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the solvers and trial log over HTTP",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default $PORT or :8080)")

	rootCmd.AddCommand(solveCmd, runCmd, sweepCmd, liveCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, trialsCmd, logTrialCmd,
		reportCmd, presetsCmd, experimentsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAtwoodFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&massTable, "mass-table", config.DefaultMassTable, "cart mass on the table (kg)")
	cmd.Flags().Float64Var(&massHanging, "mass-hanging", config.DefaultMassHanging, "hanging mass (kg)")
	cmd.Flags().Float64Var(&mu, "mu", config.DefaultMu, "friction coefficient")
	cmd.Flags().BoolVar(&frictionOn, "friction", false, "enable table friction")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravity (m/s^2)")
	cmd.Flags().Float64Var(&targetM, "target", config.DefaultTarget, "target distance (m)")
}

func addResonanceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "tuning fork frequency (Hz)")
	cmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "tube inner diameter (m)")
	cmd.Flags().Float64Var(&tempC, "temp", config.DefaultTempC, "air temperature (C)")
	cmd.Flags().Float64Var(&airLength, "length", 0, "air column length (m), 0 = at target")
	cmd.Flags().Float64Var(&bandwidth, "bandwidth", 0, "strength bandwidth (m), 0 = default")
}

func atwoodParams() mech.Params {
	return mech.Params{
		MassTable:   massTable,
		MassHanging: massHanging,
		Mu:          mu,
		FrictionOn:  frictionOn,
		Gravity:     gravity,
	}
}

func solve(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "atwood":
		return solveAtwood(cmd)
	case "resonance":
		return solveResonance()
	default:
		return fmt.Errorf("unknown experiment: %s", args[0])
	}
}

func solveAtwood(cmd *cobra.Command) error {
	p := atwoodParams()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if cmd.Flags().Changed("velocity") {
		r := mech.ResolveDynamic(p, velocity)
		fmt.Fprintf(w, "mode\t%s\n", r.Mode)
		fmt.Fprintf(w, "acceleration\t%.4f m/s^2\n", r.Acceleration)
		fmt.Fprintf(w, "tension\t%.4f N\n", r.Tension)
		fmt.Fprintf(w, "friction\t%+.4f N\n", r.FrictionSigned)
		fmt.Fprintf(w, "net force\t%.4f N\n", r.NetForce)
		fmt.Fprintf(w, "drive force\t%.4f N\n", r.DriveForce)
		return w.Flush()
	}

	r := mech.ResolveFromRest(p, targetM)
	fmt.Fprintf(w, "mode\t%s\n", r.Mode)
	fmt.Fprintf(w, "acceleration\t%.4f m/s^2\n", r.Acceleration)
	fmt.Fprintf(w, "tension\t%.4f N\n", r.Tension)
	fmt.Fprintf(w, "friction\t%.4f N\n", r.Friction)
	fmt.Fprintf(w, "net force\t%.4f N\n", r.NetForce)
	fmt.Fprintf(w, "drive force\t%.4f N\n", r.DriveForce)
	fmt.Fprintf(w, "moves\t%v\n", r.Moved)
	if r.TimeToTargetOK {
		fmt.Fprintf(w, "time to %.2f m\t%.4f s\n", targetM, r.TimeToTarget)
	} else {
		fmt.Fprintf(w, "time to %.2f m\tnever\n", targetM)
	}
	return w.Flush()
}

func solveResonance() error {
	speed := acoustics.SpeedOfSoundFromTemp(tempC)
	target := acoustics.FirstHarmonicAirLength(frequency, speed, diameter)
	length := airLength
	if length == 0 {
		length = target
	}

	var strength float64
	if bandwidth > 0 {
		strength = acoustics.ResonanceStrengthWithBandwidth(length, target, bandwidth)
	} else {
		strength = acoustics.ResonanceStrength(length, target)
	}
	band := acoustics.QualityBand(strength)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "speed of sound\t%.2f m/s\n", speed)
	fmt.Fprintf(w, "target length\t%.4f m\n", target)
	fmt.Fprintf(w, "air length\t%.4f m\n", length)
	fmt.Fprintf(w, "inferred speed\t%.2f m/s\n", acoustics.InferredSpeed(frequency, length, diameter))
	fmt.Fprintf(w, "strength\t%.4f\n", strength)
	fmt.Fprintf(w, "band\t%s\n", band.Label)
	return w.Flush()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset("atwood", preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("atwood"))
		}
		applyConfig(cmd, cfg)
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	p := atwoodParams()
	runner := sim.New(p)
	runner.AddMetric(metrics.NewDissipation(p))
	runner.AddMetric(metrics.NewHoldFraction())
	runner.AddMetric(metrics.NewPeakSpeed())

	fmt.Println("running cart simulation...")
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:              dt,
		Duration:        duration,
		InitialVelocity: velocity,
		TargetDistance:  targetM,
		StopAtTarget:    targetM > 0,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.SaveRun("atwood", dt, duration, p, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	if result.HitTarget {
		fmt.Printf("hit %.2f m at t=%.4f s\n", targetM, result.TargetTime)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

// applyConfig copies config values into the flag variables, letting flags
// the user set explicitly win.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, dst *float64, v float64) {
		if !cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("dt", &dt, cfg.Dt)
	set("time", &duration, cfg.Duration)
	set("mass-table", &massTable, cfg.Atwood.MassTableKg)
	set("mass-hanging", &massHanging, cfg.Atwood.MassHangingKg)
	set("mu", &mu, cfg.Atwood.Mu)
	set("gravity", &gravity, cfg.Atwood.Gravity)
	set("target", &targetM, cfg.Atwood.TargetM)
	set("velocity", &velocity, cfg.Atwood.InitVelocity)
	if !cmd.Flags().Changed("friction") {
		frictionOn = cfg.Atwood.FrictionOn
	}
}

func sweepResonance(cmd *cobra.Command, args []string) error {
	if sweepPoints < 2 {
		return fmt.Errorf("need at least 2 sweep points")
	}
	if sweepTo <= sweepFrom {
		return fmt.Errorf("sweep range is empty")
	}

	speed := acoustics.SpeedOfSoundFromTemp(tempC)
	target := acoustics.FirstHarmonicAirLength(frequency, speed, diameter)

	data := make([]float64, sweepPoints)
	step := (sweepTo - sweepFrom) / float64(sweepPoints-1)
	for i := range data {
		l := sweepFrom + float64(i)*step
		if bandwidth > 0 {
			data[i] = acoustics.ResonanceStrengthWithBandwidth(l, target, bandwidth)
		} else {
			data[i] = acoustics.ResonanceStrength(l, target)
		}
	}

	fmt.Printf("fork %.1f Hz, %.1f C, speed %.2f m/s, target %.4f m\n\n",
		frequency, tempC, speed, target)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("resonance strength, %.3f m to %.3f m", sweepFrom, sweepTo)),
	))

	if target < sweepFrom || target > sweepTo {
		fmt.Println("\ntarget length is outside the sweep range")
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	name := "atwood"
	if len(args) > 0 {
		name = args[0]
	}

	registry := experiment.NewRegistry()
	desc, err := registry.Get(name)
	if err != nil {
		return err
	}

	cfg := desc.Defaults()
	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(name, cfg, st))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXPERIMENT\tTIME\tDURATION\tDT\tHIT TARGET")
	for _, run := range runs {
		hit := "-"
		if run.HitTarget {
			hit = fmt.Sprintf("%.3fs", run.TargetTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Experiment,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			hit,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(frames))

	series := []struct {
		caption string
		pick    func(f sim.Frame) float64
	}{
		{"cart position (m)", func(f sim.Frame) float64 { return f.Position }},
		{"cart velocity (m/s)", func(f sim.Frame) float64 { return f.Velocity }},
		{"acceleration (m/s^2)", func(f sim.Frame) float64 { return f.Forces.Acceleration }},
	}
	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.pick(f)
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		))
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "position", "velocity", "acceleration", "tension", "friction", "net_force", "mode"}); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.FormatFloat(f.T, 'f', 6, 64),
			strconv.FormatFloat(f.Position, 'f', 6, 64),
			strconv.FormatFloat(f.Velocity, 'f', 6, 64),
			strconv.FormatFloat(f.Forces.Acceleration, 'f', 6, 64),
			strconv.FormatFloat(f.Forces.Tension, 'f', 6, 64),
			strconv.FormatFloat(f.Forces.FrictionSigned, 'f', 6, 64),
			strconv.FormatFloat(f.Forces.NetForce, 'f', 6, 64),
			string(f.Forces.Mode),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) < 2 {
		return fmt.Errorf("not enough data to plot")
	}

	xs := make([]float64, len(frames))
	ys := make([]float64, len(frames))
	for i, f := range frames {
		xs[i] = f.T
		switch column {
		case "position":
			ys[i] = f.Position
		case "velocity":
			ys[i] = f.Velocity
		case "acceleration":
			ys[i] = f.Forces.Acceleration
		default:
			return fmt.Errorf("unknown column: %s", column)
		}
	}

	fmt.Print(export.CurveToSVG(xs, ys, svgWidth, svgHeight, "#00ff00"))
	return nil
}

func listTrials(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trials, err := st.LoadTrials()
	if err != nil {
		return err
	}
	if len(trials) == 0 {
		fmt.Println("no trials logged")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXPERIMENT\tLOGGED\tMODE\tBAND\tACCEPTED\tNOTE")
	for _, t := range trials {
		accepted := "-"
		if t.Experiment == "resonance" {
			accepted = "no"
			if t.Accepted {
				accepted = "yes"
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Experiment,
			t.LoggedAt.Format("2006-01-02 15:04:05"),
			t.Mode,
			t.Band,
			accepted,
			t.Note,
		)
	}
	return w.Flush()
}

func logTrial(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	var t experiment.Trial
	switch args[0] {
	case "atwood":
		p := atwoodParams()
		t = experiment.NewAtwoodTrial(p, targetM, mech.ResolveFromRest(p, targetM))
	case "resonance":
		speed := acoustics.SpeedOfSoundFromTemp(tempC)
		target := acoustics.FirstHarmonicAirLength(frequency, speed, diameter)
		length := airLength
		if length == 0 {
			length = target
		}
		t = experiment.NewResonanceTrial(frequency, diameter, length, target)
	default:
		return fmt.Errorf("unknown experiment: %s", args[0])
	}
	t.Note = note

	saved, err := st.AppendTrial(t)
	if err != nil {
		return err
	}
	fmt.Printf("logged trial %d\n", saved.ID)
	return nil
}

func renderReport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trials, err := st.LoadTrials()
	if err != nil {
		return err
	}

	f, err := os.Create(reportOut)
	if err != nil {
		return err
	}
	defer f.Close()

	meta := report.Meta{Title: reportTitle, Student: reportStudent, Course: reportCourse}
	if err := report.Build(f, meta, trials); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d trials)\n", reportOut, len(trials))
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    addr,
		Handler: api.CORS(api.NewRouter(st)),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
