// Command floodline runs a level against a recorded or generated input log
// and reports the outcome, exporting JSON/SVG snapshots on request.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mental-nv/floodline/pkg/engine"
	"github.com/mental-nv/floodline/pkg/export"
	"github.com/mental-nv/floodline/pkg/level"
	"github.com/mental-nv/floodline/pkg/replay"
)

const version = "1.0.0"

var (
	levelPath  = flag.String("level", "", "Path to a level file, YAML or JSON (required)")
	replayPath = flag.String("replay", "", "Path to a recorded replay JSON file (optional; default is an idle run of -ticks None commands)")
	ticks      = flag.Int("ticks", 0, "Number of ticks to run when -replay is not given")
	outputDir  = flag.String("output", ".", "Output directory for exported snapshots")
	format     = flag.String("format", "json", "Export format for the final snapshot: json, svg, or all")
	svgLayer   = flag.Int("svg-layer", 0, "Grid Y layer to render when exporting SVG")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floodline version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *levelPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -level flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading level from %s\n", *levelPath)
	}
	lvl, err := loadLevel(*levelPath)
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return fmt.Errorf("level failed validation: %w", err)
	}

	commands, err := loadCommands(lvl)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("Running %q (seed=%d) for %d commands\n", lvl.Meta.ID, lvl.Meta.Seed, len(commands))
	}

	sim, err := engine.New(lvl)
	if err != nil {
		return fmt.Errorf("failed to construct simulation: %w", err)
	}

	start := time.Now()
	for i, cmd := range commands {
		if err := sim.Tick(cmd); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		if sim.Status != engine.Running {
			break
		}
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Simulation completed in %v\n", elapsed)
	}
	printOutcome(sim)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	baseName := fmt.Sprintf("%s_tick%d", lvl.Meta.ID, sim.Counters.Tick)

	if *format == "json" || *format == "all" {
		if err := exportJSON(sim, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(sim, baseName); err != nil {
			return err
		}
	}

	return nil
}

func loadLevel(path string) (*level.Level, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return level.LoadYAML(path)
	}
	return level.LoadJSON(path)
}

// loadCommands returns the replay's recorded commands when -replay is given
// and validates it against lvl; otherwise it synthesizes -ticks None inputs.
func loadCommands(lvl *level.Level) ([]replay.Command, error) {
	if *replayPath == "" {
		commands := make([]replay.Command, *ticks)
		for i := range commands {
			commands[i] = replay.None
		}
		return commands, nil
	}

	r, err := replay.Load(*replayPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay: %w", err)
	}
	if err := r.Validate(lvl); err != nil {
		return nil, fmt.Errorf("replay failed validation: %w", err)
	}
	commands := make([]replay.Command, len(r.Inputs))
	for i, in := range r.Inputs {
		commands[i] = in.Command
	}
	return commands, nil
}

func printOutcome(sim *engine.Simulation) {
	fmt.Printf("Status: %s\n", sim.Status)
	if sim.Status == engine.Lost {
		fmt.Printf("Failed on: %s\n", sim.FailedOn)
	}
	fmt.Printf("Ticks: %d  PiecesLocked: %d  WaterRemoved: %d  Rotations: %d\n",
		sim.Counters.Tick, sim.Counters.PiecesLocked, sim.Counters.WaterRemovedTotal, sim.Counters.RotationsExecuted)
	fmt.Printf("Determinism hash: %s\n", sim.DeterminismHash())
}

func exportJSON(sim *engine.Simulation, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	snap := export.BuildSnapshot(sim)
	if err := export.SaveJSON(snap, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}

func exportSVG(sim *engine.Simulation, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("%s (tick %d)", baseName, sim.Counters.Tick)
	if err := export.SaveSVG(sim, *svgLayer, opts, filename); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: floodline -level <level.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'floodline -help' for detailed help")
}

func printHelp() {
	fmt.Printf("floodline version %s\n\n", version)
	fmt.Println("Runs a level's deterministic water-puzzle simulation against a")
	fmt.Println("recorded replay, or a run of idle ticks, and reports the outcome.")
	fmt.Println("\nUsage:")
	fmt.Println("  floodline -level <level.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -level string")
	fmt.Println("        Path to a level file, YAML or JSON")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -replay string")
	fmt.Println("        Path to a recorded replay JSON file")
	fmt.Println("  -ticks int")
	fmt.Println("        Number of idle ticks to run when -replay is not given")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for exported snapshots (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -svg-layer int")
	fmt.Println("        Grid Y layer to render when exporting SVG (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  floodline -level levels/first.yaml -replay runs/attempt1.json")
	fmt.Println("  floodline -level levels/first.yaml -ticks 120 -format all -verbose")
}
