package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/layoutcore/pkg/ir"
	"github.com/dshills/layoutcore/pkg/layout"
)

const version = "1.0.0"

// CLI flags
var (
	scenarioPath = flag.String("scenario", "", "Path to YAML scenario file (required)")
	outputPath   = flag.String("output", "", "Output path for IR JSON (default: <scenario>.ir.json)")
	presetFlag   = flag.String("preset", "", "Override the preset named in the scenario file")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	listPresets  = flag.Bool("list-presets", false, "List registered presets and exit")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("layoutdemo version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *listPresets {
		for _, name := range layout.List() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading scenario from %s\n", *scenarioPath)
	}

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if *presetFlag != "" {
		if *verbose {
			fmt.Printf("Overriding preset from %q to %q\n", sc.Preset, *presetFlag)
		}
		sc.Preset = *presetFlag
	}

	g, err := sc.BuildGraph()
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	cfg, err := sc.ResolveConfig()
	if err != nil {
		return fmt.Errorf("failed to resolve preset: %w", err)
	}

	if *verbose {
		fmt.Printf("Using preset: %s\n", sc.Preset)
		fmt.Printf("Nodes: %d, Edges: %d\n", g.NodeCount(), len(g.Edges()))
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Running layout...")
	}

	doc, err := layout.Layout(g, cfg)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Layout completed in %v\n", elapsed)
		printStats(doc)
	}

	outPath := *outputPath
	if outPath == "" {
		ext := filepath.Ext(*scenarioPath)
		base := (*scenarioPath)[:len(*scenarioPath)-len(ext)]
		outPath = base + ".ir.json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal IR: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write IR: %w", err)
	}

	fmt.Printf("Successfully laid out graph (preset=%s) in %v -> %s\n", sc.Preset, elapsed, outPath)
	return nil
}

func printStats(doc *ir.LayoutIR) {
	fmt.Println("\nLayout Statistics:")
	fmt.Printf("  Nodes: %d\n", len(doc.Nodes))
	fmt.Printf("  Edges: %d\n", len(doc.Edges))
	fmt.Printf("  Levels: %d\n", doc.LevelCount)
	fmt.Printf("  Canvas: %dx%d\n", doc.Width, doc.Height)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: layoutdemo -scenario <scenario.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'layoutdemo -help' for detailed help")
}

func printHelp() {
	fmt.Printf("layoutdemo version %s\n\n", version)
	fmt.Println("A command-line tool that runs a graph through the layout core and")
	fmt.Println("emits the resulting IR as JSON. It does not render anything.")
	fmt.Println("\nUsage:")
	fmt.Println("  layoutdemo -scenario <scenario.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -scenario string")
	fmt.Println("        Path to YAML scenario file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output path for IR JSON (default: <scenario>.ir.json)")
	fmt.Println("  -preset string")
	fmt.Println("        Override the preset named in the scenario file")
	fmt.Println("  -list-presets")
	fmt.Println("        List registered presets and exit")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Run a scenario with its configured preset")
	fmt.Println("  layoutdemo -scenario graph.yaml")
	fmt.Println("\n  # Force the force-directed engine and write to a custom path")
	fmt.Println("  layoutdemo -scenario graph.yaml -preset fdg.standard -output out.json")
	fmt.Println("\nScenario File:")
	fmt.Println("  The YAML scenario specifies the input graph and layout parameters:")
	fmt.Println("  - preset (one of the registered preset names)")
	fmt.Println("  - nodes (id, label, width)")
	fmt.Println("  - edges (from, to, directed, label)")
	fmt.Println("  - skip_validation (optional, bypasses precondition checks)")
}
