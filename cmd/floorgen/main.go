package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgameiro/floorgen/pkg/export"
	"github.com/dgameiro/floorgen/pkg/floorplate"
)

const version = "1.0.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	strategy   = flag.String("strategy", "", "Run a single strategy: balanced, mix, or efficiency")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floorgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
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
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}
	cfg, err := floorplate.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	in, err := cfg.Input()
	if err != nil {
		return err
	}
	if *strategy != "" {
		s, err := floorplate.ParseStrategy(*strategy)
		if err != nil {
			return err
		}
		in.Strategies = []floorplate.Strategy{s}
	}

	if *verbose {
		fmt.Printf("Generating %.1fm x %.1fm floorplate, %d unit types\n",
			in.Footprint.Length, in.Footprint.Depth, len(in.UnitTypes))
	}

	options, err := floorplate.Generate(in)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(*configPath), filepath.Ext(*configPath))

	if *format == "json" || *format == "all" {
		data, err := export.ExportJSON(options, true)
		if err != nil {
			return err
		}
		path := filepath.Join(*outputDir, base+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	if *format == "svg" || *format == "all" {
		for i := range options {
			opts := export.DefaultSVGOptions()
			opts.Title = fmt.Sprintf("%s — %s", base, options[i].Strategy)
			data, err := export.ExportSVG(&options[i], in.UnitTypes, opts)
			if err != nil {
				return err
			}
			path := filepath.Join(*outputDir,
				fmt.Sprintf("%s-%s.svg", base, options[i].Strategy))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			if *verbose {
				fmt.Printf("Wrote %s\n", path)
			}
		}
	}

	for i := range options {
		opt := &options[i]
		fmt.Printf("%s: %d units, efficiency %.1f%%",
			opt.Strategy, opt.Stats.TotalUnits, opt.Stats.Efficiency*100)
		if !opt.Egress.AllPass() {
			fmt.Print(", egress FAIL")
		}
		if n := len(opt.Warnings); n > 0 {
			fmt.Printf(", %d warning(s)", n)
		}
		fmt.Println()
		if *verbose {
			for _, w := range opt.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}
		}
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: floorgen -config <file.yaml> [-output <dir>] [-format json|svg|all]")
	fmt.Fprintln(os.Stderr, "Run 'floorgen -help' for details")
}

func printHelp() {
	fmt.Println("floorgen - multifamily floorplate generator")
	fmt.Println()
	fmt.Println("Generates corridor, core and unit layouts for a rectangular footprint")
	fmt.Println("from a YAML configuration, in up to three strategy variants.")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  floorgen -config tower.yaml")
	fmt.Println("  floorgen -config tower.yaml -format all -output ./out")
	fmt.Println("  floorgen -config tower.yaml -strategy efficiency -verbose")
}
