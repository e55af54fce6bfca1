package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given (GUI mode) or help was printed.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("calc-tool", flag.ContinueOnError)

	fs.StringVar(&cfg.Expression, "e", "", "Arithmetic expression to evaluate")
	fs.StringVar(&cfg.Expression, "expr", "", "Arithmetic expression to evaluate")

	fs.StringVar(&cfg.Weight, "w", "", "Weight in kilograms")
	fs.StringVar(&cfg.Weight, "weight", "", "Weight in kilograms")
	fs.StringVar(&cfg.Height, "H", "", "Height in centimeters")
	fs.StringVar(&cfg.Height, "height", "", "Height in centimeters")

	fs.BoolVar(&cfg.TUI, "tui", false, "Run the terminal interface")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Settings file path")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	hasBMI := cfg.Weight != "" || cfg.Height != ""
	if hasBMI && (cfg.Weight == "" || cfg.Height == "") {
		fmt.Fprintf(os.Stderr, "Error: -weight and -height must be given together\n\n")
		PrintUsage()
		return nil, fmt.Errorf("incomplete BMI flags")
	}

	if cfg.Expression == "" && !hasBMI && !cfg.TUI && cfg.ConfigPath == "" {
		fmt.Fprintf(os.Stderr, "Error: nothing to do\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Calculator & BMI Tool

Usage: calc-tool [flags]
       calc-tool          (open the window)
       calc-tool help     (show this message)

CALCULATOR:
  -e, -expr <expression>   Evaluate an expression over + - * / and ( )

BMI:
  -w, -weight <kg>         Weight in kilograms
  -H, -height <cm>         Height in centimeters

INTERFACE:
  -tui                     Run in the terminal instead of a window
  -config <path>           Settings file (default: <config dir>/calc-tool/config.toml)
  -v, -verbose             Verbose output

EXAMPLES:
  # Evaluate an expression
  calc-tool -e "2+3*4"

  # Compute BMI
  calc-tool -w 70 -H 175

  # Open the window with a custom settings file
  calc-tool -config ./calc.toml

`)
}
