package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/initializer"
	"github.com/golang-plc/stcore/internal/program"
	"github.com/golang-plc/stcore/internal/runner"
	"github.com/golang-plc/stcore/internal/runtime"
	"github.com/golang-plc/stcore/internal/store"
	"github.com/golang-plc/stcore/internal/sterrors"
	"github.com/spf13/cobra"
)

var (
	scanCount int
	scanTime  int64
	watch     string
)

var runCmd = &cobra.Command{
	Use:   "run [program.json]",
	Short: "Run a parsed Structured Text program for a number of scan cycles",
	Long: `Load a parsed-AST JSON document and execute it for --scans scan
cycles, each advancing every timer by --scan-time milliseconds before
executing the program body once.

Examples:
  stcore run blink.json --scans 10
  stcore run blink.json --scans 5 --scan-time 100 --watch Q,Count`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&scanCount, "scans", 1, "number of scan cycles to execute")
	runCmd.Flags().Int64Var(&scanTime, "scan-time", 100, "nominal scan period in milliseconds")
	runCmd.Flags().StringVar(&watch, "watch", "", "comma-separated variable names to print after the final scan")
}

func runProgram(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	p, err := program.Load(f)
	if err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}

	sink := sterrors.NewWriterSink(os.Stderr, "")
	sink.SetEnabled(verbose)

	types := initializer.BuildTypeRegistry(p)
	consts := initializer.BuildConstantRegistry(p)

	s := store.New(scanTime)
	if err := initializer.InitializeVariables(p, s, types, consts, sink); err != nil {
		return fmt.Errorf("failed to initialize variables: %w", err)
	}

	state := runtime.NewState(p)
	r := runner.New(s, types, consts, state, sink)

	for i := 0; i < scanCount; i++ {
		if err := r.RunScanCycle(); err != nil {
			return fmt.Errorf("scan %d failed: %w", i+1, err)
		}
	}

	if watch != "" {
		ctx := evaluator.NewContext(s, types, consts, sink)
		for _, name := range strings.Split(watch, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			v, err := evaluator.Evaluate(variableRef(name), ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", name, v.String())
		}
	}

	return nil
}

func variableRef(name string) *ast.Variable {
	return &ast.Variable{AccessPath: []string{name}}
}
