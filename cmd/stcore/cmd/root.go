package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stcore",
	Short: "IEC 61131-3 Structured Text scan-cycle core",
	Long: `stcore runs a parsed Structured Text program one scan cycle at a
time against an in-memory store: expressions, control flow, and the
TON/TOF/TP, CTU/CTD/CTUD, R_TRIG/F_TRIG, and SR/RS function blocks.

It consumes an already-parsed AST (JSON); lexing and parsing source
text are outside this module's scope.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
