package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "autobackup",
	Short: "Move files out of a cloud-synced tree without ever overwriting",
	Long: `autobackup relocates files from a source directory tree into a
destination tree according to a YAML configuration. It is built to run
beside a third-party cloud-sync client that owns the source tree: it never
overwrites an existing destination file, never loses a source file that has
not been safely relocated, and tolerates files appearing and vanishing while
it works. Configured ignore entries are deleted from the source instead of
moved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("autobackup %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
