package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bianoble/autobackup/internal/config"
	"github.com/bianoble/autobackup/internal/engine"
	"github.com/bianoble/autobackup/internal/ignore"
	"github.com/bianoble/autobackup/internal/logging"
)

var (
	runConfigPath string
	runRootSrc    string
	runRootDst    string
	runLogFile    string
	runDryRun     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Relocate files from the source root into the destination root",
	Long: `Walks the source root, deletes configured ignore entries, skips files the
destination already has, and moves the rest. Per-file failures are logged
and counted but do not stop the run or change the exit code; only an invalid
configuration or root aborts before any file is touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(runConfigPath)
		if err != nil {
			return err
		}

		rootSrc, err := validateRoot("rootSrc", runRootSrc)
		if err != nil {
			return err
		}
		rootDst, err := validateRoot("rootDst", runRootDst)
		if err != nil {
			return err
		}

		logPath := runLogFile
		if logPath == "" {
			logPath = defaultLogPath(rootSrc)
		}
		logger := logging.Setup(cfg.LogLevel, logPath, noColor)

		runID := uuid.NewString()
		eng := &engine.Engine{
			RootSrc: rootSrc,
			RootDst: rootDst,
			Ignore:  ignore.NewSet(cfg.FilesToIgnore),
			Exclude: logExclusion(rootSrc, logPath),
			Log:     logger,
		}

		result, err := eng.Run(cmd.Context(), cfg.Folders(), engine.RunOptions{
			RunID:  runID,
			DryRun: runDryRun,
		})
		if err != nil {
			return err
		}

		if runDryRun {
			info("Dry run — no files touched.")
		}
		for _, f := range result.Failures {
			errorf("%s: %s", f.Path, f.Err)
		}
		info("Backup complete: %d moved, %d skipped, %d deleted, %d failed.",
			result.Moved, result.Skipped, result.Deleted, result.Failed())

		// Per-file failures are reported above but the run still
		// completed; only startup errors exit non-zero.
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to the YAML config file")
	runCmd.Flags().StringVar(&runRootSrc, "rootSrc", "", "root path to move files from")
	runCmd.Flags().StringVar(&runRootDst, "rootDst", "", "root path to move files to")
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "log file path (default <rootSrc>/autobackup.log)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "report decisions without touching any file")

	for _, f := range []string{"config", "rootSrc", "rootDst"} {
		if err := runCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Sprintf("marking %s required: %v", f, err))
		}
	}

	rootCmd.AddCommand(runCmd)
}
