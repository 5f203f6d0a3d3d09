package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewferrier/normalize-filename/internal/orchestrator"
	"github.com/andrewferrier/normalize-filename/internal/output"
	"github.com/andrewferrier/normalize-filename/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] directory ...",
	Short: "Watch directories and normalize new files as they appear",
	Long: `watch monitors the given directories and normalizes each newly
created file once it has finished being written. Partial downloads and
editor temp files are left alone. Watching continues until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 2*time.Second,
		"quiet period before a new file is processed")
	watchCmd.Flags().Duration("stable-threshold", time.Second,
		"how long a file's size must hold still before renaming")
	watchCmd.Flags().StringArray("ignore", nil,
		"extra base-name globs to leave alone (repeatable)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	out := output.New(output.DefaultConfig(cfg.Verbose))

	// Watch mode never prompts; each file is renamed as it settles.
	runner, err := orchestrator.New(cfg, out)
	if err != nil {
		return err
	}

	watchCfg := watcher.DefaultConfig()
	watchCfg.Debounce, _ = cmd.Flags().GetDuration("debounce")
	watchCfg.StableThreshold, _ = cmd.Flags().GetDuration("stable-threshold")
	if extra, _ := cmd.Flags().GetStringArray("ignore"); len(extra) > 0 {
		watchCfg.IgnorePatterns = append(watchCfg.IgnorePatterns, extra...)
	}

	w := watcher.New(watchCfg, func(path string) (bool, error) {
		summary, err := runner.Run([]string{path})
		if err != nil {
			return false, err
		}
		for _, result := range summary.Results {
			if result.Status == orchestrator.StatusFailed {
				out.Error("%s: %v", result.SourcePath, result.Err)
			}
		}
		return summary.Renamed > 0, nil
	})

	if err := w.Start(args); err != nil {
		return err
	}
	out.Info("watching %d directories, press Ctrl-C to stop", len(args))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	summary := w.Stop()
	out.Info("watch session: %d renamed, %d unchanged, %d skipped in %v",
		summary.Renamed, summary.Unchanged, summary.Skipped,
		summary.Duration.Round(time.Second))
	return nil
}
