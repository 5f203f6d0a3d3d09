package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewferrier/normalize-filename/internal/config"
	"github.com/andrewferrier/normalize-filename/internal/orchestrator"
	"github.com/andrewferrier/normalize-filename/internal/output"
	"github.com/andrewferrier/normalize-filename/internal/prompter"
	"github.com/andrewferrier/normalize-filename/internal/timestamp"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "normalize-filename [flags] path ...",
	Short: "Normalize filenames with a sortable date prefix",
	Long: `normalize-filename rewrites filenames so they begin with the date the
file refers to, in YYYY-MM-DD form. Dates already embedded in the name
are recognized in a variety of layouts and moved to the front; files
without one are prefixed with a date taken from the file's timestamps.

Every rename is recorded in an undo log of shell mv commands, so a run
can be reversed by replaying the log in reverse order.`,
	Args:          cobra.MinimumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("recursive", "r", false, "descend into directories")
	flags.StringArrayP("exclude", "e", nil, "glob or substring of paths to skip (repeatable)")
	flags.BoolP("verbose", "v", false, "report every file considered")
	flags.BoolP("add-time", "t", false, "include HH-MM-SS in fallback date prefixes")
	flags.Bool("discard-existing-name", false, "keep only the extracted date, dropping the rest of the name")
	flags.Bool("no-prefix-date", false, "skip date prefixing, only tidy the name")
	flags.Bool("no-lowercase-extension", false, "keep the extension's original case")
	flags.Bool("now", false, "use the current time for fallback dates")
	flags.Bool("latest", false, "use the later of ctime and mtime for fallback dates")
	flags.Int("max-years-ahead", 5, "years past today a name's year may lie")
	flags.Int("max-years-behind", 30, "years before today a name's year may lie")
	flags.String("undo-log-file", "", "append undo mv commands to this shell script")
	flags.String("config", "", "defaults file (default: "+config.DefaultPath()+")")

	rootCmd.Flags().BoolP("dry-run", "d", false, "show what would be renamed without touching anything")
	rootCmd.Flags().BoolP("yes", "y", false, "rename without prompting")

	rootCmd.MarkFlagsMutuallyExclusive("now", "latest")

	rootCmd.AddCommand(watchCmd)
}

// buildConfig folds the three configuration layers together: built-in
// defaults, then the TOML defaults file, then explicit flags.
func buildConfig(cmd *cobra.Command) (config.Configuration, error) {
	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}
	if path != "" {
		defaults, err := config.LoadFile(path, required)
		if err != nil {
			return cfg, err
		}
		cfg.Apply(defaults)
	}

	flags := cmd.Flags()
	if flags.Changed("recursive") {
		cfg.Recursive, _ = flags.GetBool("recursive")
	}
	if flags.Changed("exclude") {
		excludes, _ := flags.GetStringArray("exclude")
		cfg.Excludes = append(cfg.Excludes, excludes...)
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("add-time") {
		cfg.AddTime, _ = flags.GetBool("add-time")
	}
	if flags.Changed("discard-existing-name") {
		cfg.DiscardExistingName, _ = flags.GetBool("discard-existing-name")
	}
	if noPrefix, _ := flags.GetBool("no-prefix-date"); noPrefix {
		cfg.PrefixDate = false
	}
	if noLower, _ := flags.GetBool("no-lowercase-extension"); noLower {
		cfg.LowercaseExtension = false
	}
	if useNow, _ := flags.GetBool("now"); useNow {
		cfg.TimeSource = timestamp.PolicyNow
	}
	if useLatest, _ := flags.GetBool("latest"); useLatest {
		cfg.TimeSource = timestamp.PolicyLatest
	}
	if flags.Changed("max-years-ahead") {
		cfg.MaxYearsAhead, _ = flags.GetInt("max-years-ahead")
	}
	if flags.Changed("max-years-behind") {
		cfg.MaxYearsBehind, _ = flags.GetInt("max-years-behind")
	}
	if flags.Changed("undo-log-file") {
		cfg.UndoLogFile, _ = flags.GetString("undo-log-file")
	}

	return cfg, cfg.Validate()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	cfg.AssumeYes, _ = cmd.Flags().GetBool("yes")

	out := output.New(output.DefaultConfig(cfg.Verbose))

	runner, err := orchestrator.New(cfg, out)
	if err != nil {
		return err
	}

	// Prompting only makes sense on a terminal; a piped run behaves as
	// if --yes had been given.
	if !cfg.AssumeYes && !cfg.DryRun && prompter.IsInteractive() {
		runner.Confirm = prompter.New(os.Stdin, os.Stderr)
	}

	summary, err := runner.Run(args)
	if err != nil {
		return err
	}

	for _, scanErr := range summary.ScanErrors {
		out.Error("warning: %v", scanErr)
	}
	for _, result := range summary.Results {
		if result.Status == orchestrator.StatusFailed {
			out.Error("%s: %v", result.SourcePath, result.Err)
		}
	}

	out.Info("%s", summary)

	if summary.HasErrors() {
		return errors.New("some files could not be processed")
	}
	return nil
}
