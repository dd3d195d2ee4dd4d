package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reaandrew/slitherreport/config"
	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/gates"
	"github.com/reaandrew/slitherreport/processors"
	"github.com/reaandrew/slitherreport/reporters"
	"github.com/reaandrew/slitherreport/repositories"
	"github.com/reaandrew/slitherreport/scanners"
	"github.com/reaandrew/slitherreport/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cli represents the command-line interface
type Cli struct {
	configPath string
	logLevel   string
	logFile    string
	logOutput  *os.File

	reportsDir string
	outputPath string
	format     string
	pattern    string
	topChecks  int
	progress   bool
}

// Execute sets up and runs the root command
func (cli *Cli) Execute() error {
	defer cli.Close()
	return cli.Command().Execute()
}

// Close restores logging to stderr and closes the --log-file handle.
func (cli *Cli) Close() error {
	if cli.logOutput == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := cli.logOutput.Close()
	cli.logOutput = nil
	return err
}

// Command builds the root command with the summary and gate subcommands.
func (cli *Cli) Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slitherreport",
		Short:         "slitherreport aggregates Slither JSON reports and gates CI on their findings.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Close(); err != nil {
				return err
			}
			output, err := setupLogging(cli.logLevel, cli.logFile)
			cli.logOutput = output
			return err
		},
	}
	// Registered before Execute so that a global flag following --version
	// is parsed with its value instead of being read as a subcommand.
	rootCmd.InitDefaultVersionFlag()

	rootCmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cli.logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.AddCommand(cli.createSummaryCommand())
	rootCmd.AddCommand(cli.createGateCommand())
	return rootCmd
}

func (cli *Cli) createSummaryCommand() *cobra.Command {
	defaults := config.Default()

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate Slither JSON reports into a single summary report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.resolveConfig(cmd)
			if err != nil {
				return err
			}
			return cli.runSummary(cmd, cfg)
		},
	}

	summaryCmd.Flags().StringVar(&cli.reportsDir, "reports-dir", defaults.ReportsDir, "Directory holding Slither JSON reports")
	summaryCmd.Flags().StringVar(&cli.outputPath, "out", defaults.OutputPath, "Path of the summary report")
	summaryCmd.Flags().StringVar(&cli.format, "format", defaults.Format, "Report format (supported: markdown, xlsx, json)")
	summaryCmd.Flags().IntVar(&cli.topChecks, "top", defaults.TopChecks, "Number of checks listed under top checks")
	summaryCmd.Flags().StringVar(&cli.pattern, "pattern", defaults.Pattern, "Glob matched against report file names")
	summaryCmd.Flags().BoolVar(&cli.progress, "progress", defaults.Progress, "Show a progress bar while loading reports")
	return summaryCmd
}

func (cli *Cli) createGateCommand() *cobra.Command {
	defaults := config.Default()

	gateCmd := &cobra.Command{
		Use:   "gate",
		Short: "Fail when any finding has High severity and High confidence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.resolveConfig(cmd)
			if err != nil {
				return err
			}
			return cli.runGate(cmd, cfg)
		},
	}

	gateCmd.Flags().StringVar(&cli.reportsDir, "reports-dir", defaults.ReportsDir, "Directory holding Slither JSON reports")
	gateCmd.Flags().StringVar(&cli.pattern, "pattern", defaults.Pattern, "Glob matched against report file names")
	return gateCmd
}

// resolveConfig layers explicitly set flags over the config file, which is
// layered over the defaults.
func (cli *Cli) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if cli.configPath != "" {
		loaded, err := config.Load(cli.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("reports-dir") {
		cfg.ReportsDir = cli.reportsDir
	}
	if flags.Changed("out") {
		cfg.OutputPath = cli.outputPath
	}
	if flags.Changed("format") {
		cfg.Format = cli.format
	}
	if flags.Changed("top") {
		cfg.TopChecks = cli.topChecks
	}
	if flags.Changed("pattern") {
		cfg.Pattern = cli.pattern
	}
	if flags.Changed("progress") {
		cfg.Progress = cli.progress
	}
	return cfg, nil
}

func (cli *Cli) loadFindings(cfg config.Config, progress utils.ProgressReporter) (core.FindingRepository, int, error) {
	loader, err := scanners.NewReportDirectoryScanner(cfg.Pattern, progress)
	if err != nil {
		return nil, 0, err
	}

	findingRepository := repositories.NewInMemoryFindingRepository()
	scanner := scanners.NewReportScanner(loader, processors.InitializeProcessors(), findingRepository)
	count, err := scanner.Scan(cfg.ReportsDir)
	return findingRepository, count, err
}

func (cli *Cli) runSummary(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()

	var progress utils.ProgressReporter = utils.NoopProgressReporter{}
	if cfg.Progress {
		progress = utils.NewBarProgressReporter(0, "Loading reports", cmd.ErrOrStderr())
	}

	findingRepository, count, err := cli.loadFindings(cfg, progress)
	if errors.Is(err, core.ErrReportDirNotFound) {
		log.Warnf("Report directory %s does not exist", cfg.ReportsDir)
		fmt.Fprintf(out, "No %s directory. Nothing to summarize.\n", cfg.ReportsDir)
		return nil
	}
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintf(out, "No JSON files found in %s\n", cfg.ReportsDir)
		return nil
	}

	reporter, err := reporters.CreateReporter(cfg.Format, reporters.Options{
		ReportsDir: cfg.ReportsDir,
		OutputPath: cfg.OutputPath,
		TopChecks:  cfg.TopChecks,
	})
	if err != nil {
		return err
	}
	if err := reporter.Report(findingRepository); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote summary to %s\n", cfg.OutputPath)
	return nil
}

func (cli *Cli) runGate(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(cfg.ReportsDir); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "No %s directory. Skipping Slither check.\n", cfg.ReportsDir)
		return nil
	}

	findingRepository, _, err := cli.loadFindings(cfg, utils.NoopProgressReporter{})
	if err != nil {
		return err
	}

	result, err := gates.Evaluate(findingRepository)
	if err != nil {
		return err
	}

	for _, violation := range result.Violations {
		fmt.Fprintln(out, violation.String())
	}
	if !result.Passed() {
		fmt.Fprintln(out, "\nFailing CI because Slither found High severity + High confidence issues.")
		return core.ErrGateFailed
	}

	log.Debugf("Gate evaluated %d finding(s)", result.Evaluated)
	fmt.Fprintln(out, "No High severity Slither findings.")
	return nil
}
