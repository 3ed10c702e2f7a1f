package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/conslog/internal/config"
	"github.com/harrison/conslog/internal/console"
	"github.com/harrison/conslog/internal/fileman"
)

// defaultConfigPath is where check looks for configuration when --config
// is not given.
const defaultConfigPath = ".conslog.yaml"

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Probe paths and report diagnostics",
		Long: `Read each path through the file collaborator and report every failure
as a rendered diagnostic. At the end of the run the rendered transcript is
mirrored into the configured log files.

Configuration is loaded from .conslog.yaml if present. CLI flags override
configuration file settings.

Examples:
  conslog check main.go
  conslog check --lang ja --log-limit 10 src/notes.txt
  conslog check --log-file report.log a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .conslog.yaml)")
	cmd.Flags().String("lang", "", "Language code for rendered diagnostics (overrides config)")
	cmd.Flags().Int("log-limit", -1, "Maximum entries per render, -1 = no limit (overrides config)")
	cmd.Flags().StringArray("log-file", nil, "Additional mirror log file (repeatable)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// runCheck implements the check command logic.
func runCheck(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Language = lang
	}
	if cmd.Flags().Changed("log-limit") {
		cfg.LogLimit, _ = cmd.Flags().GetInt("log-limit")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	extraSinks, _ := cmd.Flags().GetStringArray("log-file")
	cfg.LogFiles = append(cfg.LogFiles, extraSinks...)

	files := fileman.New()
	cons := console.NewConsole(cmd.OutOrStdout(), files, cfg.Language, cfg.Limit())
	cons.SetColorOutput(useColor(cfg))

	// One unit of work: probe every path, funneling failures into the
	// console, then render once with the configured sinks.
	failed := 0
	for _, path := range args {
		content, err := files.ReadFile(path)
		if _, ok := console.Consume(cons, content, err); !ok {
			failed++
		}
	}

	sinks := make([]console.Sink, 0, len(cfg.LogFiles))
	for _, path := range cfg.LogFiles {
		sinks = append(sinks, console.MirrorSink(path))
	}
	cons.Output(sinks)

	if failed > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgRed).Sprintf("%d of %d paths failed", failed, len(args)))
		return fmt.Errorf("check failed for %d of %d paths", failed, len(args))
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgGreen).Sprintf("checked %d path(s)", len(args)))
	return nil
}

// useColor reports whether terminal output should be colored. Config, the
// --no-color flag and the NO_COLOR convention can all disable it, and a
// non-TTY stdout never colors.
func useColor(cfg *config.Config) bool {
	if cfg.NoColor || color.NoColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
