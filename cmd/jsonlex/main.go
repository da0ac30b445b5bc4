package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/jsonlex/internal/cli"
	"github.com/cybertec-postgresql/jsonlex/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "jsonlex",
		Usage:   "Streaming JSON tokenizer and syntax checker",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "tokenize",
				Usage:     "Print the token stream of a JSON file",
				ArgsUsage: "<file>",
				Action:    tokenizeCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text, json, or html)",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
					},
					&urfavecli.BoolFlag{
						Name:  "values",
						Usage: "Print the text of every token",
					},
					&urfavecli.Int64Flag{
						Name:  "max-size",
						Usage: "Reject files larger than this many bytes (0 = unlimited)",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "check",
				Usage:     "Tokenize every JSON file under a path and report failures",
				ArgsUsage: "[path]",
				Action:    checkCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent files (1 = sequential)",
					},
					&urfavecli.DurationFlag{
						Name:  "timeout",
						Usage: "Deadline for the whole run",
					},
					&urfavecli.Int64Flag{
						Name:  "max-size",
						Usage: "Reject files larger than this many bytes (0 = unlimited)",
					},
					&urfavecli.StringFlag{
						Name:  "results-file",
						Usage: "Check results output path",
					},
					&urfavecli.StringFlag{
						Name:    "connection",
						Aliases: []string{"c"},
						Usage:   "PostgreSQL connection string to record the run in (URI or key=value format)",
					},
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text, json, or html)",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Render saved check results",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text, json, or html)",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
					},
					&urfavecli.StringFlag{
						Name:  "results-file",
						Usage: "Check results input path",
					},
					&urfavecli.StringFlag{
						Name:    "connection",
						Aliases: []string{"c"},
						Usage:   "Read the run from PostgreSQL instead of the results file",
					},
					&urfavecli.Int64Flag{
						Name:  "run-id",
						Usage: "Recorded run to render (0 = latest)",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, JSONLEX_* environment variables and the
// command's flags, exiting with code 2 on an invalid result
func loadConfig(cmd *urfavecli.Command) *cli.Config {
	config := cli.LoadConfig()

	flags := cli.Flags{
		Format:      cmd.String("format"),
		Output:      cmd.String("output"),
		ResultsFile: cmd.String("results-file"),
		Connection:  cmd.String("connection"),
		ShowValues:  cmd.Bool("values"),
		Verbose:     cmd.Bool("verbose"),
		Parallel:    cmd.Int("parallel"),
		Timeout:     cmd.Duration("timeout"),
	}
	if cmd.IsSet("max-size") {
		maxSize := cmd.Int64("max-size")
		flags.MaxSize = &maxSize
	}
	cli.ApplyFlagsToConfig(config, flags)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger.SetVerbose(config.Verbose)
	return config
}

// tokenizeCommand handles the 'jsonlex tokenize' command
func tokenizeCommand(ctx context.Context, cmd *urfavecli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: missing file argument")
		os.Exit(2)
	}

	config := loadConfig(cmd)

	exitCode, err := cli.Tokenize(ctx, config, path)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// checkCommand handles the 'jsonlex check' command
func checkCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd)

	// Search path is the first argument, default to current directory
	if searchPath := cmd.Args().First(); searchPath != "" {
		config.SearchPath = searchPath
	}

	exitCode, err := cli.Check(ctx, config)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// reportCommand handles the 'jsonlex report' command
func reportCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd)
	return cli.Report(ctx, config, cmd.Int64("run-id"))
}
