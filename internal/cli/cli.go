package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/ringsum/config"
	"github.com/katalvlaran/ringsum/quest"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Invocation is a fully validated request to run one quest entry.
type Invocation struct {
	Config *config.Config
	Entry  quest.Entry
}

// Parse processes command-line arguments. It returns an Invocation, a
// boolean indicating if the program should exit cleanly (help, -list), or
// an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ringsum", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ringsum - digit-grid radius and ring analysis, plus the other quest solvers.

Usage:
  ringsum [options] QUEST PART
  ringsum [options] ENTRY

Arguments:
  QUEST PART
    Quest and part numbers, e.g. "17 2".
  ENTRY
    Entry name, e.g. "q17_2". See -list.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	dataFlag := flagSet.String("data", "", "Directory holding the input files.")
	patternFlag := flagSet.String("pattern", "", "File name pattern taking quest and part, e.g. 'quest%02d_%d.txt'.")
	radiusFlag := flagSet.Int("radius", 0, "Fixed radius for quest 17 part 1.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listFlag := flagSet.Bool("list", false, "List the available entries and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *listFlag {
		for _, e := range quest.Registry() {
			fmt.Fprintf(output, "%-6s quest %d part %d\n", e.Name, e.Quest, e.Part)
		}
		return nil, true, nil
	}

	entry, err := resolveEntry(flagSet.Args())
	if err != nil {
		return nil, false, err
	}
	if entry == nil {
		slog.Debug("No entry provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := config.Default()
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
	}

	// Flags explicitly set on the command line win over the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataDir = *dataFlag
		case "pattern":
			cfg.FilePattern = *patternFlag
		case "radius":
			cfg.Radius = *radiusFlag
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.", "entry", entry.Name)
	return &Invocation{Config: cfg, Entry: *entry}, false, nil
}

// resolveEntry maps the positional arguments to a registry entry. It
// returns nil and no error when no positional argument was given.
func resolveEntry(pos []string) (*quest.Entry, error) {
	var (
		e   quest.Entry
		err error
	)
	switch len(pos) {
	case 0:
		return nil, nil
	case 1:
		e, err = quest.LookupName(pos[0])
	case 2:
		q, qErr := strconv.Atoi(pos[0])
		p, pErr := strconv.Atoi(pos[1])
		if qErr != nil || pErr != nil {
			return nil, usageError("QUEST and PART must be integers, got %q %q", pos[0], pos[1])
		}
		e, err = quest.Lookup(q, p)
	default:
		return nil, usageError("too many arguments: %s", strings.Join(pos, " "))
	}
	if err != nil {
		return nil, usageError("%v", err)
	}

	return &e, nil
}
