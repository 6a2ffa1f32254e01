// mathparse - syntax checker and AST printer for mathparse programs.
//
// Reads each named file (or the --expr source, or standard input), parses
// it and prints the resulting tree. Parse errors are reported as
// file:line:column: message and make the command exit with status 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"

	"github.com/kolkov/mathparse"
	"github.com/kolkov/mathparse/ast"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Output formats accepted by --format.
const (
	formatTree   = "tree"   // prefix S-expressions, one line per statement
	formatSource = "source" // canonical source text
	formatGo     = "go"     // Go syntax of the AST values
)

// errParseFailed is returned after at least one input failed to parse.
// The errors themselves are already written to stderr.
var errParseFailed = errors.New("parse failed")

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errParseFailed) {
			fmt.Fprintf(os.Stderr, "mathparse: %v\n", err)
		}
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "mathparse",
		Usage:     "Check the syntax of mathparse programs and print their syntax tree.",
		ArgsUsage: "[file ...]",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Parse `SOURCE` given on the command line instead of files.",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: tree, source or go.",
				Value: formatTree,
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Only report errors; print nothing for valid input.",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum expression nesting depth.",
				Value: mathparse.DefaultMaxDepth,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: trace, debug, info, warn, error.",
				Value: zerolog.WarnLevel.String(),
			},
		},
		Action: run,
	}
}

// input is one named source text.
type input struct {
	name string
	src  string
}

func run(cliCtx *cli.Context) error {
	stdout, stderr := cliCtx.App.Writer, cliCtx.App.ErrWriter

	level, err := zerolog.ParseLevel(cliCtx.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	format := cliCtx.String("format")
	switch format {
	case formatTree, formatSource, formatGo:
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	inputs, err := readInputs(cliCtx)
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		start := time.Now()
		prog, err := mathparse.Parse(in.src, &mathparse.Config{
			Filename: in.name,
			MaxDepth: cliCtx.Int("max-depth"),
		})
		if err != nil {
			logger.Debug().Str("source", in.name).Err(err).Msg("parse failed")
			fmt.Fprintln(stderr, err)
			failed = true
			continue
		}

		logger.Debug().
			Str("source", in.name).
			Int("bytes", len(in.src)).
			Int("statements", len(prog.Stmts)).
			Int("functions", len(prog.Functions())).
			Dur("elapsed", time.Since(start)).
			Msg("parsed")

		if cliCtx.Bool("check") {
			continue
		}
		if err := write(stdout, format, prog); err != nil {
			return fmt.Errorf("write %s: %w", in.name, err)
		}
	}

	if failed {
		return errParseFailed
	}
	return nil
}

// readInputs collects the sources named on the command line.
func readInputs(cliCtx *cli.Context) ([]input, error) {
	if cliCtx.IsSet("expr") {
		if cliCtx.NArg() > 0 {
			return nil, errors.New("--expr cannot be combined with file arguments")
		}
		return []input{{name: "<expr>", src: cliCtx.String("expr")}}, nil
	}

	if cliCtx.NArg() == 0 {
		data, err := io.ReadAll(cliCtx.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "<stdin>", src: string(data)}}, nil
	}

	inputs := make([]input, 0, cliCtx.NArg())
	for _, path := range cliCtx.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		inputs = append(inputs, input{name: path, src: string(data)})
	}
	return inputs, nil
}

func write(w io.Writer, format string, prog *ast.Program) error {
	switch format {
	case formatSource:
		return ast.NewPrinter(w).Print(prog)
	case formatGo:
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(prog))
		return err
	default:
		if len(prog.Stmts) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, ast.Dump(prog))
		return err
	}
}
