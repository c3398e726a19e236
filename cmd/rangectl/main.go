package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v3"
	"k8s.io/klog/v2/textlogger"

	"github.com/henderiw/rangebound/pkg/interval"
	"github.com/henderiw/rangebound/pkg/plot"
	"github.com/henderiw/rangebound/pkg/rangectl"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rangectl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return newCommand(stdout, stderr).Run(ctx, args)
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "rangectl",
		Usage:     "drive bounded axis ranges with data-space pan and zoom",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "v", Usage: "log verbosity"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			l := textlogger.NewLogger(textlogger.NewConfig(
				textlogger.Verbosity(int(cmd.Int("v"))),
				textlogger.Output(stderr),
			))
			return logr.NewContext(ctx, l), nil
		},
		Commands: []*cli.Command{
			runCommand(),
			panCommand(),
			zoomCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "replay a YAML scenario against a plot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "scenario file, - for stdin", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r := io.Reader(os.Stdin)
			if name := cmd.String("file"); name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			s, err := loadScenario(r)
			if err != nil {
				return err
			}
			p, err := plot.New(s.Plot, plot.WithLogger(logr.FromContextOrDiscard(ctx)))
			if err != nil {
				return err
			}
			return replay(s, p, cmd.Root().Writer)
		},
	}
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "range", Usage: "start:end", Value: "0:3"},
		&cli.StringFlag{Name: "bounds", Usage: "min:max, either side may be empty; unset means unbounded"},
	}
}

// newRange builds a fixed range from the --range and --bounds flags.
func newRange(ctx context.Context, cmd *cli.Command) (*rangectl.Range, error) {
	iv, err := interval.ParseInterval(cmd.String("range"))
	if err != nil {
		return nil, err
	}
	var b *interval.Bounds
	if s := cmd.String("bounds"); s != "" {
		parsed, err := interval.ParseBounds(s)
		if err != nil {
			return nil, err
		}
		b = &parsed
	}
	r, err := rangectl.New(rangectl.FixedConfig(iv.Start, iv.End, b), rangectl.WithLogger(logr.FromContextOrDiscard(ctx)))
	if err != nil {
		return nil, err
	}
	w := cmd.Root().Writer
	r.Subscribe(func(start, end float64) {
		fmt.Fprintf(w, "%s\n", interval.New(start, end))
	})
	return r, nil
}

func panCommand() *cli.Command {
	return &cli.Command{
		Name:  "pan",
		Usage: "pan a single range by a data-space delta",
		Flags: append([]cli.Flag{
			&cli.FloatFlag{Name: "delta", Usage: "data-space offset", Required: true},
		}, rangeFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := newRange(ctx, cmd)
			if err != nil {
				return err
			}
			r.Pan(cmd.Float("delta"))
			fmt.Fprintf(cmd.Root().Writer, "final %s\n", r.Interval())
			return nil
		},
	}
}

func zoomCommand() *cli.Command {
	return &cli.Command{
		Name:  "zoom",
		Usage: "zoom a single range around an anchor; factor > 1 zooms out",
		Flags: append([]cli.Flag{
			&cli.FloatFlag{Name: "anchor", Usage: "data-space zoom centre"},
			&cli.FloatFlag{Name: "factor", Usage: "scale factor", Value: 2},
			&cli.IntFlag{Name: "repeat", Usage: "number of zoom steps", Value: 1},
		}, rangeFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := newRange(ctx, cmd)
			if err != nil {
				return err
			}
			for i := 0; i < int(cmd.Int("repeat")); i++ {
				r.Zoom(cmd.Float("anchor"), cmd.Float("factor"))
			}
			fmt.Fprintf(cmd.Root().Writer, "final %s\n", r.Interval())
			return nil
		},
	}
}
