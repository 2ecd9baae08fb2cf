package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/henderiw/iterrange/internal/config"
	"github.com/henderiw/iterrange/pkg/rangeview"
	"github.com/henderiw/iterrange/pkg/seq/addrseq"
	"github.com/henderiw/iterrange/pkg/seq/slice"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go4.org/netipx"
)

func setupLogger(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logW := os.Stderr
	slog.SetDefault(slog.New(tint.NewHandler(logW, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(logW.Fd()),
	})))
}

func main() {
	var verbose bool
	var configPath string
	var divisor int
	var find int
	var pool string

	app := &cli.App{
		Name:  "rangedemo",
		Usage: "wrap a sequence in a range view and run the range algorithms on it",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output (includes debug)",
				Destination: &verbose,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "yaml config file",
				Destination: &configPath,
			},
			&cli.IntSliceFlag{
				Name:  "values",
				Usage: "sequence to wrap, overrides the config",
			},
			&cli.IntFlag{
				Name:        "divisor",
				Aliases:     []string{"d"},
				Usage:       "number of subranges, overrides the config",
				Destination: &divisor,
			},
			&cli.IntFlag{
				Name:        "find",
				Usage:       "value to look up, overrides the config",
				Destination: &find,
			},
			&cli.StringFlag{
				Name:        "pool",
				Usage:       "address range to split into divisor pools, overrides the config",
				Destination: &pool,
			},
		},
		Before: func(_ *cli.Context) error {
			setupLogger(verbose)

			return nil
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cCtx.IsSet("values") {
				cfg.Values = cCtx.IntSlice("values")
			}
			if cCtx.IsSet("divisor") {
				cfg.Divisor = divisor
			}
			if cCtx.IsSet("find") {
				cfg.Find = find
			}
			if cCtx.IsSet("pool") {
				cfg.Pool = pool
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1) //nolint:gocritic
	}
}

func run(cfg config.Config) error {
	r := rangeview.Wrap[int](slice.ReadOnly(cfg.Values))
	slog.Debug("Wrapped sequence", "size", r.Size(), "empty", r.Empty())

	rangeview.ForEach[int](r, func(v int) {
		fmt.Println(v)
	})

	parts, err := rangeview.Divide[int](r, cfg.Divisor)
	if err != nil {
		return errors.Wrapf(err, "dividing %s", r)
	}
	fmt.Print(renderTable([]string{"part", "size", "values"}, lo.Map(parts, func(p rangeview.Range[int], i int) []string {
		return []string{fmt.Sprint(i), fmt.Sprint(p.Size()), p.String()}
	})))

	fmt.Println(rangeview.Has[int](r, cfg.Find))

	for v := range r.All() {
		fmt.Println(v)
	}

	if !r.Empty() {
		fmt.Println("First:", rangeview.Front[int](r))
		fmt.Println("Last:", rangeview.Back[int](r))
	}

	if cfg.Pool == "" {
		return nil
	}

	addrs, err := addrseq.Parse(cfg.Pool)
	if err != nil {
		return err
	}
	pools, err := addrs.Split(cfg.Divisor)
	if err != nil {
		return err
	}
	slog.Debug("Split address range", "range", addrs.IPRange(), "pools", len(pools))
	fmt.Print(renderTable([]string{"pool", "from", "to"}, lo.Map(pools, func(p netipx.IPRange, i int) []string {
		return []string{fmt.Sprint(i), p.From().String(), p.To().String()}
	})))

	return nil
}

// renderTable lays rows out in left aligned columns without borders.
func renderTable(headers []string, rows [][]string) string {
	str := &strings.Builder{}

	table := tablewriter.NewTable(str,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.SeparatorsNone, Lines: tw.LinesNone},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{Formatting: tw.CellFormatting{Alignment: tw.AlignLeft}},
			Row:    tw.CellConfig{Formatting: tw.CellFormatting{Alignment: tw.AlignLeft}},
		}),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		slog.Warn("Skipping table", "err", err)
		return ""
	}
	if err := table.Render(); err != nil {
		slog.Warn("Skipping table", "err", err)
		return ""
	}

	return str.String()
}
