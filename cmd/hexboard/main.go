// Command hexboard loads a YAML layout and prints the resulting board: its
// rows, blocked cells, territories and nations, and optionally a ray, the
// hexes reachable from a cell and the serialized board.
//
// Usage:
//
//	hexboard -layout board.yaml [-ray b3:E] [-ignore-voids] [-reach b2:3] [-json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/hexflower/board"
	"github.com/katalvlaran/hexflower/hex"
	"github.com/katalvlaran/hexflower/layout"
	"github.com/katalvlaran/hexflower/tileboard"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		slog.Error("hexboard failed", "error", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: hexboard -layout file.yaml [-ray label:DIR] [-ignore-voids] [-reach label:N] [-json]")

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hexboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("layout", "", "YAML layout file")
	ray := fs.String("ray", "", "cast a ray, written as label:DIR (e.g. b3:E)")
	ignoreVoids := fs.Bool("ignore-voids", false, "let the ray step over holes")
	reach := fs.String("reach", "", "list hexes within N moves avoiding walls, written as label:N (0 = unlimited)")
	asJSON := fs.Bool("json", false, "print the serialized board as JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *path == "" {
		return errUsage
	}

	l, err := layout.Load(*path)
	if err != nil {
		return err
	}
	b, err := l.BuildTiles()
	if err != nil {
		return err
	}
	geo := b.Geometry()
	slog.Info("board built",
		"layout", *path,
		"orientation", geo.Orientation(),
		"parity", geo.Parity(),
		"hexes", geo.Len(),
		"width", geo.Width(),
		"height", geo.Height(),
	)

	printRows(out, geo)
	fmt.Fprintln(out, "blocked:", strings.Join(geo.BlockedCells(), " "))
	if err = printGroups(out, b); err != nil {
		return err
	}

	if *ray != "" {
		from, d, err := parseRay(*ray)
		if err != nil {
			return err
		}
		var opts []board.RayOption
		if *ignoreVoids {
			opts = append(opts, board.IgnoreVoids())
		}
		labels, err := geo.CastRay(from, d, opts...)
		if err != nil {
			return err
		}
		slog.Info("ray cast", "from", from, "direction", d, "ignore_voids", *ignoreVoids, "length", len(labels))
		fmt.Fprintf(out, "ray %s %v: %s\n", from, d, strings.Join(labels, " "))
	}

	if *reach != "" {
		from, steps, err := parseReach(*reach)
		if err != nil {
			return err
		}
		got, err := b.Reach(ctx, from, steps)
		if err != nil {
			return err
		}
		slog.Info("reach computed", "from", from, "steps", steps, "hexes", len(got))
		names := make([]string, len(got))
		for i, s := range got {
			names[i] = fmt.Sprintf("%s/%d", s.Label, s.Depth)
		}
		fmt.Fprintf(out, "reach %s %d: %s\n", from, steps, strings.Join(names, " "))
	}

	if *asJSON {
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

// parseRay splits "label:DIR".
func parseRay(s string) (string, hex.Direction, error) {
	label, dir, ok := strings.Cut(s, ":")
	if !ok || label == "" {
		return "", hex.None, fmt.Errorf("%w: ray %q", errUsage, s)
	}
	d, err := hex.ParseDirection(dir)
	if err != nil {
		return "", hex.None, err
	}
	return label, d, nil
}

// parseReach splits "label:N".
func parseReach(s string) (string, int, error) {
	label, n, ok := strings.Cut(s, ":")
	if !ok || label == "" {
		return "", 0, fmt.Errorf("%w: reach %q", errUsage, s)
	}
	steps, err := strconv.Atoi(n)
	if err != nil {
		return "", 0, fmt.Errorf("%w: reach %q: %w", errUsage, s, err)
	}
	return label, steps, nil
}

func printRows(out io.Writer, geo *board.Board) {
	for _, row := range geo.HexesOrdered() {
		if len(row) == 0 {
			continue
		}
		names := make([]string, len(row))
		for i, c := range row {
			names[i] = c.Label
		}
		fmt.Fprintln(out, strings.Join(names, " "))
	}
}

func printGroups(out io.Writer, b *tileboard.Board) error {
	territories, err := b.Territories()
	if err != nil {
		return err
	}
	nations, err := b.Nations()
	if err != nil {
		return err
	}
	for _, g := range territories {
		fmt.Fprintln(out, "territory:", strings.Join(g, " "))
	}
	for _, g := range nations {
		fmt.Fprintln(out, "nation:", strings.Join(g, " "))
	}
	return nil
}
