// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/poiesic/phonemescape"
	"github.com/poiesic/phonemescape/config"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/similarity"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "phonemescape",
		Usage: "Look up and compare IPA phonemes by mouth shape",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Catalog storage backend (memory, badger, sqlite)",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the badger directory or sqlite file",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Load the catalog from a JSON, CSV or YAML file",
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "Workers used to build similarity matrices (0 = auto)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Random seed for clustering",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "Show articulatory details of phonemes",
				ArgsUsage: "SYMBOL...",
				Action:    infoCommand,
			},
			{
				Name:      "compare",
				Usage:     "Score the similarity of two phonemes",
				ArgsUsage: "A B",
				Action:    compareCommand,
			},
			{
				Name:      "similar",
				Usage:     "List the phonemes most similar to a target",
				ArgsUsage: "SYMBOL",
				Action:    similarCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Restrict candidates to vowel, consonant or both",
						Value:   "both",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Number of results",
						Value:   10,
					},
				},
			},
			{
				Name:      "matrix",
				Usage:     "Print the similarity matrix of phonemes",
				ArgsUsage: "SYMBOL...",
				Action:    matrixCommand,
			},
			{
				Name:      "cluster",
				Usage:     "Group phonemes with k-means",
				ArgsUsage: "SYMBOL...",
				Action:    clusterCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "clusters",
						Aliases: []string{"k"},
						Usage:   "Number of clusters",
						Value:   3,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Report k-means progress on stderr",
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Analyze the phonemes of a word, one code point per phoneme",
				ArgsUsage: "WORD",
				Action:    analyzeCommand,
			},
			{
				Name:   "find",
				Usage:  "Find phonemes by articulatory features",
				Action: findCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "feature",
						Aliases:  []string{"f"},
						Usage:    "Feature constraint as name=value, e.g. place=bilabial (repeatable)",
						Required: true,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export the catalog",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, csv, yaml)",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write to a file instead of stdout",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Replace the stored catalog with a catalog file",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Catalog file (JSON, CSV or YAML)",
						Required: true,
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Report the nearest neighbor of every phoneme in its category",
				Action: reportCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N phonemes",
						Value: 10,
					},
				},
			},
		},
	}
}

func buildConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.NewConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if !c.IsSet("log-level") && cfg.LogLevel != "" {
			if err := installLogger(cfg.LogLevel); err != nil {
				return nil, err
			}
		}
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("db") {
		cfg.StoragePath = c.String("db")
		if !c.IsSet("backend") && c.String("config") == "" {
			cfg.Backend = config.BackendBadger
		}
	}
	if c.IsSet("catalog") {
		cfg.CatalogFile = c.String("catalog")
	}
	if c.IsSet("pool-size") {
		cfg.PoolSize = c.Int("pool-size")
	}
	if c.IsSet("seed") {
		cfg.ClusterSeed = c.Uint64("seed")
	}
	return cfg, nil
}

func openLibrary(c *cli.Context) (*phonemescape.Library, error) {
	cfg, err := buildConfig(c)
	if err != nil {
		return nil, err
	}
	lib, err := phonemescape.Open(c.Context, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return lib, nil
}

func requireArgs(c *cli.Context, n int, usage string) error {
	if c.NArg() < n {
		return fmt.Errorf("usage: %s %s", c.Command.Name, usage)
	}
	return nil
}

func infoCommand(c *cli.Context) error {
	if err := requireArgs(c, 1, "SYMBOL..."); err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	w := c.App.Writer
	for _, symbol := range c.Args().Slice() {
		info, err := lib.Info(symbol)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  %s\n", info.Symbol, info.Description)
		fmt.Fprintf(w, "  type:        %s\n", info.Type)
		fmt.Fprintf(w, "  coordinates: (%g, %g)\n", info.Coordinate.X, info.Coordinate.Y)
		names := make([]string, 0, len(info.Features))
		for name := range info.Features {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-12s %s\n", name+":", info.Features[name])
		}
	}
	return nil
}

func compareCommand(c *cli.Context) error {
	if err := requireArgs(c, 2, "A B"); err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	a, b := c.Args().Get(0), c.Args().Get(1)
	sim, err := lib.Similarity(a, b)
	if err != nil {
		return err
	}
	dist, err := lib.Distance(a, b)
	if err != nil {
		return err
	}
	full, err := lib.ArticulatoryDistance(a, b)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "similarity:            %.4f\n", sim)
	fmt.Fprintf(w, "distance:              %s\n", formatDistance(dist))
	fmt.Fprintf(w, "articulatory distance: %s\n", formatDistance(full))
	return nil
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "incomparable (different categories)"
	}
	return fmt.Sprintf("%.4f", d)
}

func parseCategory(s string) (core.Category, error) {
	if s == "" || strings.EqualFold(s, "both") {
		return 0, nil
	}
	return core.ParseCategory(strings.ToLower(s))
}

func similarCommand(c *cli.Context) error {
	if err := requireArgs(c, 1, "SYMBOL"); err != nil {
		return err
	}
	category, err := parseCategory(c.String("type"))
	if err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	neighbors, err := lib.FindSimilar(c.Args().First(), category, c.Int("top"))
	if err != nil {
		return err
	}
	for i, n := range neighbors {
		fmt.Fprintf(c.App.Writer, "%2d. %s  %.4f\n", i+1, n.Symbol, n.Score)
	}
	return nil
}

func matrixCommand(c *cli.Context) error {
	if err := requireArgs(c, 1, "SYMBOL..."); err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	m, err := lib.Matrix(c.Args().Slice())
	if err != nil {
		return err
	}
	writeMatrix(c.App.Writer, m)
	return nil
}

func writeMatrix(w io.Writer, m *similarity.Matrix) {
	fmt.Fprintf(w, "%4s", "")
	for _, s := range m.Symbols {
		fmt.Fprintf(w, " %6s", s)
	}
	fmt.Fprintln(w)
	for i, s := range m.Symbols {
		fmt.Fprintf(w, "%4s", s)
		for j := range m.Symbols {
			fmt.Fprintf(w, " %6.3f", m.At(i, j))
		}
		fmt.Fprintln(w)
	}
}

func clusterCommand(c *cli.Context) error {
	if err := requireArgs(c, 1, "SYMBOL..."); err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	var monitor similarity.ClusterMonitor
	if c.Bool("verbose") {
		monitor = &textMonitor{w: c.App.ErrWriter}
	}
	clusters, err := lib.Engine().ClusterWithMonitor(c.Args().Slice(), c.Int("clusters"), monitor)
	if err != nil {
		return err
	}
	for id := 0; id < len(clusters); id++ {
		fmt.Fprintf(c.App.Writer, "cluster %d: %s\n", id, strings.Join(clusters[id], " "))
	}
	return nil
}

func analyzeCommand(c *cli.Context) error {
	if err := requireArgs(c, 1, "WORD"); err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	a, err := lib.AnalyzeWord(c.Args().First())
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintf(w, "word:               %s\n", a.Word)
	fmt.Fprintf(w, "phonemes:           %s\n", strings.Join(a.Phonemes, " "))
	if len(a.InvalidPhonemes) > 0 {
		fmt.Fprintf(w, "unknown:            %s\n", strings.Join(a.InvalidPhonemes, " "))
	}
	fmt.Fprintf(w, "vowels/consonants:  %d/%d\n", a.NumVowels, a.NumConsonants)
	fmt.Fprintf(w, "average similarity: %.4f\n", a.AverageSimilarity)
	return nil
}

func findCommand(c *cli.Context) error {
	features := make(map[string]string)
	for _, pair := range c.StringSlice("feature") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid feature %q: want name=value", pair)
		}
		features[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	symbols, err := lib.FindByFeatureMap(features)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, strings.Join(symbols, " "))
	return nil
}

func exportCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	data, err := lib.ExportCatalog(c.String("format"))
	if err != nil {
		return err
	}
	if path := c.String("output"); path != "" {
		return os.WriteFile(path, data, 0644)
	}
	_, err = c.App.Writer.Write(data)
	return err
}

func seedCommand(c *cli.Context) error {
	catalog, err := phonemescape.LoadCatalogFile(c.String("file"))
	if err != nil {
		return err
	}
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.ReplaceCatalog(c.Context, catalog); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}
	fmt.Fprintf(c.App.ErrWriter, "Stored %d phonemes (%d vowels, %d consonants)\n",
		catalog.Len(), len(catalog.Vowels()), len(catalog.Consonants()))
	return nil
}

func reportCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	view := lib.Engine().View()
	symbols := view.Catalog().Symbols()
	tracker := NewProgressTracker(c.App.ErrWriter, len(symbols), c.Int("report-interval"))
	tracker.Start()

	w := c.App.Writer
	fmt.Fprintln(w, "symbol\tnearest\tsimilarity")
	for _, symbol := range symbols {
		category, err := view.Catalog().Category(symbol)
		if err != nil {
			return err
		}
		neighbors, err := view.NearestNeighbors(symbol, view.Catalog().SymbolsIn(category), 1)
		if err != nil {
			return err
		}
		if len(neighbors) == 1 {
			fmt.Fprintf(w, "%s\t%s\t%.4f\n", symbol, neighbors[0].Symbol, neighbors[0].Score)
		} else {
			fmt.Fprintf(w, "%s\t-\t-\n", symbol)
		}
		tracker.Increment(1)
	}
	tracker.Finish()
	slog.Debug("report complete", "phonemes", len(symbols), "elapsed", tracker.Elapsed())
	return nil
}

func setupLogger(c *cli.Context) error {
	return installLogger(c.String("log-level"))
}

func installLogger(levelStr string) error {
	levelStr = strings.ToLower(levelStr)

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
