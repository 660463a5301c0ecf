// Copyright 2026 Lexkit Labs
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
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lexkit/matchsort"
	"github.com/lexkit/matchsort/rank"
)

func main() {
	app := &cli.App{
		Name:  "matchsort",
		Usage: "Fuzzy-match and rank candidate lists against a query",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "filter",
				Usage:     "Filter and order candidates (one per line) from FILE or stdin",
				ArgsUsage: "[FILE]",
				Action:    filterCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Search query to rank candidates against",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "threshold",
						Usage: "Minimum tier to include (e.g. contains, starts-with)",
						Value: "matches",
					},
					&cli.BoolFlag{
						Name:  "keep-diacritics",
						Usage: "Preserve combining marks during comparison",
					},
					&cli.IntFlag{
						Name:  "parallel",
						Usage: "Worker pool size for ranking (0 = sequential)",
					},
					&cli.BoolFlag{
						Name:  "show-tiers",
						Usage: "Print each candidate's ranking tier",
					},
				},
			},
			{
				Name:      "rank",
				Usage:     "Print the ranking tier for one CANDIDATE QUERY pair",
				ArgsUsage: "CANDIDATE QUERY",
				Action:    rankCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "keep-diacritics",
						Usage: "Preserve combining marks during comparison",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func filterCommand(c *cli.Context) error {
	threshold, err := rank.ParseTier(c.String("threshold"))
	if err != nil {
		return err
	}

	items, err := readCandidates(c)
	if err != nil {
		return err
	}

	opts := []matchsort.Option[string]{
		matchsort.WithThreshold[string](threshold),
		matchsort.WithKeepDiacritics[string](c.Bool("keep-diacritics")),
	}
	if n := c.Int("parallel"); n > 0 {
		opts = append(opts, matchsort.WithParallelism[string](n))
	}

	sorter, err := matchsort.New(opts...)
	if err != nil {
		return err
	}
	defer sorter.Release()

	query := c.String("query")
	matched := sorter.Sort(items, query)
	slog.Debug("filtered candidates",
		"query", query, "candidates", len(items), "matched", len(matched))

	showTiers := c.Bool("show-tiers")
	q := rank.NewQuery(query, c.Bool("keep-diacritics"))
	for _, item := range matched {
		if showTiers {
			fmt.Printf("%s\t%s\n", q.Rank(item), item)
		} else {
			fmt.Println(item)
		}
	}
	return nil
}

func rankCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected CANDIDATE QUERY, got %d argument(s)", c.NArg())
	}
	r := rank.Match(c.Args().Get(0), c.Args().Get(1), c.Bool("keep-diacritics"))
	fmt.Println(r)
	return nil
}

// readCandidates reads one candidate per line from the FILE argument, or
// stdin when no file is given. Blank lines are skipped.
func readCandidates(c *cli.Context) ([]string, error) {
	var r io.Reader = os.Stdin
	if c.NArg() > 0 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items, scanner.Err()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

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
