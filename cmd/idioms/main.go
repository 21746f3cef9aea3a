// Command idioms demonstrates the sequence helpers: comprehension-style
// transforms, keyed aggregation, and line-trimming file copies.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"goworkshop/internal/collections"
	"goworkshop/internal/config"
	"goworkshop/internal/demo"
	"goworkshop/internal/logger"
	"goworkshop/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("idioms")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	runner := demo.NewRunner(log)
	err = runner.Run(context.Background(),
		demo.Step{Name: "even squares", Run: runEvenSquares},
		demo.Step{Name: "score map", Run: runScoreMap},
		demo.Step{Name: "group sums", Run: runGroupSums},
		demo.Step{Name: "trim copy", Run: trimCopyStep(cfg.App.DataDir)},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("idioms demo failed")
	}
}

func runEvenSquares(context.Context) error {
	fmt.Println("even squares:", collections.EvenSquares([]int{1, 2, 3, 4, 5}))
	return nil
}

func runScoreMap(context.Context) error {
	scores := collections.ScoreMap([]string{"Ann", "Bob", "Cara"}, []int{90, 82, 77})

	// maps iterate in random order; sort the keys for stable output
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s: %d\n", name, scores[name])
	}
	return nil
}

func runGroupSums(context.Context) error {
	entries := []collections.Entry{
		{Key: "A", Value: 1},
		{Key: "A", Value: 2},
		{Key: "B", Value: 3},
	}

	for _, group := range collections.SumByKey(entries) {
		fmt.Println(group.Key, group.Total)
	}
	return nil
}

// trimCopyStep writes a messy text file into dataDir and copies it with
// every line trimmed.
func trimCopyStep(dataDir string) func(context.Context) error {
	return func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}

		src := filepath.Join(dataDir, "data.txt")
		dst := filepath.Join(dataDir, "clean.txt")

		if err := os.WriteFile(src, []byte("  line1\nline2  \n  line3  "), 0o644); err != nil {
			return fmt.Errorf("write source file: %w", err)
		}

		if err := store.TrimCopy(src, dst); err != nil {
			return err
		}

		log.Debug().Str("src", src).Str("dst", dst).Msg("trimmed copy written")
		fmt.Printf("wrote trimmed copy of %s to %s\n", src, dst)
		return nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
