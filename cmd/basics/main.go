// Command basics demonstrates the grading helpers: letter grades, the
// fizzbuzz sequence, string repetition and failure-free division.
package main

import (
	"context"
	"fmt"

	"goworkshop/internal/config"
	"goworkshop/internal/demo"
	"goworkshop/internal/grading"
	"goworkshop/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("basics")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	runner := demo.NewRunner(log)
	err = runner.Run(context.Background(),
		demo.Step{Name: "grades", Run: runGrades},
		demo.Step{Name: "fizzbuzz", Run: runFizzBuzz},
		demo.Step{Name: "repeat", Run: runRepeat},
		demo.Step{Name: "safe division", Run: runSafeDiv},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("basics demo failed")
	}
}

func runGrades(context.Context) error {
	for _, score := range []int{88, 90, 59, 140} {
		fmt.Printf("grade(%d) = %s\n", score, grading.Grade(score))
	}
	return nil
}

func runFizzBuzz(context.Context) error {
	for _, entry := range grading.FizzBuzz(16) {
		fmt.Println(entry)
	}
	return nil
}

func runRepeat(context.Context) error {
	fmt.Println(grading.Repeat("go", 3, ":"))
	return nil
}

func runSafeDiv(context.Context) error {
	printDiv := func(a, b any) {
		if q, ok := grading.SafeDiv(a, b); ok {
			fmt.Printf("safe_div(%v, %v) = %v\n", a, b, q)
		} else {
			fmt.Printf("safe_div(%v, %v) = no result\n", a, b)
		}
	}

	printDiv(10, 2)
	printDiv(10, 0)
	printDiv("x", 2)
	return nil
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
