// Command oopmodels demonstrates the record utilities: user construction,
// identity-based equality and dedup, fingerprints, and schema-validated
// registration through the roster service.
package main

import (
	"context"
	"errors"
	"fmt"

	"goworkshop/internal/config"
	"goworkshop/internal/demo"
	"goworkshop/internal/logger"
	"goworkshop/internal/roster"
	"goworkshop/internal/validators"
	"goworkshop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("oopmodels")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	validator := validators.NewUserValidator()
	schema := validators.NewUserSchema()
	users := roster.NewService(validator, schema, log)

	runner := demo.NewRunner(log)
	err = runner.Run(context.Background(),
		demo.Step{Name: "users", Run: runUsers},
		demo.Step{Name: "fingerprints", Run: runFingerprints},
		demo.Step{Name: "roster", Run: rosterStep(users)},
		demo.Step{Name: "schema validation", Run: schemaStep(users)},
		demo.Step{Name: "schema unavailable", Run: schemaUnavailableStep(validator, log)},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("oopmodels demo failed")
	}
}

func runUsers(context.Context) error {
	ann := models.NewUser(1, "Ann", "ann@example.com")
	bob := models.NewUser(2, "Bob", "bob@example.com")
	bob.Active = false

	fmt.Println(ann, "domain:", ann.Domain())
	fmt.Println(bob, "domain:", bob.Domain())
	fmt.Println("same id means equal:", ann.Equal(models.NewUser(1, "X", "x@x.com")))
	return nil
}

func runFingerprints(context.Context) error {
	cara := models.NewUser(3, "Cara", "cara@example.com")
	fmt.Println("fingerprint:", cara.Fingerprint())

	// mutating a source field changes the next computation
	cara.Email = "cara@moved.org"
	fmt.Println("after move:", cara.Fingerprint())
	return nil
}

func rosterStep(users *roster.Service) func(context.Context) error {
	return func(ctx context.Context) error {
		seed := []models.User{
			models.NewUser(1, "Ann", "ann@example.com"),
			models.NewUser(2, "Bob", "bob@example.com"),
			models.NewUser(1, "Ann-dup", "ann@dup.com"),
		}
		for _, u := range seed {
			if err := users.Add(ctx, u); err != nil {
				return err
			}
		}

		fmt.Println("active:", users.Active())
		fmt.Println("deduped by id:", users.Dedupe())
		return nil
	}
}

func schemaStep(users *roster.Service) func(context.Context) error {
	return func(ctx context.Context) error {
		registered, err := users.RegisterJSON(ctx, []byte(`{"id":10,"name":"Eve","email":"eve@example.com"}`))
		if err != nil {
			return err
		}
		fmt.Println("validated and registered:", registered, "domain:", registered.Domain())

		// malformed payloads are rejected with a typed failure
		_, err = users.RegisterJSON(ctx, []byte(`{"id":11,"name":"Mallory","email":"not-an-email"}`))
		if errors.Is(err, validators.ErrInvalidUserPayload) {
			fmt.Println("malformed payload rejected:", err)
			return nil
		}
		return err
	}
}

// schemaUnavailableStep shows the configuration state in which no schema
// facility was injected.
func schemaUnavailableStep(validator validators.Validator, log *logger.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		bare := roster.NewService(validator, nil, log)

		_, err := bare.RegisterJSON(ctx, []byte(`{"id":12,"name":"Grace","email":"grace@example.com"}`))
		if errors.Is(err, validators.ErrSchemaUnavailable) {
			fmt.Println("schema facility not available:", err)
			return nil
		}
		return err
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
