// Command datahandling demonstrates the JSON utilities: envelope parsing,
// file round trips, the offline post source, user filtering and email
// normalization. No network call is ever issued; the HTTP client is only
// constructed to show its wiring.
package main

import (
	"context"
	"fmt"
	"path/filepath"

	"goworkshop/internal/collections"
	"goworkshop/internal/config"
	"goworkshop/internal/demo"
	"goworkshop/internal/logger"
	"goworkshop/internal/normalize"
	"goworkshop/internal/posts"
	"goworkshop/internal/store"
	"goworkshop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("datahandling")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	source := posts.NewMockSource()
	client := posts.NewClient(posts.ClientConfig{
		BaseURL: cfg.Posts.BaseURL,
		Timeout: cfg.Posts.Timeout,
	})

	runner := demo.NewRunner(log)
	err = runner.Run(context.Background(),
		demo.Step{Name: "parse envelope", Run: runParseEnvelope},
		demo.Step{Name: "json round trip", Run: jsonRoundTripStep(cfg.App.DataDir)},
		demo.Step{Name: "mock posts", Run: mockPostsStep(source)},
		demo.Step{Name: "filter users", Run: filterUsersStep(cfg.App.DataDir)},
		demo.Step{Name: "normalize emails", Run: runNormalizeEmails},
		demo.Step{Name: "http client wiring", Run: clientWiringStep(client)},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("datahandling demo failed")
	}
}

func runParseEnvelope(context.Context) error {
	payload := `{"items":[{"id":1,"name":"widget"},{"id":2,"name":"gadget"}]}`

	items, err := store.ParseItems([]byte(payload))
	if err != nil {
		return err
	}
	fmt.Println("parsed items:", items)

	// a wrong shape fails with a descriptive error
	if _, err := store.ParseItems([]byte(`{}`)); err != nil {
		fmt.Println("empty object rejected:", err)
	}
	return nil
}

func jsonRoundTripStep(dataDir string) func(context.Context) error {
	return func(context.Context) error {
		path := filepath.Join(dataDir, "items.json")

		items := []any{
			map[string]any{"id": 1, "name": "widget"},
			map[string]any{"id": 2, "name": "gadget"},
		}
		if err := store.WriteJSON(path, items); err != nil {
			return err
		}

		var loaded []any
		if err := store.ReadJSON(path, &loaded); err != nil {
			return err
		}
		fmt.Println("loaded items from file:", loaded)
		return nil
	}
}

func mockPostsStep(source posts.Source) func(context.Context) error {
	return func(ctx context.Context) error {
		fetched, err := source.FetchPosts(ctx)
		if err != nil {
			return err
		}

		for _, p := range fetched {
			fmt.Printf("post %d: %s %v\n", p.ID, p.Title, p.Tags)
		}
		return nil
	}
}

func filterUsersStep(dataDir string) func(context.Context) error {
	return func(context.Context) error {
		users := []models.User{
			models.NewUser(1, "Ann", "ann@example.com"),
			{ID: 2, Name: "Bob", Email: "bob@example.com", Active: false},
			models.NewUser(3, "Cara", "  CARA@example.com  "),
		}

		active := collections.ActiveUsers(users)
		fmt.Println("active users:", active)

		path := filepath.Join(dataDir, "active_users.json")
		if err := store.WriteJSON(path, active); err != nil {
			return err
		}
		fmt.Println("wrote active users to:", path)
		return nil
	}
}

func runNormalizeEmails(context.Context) error {
	emails := []string{"ann@example.com", "bob@example.com", "  CARA@example.com  "}

	fmt.Println("normalized emails:", normalize.Emails(emails))
	fmt.Println("unique domains:", normalize.UniqueDomains(emails))
	fmt.Println("counts:", normalize.CountEmails(emails))
	return nil
}

// clientWiringStep shows the configured HTTP client without calling it.
func clientWiringStep(client *posts.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		logger.FromContext(ctx).Debug().Str("base_url", client.BaseURL()).Msg("posts client configured")
		fmt.Printf("(demo) would perform GET %s/posts here\n", client.BaseURL())
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
