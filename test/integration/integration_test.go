//go:build integration

// Package integration runs the Gherkin scenarios under features/ against the full HTTP stack.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/hubmanager/backend/test/integration/steps"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TestHubManagerFeatures runs scenarios one at a time in file order because they share
// the in-memory database and miniredis.
// GODOG_TAGS narrows the run, e.g. GODOG_TAGS=@email.
func TestHubManagerFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "hub-manager-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options: &godog.Options{
			Paths:       []string{"features"},
			Format:      envOr("GODOG_FORMAT", "pretty"),
			Tags:        os.Getenv("GODOG_TAGS"),
			Output:      colors.Colored(os.Stdout),
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run failed with status %d", status)
	}
}
