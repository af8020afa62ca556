package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/cucumber/godog"

	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

// registerFixtureSteps registers clock, session and database steps.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^I am logged in as the admin$`, iAmLoggedInAsTheAdmin)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^I am not logged in$`, iAmNotLoggedIn)
	ctx.Step(`^the hub "([^"]*)" is saved as "([^"]*)"$`, theHubIsSavedAs)
	ctx.Step(`^the login rate limit window has passed$`, theLoginRateLimitWindowHasPassed)
	ctx.Step(`^(\d+) minutes? pass(?:es)?$`, minutesPass)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values:$`, theDbShouldContainObjectsWithTheValues)
}

func todayIs(ctx context.Context, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ctx, err
	}
	tc.clock.SetCurrentTime(day.Add(12 * time.Hour))
	return SetTestContext(ctx, tc), nil
}

func iAmLoggedInAsTheAdmin(ctx context.Context) (context.Context, error) {
	return iAmLoggedInAs(ctx, testAdminEmail, testAdminPassword)
}

func iAmLoggedInAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	tc.accessToken = ""
	if err := tc.do(http.MethodPost, "/api/auth/login", bytes.NewReader(payload)); err != nil {
		return ctx, err
	}
	if tc.status != http.StatusOK {
		return ctx, fmt.Errorf("login as %s failed with %d: %s", email, tc.status, string(tc.responseBody))
	}

	token, err := tc.responseField("access_token")
	if err != nil {
		return ctx, err
	}
	tc.accessToken = fmt.Sprintf("%v", token)
	return SetTestContext(ctx, tc), nil
}

func iAmNotLoggedIn(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func theHubIsSavedAs(ctx context.Context, name, key string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	var hub model.HubModel
	if err := tc.db.DbConn.Where("name = ?", name).First(&hub).Error; err != nil {
		return ctx, fmt.Errorf("hub %q: %w", name, err)
	}
	tc.saved[key] = hub.ID.String()
	return SetTestContext(ctx, tc), nil
}

func theLoginRateLimitWindowHasPassed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.redis.FastForward(time.Minute + time.Second)
	return nil
}

func minutesPass(ctx context.Context, minutes int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.clock.Advance(time.Duration(minutes) * time.Minute)
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	return countRows(ctx, quantity, table, nil)
}

func theDbShouldContainObjectsWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return countRows(ctx, quantity, table, criteria)
}

func countRows(ctx context.Context, quantity int, table string, criteria map[string]any) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	rows := reflect.New(reflect.SliceOf(reflect.TypeOf(entity).Elem()))
	query := tc.db.DbConn.Unscoped()
	for column, value := range criteria {
		if s, isString := value.(string); isString {
			value = tc.substitute(s)
		}
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if err := query.Find(rows.Interface()).Error; err != nil {
		return err
	}

	if count := rows.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
