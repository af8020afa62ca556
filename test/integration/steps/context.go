// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/infra/cache"
	"github.com/hubmanager/backend/internal/infra/dependency"
	"github.com/hubmanager/backend/internal/infra/server/router"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
	"github.com/hubmanager/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testAdminEmail    = "admin@hub.test"
	testAdminPassword = "admin123"
	testResendAPIKey  = "re_integration_key"
	resendEmailsPath  = "/emails"
)

// TestContext holds the state of one scenario.
type TestContext struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	redis    *mock.Redis
	clock    *mock.Time
	resend   *mock.ApiMock

	// Request building
	requestHeaders map[string]string
	accessToken    string

	// Last response
	status       int
	responseBody []byte

	// Values saved by earlier steps, substituted as {{name}}
	saved map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

var (
	resendOnce sync.Once
	resendMock *mock.ApiMock
)

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		resendOnce.Do(func() {
			resendMock = mock.NewApiServer()
			resendMock.Start()
		})
	})

	ctx.AfterSuite(func() {
		if resendMock != nil {
			resendMock.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext(ctx)
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerFixtureSteps(ctx)
	registerEmailSteps(ctx)
}

// newTestContext resets the shared stores and wires a fresh application on top of them.
func newTestContext(ctx context.Context) (*TestContext, error) {
	tc := &TestContext{
		db:             mock.NewDb("hub_manager_integration", model.All()...),
		redis:          mock.NewRedis(),
		clock:          mock.NewTime(),
		resend:         resendMock,
		requestHeaders: make(map[string]string),
		saved:          make(map[string]string),
	}

	if err := tc.db.ClearDB(); err != nil {
		return nil, err
	}
	if err := tc.redis.Clear(); err != nil {
		return nil, err
	}
	tc.resend.ClearResponses("POST", resendEmailsPath)
	tc.resend.SetResponse(-1, "POST", resendEmailsPath, 200, map[string]any{"id": "re_integration"})

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Email.ResendAPIKey = testResendAPIKey
	cfg.Email.ResendBaseURL = tc.resend.GetUrl()
	cfg.Email.AppBaseURL = "http://hub.test"
	cfg.Seed.AdminEmail = testAdminEmail
	cfg.Seed.AdminPassword = testAdminPassword
	cfg.Seed.AdminName = "Admin"

	injector, err := dependency.NewInjector(cfg, tc.db.DbConn, dependency.Externals{
		RateLimitStore: cache.NewRedisRateLimitStore(tc.redis.Client),
		CacheHealth:    cache.HealthCheck(tc.redis.Client),
		Now:            tc.clock.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("wire application: %w", err)
	}
	if err := injector.Seeder.Run(ctx, cfg.Seed); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	tc.injector = injector
	tc.server = httptest.NewServer(injector.Router.Setup(router.Options{Environment: "test"}))
	return tc, nil
}
