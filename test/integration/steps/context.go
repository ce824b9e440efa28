// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/bizpulse/backend/config"
	"github.com/bizpulse/backend/internal/infra/dependency"
	"github.com/bizpulse/backend/internal/integration/persistence"
	"github.com/bizpulse/backend/test/integration/mock"
)

const testDashboardPassword = "test-dashboard-password"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// Backend
	redis *mock.Redis
	cfg   *config.Config

	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string
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

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			redis:          mock.NewRedis(),
		}

		tc.cfg = config.Load()
		tc.cfg.Server.Environment = "test"
		tc.cfg.Auth.Password = testDashboardPassword
		tc.cfg.Auth.JWTSecret = "test-jwt-secret"
		tc.cfg.Gemini.APIKey = "" // Insight service stays unavailable in tests

		if err := tc.startServer(); err != nil {
			return ctx, err
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.redis != nil {
				tc.redis.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// startServer wires the application against the scenario's Redis backend
// and exposes it through an httptest server. Calling it again simulates a
// process restart on top of the surviving snapshots.
func (tc *TestContext) startServer() error {
	snapshots := persistence.NewRedisSnapshotStore(tc.redis.Client)

	injector, err := dependency.NewInjector(
		context.Background(),
		tc.cfg,
		snapshots,
		func() bool { return true },
	)
	if err != nil {
		return err
	}

	tc.engine = injector.Router.Setup(tc.cfg.Server.Environment)
	tc.server = httptest.NewServer(tc.engine)
	return nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I upload a file named "([^"]*)" with content:$`, iUploadAFileNamedWithContent)
	ctx.Step(`^the server restarts$`, theServerRestarts)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list should have (\d+) items$`, theResponseListShouldHaveItems)
}
