// Package steps wires the BDD feature suite to a real server instance backed
// by the shared test database.
package steps

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/statement"
	"github.com/fintrack/backend/internal/application/usecase/summary"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/persistence"
	"github.com/fintrack/backend/internal/integration/persistence/model"
	"github.com/fintrack/backend/test/integration/mock"
)

// demoUserID is the fixed account every scenario operates on. The row is
// reinserted after each database reset.
var demoUserID = uuid.MustParse("7b2e1a43-9a77-4f5e-9c31-2f64d1c2a9e0")

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	lastTransactionID string
}

type response struct {
	status int
	raw    string
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(
			&model.CategoryBreakdownModel{},
			&model.MonthlySummaryModel{},
			&model.TransactionModel{},
			&model.UserModel{},
		),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.response = nil
	t.lastTransactionID = ""

	if err := t.db.Reset(); err != nil {
		return err
	}

	// Reseed the fixed demo account
	return t.db.DbConn.Create(&model.UserModel{
		ID:           demoUserID,
		Username:     "demo",
		PasswordHash: "not-used-by-these-tests",
		CreatedAt:    time.Now().UTC(),
	}).Error
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			summaryRepo := persistence.NewSummaryRepository(testDB.DbConn)

			recomputeUseCase := summary.NewRecomputeUseCase(transactionRepo, summaryRepo)
			listSummariesUseCase := summary.NewListSummariesUseCase(summaryRepo)
			getSummaryUseCase := summary.NewGetSummaryUseCase(summaryRepo)

			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			listMonthTransactionsUseCase := transaction.NewListMonthTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, recomputeUseCase)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, recomputeUseCase)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, recomputeUseCase)
			exportCSVUseCase := transaction.NewExportCSVUseCase(transactionRepo)

			importStatementUseCase := statement.NewImportStatementUseCase(createTransactionUseCase, getSummaryUseCase)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			transactionController := controller.NewTransactionController(
				demoUserID,
				listTransactionsUseCase,
				listMonthTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
				exportCSVUseCase,
			)
			summaryController := controller.NewSummaryController(demoUserID, listSummariesUseCase, getSummaryUseCase)
			statementController := controller.NewStatementController(demoUserID, importStatementUseCase)
			categoryController := controller.NewCategoryController()

			r := router.NewRouter(
				healthController,
				transactionController,
				summaryController,
				statementController,
				categoryController,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.sendRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.sendRequest(method, path, strings.NewReader(body.Content))
}

func (t *testContext) sendRequest(method, path string, body io.Reader) error {
	path = strings.ReplaceAll(path, "{lastTransactionID}", t.lastTransactionID)

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    string(raw),
	}
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(raw, &t.response.body)
	}

	// Remember created transactions so later steps can address them
	if method == http.MethodPost && path == "/transactions" && resp.StatusCode == http.StatusCreated {
		if m, ok := t.response.body.(map[string]any); ok {
			if id, ok := m["id"].(string); ok {
				t.lastTransactionID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(t.response.raw, expected) {
		return fmt.Errorf("expected response to contain %q, got: %s", expected, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		actual = strconv.FormatInt(int64(f), 10)
	}
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q (body: %s)", path, expected, actual, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.lookupField(path)
	return err
}

// lookupField walks a dot-separated path through the parsed JSON body.
// Numeric segments index into arrays.
func (t *testContext) lookupField(path string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	current := t.response.body
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, t.response.raw)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(expected int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}
