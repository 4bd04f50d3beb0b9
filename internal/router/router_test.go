package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/deppfellow/employee-api/internal/config"
	"github.com/deppfellow/employee-api/internal/domain"
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type testApp struct {
	router *echo.Echo
	repos  *repository.Repositories
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.RateLimit.Enabled = false

	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger, nil)
	if err != nil {
		t.Fatalf("server.New() error = %v", err)
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)

	return &testApp{
		router: NewRouter(s, handlers),
		repos:  repos,
	}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type successBody[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type failureBody struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Details    *struct {
		ValidationErrors []string `json:"validation_errors"`
	} `json:"details"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) failureBody {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	body := decode[failureBody](t, rec)
	if !body.Error || body.StatusCode != status || body.Message != message {
		t.Fatalf("failure body = %+v, want status %d message %q", body, status, message)
	}
	return body
}

func TestCreateThenGet(t *testing.T) {
	app := newTestApp(t)
	next := app.repos.Employees.NextID()

	rec := app.do(t, http.MethodPost, "/employees", `{"name":"  Ada  ","position":"Engineer "}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	created := decode[successBody[domain.Employee]](t, rec)
	if !created.Success || created.Message != "Employee created successfully" {
		t.Fatalf("body = %+v", created)
	}
	if created.Data.ID != next {
		t.Fatalf("id = %d, want %d", created.Data.ID, next)
	}

	rec = app.do(t, http.MethodGet, "/employees/"+strconv.Itoa(next), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}

	got := decode[successBody[domain.Employee]](t, rec)
	want := domain.Employee{ID: next, Name: "Ada", Position: "Engineer"}
	if got.Data != want {
		t.Fatalf("GET data = %+v, want %+v", got.Data, want)
	}
}

func TestListEmployees(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/employees", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty list must encode as [], got %s", rec.Body.String())
	}

	app.do(t, http.MethodPost, "/employees", `{"name":"Ada","position":"Engineer"}`)
	app.do(t, http.MethodPost, "/employees", `{"name":"Grace","position":"Admiral"}`)

	list := decode[successBody[[]domain.Employee]](t, app.do(t, http.MethodGet, "/employees", ""))
	if len(list.Data) != 2 || list.Data[0].Name != "Ada" || list.Data[1].Name != "Grace" {
		t.Fatalf("list = %+v", list.Data)
	}
}

func TestCreateValidationFailure(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/employees", `{}`)
	body := expectFailure(t, rec, http.StatusBadRequest, "Invalid employee data")

	if body.Details == nil {
		t.Fatal("expected details")
	}
	want := []string{"Field 'name' is required", "Field 'position' is required"}
	if strings.Join(body.Details.ValidationErrors, "|") != strings.Join(want, "|") {
		t.Fatalf("validation_errors = %q, want %q", body.Details.ValidationErrors, want)
	}
	if app.repos.Employees.Count() != 0 {
		t.Fatal("store must be unchanged")
	}
}

func TestUpdate(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/employees", `{"name":"Ada","position":"Engineer"}`)

	rec := app.do(t, http.MethodPut, "/employees/1", `{"position":" Lead "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := decode[successBody[domain.Employee]](t, rec)
	if body.Message != "Employee updated successfully" || body.Data.Name != "Ada" || body.Data.Position != "Lead" {
		t.Fatalf("body = %+v", body)
	}
}

func TestUpdateMissingEmployee(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/employees", `{"name":"Ada","position":"Engineer"}`)
	before := app.repos.Employees.List(t.Context())

	rec := app.do(t, http.MethodPut, "/employees/999", `{"name":"X"}`)
	expectFailure(t, rec, http.StatusNotFound, "Employee with identifier '999' not found")

	after := app.repos.Employees.List(t.Context())
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("store changed: %+v -> %+v", before, after)
	}
}

func TestUpdateUnknownFieldOnly(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/employees", `{"name":"Ada","position":"Engineer"}`)

	rec := app.do(t, http.MethodPut, "/employees/1", `{"extra":1}`)
	body := expectFailure(t, rec, http.StatusBadRequest, "Invalid employee data")

	if body.Details == nil || len(body.Details.ValidationErrors) != 1 || body.Details.ValidationErrors[0] != "Unknown fields: extra" {
		t.Fatalf("details = %+v", body.Details)
	}
}

func TestDeleteTwice(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/employees", `{"name":"Ada","position":"Engineer"}`)

	rec := app.do(t, http.MethodDelete, "/employees/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode[successBody[domain.DeletedEmployee]](t, rec)
	if body.Data.DeletedID != 1 || body.Message != "Employee 'Ada' deleted successfully" {
		t.Fatalf("body = %+v", body)
	}

	expectFailure(t, app.do(t, http.MethodDelete, "/employees/1", ""), http.StatusNotFound, "Employee with identifier '1' not found")
	expectFailure(t, app.do(t, http.MethodGet, "/employees/1", ""), http.StatusNotFound, "Employee with identifier '1' not found")
}

func TestMalformedRequests(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
	}{
		{"bad json", http.MethodPost, "/employees", "application/json", `{"name":`},
		{"wrong content type", http.MethodPost, "/employees", "text/plain", `{"name":"Ada","position":"Engineer"}`},
		{"array body", http.MethodPost, "/employees", "application/json", `[]`},
		{"empty body", http.MethodPost, "/employees", "application/json", ``},
		{"bad json on update", http.MethodPut, "/employees/999", "application/json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			rec := httptest.NewRecorder()

			app.router.ServeHTTP(rec, req)

			expectFailure(t, rec, http.StatusBadRequest, "Request body must be valid JSON")
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/nope", "/employees/abc", "/employees/-1", "/employees/1/extra"} {
		t.Run(path, func(t *testing.T) {
			expectFailure(t, app.do(t, http.MethodGet, path, ""), http.StatusNotFound, "Resource not found")
		})
	}
}

func TestNonNumericIDIsCheckedBeforeBody(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
	}{
		{"put with text body", http.MethodPut, "/employees/abc", "text/plain", "x"},
		{"put with json body", http.MethodPut, "/employees/abc", "application/json", `{"name":"X"}`},
		{"put with malformed json", http.MethodPut, "/employees/1.5", "application/json", `{`},
		{"delete", http.MethodDelete, "/employees/abc", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			app.router.ServeHTTP(rec, req)

			expectFailure(t, rec, http.StatusNotFound, "Resource not found")
		})
	}
}

func TestOverflowingIDNamesNoEmployee(t *testing.T) {
	app := newTestApp(t)
	const huge = "99999999999999999999"

	expectFailure(t, app.do(t, http.MethodGet, "/employees/"+huge, ""), http.StatusNotFound, "Employee with identifier '"+huge+"' not found")
	expectFailure(t, app.do(t, http.MethodPut, "/employees/"+huge, `{"name":"X"}`), http.StatusNotFound, "Employee with identifier '"+huge+"' not found")
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPatch, "/employees", "")
	expectFailure(t, rec, http.StatusMethodNotAllowed, "Method PATCH not allowed for this endpoint")
}

func TestPanicBecomesInternalError(t *testing.T) {
	app := newTestApp(t)
	app.router.GET("/boom", func(c echo.Context) error {
		panic("secret detail")
	})

	rec := app.do(t, http.MethodGet, "/boom", "")
	expectFailure(t, rec, http.StatusInternalServerError, "An unexpected error occurred")

	if strings.Contains(rec.Body.String(), "secret detail") {
		t.Fatal("panic detail leaked to the client")
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := decode[successBody[handler.HealthStatus]](t, rec)
	if !body.Success || body.Data.Status != "healthy" || body.Message != "API is running" {
		t.Fatalf("body = %+v", body)
	}
}

func TestDocs(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/openapi.json", "")
	if rec.Code != http.StatusOK || !json.Valid(rec.Body.Bytes()) {
		t.Fatalf("openapi.json: status %d", rec.Code)
	}

	rec = app.do(t, http.MethodGet, "/docs", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Header().Get(echo.HeaderContentType), "text/html") {
		t.Fatalf("docs: status %d content-type %q", rec.Code, rec.Header().Get(echo.HeaderContentType))
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/nope", "")
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatal("failure responses must carry a request id")
	}
}
