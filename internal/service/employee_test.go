package service

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/deppfellow/employee-api/internal/config"
	"github.com/deppfellow/employee-api/internal/domain"
	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/rs/zerolog"
)

func newTestService(t *testing.T) (*EmployeeService, *repository.EmployeeRepository) {
	t.Helper()
	logger := zerolog.Nop()
	s := &server.Server{Config: config.DefaultConfig(), Logger: &logger}
	repo := repository.NewEmployeeRepository()
	return NewEmployeeService(s, repo), repo
}

func TestCreateTrimsAndStores(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	next := repo.NextID()

	employee, err := svc.Create(ctx, map[string]any{"name": "  Ada ", "position": " Engineer"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := domain.Employee{ID: next, Name: "Ada", Position: "Engineer"}
	if employee != want {
		t.Fatalf("Create() = %+v, want %+v", employee, want)
	}
	if stored, _ := repo.Find(ctx, next); stored != want {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Create(context.Background(), map[string]any{})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest || httpErr.Message != "Invalid employee data" {
		t.Fatalf("error = %+v", httpErr)
	}
	want := []string{"Field 'name' is required", "Field 'position' is required"}
	if !reflect.DeepEqual(httpErr.Violations, want) {
		t.Fatalf("violations = %q, want %q", httpErr.Violations, want)
	}
	if repo.Count() != 0 || repo.NextID() != 1 {
		t.Fatal("invalid create must not touch the store")
	}
}

func TestUpdateMissingEmployeeBeforeValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 999, map[string]any{"extra": true})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	created := repo.Create(ctx, "Ada", "Engineer")

	updated, err := svc.Update(ctx, created.ID, map[string]any{"position": "  Lead  "})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Ada" || updated.Position != "Lead" {
		t.Fatalf("Update() = %+v", updated)
	}
}

func TestUpdateInvalidLeavesRecord(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	created := repo.Create(ctx, "Ada", "Engineer")

	_, err := svc.Update(ctx, created.ID, map[string]any{"name": "   "})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || len(httpErr.Violations) != 1 {
		t.Fatalf("error = %v", err)
	}
	if stored, _ := repo.Find(ctx, created.ID); stored != created {
		t.Fatalf("stored = %+v, want %+v", stored, created)
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	created := repo.Create(ctx, "Ada", "Engineer")

	removed, err := svc.Delete(ctx, created.ID)
	if err != nil || removed != created {
		t.Fatalf("Delete() = %+v, %v", removed, err)
	}

	if _, err := svc.Delete(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Get() after delete error = %v", err)
	}
}
