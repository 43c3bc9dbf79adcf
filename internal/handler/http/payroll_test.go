package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/validator"
)

type stubPayrollService struct {
	createFn   func(ctx context.Context, req *payroll.CreatePayRunRequest) (*payroll.CreatePayRunResponse, error)
	detailsFn  func(ctx context.Context, id string) (*payroll.PayRunDetailResponse, error)
	deleteFn   func(ctx context.Context, id string) error
	finalizeFn func(ctx context.Context, id string) error
	payslipsFn func(ctx context.Context, userID string) ([]payroll.PayslipResponse, error)
}

func (s *stubPayrollService) CreatePayRun(ctx context.Context, req *payroll.CreatePayRunRequest) (*payroll.CreatePayRunResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubPayrollService) ListPayRuns(ctx context.Context) ([]payroll.PayRunSummaryResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) GetPayRunDetails(ctx context.Context, id string) (*payroll.PayRunDetailResponse, error) {
	return s.detailsFn(ctx, id)
}

func (s *stubPayrollService) DeletePayRun(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPayrollService) FinalizePayRun(ctx context.Context, id string) error {
	return s.finalizeFn(ctx, id)
}

func (s *stubPayrollService) GetPayslipsByUser(ctx context.Context, userID string) ([]payroll.PayslipResponse, error) {
	return s.payslipsFn(ctx, userID)
}

type stubJWTService struct {
	userID string
	err    error
}

func (s *stubJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (s *stubJWTService) UserIDFromContext(ctx context.Context) (string, error) {
	return s.userID, s.err
}

func newTestRouter(svc *stubPayrollService, jwtSvc *stubJWTService) *chi.Mux {
	h := NewPayrollHandler(svc, nil, jwtSvc)
	r := chi.NewRouter()
	r.Post("/payruns", h.CreatePayRun)
	r.Get("/payruns/{id}", h.GetPayRunDetails)
	r.Delete("/payruns/{id}", h.DeletePayRun)
	r.Post("/payruns/{id}/finalize", h.FinalizePayRun)
	r.Get("/payslips/my", h.GetMyPayslips)
	return r
}

func TestCreatePayRunHandler(t *testing.T) {
	svc := &stubPayrollService{
		createFn: func(ctx context.Context, req *payroll.CreatePayRunRequest) (*payroll.CreatePayRunResponse, error) {
			return &payroll.CreatePayRunResponse{ID: "run-1"}, nil
		},
	}
	r := newTestRouter(svc, &stubJWTService{})

	body := `{"run_name":"Jan 1-15","start_date":"2025-01-01","end_date":"2025-01-15","pay_date":"2025-01-20"}`
	req := httptest.NewRequest(http.MethodPost, "/payruns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "run-1", resp.Data.ID)
}

func TestCreatePayRunHandlerBadBody(t *testing.T) {
	r := newTestRouter(&stubPayrollService{}, &stubJWTService{})

	req := httptest.NewRequest(http.MethodPost, "/payruns", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePayRunHandlerValidationError(t *testing.T) {
	svc := &stubPayrollService{
		createFn: func(ctx context.Context, req *payroll.CreatePayRunRequest) (*payroll.CreatePayRunResponse, error) {
			return nil, validator.ValidationErrors{
				{Field: "start_date", Message: "is required"},
			}
		},
	}
	r := newTestRouter(svc, &stubJWTService{})

	req := httptest.NewRequest(http.MethodPost, "/payruns", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_date")
}

func TestGetPayRunDetailsNotFound(t *testing.T) {
	svc := &stubPayrollService{
		detailsFn: func(ctx context.Context, id string) (*payroll.PayRunDetailResponse, error) {
			return nil, payroll.ErrPayRunNotFound
		},
	}
	r := newTestRouter(svc, &stubJWTService{})

	req := httptest.NewRequest(http.MethodGet, "/payruns/3f2c1d0e-9a8b-4c7d-8e6f-5a4b3c2d1e0f", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedRunIDIsNotFound(t *testing.T) {
	// The service is never reached: a non-UUID id cannot name a pay run.
	r := newTestRouter(&stubPayrollService{}, &stubJWTService{})

	req := httptest.NewRequest(http.MethodGet, "/payruns/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinalizePayRunConflict(t *testing.T) {
	svc := &stubPayrollService{
		finalizeFn: func(ctx context.Context, id string) error {
			return payroll.ErrPayRunAlreadyCompleted
		},
	}
	r := newTestRouter(svc, &stubJWTService{})

	req := httptest.NewRequest(http.MethodPost, "/payruns/b7a9c6a4-31fd-4c9e-9e5a-0d8f1c2b3a4d/finalize", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteCompletedPayRunConflict(t *testing.T) {
	svc := &stubPayrollService{
		deleteFn: func(ctx context.Context, id string) error {
			return payroll.ErrCannotDeleteCompleted
		},
	}
	r := newTestRouter(svc, &stubJWTService{})

	req := httptest.NewRequest(http.MethodDelete, "/payruns/b7a9c6a4-31fd-4c9e-9e5a-0d8f1c2b3a4d", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnexpectedErrorIsInternal(t *testing.T) {
	svc := &stubPayrollService{
		deleteFn: func(ctx context.Context, id string) error {
			return errors.New("connection reset")
		},
	}
	r := newTestRouter(svc, &stubJWTService{})

	req := httptest.NewRequest(http.MethodDelete, "/payruns/b7a9c6a4-31fd-4c9e-9e5a-0d8f1c2b3a4d", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset", "internal details must not leak")
}

func TestGetMyPayslips(t *testing.T) {
	svc := &stubPayrollService{
		payslipsFn: func(ctx context.Context, userID string) ([]payroll.PayslipResponse, error) {
			assert.Equal(t, "u1", userID)
			return []payroll.PayslipResponse{{ID: "rec-1", PayRunID: "run-1"}}, nil
		},
	}
	r := newTestRouter(svc, &stubJWTService{userID: "u1"})

	req := httptest.NewRequest(http.MethodGet, "/payslips/my", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rec-1")
}

func TestGetMyPayslipsUnauthorized(t *testing.T) {
	r := newTestRouter(&stubPayrollService{}, &stubJWTService{err: errors.New("no token")})

	req := httptest.NewRequest(http.MethodGet, "/payslips/my", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
