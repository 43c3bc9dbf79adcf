package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
	"github.com/kentzie123/LJA-System-Server/internal/handler/http/response"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/jwt"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/validator"
	"github.com/kentzie123/LJA-System-Server/internal/service/report"
)

type PayrollHandler interface {
	CreatePayRun(w http.ResponseWriter, r *http.Request)
	ListPayRuns(w http.ResponseWriter, r *http.Request)
	GetPayRunDetails(w http.ResponseWriter, r *http.Request)
	DeletePayRun(w http.ResponseWriter, r *http.Request)
	FinalizePayRun(w http.ResponseWriter, r *http.Request)
	ExportPayRun(w http.ResponseWriter, r *http.Request)
	GetMyPayslips(w http.ResponseWriter, r *http.Request)
	GetEmployeePayslips(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
	reportService  report.Service
	jwtService     jwt.Service
}

func NewPayrollHandler(payrollService payroll.Service, reportService report.Service, jwtService jwt.Service) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		reportService:  reportService,
		jwtService:     jwtService,
	}
}

// runID pulls the {id} parameter and rejects values that cannot be a pay run
// id before they reach the database.
func runID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Pay run not found")
		return "", false
	}
	return id, true
}

func (h *payrollHandlerImpl) CreatePayRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreatePayRun(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay run created", result)
}

func (h *payrollHandlerImpl) ListPayRuns(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPayRuns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPayRunDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := runID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayRunDetails(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeletePayRun(w http.ResponseWriter, r *http.Request) {
	id, ok := runID(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.DeletePayRun(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay run deleted", nil)
}

func (h *payrollHandlerImpl) FinalizePayRun(w http.ResponseWriter, r *http.Request) {
	id, ok := runID(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.FinalizePayRun(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay run finalized", nil)
}

func (h *payrollHandlerImpl) ExportPayRun(w http.ResponseWriter, r *http.Request) {
	id, ok := runID(w, r)
	if !ok {
		return
	}

	buf, filename, err := h.reportService.ExportPayRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (h *payrollHandlerImpl) GetMyPayslips(w http.ResponseWriter, r *http.Request) {
	userID, err := h.jwtService.UserIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.GetPayslipsByUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeePayslips(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Employee not found")
		return
	}

	result, err := h.payrollService.GetPayslipsByUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
