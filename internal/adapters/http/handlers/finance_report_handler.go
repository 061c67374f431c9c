package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/pagination"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"github.com/gofiber/fiber/v2"
)

// FinanceReportHandler handles finance report endpoints
type FinanceReportHandler struct {
	financeReportService *services.FinanceReportService
}

// NewFinanceReportHandler creates a new finance report handler
func NewFinanceReportHandler(financeReportService *services.FinanceReportService) *FinanceReportHandler {
	return &FinanceReportHandler{financeReportService: financeReportService}
}

// GetByEvent gets the finance report of an event
// @Summary Get event finance report
// @Description Aggregated budget and transaction totals for one event
// @Tags Finance Reports
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /finance-reports/event/{eventId} [get]
func (h *FinanceReportHandler) GetByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	report, err := h.financeReportService.GetByEventID(c.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to build finance report")
	}

	return response.Success(c, "Finance report retrieved successfully", fiber.Map{"report": report})
}

// List lists finance reports for all events
// @Summary List finance reports
// @Description Finance reports of all events with pagination
// @Tags Finance Reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /finance-reports [get]
func (h *FinanceReportHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	reports, total, err := h.financeReportService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list finance reports")
	}

	return response.Success(c, "Finance reports retrieved successfully", pagination.NewResponse(reports, params, total))
}

// MonthlyByYearSession gets the month-by-month breakdown of a year session
// @Summary Monthly finance breakdown
// @Description Completed transaction totals per month of a year session, keyed by transaction type
// @Tags Finance Reports
// @Produce json
// @Security BearerAuth
// @Param yearSession query string true "Year session (YYYY/YYYY)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /finance-reports/monthly [get]
func (h *FinanceReportHandler) MonthlyByYearSession(c *fiber.Ctx) error {
	session := c.Query("yearSession")
	if session == "" {
		return response.BadRequest(c, "yearSession query parameter is required")
	}

	breakdown, err := h.financeReportService.MonthlyByYearSession(c.Context(), session)
	if err != nil {
		if errors.Is(err, yearsession.ErrInvalidFormat) {
			return response.BadRequest(c, "Year session must be in YYYY/YYYY format")
		}
		return response.InternalServerError(c, "Failed to build monthly breakdown")
	}

	return response.Success(c, "Monthly breakdown retrieved successfully", fiber.Map{"breakdown": breakdown})
}

// Statistic gets the finance statistic of the current year session
// @Summary Current session finance statistic
// @Description Six-bucket totals of budgets and transactions within the current year session
// @Tags Finance Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /finance-reports/statistic [get]
func (h *FinanceReportHandler) Statistic(c *fiber.Ctx) error {
	statistic, err := h.financeReportService.StatisticOfCurrentYearSession(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build finance statistic")
	}

	return response.Success(c, "Finance statistic retrieved successfully", fiber.Map{"statistic": statistic})
}
