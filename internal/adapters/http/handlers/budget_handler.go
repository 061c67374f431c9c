package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BudgetHandler handles event budget endpoints
type BudgetHandler struct {
	budgetService *services.BudgetService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// mapBudgetError translates budget domain errors to HTTP responses
func mapBudgetError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrBudgetNotFound):
		return response.NotFound(c, "Budget line not found")
	case errors.Is(err, domain.ErrEventNotFound):
		return response.NotFound(c, "Event not found")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to manage this event's finances")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, "Invalid budget data")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// Create adds a budget line
// @Summary Create budget line
// @Description Add a budget line to an event (event head or current administrator)
// @Tags Budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateBudgetInput true "Budget data"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateBudgetInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" {
		return response.BadRequest(c, "Budget name is required")
	}

	budget, err := h.budgetService.Create(c.Context(), actorID, &input)
	if err != nil {
		return mapBudgetError(c, err, "Failed to create budget line")
	}

	return response.Created(c, "Budget line created successfully", fiber.Map{"budget": budget})
}

// ListByEvent lists budget lines of an event
// @Summary List event budget
// @Description List budget lines of an event
// @Tags Budgets
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} response.Response
// @Router /budgets/event/{eventId} [get]
func (h *BudgetHandler) ListByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	budgets, err := h.budgetService.ListByEventID(c.Context(), uint(eventID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list budget lines")
	}

	return response.Success(c, "Budget lines retrieved successfully", fiber.Map{"budgets": budgets})
}

// Get gets a budget line by ID
// @Summary Get budget line
// @Description Get a budget line by ID
// @Tags Budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /budgets/{id} [get]
func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	budget, err := h.budgetService.GetByID(c.Context(), uint(id))
	if err != nil {
		return mapBudgetError(c, err, "Failed to get budget line")
	}

	return response.Success(c, "Budget line retrieved successfully", fiber.Map{"budget": budget})
}

// Update updates a budget line
// @Summary Update budget line
// @Description Update a budget line (event head or current administrator)
// @Tags Budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Param body body services.UpdateBudgetInput true "Budget data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /budgets/{id} [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateBudgetInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	budget, err := h.budgetService.Update(c.Context(), actorID, uint(id), &input)
	if err != nil {
		return mapBudgetError(c, err, "Failed to update budget line")
	}

	return response.Success(c, "Budget line updated successfully", fiber.Map{"budget": budget})
}

// Delete deletes a budget line
// @Summary Delete budget line
// @Description Delete a budget line (event head or current administrator)
// @Tags Budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.budgetService.Delete(c.Context(), actorID, uint(id)); err != nil {
		return mapBudgetError(c, err, "Failed to delete budget line")
	}

	return response.Success(c, "Budget line deleted successfully", nil)
}
