package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/pagination"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// mapEventError translates event domain errors to HTTP responses
func mapEventError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return response.NotFound(c, "Event not found")
	case errors.Is(err, domain.ErrEventCancelled):
		return response.Conflict(c, "Event is cancelled")
	case errors.Is(err, domain.ErrEventEnded):
		return response.Conflict(c, "Event has already ended")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to manage this event")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, "Invalid event data")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// Create creates a new event
// @Summary Create event
// @Description Create a new event (current administrators only)
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEventInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" {
		return response.BadRequest(c, "Event name is required")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return response.BadRequest(c, "Start and end dates are required")
	}

	event, err := h.eventService.Create(c.Context(), userID, &input)
	if err != nil {
		return mapEventError(c, err, "Failed to create event")
	}

	return response.Created(c, "Event created successfully", fiber.Map{"event": event})
}

// Get gets an event by ID
// @Summary Get event
// @Description Get an event by ID
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	event, err := h.eventService.GetByID(c.Context(), uint(id))
	if err != nil {
		return mapEventError(c, err, "Failed to get event")
	}

	return response.Success(c, "Event retrieved successfully", fiber.Map{"event": event})
}

// List lists events
// @Summary List events
// @Description List events with pagination; filter=upcoming|past narrows the window
// @Tags Events
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param filter query string false "upcoming or past"
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	var (
		events []*models.Event
		total  int64
		err    error
	)

	switch c.Query("filter") {
	case "upcoming":
		events, total, err = h.eventService.ListUpcoming(c.Context(), params.Offset, params.Limit)
	case "past":
		events, total, err = h.eventService.ListPast(c.Context(), params.Offset, params.Limit)
	default:
		events, total, err = h.eventService.List(c.Context(), params.Offset, params.Limit)
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}

	return response.Success(c, "Events retrieved successfully", pagination.NewResponse(events, params, total))
}

// ListByDateRange lists events within a start date window
// @Summary List events by date range
// @Description List events whose start date falls within [from, to]
// @Tags Events
// @Produce json
// @Param from query string true "RFC3339 start"
// @Param to query string true "RFC3339 end"
// @Success 200 {object} response.Response
// @Router /events/range [get]
func (h *EventHandler) ListByDateRange(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return response.BadRequest(c, "Invalid 'from' date, expected RFC3339")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return response.BadRequest(c, "Invalid 'to' date, expected RFC3339")
	}

	params := pagination.GetParams(c)
	events, total, err := h.eventService.ListByDateRange(c.Context(), from, to, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}

	return response.Success(c, "Events retrieved successfully", pagination.NewResponse(events, params, total))
}

// Update updates an event
// @Summary Update event
// @Description Update an event (event head or current administrator)
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body services.UpdateEventInput true "Event data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Update(c.Context(), userID, uint(id), &input)
	if err != nil {
		return mapEventError(c, err, "Failed to update event")
	}

	return response.Success(c, "Event updated successfully", fiber.Map{"event": event})
}

// Cancel cancels an event
// @Summary Cancel event
// @Description Cancel an event (event head or current administrator)
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/cancel [put]
func (h *EventHandler) Cancel(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	event, err := h.eventService.Cancel(c.Context(), userID, uint(id))
	if err != nil {
		return mapEventError(c, err, "Failed to cancel event")
	}

	return response.Success(c, "Event cancelled successfully", fiber.Map{"event": event})
}

// Delete deletes an event
// @Summary Delete event
// @Description Delete an event (system admin, event head or current administrator)
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.eventService.Delete(c.Context(), userID, role, uint(id)); err != nil {
		return mapEventError(c, err, "Failed to delete event")
	}

	return response.Success(c, "Event deleted successfully", nil)
}
