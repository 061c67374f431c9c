package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventCrewHandler handles event crew endpoints
type EventCrewHandler struct {
	crewService *services.EventCrewService
}

// NewEventCrewHandler creates a new event crew handler
func NewEventCrewHandler(crewService *services.EventCrewService) *EventCrewHandler {
	return &EventCrewHandler{crewService: crewService}
}

// Create assigns a user to an event crew
// @Summary Assign crew
// @Description Assign a user to an event crew (event head or current administrator)
// @Tags EventCrews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEventCrewInput true "Crew data"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /event-crews [post]
func (h *EventCrewHandler) Create(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateEventCrewInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	crew, err := h.crewService.Create(c.Context(), actorID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to manage this event")
		case errors.Is(err, domain.ErrDuplicateEntry):
			return response.Conflict(c, "User is already crew of this event")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid crew role")
		default:
			return response.InternalServerError(c, "Failed to assign crew")
		}
	}

	return response.Created(c, "Crew assigned successfully", fiber.Map{"event_crew": crew})
}

// ListByEvent lists crew of an event
// @Summary List event crew
// @Description List crew assignments of an event with user details
// @Tags EventCrews
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} response.Response
// @Router /event-crews/event/{eventId} [get]
func (h *EventCrewHandler) ListByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	crews, err := h.crewService.ListByEventID(c.Context(), uint(eventID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list crew")
	}

	return response.Success(c, "Crew retrieved successfully", fiber.Map{"event_crews": crews})
}

// Delete removes a crew assignment
// @Summary Remove crew
// @Description Remove a crew assignment (event head or current administrator)
// @Tags EventCrews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /event-crews/{id} [delete]
func (h *EventCrewHandler) Delete(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.crewService.Delete(c.Context(), actorID, uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Crew assignment not found")
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to manage this event")
		default:
			return response.InternalServerError(c, "Failed to remove crew")
		}
	}

	return response.Success(c, "Crew removed successfully", nil)
}
