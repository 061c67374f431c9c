package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/pagination"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventAttendeeHandler handles event registration endpoints
type EventAttendeeHandler struct {
	attendeeService *services.EventAttendeeService
}

// NewEventAttendeeHandler creates a new event attendee handler
func NewEventAttendeeHandler(attendeeService *services.EventAttendeeService) *EventAttendeeHandler {
	return &EventAttendeeHandler{attendeeService: attendeeService}
}

// Register registers the authenticated user for an event
// @Summary Register for event
// @Description Register the current user as an event attendee
// @Tags EventAttendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RegisterAttendeeInput true "Registration data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /event-attendees [post]
func (h *EventAttendeeHandler) Register(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.RegisterAttendeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	attendee, err := h.attendeeService.Register(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrEventCancelled):
			return response.Conflict(c, "Event is cancelled")
		case errors.Is(err, domain.ErrEventEnded):
			return response.Conflict(c, "Event has already ended")
		case errors.Is(err, domain.ErrDuplicateEntry):
			return response.Conflict(c, "Already registered for this event")
		default:
			return response.InternalServerError(c, "Failed to register for event")
		}
	}

	return response.Created(c, "Registered for event successfully", fiber.Map{"event_attendee": attendee})
}

// ListByEvent lists attendees of an event
// @Summary List event attendees
// @Description List attendees of an event with pagination
// @Tags EventAttendees
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /event-attendees/event/{eventId} [get]
func (h *EventAttendeeHandler) ListByEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	params := pagination.GetParams(c)
	attendees, total, err := h.attendeeService.ListByEventID(c.Context(), userID, uint(eventID), params.Offset, params.Limit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only event crew and administrators can view attendees")
		default:
			return response.InternalServerError(c, "Failed to list attendees")
		}
	}

	return response.Success(c, "Attendees retrieved successfully", pagination.NewResponse(attendees, params, total))
}

// ListMine lists the authenticated user's registrations
// @Summary My registrations
// @Description List events the current user has registered for
// @Tags EventAttendees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /event-attendees/mine [get]
func (h *EventAttendeeHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	attendees, err := h.attendeeService.ListByUserID(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list registrations")
	}

	return response.Success(c, "Registrations retrieved successfully", fiber.Map{"event_attendees": attendees})
}
