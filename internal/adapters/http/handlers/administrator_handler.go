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

// AdministratorHandler handles committee appointment endpoints
type AdministratorHandler struct {
	administratorService *services.AdministratorService
}

// NewAdministratorHandler creates a new administrator handler
func NewAdministratorHandler(administratorService *services.AdministratorService) *AdministratorHandler {
	return &AdministratorHandler{administratorService: administratorService}
}

// actor pulls the authenticated user and system role out of the request
func actor(c *fiber.Ctx) (uint, string, bool) {
	userID, ok := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	return userID, role, ok
}

// Create appoints a user to the committee
// @Summary Create administrator
// @Description Appoint a user to a committee role for a year session (system admin or current CC head)
// @Tags Administrators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAdministratorInput true "Appointment data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /administrators [post]
func (h *AdministratorHandler) Create(c *fiber.Ctx) error {
	actorID, systemRole, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateAdministratorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 || input.Role == "" || input.YearSession == "" {
		return response.BadRequest(c, "User ID, role and year session are required")
	}

	administrator, err := h.administratorService.Create(c.Context(), actorID, systemRole, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only the system admin or the current CC head can manage appointments")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrDuplicateEntry):
			return response.Conflict(c, "User already holds this role in this year session")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid role or year session")
		default:
			return response.InternalServerError(c, "Failed to create administrator")
		}
	}

	return response.Created(c, "Administrator created successfully", fiber.Map{"administrator": administrator})
}

// List lists committee appointments
// @Summary List administrators
// @Description List committee appointments with pagination
// @Tags Administrators
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /administrators [get]
func (h *AdministratorHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	administrators, total, err := h.administratorService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list administrators")
	}

	return response.Success(c, "Administrators retrieved successfully", pagination.NewResponse(administrators, params, total))
}

// Get gets an appointment by ID
// @Summary Get administrator
// @Description Get a committee appointment by ID
// @Tags Administrators
// @Produce json
// @Security BearerAuth
// @Param id path int true "Administrator ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /administrators/{id} [get]
func (h *AdministratorHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	administrator, err := h.administratorService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Administrator not found")
		}
		return response.InternalServerError(c, "Failed to get administrator")
	}

	return response.Success(c, "Administrator retrieved successfully", fiber.Map{"administrator": administrator})
}

// ListByUser lists a user's appointments
// @Summary List administrators of a user
// @Description List committee appointments held by one user
// @Tags Administrators
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Response
// @Router /administrators/user/{userId} [get]
func (h *AdministratorHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	administrators, err := h.administratorService.ListByUserID(c.Context(), uint(userID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list administrators")
	}

	return response.Success(c, "Administrators retrieved successfully", fiber.Map{"administrators": administrators})
}

// Update edits an appointment
// @Summary Update administrator
// @Description Change the role or status of a committee appointment (system admin or current CC head)
// @Tags Administrators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Administrator ID"
// @Param body body services.UpdateAdministratorInput true "Appointment data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /administrators/{id} [put]
func (h *AdministratorHandler) Update(c *fiber.Ctx) error {
	actorID, systemRole, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateAdministratorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	administrator, err := h.administratorService.Update(c.Context(), actorID, systemRole, uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only the system admin or the current CC head can manage appointments")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Administrator not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid role or status")
		default:
			return response.InternalServerError(c, "Failed to update administrator")
		}
	}

	return response.Success(c, "Administrator updated successfully", fiber.Map{"administrator": administrator})
}

// Deactivate retires an appointment
// @Summary Deactivate administrator
// @Description Mark a committee appointment as no longer active (system admin or current CC head)
// @Tags Administrators
// @Produce json
// @Security BearerAuth
// @Param id path int true "Administrator ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /administrators/{id}/deactivate [put]
func (h *AdministratorHandler) Deactivate(c *fiber.Ctx) error {
	actorID, systemRole, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	administrator, err := h.administratorService.Deactivate(c.Context(), actorID, systemRole, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only the system admin or the current CC head can manage appointments")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Administrator not found")
		default:
			return response.InternalServerError(c, "Failed to deactivate administrator")
		}
	}

	return response.Success(c, "Administrator deactivated successfully", fiber.Map{"administrator": administrator})
}

// Delete removes an appointment
// @Summary Delete administrator
// @Description Remove a committee appointment (system admin or current CC head)
// @Tags Administrators
// @Produce json
// @Security BearerAuth
// @Param id path int true "Administrator ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /administrators/{id} [delete]
func (h *AdministratorHandler) Delete(c *fiber.Ctx) error {
	actorID, systemRole, ok := actor(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.administratorService.Delete(c.Context(), actorID, systemRole, uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only the system admin or the current CC head can manage appointments")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Administrator not found")
		default:
			return response.InternalServerError(c, "Failed to delete administrator")
		}
	}

	return response.Success(c, "Administrator deleted successfully", nil)
}
