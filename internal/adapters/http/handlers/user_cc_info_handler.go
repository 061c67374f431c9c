package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserCCInfoHandler handles club membership info endpoints
type UserCCInfoHandler struct {
	userCCInfoService *services.UserCCInfoService
}

// NewUserCCInfoHandler creates a new user CC info handler
func NewUserCCInfoHandler(userCCInfoService *services.UserCCInfoService) *UserCCInfoHandler {
	return &UserCCInfoHandler{userCCInfoService: userCCInfoService}
}

// Create records membership info
// @Summary Create CC info
// @Description Record a user's club membership info for a year session (system admin only)
// @Tags CC Info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserCCInfoInput true "Membership data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /cc-infos [post]
func (h *UserCCInfoHandler) Create(c *fiber.Ctx) error {
	var input services.CreateUserCCInfoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 || input.YearSession == "" {
		return response.BadRequest(c, "User ID and year session are required")
	}

	info, err := h.userCCInfoService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Club family not found")
		case errors.Is(err, domain.ErrDuplicateEntry):
			return response.Conflict(c, "User already has CC info for this year session")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid family role or year session")
		default:
			return response.InternalServerError(c, "Failed to create CC info")
		}
	}

	return response.Created(c, "CC info created successfully", fiber.Map{"cc_info": info})
}

// Get gets membership info by ID
// @Summary Get CC info
// @Description Get membership info by ID
// @Tags CC Info
// @Produce json
// @Security BearerAuth
// @Param id path int true "CC info ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cc-infos/{id} [get]
func (h *UserCCInfoHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	info, err := h.userCCInfoService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "CC info not found")
		}
		return response.InternalServerError(c, "Failed to get CC info")
	}

	return response.Success(c, "CC info retrieved successfully", fiber.Map{"cc_info": info})
}

// ListByUser lists a user's membership info across sessions
// @Summary List CC info of a user
// @Description List membership info records of one user
// @Tags CC Info
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Response
// @Router /cc-infos/user/{userId} [get]
func (h *UserCCInfoHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	infos, err := h.userCCInfoService.ListByUserID(c.Context(), uint(userID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list CC info")
	}

	return response.Success(c, "CC info retrieved successfully", fiber.Map{"cc_infos": infos})
}

// Update edits membership info
// @Summary Update CC info
// @Description Edit a membership info record (system admin only)
// @Tags CC Info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "CC info ID"
// @Param body body services.UpdateUserCCInfoInput true "Membership data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cc-infos/{id} [put]
func (h *UserCCInfoHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateUserCCInfoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	info, err := h.userCCInfoService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "CC info not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid family role")
		default:
			return response.InternalServerError(c, "Failed to update CC info")
		}
	}

	return response.Success(c, "CC info updated successfully", fiber.Map{"cc_info": info})
}

// Delete removes membership info
// @Summary Delete CC info
// @Description Remove a membership info record (system admin only)
// @Tags CC Info
// @Produce json
// @Security BearerAuth
// @Param id path int true "CC info ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cc-infos/{id} [delete]
func (h *UserCCInfoHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.userCCInfoService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "CC info not found")
		}
		return response.InternalServerError(c, "Failed to delete CC info")
	}

	return response.Success(c, "CC info deleted successfully", nil)
}
