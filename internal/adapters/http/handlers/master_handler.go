package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MasterHandler handles master data endpoints
type MasterHandler struct {
	facultyRepo     repositories.FacultyRepository
	yearSessionRepo repositories.YearSessionRepository
	clubFamilyRepo  repositories.ClubFamilyRepository
}

// NewMasterHandler creates a new master handler
func NewMasterHandler(
	facultyRepo repositories.FacultyRepository,
	yearSessionRepo repositories.YearSessionRepository,
	clubFamilyRepo repositories.ClubFamilyRepository,
) *MasterHandler {
	return &MasterHandler{
		facultyRepo:     facultyRepo,
		yearSessionRepo: yearSessionRepo,
		clubFamilyRepo:  clubFamilyRepo,
	}
}

// ============================================================
// Faculty
// ============================================================

// FacultyRequest represents faculty create/update input
type FacultyRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// ListFaculties lists all faculties
// @Summary List faculties
// @Description Get all faculties
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /master/faculties [get]
func (h *MasterHandler) ListFaculties(c *fiber.Ctx) error {
	faculties, err := h.facultyRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list faculties")
	}

	return response.Success(c, "Faculties retrieved successfully", fiber.Map{"faculties": faculties})
}

// GetFaculty gets a faculty by ID
// @Summary Get faculty
// @Description Get a faculty by ID
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/faculties/{id} [get]
func (h *MasterHandler) GetFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	faculty, err := h.facultyRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Faculty not found")
		}
		return response.InternalServerError(c, "Failed to get faculty")
	}

	return response.Success(c, "Faculty retrieved successfully", fiber.Map{"faculty": faculty})
}

// CreateFaculty creates a faculty
// @Summary Create faculty
// @Description Create a faculty (system admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FacultyRequest true "Faculty data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /master/faculties [post]
func (h *MasterHandler) CreateFaculty(c *fiber.Ctx) error {
	var req FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Faculty name is required")
	}

	exists, err := h.facultyRepo.ExistsByName(c.Context(), req.Name)
	if err != nil {
		return response.InternalServerError(c, "Failed to create faculty")
	}
	if exists {
		return response.Conflict(c, "Faculty already exists")
	}

	faculty := &models.Faculty{Name: req.Name, ShortName: req.ShortName}
	if err := h.facultyRepo.Create(c.Context(), faculty); err != nil {
		return response.InternalServerError(c, "Failed to create faculty")
	}

	return response.Created(c, "Faculty created successfully", fiber.Map{"faculty": faculty})
}

// UpdateFaculty updates a faculty
// @Summary Update faculty
// @Description Update a faculty (system admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param body body FacultyRequest true "Faculty data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/faculties/{id} [put]
func (h *MasterHandler) UpdateFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	faculty, err := h.facultyRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Faculty not found")
		}
		return response.InternalServerError(c, "Failed to update faculty")
	}

	if req.Name != "" {
		faculty.Name = req.Name
	}
	if req.ShortName != "" {
		faculty.ShortName = req.ShortName
	}

	if err := h.facultyRepo.Update(c.Context(), faculty); err != nil {
		return response.InternalServerError(c, "Failed to update faculty")
	}

	return response.Success(c, "Faculty updated successfully", fiber.Map{"faculty": faculty})
}

// DeleteFaculty deletes a faculty
// @Summary Delete faculty
// @Description Delete a faculty (system admin only)
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/faculties/{id} [delete]
func (h *MasterHandler) DeleteFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := h.facultyRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Faculty not found")
		}
		return response.InternalServerError(c, "Failed to delete faculty")
	}

	if err := h.facultyRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete faculty")
	}

	return response.Success(c, "Faculty deleted successfully", nil)
}

// ============================================================
// Year Session
// ============================================================

// YearSessionRequest represents year session create input
type YearSessionRequest struct {
	Value string `json:"value"`
}

// ListYearSessions lists all selectable year sessions
// @Summary List year sessions
// @Description Get all selectable year sessions
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /master/year-sessions [get]
func (h *MasterHandler) ListYearSessions(c *fiber.Ctx) error {
	sessions, err := h.yearSessionRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list year sessions")
	}

	return response.Success(c, "Year sessions retrieved successfully", fiber.Map{"year_sessions": sessions})
}

// GetCurrentYearSession gets the default year session: the latest seeded row,
// or the session covering today when the table is empty
// @Summary Get current year session
// @Description Get the default (latest) year session
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /master/year-sessions/current [get]
func (h *MasterHandler) GetCurrentYearSession(c *fiber.Ctx) error {
	latest, err := h.yearSessionRepo.GetLatest(c.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Success(c, "Current year session retrieved successfully", fiber.Map{
				"year_session": yearsession.Current(),
			})
		}
		return response.InternalServerError(c, "Failed to get current year session")
	}

	return response.Success(c, "Current year session retrieved successfully", fiber.Map{
		"year_session": latest.Value,
	})
}

// CreateYearSession creates a selectable year session
// @Summary Create year session
// @Description Create a selectable year session (system admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body YearSessionRequest true "Year session data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /master/year-sessions [post]
func (h *MasterHandler) CreateYearSession(c *fiber.Ctx) error {
	var req YearSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if !yearsession.IsValid(req.Value) {
		return response.BadRequest(c, "Year session must be in YYYY/YYYY format")
	}

	if _, err := h.yearSessionRepo.GetByValue(c.Context(), req.Value); err == nil {
		return response.Conflict(c, "Year session already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to create year session")
	}

	session := &models.YearSession{Value: req.Value}
	if err := h.yearSessionRepo.Create(c.Context(), session); err != nil {
		return response.InternalServerError(c, "Failed to create year session")
	}

	return response.Created(c, "Year session created successfully", fiber.Map{"year_session": session})
}

// ============================================================
// Club Family
// ============================================================

// ClubFamilyRequest represents club family create/update input
type ClubFamilyRequest struct {
	Name   string `json:"name"`
	Slogan string `json:"slogan"`
}

// ListClubFamilies lists all club families
// @Summary List club families
// @Description Get all club families
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /master/club-families [get]
func (h *MasterHandler) ListClubFamilies(c *fiber.Ctx) error {
	families, err := h.clubFamilyRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list club families")
	}

	return response.Success(c, "Club families retrieved successfully", fiber.Map{"club_families": families})
}

// GetClubFamily gets a club family by ID
// @Summary Get club family
// @Description Get a club family by ID
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club family ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/club-families/{id} [get]
func (h *MasterHandler) GetClubFamily(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	family, err := h.clubFamilyRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Club family not found")
		}
		return response.InternalServerError(c, "Failed to get club family")
	}

	return response.Success(c, "Club family retrieved successfully", fiber.Map{"club_family": family})
}

// CreateClubFamily creates a club family
// @Summary Create club family
// @Description Create a club family (system admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ClubFamilyRequest true "Club family data"
// @Success 201 {object} response.Response
// @Router /master/club-families [post]
func (h *MasterHandler) CreateClubFamily(c *fiber.Ctx) error {
	var req ClubFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Club family name is required")
	}

	family := &models.ClubFamily{Name: req.Name, Slogan: req.Slogan}
	if err := h.clubFamilyRepo.Create(c.Context(), family); err != nil {
		return response.InternalServerError(c, "Failed to create club family")
	}

	return response.Created(c, "Club family created successfully", fiber.Map{"club_family": family})
}

// UpdateClubFamily updates a club family
// @Summary Update club family
// @Description Update a club family (system admin only)
// @Tags Master
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club family ID"
// @Param body body ClubFamilyRequest true "Club family data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/club-families/{id} [put]
func (h *MasterHandler) UpdateClubFamily(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ClubFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	family, err := h.clubFamilyRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Club family not found")
		}
		return response.InternalServerError(c, "Failed to update club family")
	}

	if req.Name != "" {
		family.Name = req.Name
	}
	if req.Slogan != "" {
		family.Slogan = req.Slogan
	}

	if err := h.clubFamilyRepo.Update(c.Context(), family); err != nil {
		return response.InternalServerError(c, "Failed to update club family")
	}

	return response.Success(c, "Club family updated successfully", fiber.Map{"club_family": family})
}

// DeleteClubFamily deletes a club family
// @Summary Delete club family
// @Description Delete a club family (system admin only)
// @Tags Master
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club family ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /master/club-families/{id} [delete]
func (h *MasterHandler) DeleteClubFamily(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := h.clubFamilyRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Club family not found")
		}
		return response.InternalServerError(c, "Failed to delete club family")
	}

	if err := h.clubFamilyRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete club family")
	}

	return response.Success(c, "Club family deleted successfully", nil)
}
