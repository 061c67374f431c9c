package services

import (
	"context"
	"errors"
	"log"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"gorm.io/gorm"
)

var validFamilyRoles = map[string]bool{
	models.FamilyRoleFather: true,
	models.FamilyRoleMother: true,
	models.FamilyRoleChild:  true,
}

// UserCCInfoService handles club membership info and family role assignments
type UserCCInfoService struct {
	userCCInfoRepo repositories.UserCCInfoRepository
	clubFamilyRepo repositories.ClubFamilyRepository
	userRepo       repositories.UserRepository
}

// NewUserCCInfoService creates a new user CC info service
func NewUserCCInfoService(
	userCCInfoRepo repositories.UserCCInfoRepository,
	clubFamilyRepo repositories.ClubFamilyRepository,
	userRepo repositories.UserRepository,
) *UserCCInfoService {
	return &UserCCInfoService{
		userCCInfoRepo: userCCInfoRepo,
		clubFamilyRepo: clubFamilyRepo,
		userRepo:       userRepo,
	}
}

// CreateUserCCInfoInput represents membership info input
type CreateUserCCInfoInput struct {
	UserID       uint   `json:"user_id" validate:"required"`
	ClubFamilyID uint   `json:"club_family_id"`
	FamilyRole   string `json:"family_role"`
	YearSession  string `json:"year_session" validate:"required"`
	IntakeSem    string `json:"intake_sem"`
	FishLevel    string `json:"fish_level"`
}

// UpdateUserCCInfoInput represents membership info update input
type UpdateUserCCInfoInput struct {
	ClubFamilyID *uint   `json:"club_family_id"`
	FamilyRole   *string `json:"family_role"`
	IntakeSem    *string `json:"intake_sem"`
	FishLevel    *string `json:"fish_level"`
}

// Create records membership info for a user in a year session
func (s *UserCCInfoService) Create(ctx context.Context, input *CreateUserCCInfoInput) (*models.UserCCInfo, error) {
	if !yearsession.IsValid(input.YearSession) {
		return nil, domain.ErrInvalidInput
	}
	if input.FamilyRole != "" && !validFamilyRoles[input.FamilyRole] {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.ClubFamilyID != 0 {
		if _, err := s.clubFamilyRepo.GetByID(ctx, input.ClubFamilyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
	}

	existing, err := s.userCCInfoRepo.ListByUserIDAndYearSession(ctx, input.UserID, input.YearSession)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrDuplicateEntry
	}

	info := &models.UserCCInfo{
		UserID:       input.UserID,
		ClubFamilyID: input.ClubFamilyID,
		FamilyRole:   input.FamilyRole,
		YearSession:  input.YearSession,
		IntakeSem:    input.IntakeSem,
		FishLevel:    input.FishLevel,
	}
	if err := s.userCCInfoRepo.Create(ctx, info); err != nil {
		return nil, err
	}

	log.Printf("✅ CC info created for user %d in %s", input.UserID, input.YearSession)
	return info, nil
}

// GetByID gets membership info by ID
func (s *UserCCInfoService) GetByID(ctx context.Context, id uint) (*models.UserCCInfo, error) {
	info, err := s.userCCInfoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

// ListByUserID lists all membership records of a user
func (s *UserCCInfoService) ListByUserID(ctx context.Context, userID uint) ([]*models.UserCCInfo, error) {
	return s.userCCInfoRepo.ListByUserID(ctx, userID)
}

// Update changes membership info fields
func (s *UserCCInfoService) Update(ctx context.Context, id uint, input *UpdateUserCCInfoInput) (*models.UserCCInfo, error) {
	info, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClubFamilyID != nil {
		if *input.ClubFamilyID != 0 {
			if _, err := s.clubFamilyRepo.GetByID(ctx, *input.ClubFamilyID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, domain.ErrNotFound
				}
				return nil, err
			}
		}
		info.ClubFamilyID = *input.ClubFamilyID
	}
	if input.FamilyRole != nil {
		if *input.FamilyRole != "" && !validFamilyRoles[*input.FamilyRole] {
			return nil, domain.ErrInvalidInput
		}
		info.FamilyRole = *input.FamilyRole
	}
	if input.IntakeSem != nil {
		info.IntakeSem = *input.IntakeSem
	}
	if input.FishLevel != nil {
		info.FishLevel = *input.FishLevel
	}

	if err := s.userCCInfoRepo.Update(ctx, info); err != nil {
		return nil, err
	}

	log.Printf("✅ CC info %d updated", id)
	return info, nil
}

// Delete removes a membership record
func (s *UserCCInfoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.userCCInfoRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ CC info %d deleted", id)
	return nil
}
