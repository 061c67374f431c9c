package config

import (
	"log"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"gorm.io/gorm"
)

// SeedMasterData seeds initial master data
func SeedMasterData(db *gorm.DB) error {
	// Seed Faculties
	if err := seedFaculties(db); err != nil {
		return err
	}

	// Seed Year Sessions
	if err := seedYearSessions(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedFaculties(db *gorm.DB) error {
	faculties := []models.Faculty{
		{Name: "Faculty of Information and Communication Technology", ShortName: "FICT"},
		{Name: "Faculty of Engineering and Green Technology", ShortName: "FEGT"},
		{Name: "Faculty of Business and Finance", ShortName: "FBF"},
		{Name: "Faculty of Arts and Social Science", ShortName: "FAS"},
		{Name: "Faculty of Science", ShortName: "FSC"},
		{Name: "Institute of Chinese Studies", ShortName: "ICS"},
	}

	for _, f := range faculties {
		var existing models.Faculty
		if err := db.Where("name = ?", f.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&f).Error; err != nil {
					return err
				}
				log.Printf("   Created faculty: %s", f.Name)
			}
		}
	}
	return nil
}

func seedYearSessions(db *gorm.DB) error {
	// Current session plus the next one, so the incoming committee can be
	// assigned before the academic year rolls over.
	sessions := []string{
		yearsession.Current(),
		yearsession.NextFromNow(),
	}

	for _, value := range sessions {
		var existing models.YearSession
		if err := db.Where("value = ?", value).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				ys := models.YearSession{Value: value}
				if err := db.Create(&ys).Error; err != nil {
					return err
				}
				log.Printf("   Created year_session: %s", value)
			}
		}
	}
	return nil
}
