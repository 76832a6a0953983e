package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"floorplan-backend/config"
	"floorplan-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRuleProfileNotFound = errors.New("rule profile not found")
	ErrRuleProfileExists   = errors.New("rule profile already exists")
	ErrDefaultProfile      = errors.New("the default rule profile cannot be deleted")
)

// RuleProfileService manages named rule-table overrides stored in the
// database. Resolving a profile overlays its tables onto the built-in
// defaults, so a profile only needs to state what differs.
type RuleProfileService struct {
	DB *gorm.DB
}

func NewRuleProfileService(db *gorm.DB) *RuleProfileService {
	return &RuleProfileService{DB: db}
}

func (s *RuleProfileService) List() ([]models.RuleProfile, error) {
	var profiles []models.RuleProfile
	if err := s.DB.Order("name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *RuleProfileService) GetByName(name string) (*models.RuleProfile, error) {
	var profile models.RuleProfile
	err := s.DB.Where("name = ?", name).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRuleProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RuleProfileService) Create(profile *models.RuleProfile) error {
	if err := s.DB.Create(profile).Error; err != nil {
		// 1062: duplicate entry on the unique name index.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrRuleProfileExists
		}
		return err
	}
	return nil
}

func (s *RuleProfileService) Delete(name string) error {
	if name == "default" {
		return ErrDefaultProfile
	}
	result := s.DB.Where("name = ?", name).Delete(&models.RuleProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRuleProfileNotFound
	}
	return nil
}

// Resolve loads the named profile and merges its tables over the built-in
// defaults. An empty name resolves straight to the environment-level config.
func (s *RuleProfileService) Resolve(name string) (models.RuleConfig, error) {
	base, err := config.LoadRuleConfig()
	if err != nil {
		return base, err
	}
	if name == "" || name == "default" {
		return base, nil
	}

	profile, err := s.GetByName(name)
	if err != nil {
		return base, err
	}

	var override models.RuleConfig
	if len(profile.Tables) > 0 {
		if err := json.Unmarshal(profile.Tables, &override); err != nil {
			return base, fmt.Errorf("decode rule profile %q: %w", name, err)
		}
	}

	return config.MergeRuleConfig(base, override), nil
}
