package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"floorplan-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisStore persists analysis runs. The controller layer depends on this
// interface so tests can swap in an in-memory store.
type AnalysisStore interface {
	Save(analysis *models.Analysis) error
	List(limit int) ([]models.Analysis, error)
	Get(analysisID string) (*models.Analysis, error)
	Delete(analysisID string) error
}

// GormAnalysisStore is the MySQL-backed store used in production.
type GormAnalysisStore struct {
	DB *gorm.DB
}

func NewGormAnalysisStore(db *gorm.DB) *GormAnalysisStore {
	return &GormAnalysisStore{DB: db}
}

func (s *GormAnalysisStore) Save(analysis *models.Analysis) error {
	return s.DB.Create(analysis).Error
}

func (s *GormAnalysisStore) List(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	q := s.DB.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func (s *GormAnalysisStore) Get(analysisID string) (*models.Analysis, error) {
	var analysis models.Analysis
	err := s.DB.Where("analysis_id = ?", analysisID).First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *GormAnalysisStore) Delete(analysisID string) error {
	result := s.DB.Where("analysis_id = ?", analysisID).Delete(&models.Analysis{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

// AnalysisService records completed analysis runs and serves the history API.
type AnalysisService struct {
	store AnalysisStore
}

func NewAnalysisService(store AnalysisStore) *AnalysisService {
	return &AnalysisService{store: store}
}

// Record persists one analysis run and returns its generated id. The report
// itself stays free of identifiers; they live only on the stored row.
func (s *AnalysisService) Record(fp *models.FloorPlan, report *models.ComplianceReport, profile string) (*models.Analysis, error) {
	planJSON, err := json.Marshal(fp)
	if err != nil {
		return nil, fmt.Errorf("marshal floor plan: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	analysis := &models.Analysis{
		AnalysisID:   uuid.NewString(),
		BuildingType: string(fp.BuildingInfo.BuildingType),
		RoomCount:    len(fp.Rooms),
		OverallScore: report.OverallScore,
		RuleProfile:  profile,
		FloorPlan:    planJSON,
		Report:       reportJSON,
	}

	if err := s.store.Save(analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (s *AnalysisService) List(limit int) ([]models.Analysis, error) {
	return s.store.List(limit)
}

func (s *AnalysisService) Get(analysisID string) (*models.Analysis, error) {
	return s.store.Get(analysisID)
}

func (s *AnalysisService) Delete(analysisID string) error {
	return s.store.Delete(analysisID)
}
