package config

import (
	"encoding/json"
	"fmt"
	"os"

	"floorplan-backend/models"
)

// DefaultRuleConfig returns the built-in rule tables.
//
// Minimum areas are generic residential-code values in square units; override
// them per jurisdiction via RULES_CONFIG_PATH or a stored rule profile.
//
// The sunlight exposure table assumes the NORTHERN-hemisphere solar path:
// south-facing rooms get the strongest sun, east strong morning light, west
// strong (and harsh) afternoon light, north the least. Southern-hemisphere
// deployments should override sunlightExposureByDirection.
func DefaultRuleConfig() models.RuleConfig {
	return models.RuleConfig{
		MinAreaByType: map[models.RoomType]float64{
			models.RoomBedroom:    70,
			models.RoomBathroom:   25,
			models.RoomKitchen:    50,
			models.RoomLivingRoom: 120,
			models.RoomStudy:      60,
		},
		VastuPreferences: map[models.RoomType]models.DirectionPrefs{
			models.RoomBedroom: {
				Preferred:    []models.Direction{models.SouthWest, models.South},
				Inauspicious: []models.Direction{models.NorthEast, models.West},
			},
			models.RoomLivingRoom: {
				Preferred: []models.Direction{models.North, models.NorthEast, models.East},
			},
			models.RoomKitchen: {
				Preferred:    []models.Direction{models.SouthEast, models.South},
				Inauspicious: []models.Direction{models.North, models.NorthEast, models.NorthWest},
			},
			models.RoomBathroom: {
				Preferred:    []models.Direction{models.South, models.West, models.SouthWest},
				Inauspicious: []models.Direction{models.NorthEast, models.North},
			},
			models.RoomStudy: {
				Preferred: []models.Direction{models.NorthEast, models.North, models.East},
			},
			models.RoomPoojaRoom: {
				Preferred:    []models.Direction{models.NorthEast, models.North, models.East},
				Inauspicious: []models.Direction{models.South, models.SouthWest, models.West},
			},
			models.RoomEntrance: {
				Preferred:    []models.Direction{models.NorthEast, models.North, models.East},
				Inauspicious: []models.Direction{models.SouthWest, models.NorthWest},
			},
		},
		SunlightExposureByDirection: map[models.Direction]models.Exposure{
			models.South:     models.ExposureHigh,
			models.SouthEast: models.ExposureHigh,
			models.SouthWest: models.ExposureHigh,
			models.East:      models.ExposureHigh,
			models.West:      models.ExposureHigh,
			models.NorthEast: models.ExposureMedium,
			models.NorthWest: models.ExposureMedium,
			models.North:     models.ExposureLow,
		},
		SunlightDesiredByType: map[models.RoomType]models.Exposure{
			models.RoomBedroom:    models.ExposureMedium,
			models.RoomStudy:      models.ExposureMedium,
			models.RoomKitchen:    models.ExposureHigh,
			models.RoomLivingRoom: models.ExposureHigh,
			models.RoomEntrance:   models.ExposureHigh,
			models.RoomBathroom:   models.ExposureLow,
			models.RoomPoojaRoom:  models.ExposureMedium,
		},
	}
}

// LoadRuleConfig returns the default tables, overridden entry-by-entry from
// the JSON file named by RULES_CONFIG_PATH when that variable is set.
func LoadRuleConfig() (models.RuleConfig, error) {
	cfg := DefaultRuleConfig()

	path := os.Getenv("RULES_CONFIG_PATH")
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read rules config %s: %w", path, err)
	}

	var override models.RuleConfig
	if err := json.Unmarshal(data, &override); err != nil {
		return cfg, fmt.Errorf("parse rules config %s: %w", path, err)
	}

	return MergeRuleConfig(cfg, override), nil
}

// MergeRuleConfig overlays override onto base per table entry. Entries the
// override doesn't mention keep their base values; to remove a rule for a
// room type entirely, store a profile built from scratch instead.
func MergeRuleConfig(base, override models.RuleConfig) models.RuleConfig {
	out := models.RuleConfig{
		MinAreaByType:               make(map[models.RoomType]float64, len(base.MinAreaByType)),
		VastuPreferences:            make(map[models.RoomType]models.DirectionPrefs, len(base.VastuPreferences)),
		SunlightExposureByDirection: make(map[models.Direction]models.Exposure, len(base.SunlightExposureByDirection)),
		SunlightDesiredByType:       make(map[models.RoomType]models.Exposure, len(base.SunlightDesiredByType)),
	}

	for k, v := range base.MinAreaByType {
		out.MinAreaByType[k] = v
	}
	for k, v := range override.MinAreaByType {
		out.MinAreaByType[k] = v
	}

	for k, v := range base.VastuPreferences {
		out.VastuPreferences[k] = v
	}
	for k, v := range override.VastuPreferences {
		out.VastuPreferences[k] = v
	}

	for k, v := range base.SunlightExposureByDirection {
		out.SunlightExposureByDirection[k] = v
	}
	for k, v := range override.SunlightExposureByDirection {
		out.SunlightExposureByDirection[k] = v
	}

	for k, v := range base.SunlightDesiredByType {
		out.SunlightDesiredByType[k] = v
	}
	for k, v := range override.SunlightDesiredByType {
		out.SunlightDesiredByType[k] = v
	}

	return out
}
