package config

import (
	"os"
	"path/filepath"
	"testing"

	"floorplan-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleConfigCoversEveryDirection(t *testing.T) {
	cfg := DefaultRuleConfig()

	directions := []models.Direction{
		models.North, models.South, models.East, models.West,
		models.NorthEast, models.NorthWest, models.SouthEast, models.SouthWest,
	}
	for _, d := range directions {
		_, ok := cfg.SunlightExposureByDirection[d]
		assert.True(t, ok, "missing exposure for %s", d)
	}
}

func TestDefaultRuleConfigValues(t *testing.T) {
	cfg := DefaultRuleConfig()

	assert.Equal(t, 70.0, cfg.MinAreaByType[models.RoomBedroom])
	assert.Equal(t, 120.0, cfg.MinAreaByType[models.RoomLivingRoom])

	// Types without a configured minimum degrade to info findings, so their
	// absence here is deliberate.
	_, ok := cfg.MinAreaByType[models.RoomOther]
	assert.False(t, ok)

	prefs := cfg.VastuPreferences[models.RoomBedroom]
	assert.Contains(t, prefs.Preferred, models.SouthWest)
	assert.Contains(t, prefs.Inauspicious, models.West)

	assert.Equal(t, models.ExposureHigh, cfg.SunlightExposureByDirection[models.South])
	assert.Equal(t, models.ExposureLow, cfg.SunlightExposureByDirection[models.North])
	assert.Equal(t, models.ExposureMedium, cfg.SunlightDesiredByType[models.RoomBedroom])
}

func TestLoadRuleConfigWithoutOverride(t *testing.T) {
	t.Setenv("RULES_CONFIG_PATH", "")

	cfg, err := LoadRuleConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultRuleConfig().MinAreaByType, cfg.MinAreaByType)
}

func TestLoadRuleConfigAppliesOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	override := `{
		"minAreaByType": {"bedroom": 100},
		"sunlightExposureByDirection": {"north": "high"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))
	t.Setenv("RULES_CONFIG_PATH", path)

	cfg, err := LoadRuleConfig()
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.MinAreaByType[models.RoomBedroom])
	// Entries the override doesn't mention keep their defaults.
	assert.Equal(t, 50.0, cfg.MinAreaByType[models.RoomKitchen])
	assert.Equal(t, models.ExposureHigh, cfg.SunlightExposureByDirection[models.North])
	assert.Equal(t, models.ExposureHigh, cfg.SunlightExposureByDirection[models.South])
}

func TestLoadRuleConfigRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	t.Setenv("RULES_CONFIG_PATH", path)

	_, err := LoadRuleConfig()
	require.Error(t, err)
}

func TestLoadRuleConfigMissingFile(t *testing.T) {
	t.Setenv("RULES_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.json"))

	_, err := LoadRuleConfig()
	require.Error(t, err)
}

func TestMergeRuleConfig(t *testing.T) {
	base := DefaultRuleConfig()
	override := models.RuleConfig{
		MinAreaByType: map[models.RoomType]float64{models.RoomOther: 30},
		VastuPreferences: map[models.RoomType]models.DirectionPrefs{
			models.RoomBedroom: {Preferred: []models.Direction{models.North}},
		},
	}

	merged := MergeRuleConfig(base, override)

	assert.Equal(t, 30.0, merged.MinAreaByType[models.RoomOther])
	assert.Equal(t, 70.0, merged.MinAreaByType[models.RoomBedroom])
	// A room type's prefs are replaced wholesale, not merged field by field.
	assert.Equal(t, []models.Direction{models.North}, merged.VastuPreferences[models.RoomBedroom].Preferred)
	assert.Empty(t, merged.VastuPreferences[models.RoomBedroom].Inauspicious)
	assert.Equal(t, base.SunlightDesiredByType, merged.SunlightDesiredByType)
}
