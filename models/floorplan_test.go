package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() *FloorPlan {
	return &FloorPlan{
		Rooms: []Room{
			{ID: "r1", Type: RoomBedroom, Area: 100, Direction: SouthWest, Windows: 1, Doors: 1},
			{ID: "r2", Type: RoomKitchen, Area: 60, Direction: SouthEast, Windows: 1, Doors: 1},
		},
		BuildingInfo: BuildingInfo{TotalArea: 500, Floors: 1, BuildingType: BuildingResidential},
	}
}

func TestValidateAcceptsValidPlan(t *testing.T) {
	require.NoError(t, validPlan().Validate())
}

func TestValidateAcceptsZeroRooms(t *testing.T) {
	fp := &FloorPlan{
		BuildingInfo: BuildingInfo{TotalArea: 500, Floors: 1, BuildingType: BuildingResidential},
	}
	require.NoError(t, fp.Validate())
}

func TestValidateRejectsBadBuildingInfo(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FloorPlan)
		field  string
	}{
		{"zero total area", func(fp *FloorPlan) { fp.BuildingInfo.TotalArea = 0 }, "building_info.total_area"},
		{"negative total area", func(fp *FloorPlan) { fp.BuildingInfo.TotalArea = -10 }, "building_info.total_area"},
		{"zero floors", func(fp *FloorPlan) { fp.BuildingInfo.Floors = 0 }, "building_info.floors"},
		{"bad building type", func(fp *FloorPlan) { fp.BuildingInfo.BuildingType = "castle" }, "building_info.building_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fp := validPlan()
			tc.mutate(fp)

			err := fp.Validate()
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateRejectsBadRooms(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FloorPlan)
		field  string
	}{
		{"empty id", func(fp *FloorPlan) { fp.Rooms[0].ID = "" }, "rooms[0].id"},
		{"duplicate id", func(fp *FloorPlan) { fp.Rooms[1].ID = "r1" }, "rooms[1].id"},
		{"bad type", func(fp *FloorPlan) { fp.Rooms[0].Type = "dungeon" }, "rooms[0].type"},
		{"bad direction", func(fp *FloorPlan) { fp.Rooms[1].Direction = "up" }, "rooms[1].direction"},
		{"zero area", func(fp *FloorPlan) { fp.Rooms[0].Area = 0 }, "rooms[0].area"},
		{"negative windows", func(fp *FloorPlan) { fp.Rooms[0].Windows = -1 }, "rooms[0].windows"},
		{"negative doors", func(fp *FloorPlan) { fp.Rooms[0].Doors = -1 }, "rooms[0].doors"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fp := validPlan()
			tc.mutate(fp)

			err := fp.Validate()
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	t.Run("area matching bounds is accepted", func(t *testing.T) {
		fp := validPlan()
		fp.Rooms[0].Coordinates = &Coordinates{X: 0, Y: 0, Width: 10, Height: 10}
		require.NoError(t, fp.Validate())
	})

	t.Run("small mismatch within tolerance is accepted", func(t *testing.T) {
		fp := validPlan()
		fp.Rooms[0].Area = 95
		fp.Rooms[0].Coordinates = &Coordinates{X: 0, Y: 0, Width: 10, Height: 10}
		require.NoError(t, fp.Validate())
	})

	t.Run("large mismatch is rejected", func(t *testing.T) {
		fp := validPlan()
		fp.Rooms[0].Area = 50
		fp.Rooms[0].Coordinates = &Coordinates{X: 0, Y: 0, Width: 10, Height: 10}

		err := fp.Validate()
		require.Error(t, err)

		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "rooms[0].area", verr.Field)
	})

	t.Run("negative origin is rejected", func(t *testing.T) {
		fp := validPlan()
		fp.Rooms[0].Coordinates = &Coordinates{X: -1, Y: 0, Width: 10, Height: 10}
		require.Error(t, fp.Validate())
	})

	t.Run("zero width is rejected", func(t *testing.T) {
		fp := validPlan()
		fp.Rooms[0].Coordinates = &Coordinates{X: 0, Y: 0, Width: 0, Height: 10}
		require.Error(t, fp.Validate())
	})
}

func TestRoomAreaSum(t *testing.T) {
	fp := validPlan()
	assert.InDelta(t, 160, fp.RoomAreaSum(), 1e-9)
}

func TestSeverityWeight(t *testing.T) {
	assert.Equal(t, 1.0, SeverityViolation.Weight())
	assert.Equal(t, 0.5, SeverityWarning.Weight())
	assert.Equal(t, 0.0, SeverityInfo.Weight())
	assert.Equal(t, 0.0, SeverityPass.Weight())
}

func TestHabitable(t *testing.T) {
	assert.True(t, RoomBedroom.Habitable())
	assert.True(t, RoomLivingRoom.Habitable())
	assert.True(t, RoomKitchen.Habitable())
	assert.True(t, RoomStudy.Habitable())
	assert.False(t, RoomBathroom.Habitable())
	assert.False(t, RoomPoojaRoom.Habitable())
	assert.False(t, RoomEntrance.Habitable())
	assert.False(t, RoomOther.Habitable())
}
