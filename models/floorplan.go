package models

import "fmt"

// RoomType classifies a detected room. The set is closed; anything the
// detector can't classify arrives as RoomOther.
type RoomType string

const (
	RoomBedroom    RoomType = "bedroom"
	RoomBathroom   RoomType = "bathroom"
	RoomKitchen    RoomType = "kitchen"
	RoomLivingRoom RoomType = "living_room"
	RoomStudy      RoomType = "study"
	RoomPoojaRoom  RoomType = "pooja_room"
	RoomEntrance   RoomType = "entrance"
	RoomOther      RoomType = "other"
)

func (t RoomType) IsValid() bool {
	switch t {
	case RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom,
		RoomStudy, RoomPoojaRoom, RoomEntrance, RoomOther:
		return true
	}
	return false
}

// Habitable reports whether building codes treat the room as a living space
// (window and egress requirements apply).
func (t RoomType) Habitable() bool {
	switch t {
	case RoomBedroom, RoomLivingRoom, RoomKitchen, RoomStudy:
		return true
	}
	return false
}

// Direction is a room's placement relative to the building's center.
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	NorthEast Direction = "northeast"
	NorthWest Direction = "northwest"
	SouthEast Direction = "southeast"
	SouthWest Direction = "southwest"
)

func (d Direction) IsValid() bool {
	switch d {
	case North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest:
		return true
	}
	return false
}

// BuildingType restricts rule applicability (Vastu only runs for residential).
type BuildingType string

const (
	BuildingResidential BuildingType = "residential"
	BuildingCommercial  BuildingType = "commercial"
	BuildingIndustrial  BuildingType = "industrial"
	BuildingMixed       BuildingType = "mixed"
)

func (b BuildingType) IsValid() bool {
	switch b {
	case BuildingResidential, BuildingCommercial, BuildingIndustrial, BuildingMixed:
		return true
	}
	return false
}

// Coordinates is the axis-aligned bounding rectangle of a room. Optional on a
// Room when the detector supplies area directly.
type Coordinates struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Room struct {
	ID          string       `json:"id" binding:"required"`
	Type        RoomType     `json:"type" binding:"required"`
	Name        string       `json:"name,omitempty"`
	Area        float64      `json:"area" binding:"required"`
	Direction   Direction    `json:"direction" binding:"required"`
	Windows     int          `json:"windows"`
	Doors       int          `json:"doors"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type BuildingInfo struct {
	TotalArea    float64      `json:"total_area" binding:"required"`
	Floors       int          `json:"floors" binding:"required"`
	BuildingType BuildingType `json:"building_type" binding:"required"`
}

// FloorPlan is the aggregate root consumed by the rule engine. It is owned by
// a single analysis request and never mutated by the rule sets.
type FloorPlan struct {
	Rooms        []Room       `json:"rooms"`
	BuildingInfo BuildingInfo `json:"building_info"`
}

// ValidationError reports a structural invariant failure, naming the
// offending field. The engine rejects the whole analysis on the first one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid floor plan: %s: %s", e.Field, e.Message)
}

// areaTolerance allows slightly irregular rooms whose declared area doesn't
// exactly match width x height.
const areaTolerance = 0.1

// Validate checks the structural invariants of the plan. A plan with zero
// rooms is valid.
func (fp *FloorPlan) Validate() error {
	if fp.BuildingInfo.TotalArea <= 0 {
		return &ValidationError{Field: "building_info.total_area", Message: "must be positive"}
	}
	if fp.BuildingInfo.Floors < 1 {
		return &ValidationError{Field: "building_info.floors", Message: "must be at least 1"}
	}
	if !fp.BuildingInfo.BuildingType.IsValid() {
		return &ValidationError{
			Field:   "building_info.building_type",
			Message: fmt.Sprintf("unknown building type %q", fp.BuildingInfo.BuildingType),
		}
	}

	seen := make(map[string]bool, len(fp.Rooms))
	for i, room := range fp.Rooms {
		field := func(name string) string { return fmt.Sprintf("rooms[%d].%s", i, name) }

		if room.ID == "" {
			return &ValidationError{Field: field("id"), Message: "must not be empty"}
		}
		if seen[room.ID] {
			return &ValidationError{Field: field("id"), Message: fmt.Sprintf("duplicate room id %q", room.ID)}
		}
		seen[room.ID] = true

		if !room.Type.IsValid() {
			return &ValidationError{Field: field("type"), Message: fmt.Sprintf("unknown room type %q", room.Type)}
		}
		if !room.Direction.IsValid() {
			return &ValidationError{Field: field("direction"), Message: fmt.Sprintf("unknown direction %q", room.Direction)}
		}
		if room.Area <= 0 {
			return &ValidationError{Field: field("area"), Message: "must be positive"}
		}
		if room.Windows < 0 {
			return &ValidationError{Field: field("windows"), Message: "must not be negative"}
		}
		if room.Doors < 0 {
			return &ValidationError{Field: field("doors"), Message: "must not be negative"}
		}

		if c := room.Coordinates; c != nil {
			if c.X < 0 || c.Y < 0 {
				return &ValidationError{Field: field("coordinates"), Message: "x and y must not be negative"}
			}
			if c.Width <= 0 || c.Height <= 0 {
				return &ValidationError{Field: field("coordinates"), Message: "width and height must be positive"}
			}
			expected := c.Width * c.Height
			if diff := room.Area - expected; diff > expected*areaTolerance || diff < -expected*areaTolerance {
				return &ValidationError{
					Field:   field("area"),
					Message: fmt.Sprintf("area %.2f does not match coordinates (%.2f x %.2f)", room.Area, c.Width, c.Height),
				}
			}
		}
	}

	return nil
}

// RoomAreaSum is the total of all room areas, used by the building-wide
// consistency rule.
func (fp *FloorPlan) RoomAreaSum() float64 {
	var sum float64
	for _, room := range fp.Rooms {
		sum += room.Area
	}
	return sum
}
