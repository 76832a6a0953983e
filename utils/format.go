package utils

import (
	"fmt"
	"strings"

	"floorplan-backend/models"
)

var directionLabels = map[models.Direction]string{
	models.North:     "North",
	models.South:     "South",
	models.East:      "East",
	models.West:      "West",
	models.NorthEast: "North-East",
	models.NorthWest: "North-West",
	models.SouthEast: "South-East",
	models.SouthWest: "South-West",
}

// DirectionLabel renders a direction for report messages.
func DirectionLabel(d models.Direction) string {
	if label, ok := directionLabels[d]; ok {
		return label
	}
	return string(d)
}

// RoomTypeLabel turns a room type into a display name ("living_room" ->
// "Living Room").
func RoomTypeLabel(t models.RoomType) string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// RoomLabel identifies a room in a finding message, preferring the detector's
// custom name over the raw id.
func RoomLabel(room models.Room) string {
	name := strings.TrimSpace(room.Name)
	if name == "" {
		name = room.ID
	}
	return fmt.Sprintf("%s '%s'", RoomTypeLabel(room.Type), name)
}

// DirectionList joins direction labels for suggestion text.
func DirectionList(dirs []models.Direction) string {
	labels := make([]string, 0, len(dirs))
	for _, d := range dirs {
		labels = append(labels, DirectionLabel(d))
	}
	return strings.Join(labels, ", ")
}
