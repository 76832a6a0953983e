package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RuleProfile is a named, persisted set of rule tables (a jurisdiction or
// convention override). Tables holds a RuleConfig document; empty maps fall
// back to the built-in defaults when the profile is resolved.
type RuleProfile struct {
	gorm.Model

	Name        string         `json:"name" gorm:"column:name;uniqueIndex;type:varchar(100)"`
	Description string         `json:"description" gorm:"column:description;type:text"`
	Tables      datatypes.JSON `json:"tables" gorm:"column:tables"`
}
