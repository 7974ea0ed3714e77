package models

import (
	"time"

	"gorm.io/gorm"
)

// Settings represents a settings entity
type Settings struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	SettingKey  string         `json:"setting_key" gorm:"type:varchar(100);index"`
	Label       string         `json:"label" gorm:"type:varchar(200)"`
	Group       string         `json:"group" gorm:"type:varchar(50)"`
	Type        string         `json:"type" gorm:"type:varchar(20)"`
	ValueString string         `json:"value_string" gorm:"type:text"`
	ValueInt    int            `json:"value_int"`
	ValueFloat  float64        `json:"value_float"`
	ValueBool   bool           `json:"value_bool"`
	Description string         `json:"description" gorm:"type:text"`
	IsPublic    bool           `json:"is_public"`
}

// TableName returns the table name for the Settings model
func (m *Settings) TableName() string {
	return "settings"
}

// GetId returns the Id of the model
func (m *Settings) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Settings) GetModelName() string {
	return "settings"
}
