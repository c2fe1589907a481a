package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Mentor struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Title       string                      `gorm:"type:varchar(255)"`
	Specialties datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Bio         string                      `gorm:"type:text"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (Mentor) TableName() string {
	return "mentors"
}

func (m *Mentor) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}
