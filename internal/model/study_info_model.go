package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudyInfo struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Category  string                      `gorm:"type:varchar(50);not null;index"`
	Title     string                      `gorm:"type:varchar(255);not null"`
	Content   string                      `gorm:"type:text"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt              `gorm:"index"`
}

func (StudyInfo) TableName() string {
	return "study_infos"
}

func (s *StudyInfo) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}
