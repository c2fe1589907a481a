package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lecture struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Instructor  string         `gorm:"type:varchar(255)"`
	Category    string         `gorm:"type:varchar(100);index"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Lecture) TableName() string {
	return "lectures"
}

func (l *Lecture) BeforeCreate(tx *gorm.DB) error {
	if l.Id == uuid.Nil {
		l.Id = uuid.New()
	}
	return nil
}
