package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CommunityGroup struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (CommunityGroup) TableName() string {
	return "community_groups"
}

func (g *CommunityGroup) BeforeCreate(tx *gorm.DB) error {
	if g.Id == uuid.Nil {
		g.Id = uuid.New()
	}
	return nil
}

type FreelancerGroup struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(100);index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (FreelancerGroup) TableName() string {
	return "freelancer_groups"
}

func (g *FreelancerGroup) BeforeCreate(tx *gorm.DB) error {
	if g.Id == uuid.Nil {
		g.Id = uuid.New()
	}
	return nil
}
