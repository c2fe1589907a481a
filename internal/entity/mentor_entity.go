package entity

import "time"

type Mentor struct {
	Id          string
	Name        string
	Title       string
	Specialties []string
	Bio         string
	CreatedAt   time.Time
}
