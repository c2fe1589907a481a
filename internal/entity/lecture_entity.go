package entity

import "time"

type Lecture struct {
	Id          string
	Title       string
	Instructor  string
	Category    string
	Description string
	CreatedAt   time.Time
}
