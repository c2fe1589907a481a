package entity

import "time"

type CommunityGroup struct {
	Id          string
	Name        string
	Description string
	Tags        []string
	CreatedAt   time.Time
}

type FreelancerGroup struct {
	Id          string
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
}
