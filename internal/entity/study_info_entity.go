package entity

import "time"

// StudyInfo categories double as anchors on the study-in-korea page.
const (
	StudyInfoCategoryVisa     = "visa"
	StudyInfoCategoryHousing  = "housing"
	StudyInfoCategoryHospital = "hospital"
	StudyInfoCategoryLifeTips = "lifeTips"
)

type StudyInfo struct {
	Id        string
	Category  string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
}
