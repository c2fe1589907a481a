package mapper

import (
	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContentMapper converts the searchable content tables to entities and back.
type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) MentorToEntity(v *model.Mentor) *entity.Mentor {
	if v == nil {
		return nil
	}
	return &entity.Mentor{
		Id:          v.Id.String(),
		Name:        v.Name,
		Title:       v.Title,
		Specialties: toStrings(v.Specialties),
		Bio:         v.Bio,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) MentorToModel(v *entity.Mentor) *model.Mentor {
	if v == nil {
		return nil
	}
	return &model.Mentor{
		Id:          parseId(v.Id),
		Name:        v.Name,
		Title:       v.Title,
		Specialties: datatypes.JSONSlice[string](v.Specialties),
		Bio:         v.Bio,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) LectureToEntity(v *model.Lecture) *entity.Lecture {
	if v == nil {
		return nil
	}
	return &entity.Lecture{
		Id:          v.Id.String(),
		Title:       v.Title,
		Instructor:  v.Instructor,
		Category:    v.Category,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) LectureToModel(v *entity.Lecture) *model.Lecture {
	if v == nil {
		return nil
	}
	return &model.Lecture{
		Id:          parseId(v.Id),
		Title:       v.Title,
		Instructor:  v.Instructor,
		Category:    v.Category,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) CommunityGroupToEntity(v *model.CommunityGroup) *entity.CommunityGroup {
	if v == nil {
		return nil
	}
	return &entity.CommunityGroup{
		Id:          v.Id.String(),
		Name:        v.Name,
		Description: v.Description,
		Tags:        toStrings(v.Tags),
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) CommunityGroupToModel(v *entity.CommunityGroup) *model.CommunityGroup {
	if v == nil {
		return nil
	}
	return &model.CommunityGroup{
		Id:          parseId(v.Id),
		Name:        v.Name,
		Description: v.Description,
		Tags:        datatypes.JSONSlice[string](v.Tags),
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) FreelancerGroupToEntity(v *model.FreelancerGroup) *entity.FreelancerGroup {
	if v == nil {
		return nil
	}
	return &entity.FreelancerGroup{
		Id:          v.Id.String(),
		Name:        v.Name,
		Description: v.Description,
		Category:    v.Category,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) FreelancerGroupToModel(v *entity.FreelancerGroup) *model.FreelancerGroup {
	if v == nil {
		return nil
	}
	return &model.FreelancerGroup{
		Id:          parseId(v.Id),
		Name:        v.Name,
		Description: v.Description,
		Category:    v.Category,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ContentMapper) StudyInfoToEntity(v *model.StudyInfo) *entity.StudyInfo {
	if v == nil {
		return nil
	}
	return &entity.StudyInfo{
		Id:        v.Id.String(),
		Category:  v.Category,
		Title:     v.Title,
		Content:   v.Content,
		Tags:      toStrings(v.Tags),
		CreatedAt: v.CreatedAt,
	}
}

func (m *ContentMapper) StudyInfoToModel(v *entity.StudyInfo) *model.StudyInfo {
	if v == nil {
		return nil
	}
	return &model.StudyInfo{
		Id:        parseId(v.Id),
		Category:  v.Category,
		Title:     v.Title,
		Content:   v.Content,
		Tags:      datatypes.JSONSlice[string](v.Tags),
		CreatedAt: v.CreatedAt,
	}
}

// parseId returns uuid.Nil for empty or foreign ids so BeforeCreate assigns a fresh one.
func parseId(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return parsed
}

func toStrings(v datatypes.JSONSlice[string]) []string {
	if v == nil {
		return []string{}
	}
	return []string(v)
}
