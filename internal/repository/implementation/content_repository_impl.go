package implementation

import (
	"context"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/mapper"
	"mentorlink-be/internal/model"
	"mentorlink-be/internal/repository/contract"
	"mentorlink-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) CreateMentor(ctx context.Context, mentor *entity.Mentor) error {
	m := r.mapper.MentorToModel(mentor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*mentor = *r.mapper.MentorToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) CreateLecture(ctx context.Context, lecture *entity.Lecture) error {
	m := r.mapper.LectureToModel(lecture)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lecture = *r.mapper.LectureToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) CreateCommunityGroup(ctx context.Context, group *entity.CommunityGroup) error {
	m := r.mapper.CommunityGroupToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.CommunityGroupToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) CreateFreelancerGroup(ctx context.Context, group *entity.FreelancerGroup) error {
	m := r.mapper.FreelancerGroupToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.FreelancerGroupToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) CreateStudyInfo(ctx context.Context, info *entity.StudyInfo) error {
	m := r.mapper.StudyInfoToModel(info)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*info = *r.mapper.StudyInfoToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) FindAllMentors(ctx context.Context, specs ...specification.Specification) ([]*entity.Mentor, error) {
	var models []*model.Mentor
	if err := specification.Apply(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Mentor, len(models))
	for i, m := range models {
		out[i] = r.mapper.MentorToEntity(m)
	}
	return out, nil
}

func (r *ContentRepositoryImpl) FindAllLectures(ctx context.Context, specs ...specification.Specification) ([]*entity.Lecture, error) {
	var models []*model.Lecture
	if err := specification.Apply(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Lecture, len(models))
	for i, m := range models {
		out[i] = r.mapper.LectureToEntity(m)
	}
	return out, nil
}

func (r *ContentRepositoryImpl) FindAllCommunityGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.CommunityGroup, error) {
	var models []*model.CommunityGroup
	if err := specification.Apply(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CommunityGroup, len(models))
	for i, m := range models {
		out[i] = r.mapper.CommunityGroupToEntity(m)
	}
	return out, nil
}

func (r *ContentRepositoryImpl) FindAllFreelancerGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.FreelancerGroup, error) {
	var models []*model.FreelancerGroup
	if err := specification.Apply(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.FreelancerGroup, len(models))
	for i, m := range models {
		out[i] = r.mapper.FreelancerGroupToEntity(m)
	}
	return out, nil
}

func (r *ContentRepositoryImpl) FindAllStudyInfos(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyInfo, error) {
	var models []*model.StudyInfo
	if err := specification.Apply(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.StudyInfo, len(models))
	for i, m := range models {
		out[i] = r.mapper.StudyInfoToEntity(m)
	}
	return out, nil
}

func (r *ContentRepositoryImpl) DeleteAllUnscoped(ctx context.Context) error {
	db := r.db.WithContext(ctx).Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range model.All() {
		if err := db.Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
