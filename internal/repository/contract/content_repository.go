package contract

import (
	"context"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/repository/specification"
)

// ContentRepository owns the five searchable content tables.
type ContentRepository interface {
	CreateMentor(ctx context.Context, mentor *entity.Mentor) error
	CreateLecture(ctx context.Context, lecture *entity.Lecture) error
	CreateCommunityGroup(ctx context.Context, group *entity.CommunityGroup) error
	CreateFreelancerGroup(ctx context.Context, group *entity.FreelancerGroup) error
	CreateStudyInfo(ctx context.Context, info *entity.StudyInfo) error

	FindAllMentors(ctx context.Context, specs ...specification.Specification) ([]*entity.Mentor, error)
	FindAllLectures(ctx context.Context, specs ...specification.Specification) ([]*entity.Lecture, error)
	FindAllCommunityGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.CommunityGroup, error)
	FindAllFreelancerGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.FreelancerGroup, error)
	FindAllStudyInfos(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyInfo, error)

	// DeleteAllUnscoped hard deletes every row of every content table.
	DeleteAllUnscoped(ctx context.Context) error
}
