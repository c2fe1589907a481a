package implementation

import (
	"context"
	"fmt"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/repository/contract"
	"mentorlink-be/internal/repository/specification"

	"gorm.io/gorm"
)

// RecordStoreImpl reads a fresh snapshot from the database on every call.
type RecordStoreImpl struct {
	content contract.ContentRepository
}

func NewRecordStore(db *gorm.DB) contract.RecordStore {
	return &RecordStoreImpl{content: NewContentRepository(db)}
}

func (s *RecordStoreImpl) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	order := specification.NaturalOrder{}
	snap := &entity.Snapshot{}

	mentors, err := s.content.FindAllMentors(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	for _, m := range mentors {
		snap.Mentors = append(snap.Mentors, *m)
	}

	lectures, err := s.content.FindAllLectures(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}
	for _, l := range lectures {
		snap.Lectures = append(snap.Lectures, *l)
	}

	communities, err := s.content.FindAllCommunityGroups(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list community groups: %w", err)
	}
	for _, g := range communities {
		snap.CommunityGroups = append(snap.CommunityGroups, *g)
	}

	freelancers, err := s.content.FindAllFreelancerGroups(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list freelancer groups: %w", err)
	}
	for _, g := range freelancers {
		snap.FreelancerGroups = append(snap.FreelancerGroups, *g)
	}

	infos, err := s.content.FindAllStudyInfos(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list study info: %w", err)
	}
	for _, i := range infos {
		snap.StudyInfos = append(snap.StudyInfos, *i)
	}

	return snap, nil
}
