package seed

import (
	"context"
	"fmt"
	"time"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/repository/unitofwork"
)

// Load replaces all content with snap in one transaction. Rows get increasing
// created_at values so the listing order matches the order in snap.
func Load(ctx context.Context, uowFactory unitofwork.RepositoryFactory, snap *entity.Snapshot) (err error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = uow.Rollback()
		}
	}()

	repo := uow.ContentRepository()
	if err = repo.DeleteAllUnscoped(ctx); err != nil {
		return fmt.Errorf("clear content: %w", err)
	}

	base := time.Now().UTC()
	next := func(i int) time.Time { return base.Add(time.Duration(i) * time.Millisecond) }

	for i := range snap.Mentors {
		m := snap.Mentors[i]
		m.CreatedAt = next(i)
		if err = repo.CreateMentor(ctx, &m); err != nil {
			return fmt.Errorf("create mentor %q: %w", m.Name, err)
		}
	}
	for i := range snap.Lectures {
		l := snap.Lectures[i]
		l.CreatedAt = next(i)
		if err = repo.CreateLecture(ctx, &l); err != nil {
			return fmt.Errorf("create lecture %q: %w", l.Title, err)
		}
	}
	for i := range snap.CommunityGroups {
		g := snap.CommunityGroups[i]
		g.CreatedAt = next(i)
		if err = repo.CreateCommunityGroup(ctx, &g); err != nil {
			return fmt.Errorf("create community group %q: %w", g.Name, err)
		}
	}
	for i := range snap.FreelancerGroups {
		g := snap.FreelancerGroups[i]
		g.CreatedAt = next(i)
		if err = repo.CreateFreelancerGroup(ctx, &g); err != nil {
			return fmt.Errorf("create freelancer group %q: %w", g.Name, err)
		}
	}
	for i := range snap.StudyInfos {
		s := snap.StudyInfos[i]
		s.CreatedAt = next(i)
		if err = repo.CreateStudyInfo(ctx, &s); err != nil {
			return fmt.Errorf("create study info %q: %w", s.Title, err)
		}
	}

	return uow.Commit()
}
