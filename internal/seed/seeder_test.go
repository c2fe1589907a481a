package seed

import (
	"context"
	"testing"

	"mentorlink-be/internal/model"
	"mentorlink-be/internal/repository/implementation"
	"mentorlink-be/internal/repository/unitofwork"
	"mentorlink-be/pkg/locale"
	"mentorlink-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func TestLoadSampleSnapshot(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sample := SampleSnapshot()

	require.NoError(t, Load(ctx, unitofwork.NewRepositoryFactory(db), sample))

	snap, err := implementation.NewRecordStore(db).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample.Size(), snap.Size())
	require.Len(t, snap.Lectures, 2)
	assert.Equal(t, "한국어 초급 강의", snap.Lectures[0].Title)
	assert.Equal(t, "비자 신청 가이드", snap.Lectures[1].Title)
}

func TestLoadReplacesExistingContent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)

	require.NoError(t, Load(ctx, factory, SampleSnapshot()))
	require.NoError(t, Load(ctx, factory, SampleSnapshot()))

	snap, err := implementation.NewRecordStore(db).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, SampleSnapshot().Size(), snap.Size())
}

func TestSampleSnapshotIsSearchable(t *testing.T) {
	results := search.Search(SampleSnapshot(), "비자", locale.Korean)

	require.NotEmpty(t, results)
	assert.Equal(t, search.KindMentor, results[0].Kind)
	assert.Equal(t, search.KindStudyInfo, results[len(results)-1].Kind)
}

func TestAssignIds(t *testing.T) {
	snap := AssignIds(SampleSnapshot())
	snap.Mentors[0].Id = "kept"
	AssignIds(snap)

	assert.Equal(t, "kept", snap.Mentors[0].Id)
	for _, s := range snap.StudyInfos {
		assert.NotEmpty(t, s.Id)
	}
}
