package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hiring-platform-api/internal/database"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	org       *models.Organization
	recruiter *models.User
	candidate *models.User
	job       *models.Job
}

func seed(t *testing.T, db *gorm.DB) fixture {
	ctx := context.Background()
	users := NewUserRepository(db)
	orgs := NewOrganizationRepository(db)
	jobs := NewJobRepository(db)

	recruiter := &models.User{Email: "recruiter@example.com", PasswordHash: "x", Role: models.RoleRecruiter}
	candidate := &models.User{Email: "candidate@example.com", PasswordHash: "x", Role: models.RoleCandidate}
	require.NoError(t, users.Create(ctx, recruiter))
	require.NoError(t, users.Create(ctx, candidate))

	org := &models.Organization{Name: "Acme", Slug: "acme"}
	require.NoError(t, orgs.CreateWithOwner(ctx, org, recruiter.ID))

	job := &models.Job{
		Title:          "Backend Engineer",
		Description:    "Go services",
		Requirements:   []string{"go", "sql"},
		Visibility:     models.JobVisibilityPublic,
		Status:         models.JobStatusOngoing,
		RecruiterID:    recruiter.ID,
		OrganizationID: org.ID,
	}
	require.NoError(t, jobs.Create(ctx, job))

	return fixture{org: org, recruiter: recruiter, candidate: candidate, job: job}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByEmail(context.Background(), "recruiter@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.recruiter.ID, user.ID)
	require.NotNil(t, user.OrganizationID)
	assert.Equal(t, f.org.ID, *user.OrganizationID)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupRepoTestDB(t)
	seed(t, db)

	err := NewUserRepository(db).Create(context.Background(), &models.User{
		Email:        "candidate@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_AssignAndClearOrganization(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.AssignOrganization(ctx, f.candidate.ID, f.org.ID, models.RoleHiringManager))

	user, err := repo.FindByID(ctx, f.candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHiringManager, user.Role)
	assert.True(t, user.InOrganization(f.org.ID))

	// A second link is refused while the first one holds.
	err = repo.AssignOrganization(ctx, f.candidate.ID, "other-org", models.RoleRecruiter)
	assert.ErrorIs(t, err, ErrAlreadyInOrganization)

	require.NoError(t, repo.ClearOrganization(ctx, f.candidate.ID, f.org.ID))
	assert.ErrorIs(t, repo.ClearOrganization(ctx, f.candidate.ID, f.org.ID), ErrNotFound)

	user, err = repo.FindByID(ctx, f.candidate.ID)
	require.NoError(t, err)
	assert.Nil(t, user.OrganizationID)
}

func TestOrganizationRepository_CreateWithOwner_AlreadyLinked(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewOrganizationRepository(db)

	err := repo.CreateWithOwner(ctx, &models.Organization{Name: "Other", Slug: "other"}, f.recruiter.ID)
	assert.ErrorIs(t, err, ErrAlreadyInOrganization)

	// The insert was rolled back with the failed link.
	_, err = repo.FindBySlug(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrganizationRepository_DuplicateSlug(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)

	err := NewOrganizationRepository(db).CreateWithOwner(context.Background(),
		&models.Organization{Name: "Acme Two", Slug: "acme"}, f.candidate.ID)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestOrganizationRepository_Delete_Cascades(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()

	apps := NewApplicationRepository(db)
	app := &models.Application{JobID: f.job.ID, CandidateID: f.candidate.ID}
	require.NoError(t, apps.Create(ctx, app))

	orgs := NewOrganizationRepository(db)
	require.NoError(t, orgs.Delete(ctx, f.org.ID))

	_, err := orgs.FindByID(ctx, f.org.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewJobRepository(db).FindByID(ctx, f.job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = apps.FindByID(ctx, app.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	recruiter, err := NewUserRepository(db).FindByID(ctx, f.recruiter.ID)
	require.NoError(t, err)
	assert.Nil(t, recruiter.OrganizationID)

	assert.ErrorIs(t, orgs.Delete(ctx, f.org.ID), ErrNotFound)
}

func TestOrganizationRepository_MembersAndCounts(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	orgs := NewOrganizationRepository(db)

	members, err := orgs.ListMembers(ctx, f.org.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, f.recruiter.ID, members[0].ID)

	counts, err := orgs.Counts(ctx, f.org.ID)
	require.NoError(t, err)
	assert.Equal(t, OrganizationCounts{Members: 1, Jobs: 1}, counts)
}

func TestJobRepository_RequirementsRoundTrip(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)

	job, err := NewJobRepository(db).FindByID(context.Background(), f.job.ID, "Organization")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, job.Requirements)
	assert.Equal(t, "acme", job.Organization.Slug)
}

func TestJobRepository_ListPublic(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewJobRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, tc := range []struct {
		visibility models.JobVisibility
		status     models.JobStatus
	}{
		{models.JobVisibilityPublic, models.JobStatusOngoing},
		{models.JobVisibilityPrivate, models.JobStatusOngoing},
		{models.JobVisibilityPublic, models.JobStatusDraft},
		{models.JobVisibilityPublic, models.JobStatusOngoing},
	} {
		require.NoError(t, repo.Create(ctx, &models.Job{
			Title:          "Job",
			Description:    "d",
			Visibility:     tc.visibility,
			Status:         tc.status,
			RecruiterID:    f.recruiter.ID,
			OrganizationID: f.org.ID,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	jobs, total, err := repo.ListPublic(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		assert.Equal(t, models.JobVisibilityPublic, job.Visibility)
		assert.Equal(t, models.JobStatusOngoing, job.Status)
		assert.Equal(t, "Acme", job.Organization.Name)
	}
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].CreatedAt.After(jobs[i-1].CreatedAt))
	}

	page, total, err := repo.ListPublic(ctx, &utils.PaginationParams{Page: 2, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)
}

func TestJobRepository_Delete_RemovesApplications(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()

	apps := NewApplicationRepository(db)
	app := &models.Application{JobID: f.job.ID, CandidateID: f.candidate.ID}
	require.NoError(t, apps.Create(ctx, app))

	jobs := NewJobRepository(db)
	require.NoError(t, jobs.Delete(ctx, f.job.ID))
	_, err := apps.FindByID(ctx, app.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, jobs.Delete(ctx, f.job.ID), ErrNotFound)
}

func TestJobRepository_CountByRecruiter(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewJobRepository(db)

	require.NoError(t, repo.Create(ctx, &models.Job{
		Title: "Draft", Description: "d", Status: models.JobStatusDraft,
		RecruiterID: f.recruiter.ID, OrganizationID: f.org.ID,
	}))

	all, err := repo.CountByRecruiter(ctx, f.recruiter.ID, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all)

	draft := models.JobStatusDraft
	drafts, err := repo.CountByRecruiter(ctx, f.recruiter.ID, &draft)
	require.NoError(t, err)
	assert.EqualValues(t, 1, drafts)
}

func TestApplicationRepository_DuplicateApply(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	require.NoError(t, repo.Create(ctx, &models.Application{JobID: f.job.ID, CandidateID: f.candidate.ID}))
	err := repo.Create(ctx, &models.Application{JobID: f.job.ID, CandidateID: f.candidate.ID})
	assert.ErrorIs(t, err, ErrDuplicate)

	app, err := repo.FindByJobAndCandidate(ctx, f.job.ID, f.candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
}

func TestApplicationRepository_ListsAndStats(t *testing.T) {
	db := setupRepoTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	app := &models.Application{JobID: f.job.ID, CandidateID: f.candidate.ID}
	require.NoError(t, repo.Create(ctx, app))
	require.NoError(t, repo.UpdateStatus(ctx, app, models.ApplicationStatusScreening))

	byJob, err := repo.ListByJob(ctx, f.job.ID)
	require.NoError(t, err)
	require.Len(t, byJob, 1)
	assert.Equal(t, "candidate@example.com", byJob[0].Candidate.Email)
	assert.Equal(t, models.ApplicationStatusScreening, byJob[0].Status)

	byCandidate, err := repo.ListByCandidate(ctx, f.candidate.ID)
	require.NoError(t, err)
	require.Len(t, byCandidate, 1)
	assert.Equal(t, "Backend Engineer", byCandidate[0].Job.Title)
	assert.Equal(t, "Acme", byCandidate[0].Job.Organization.Name)

	total, err := repo.CountByRecruiter(ctx, f.recruiter.ID, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	applied := models.ApplicationStatusApplied
	none, err := repo.CountByRecruiter(ctx, f.recruiter.ID, &applied)
	require.NoError(t, err)
	assert.EqualValues(t, 0, none)

	recent, err := repo.RecentByRecruiter(ctx, f.recruiter.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, app.ID, recent[0].ID)
	assert.Equal(t, f.job.ID, recent[0].Job.ID)

	other, err := repo.RecentByRecruiter(ctx, f.candidate.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}
