package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

type applicationsResponse struct {
	Applications []dto.ApplicationDTO `json:"applications"`
}

func TestApplicationHandler_ApplyAndReview(t *testing.T) {
	env := setupHandlerTestEnv(t)
	recruiter, _ := env.recruiterWithOrg(t, "r@example.com", "acme")
	rival, _ := env.recruiterWithOrg(t, "rival@example.com", "rival")
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	other := env.register(t, "other@example.com", models.RoleCandidate)
	job := env.ongoingJob(t, recruiter, models.JobVisibilityPublic)
	r := env.router()
	apply := "/api/jobs/" + job.ID + "/apply"

	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodPost, apply, recruiter.Token, nil).Code)

	w := performRequest(t, r, http.MethodPost, apply, candidate.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	app := decode[dto.ApplicationDTO](t, w)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, candidate.User.ID, app.CandidateID)

	require.Equal(t, http.StatusConflict, performRequest(t, r, http.MethodPost, apply, candidate.Token, nil).Code)

	w = performRequest(t, r, http.MethodGet, "/api/jobs/"+job.ID+"/applications", recruiter.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[applicationsResponse](t, w).Applications
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Candidate)
	assert.Equal(t, "c@example.com", listed[0].Candidate.Email)

	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodGet, "/api/jobs/"+job.ID+"/applications", rival.Token, nil).Code)

	w = performRequest(t, r, http.MethodGet, "/api/applications/mine", candidate.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[applicationsResponse](t, w).Applications
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Job)
	require.NotNil(t, mine[0].Job.Organization)
	assert.Equal(t, "acme", mine[0].Job.Organization.Slug)

	path := "/api/applications/" + app.ID
	require.Equal(t, http.StatusOK, performRequest(t, r, http.MethodGet, path, candidate.Token, nil).Code)
	require.Equal(t, http.StatusOK, performRequest(t, r, http.MethodGet, path, recruiter.Token, nil).Code)
	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodGet, path, other.Token, nil).Code)
	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodGet, path, rival.Token, nil).Code)

	status := path + "/status"
	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodPatch, status, rival.Token, map[string]string{"status": "SCREENING"}).Code)
	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodPatch, status, candidate.Token, map[string]string{"status": "HIRED"}).Code)
	require.Equal(t, http.StatusConflict, performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "HIRED"}).Code)
	require.Equal(t, http.StatusBadRequest, performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "MAYBE"}).Code)

	for _, next := range []models.ApplicationStatus{
		models.ApplicationStatusScreening,
		models.ApplicationStatusInterview,
		models.ApplicationStatusOffer,
		models.ApplicationStatusHired,
	} {
		w = performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": string(next)})
		require.Equal(t, http.StatusOK, w.Code, next)
		require.Equal(t, next, decode[dto.ApplicationDTO](t, w).Status)
	}

	require.Equal(t, http.StatusConflict, performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "REJECTED"}).Code)
}

func TestApplicationHandler_ClosedJob(t *testing.T) {
	env := setupHandlerTestEnv(t)
	recruiter, _ := env.recruiterWithOrg(t, "r@example.com", "acme")
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	job := env.ongoingJob(t, recruiter, models.JobVisibilityPublic)
	_, err := env.jobService.ChangeStatus(t.Context(), env.principal(t, recruiter), job.ID, models.JobStatusClosed)
	require.NoError(t, err)
	r := env.router()

	w := performRequest(t, r, http.MethodPost, "/api/jobs/"+job.ID+"/apply", candidate.Token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodPost, "/api/jobs/00000000-0000-0000-0000-000000000000/apply", candidate.Token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardHandler_Stats(t *testing.T) {
	env := setupHandlerTestEnv(t)
	recruiter, _ := env.recruiterWithOrg(t, "r@example.com", "acme")
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	job := env.ongoingJob(t, recruiter, models.JobVisibilityPublic)
	_, err := env.appService.Apply(t.Context(), env.principal(t, candidate), job.ID)
	require.NoError(t, err)
	r := env.router()

	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodGet, "/api/recruiter/dashboard/stats", candidate.Token, nil).Code)

	w := performRequest(t, r, http.MethodGet, "/api/recruiter/dashboard/stats", recruiter.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.DashboardStatsDTO](t, w)
	assert.EqualValues(t, 1, stats.TotalJobs)
	assert.EqualValues(t, 1, stats.ActiveJobs)
	assert.EqualValues(t, 1, stats.TotalApplications)
	assert.EqualValues(t, 1, stats.ApplicationsByStage[models.ApplicationStatusApplied])
	assert.Len(t, stats.RecentApplications, 1)
}
