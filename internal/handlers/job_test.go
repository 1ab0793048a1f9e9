package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

func TestJobHandler_CreateAndLifecycle(t *testing.T) {
	env := setupHandlerTestEnv(t)
	recruiter, org := env.recruiterWithOrg(t, "r@example.com", "acme")
	loner := env.register(t, "loner@example.com", models.RoleRecruiter)
	r := env.router()

	payload := map[string]interface{}{
		"title":        "Backend Engineer",
		"description":  "Build APIs",
		"location":     "Remote",
		"requirements": []string{"Go", "SQL"},
	}

	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodPost, "/api/jobs", loner.Token, payload).Code)

	w := performRequest(t, r, http.MethodPost, "/api/jobs", recruiter.Token, payload)
	require.Equal(t, http.StatusCreated, w.Code)
	job := decode[dto.JobDTO](t, w)
	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Equal(t, models.JobVisibilityPublic, job.Visibility)
	assert.Equal(t, org.ID, job.OrganizationID)
	assert.Equal(t, []string{"Go", "SQL"}, job.Requirements)

	status := "/api/jobs/" + job.ID + "/status"

	// A draft is not publicly readable.
	require.Equal(t, http.StatusNotFound, performRequest(t, r, http.MethodGet, "/api/jobs/"+job.ID, "", nil).Code)

	w = performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "ONGOING"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.JobStatusOngoing, decode[dto.JobDTO](t, w).Status)

	w = performRequest(t, r, http.MethodGet, "/api/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	public := decode[dto.JobDTO](t, w)
	require.NotNil(t, public.Organization)
	assert.Equal(t, "acme", public.Organization.Slug)
	require.NotNil(t, public.Recruiter)

	w = performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "DRAFT"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "ARCHIVED"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodPatch, status, recruiter.Token, map[string]string{"status": "ONGOING"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestJobHandler_UpdateOwnership(t *testing.T) {
	env := setupHandlerTestEnv(t)
	owner, org := env.recruiterWithOrg(t, "owner@example.com", "acme")
	colleague := env.register(t, "colleague@example.com", models.RoleCandidate)
	_, err := env.orgService.AddMember(t.Context(), env.principal(t, owner), org.ID, addMemberInput("colleague@example.com", models.RoleRecruiter))
	require.NoError(t, err)
	job := env.ongoingJob(t, owner, models.JobVisibilityPrivate)
	r := env.router()
	path := "/api/jobs/" + job.ID

	w := performRequest(t, r, http.MethodPut, path, colleague.Token, map[string]string{"title": "Mine now"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Private jobs stay readable inside the organization.
	require.Equal(t, http.StatusOK, performRequest(t, r, http.MethodGet, path, colleague.Token, nil).Code)
	require.Equal(t, http.StatusNotFound, performRequest(t, r, http.MethodGet, path, "", nil).Code)

	w = performRequest(t, r, http.MethodPut, path, owner.Token, map[string]interface{}{
		"title":        "Staff Engineer",
		"requirements": []string{"Go"},
		"visibility":   "PUBLIC",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[dto.JobDTO](t, w)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, "Go services", updated.Description)
	assert.Equal(t, []string{"Go"}, updated.Requirements)

	w = performRequest(t, r, http.MethodPut, path, owner.Token, map[string]string{"title": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodDelete, path, colleague.Token, nil).Code)
	require.Equal(t, http.StatusOK, performRequest(t, r, http.MethodDelete, path, owner.Token, nil).Code)
	require.Equal(t, http.StatusNotFound, performRequest(t, r, http.MethodGet, path, owner.Token, nil).Code)
}

func TestJobHandler_Lists(t *testing.T) {
	env := setupHandlerTestEnv(t)
	owner, org := env.recruiterWithOrg(t, "owner@example.com", "acme")
	first := env.ongoingJob(t, owner, models.JobVisibilityPublic)
	env.ongoingJob(t, owner, models.JobVisibilityPrivate)
	second := env.ongoingJob(t, owner, models.JobVisibilityPublic)
	r := env.router()

	w := performRequest(t, r, http.MethodGet, "/api/jobs/public", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.JobListResponse](t, w)
	require.Nil(t, list.Pagination)
	require.Len(t, list.Jobs, 2)
	for _, j := range list.Jobs {
		assert.Equal(t, models.JobVisibilityPublic, j.Visibility)
		assert.Equal(t, models.JobStatusOngoing, j.Status)
	}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, []string{list.Jobs[0].ID, list.Jobs[1].ID})

	w = performRequest(t, r, http.MethodGet, "/api/jobs/public?page=1&limit=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	paged := decode[dto.JobListResponse](t, w)
	require.NotNil(t, paged.Pagination)
	assert.EqualValues(t, 2, paged.Pagination.Total)
	assert.Equal(t, 1, paged.Pagination.Limit)
	assert.Len(t, paged.Jobs, 1)

	w = performRequest(t, r, http.MethodGet, "/api/jobs/mine", owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[dto.JobListResponse](t, w).Jobs, 3)

	w = performRequest(t, r, http.MethodGet, "/api/organizations/"+org.ID+"/jobs", owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[dto.JobListResponse](t, w).Jobs, 3)

	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	require.Equal(t, http.StatusForbidden, performRequest(t, r, http.MethodGet, "/api/jobs/mine", candidate.Token, nil).Code)
	require.Equal(t, http.StatusUnauthorized, performRequest(t, r, http.MethodGet, "/api/jobs/mine", "", nil).Code)
}
