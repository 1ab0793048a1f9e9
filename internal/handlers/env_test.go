package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hiring-platform-api/internal/constants"
	"github.com/yukikurage/hiring-platform-api/internal/database"
	"github.com/yukikurage/hiring-platform-api/internal/middleware"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/notify"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
	"github.com/yukikurage/hiring-platform-api/internal/security"
	"github.com/yukikurage/hiring-platform-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubGoogleVerifier accepts the tokens it knows about.
type stubGoogleVerifier map[string]*security.GoogleIdentity

func (v stubGoogleVerifier) Verify(_ context.Context, idToken string) (*security.GoogleIdentity, error) {
	if id, ok := v[idToken]; ok {
		return id, nil
	}
	return nil, errors.New("token rejected")
}

const validGoogleToken = "google-valid"

type handlerTestEnv struct {
	db          *gorm.DB
	authService *services.AuthService
	orgService  *services.OrganizationService
	jobService  *services.JobService
	appService  *services.ApplicationService

	auth         *AuthHandler
	organization *OrganizationHandler
	job          *JobHandler
	application  *ApplicationHandler
	dashboard    *DashboardHandler
	health       *HealthHandler
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	authService := services.NewAuthService(userRepo, security.NewTokenManager("test-secret", time.Hour), security.NopDenylist{}, stubGoogleVerifier{
		validGoogleToken: {Subject: "g-1", Email: "g@example.com", EmailVerified: true, FirstName: "Grace"},
	})
	orgService := services.NewOrganizationService(orgRepo, userRepo, notify.LogInviter{})
	jobService := services.NewJobService(jobRepo)
	appService := services.NewApplicationService(appRepo, jobRepo)
	dashboardService := services.NewDashboardService(jobRepo, appRepo)

	return handlerTestEnv{
		db:           db,
		authService:  authService,
		orgService:   orgService,
		jobService:   jobService,
		appService:   appService,
		auth:         NewAuthHandler(authService),
		organization: NewOrganizationHandler(orgService),
		job:          NewJobHandler(jobService),
		application:  NewApplicationHandler(appService),
		dashboard:    NewDashboardHandler(dashboardService),
		health:       NewHealthHandler(db),
	}
}

// router mounts the handlers the same way the server does, minus CORS and metrics.
func (env handlerTestEnv) router() *gin.Engine {
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/health", env.health.Health)

	authRequired := middleware.RequireAuth(env.authService)
	recruiterOnly := middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin)

	api := r.Group("/api")
	api.POST("/auth/register", env.auth.Register)
	api.POST("/auth/login", env.auth.Login)
	api.POST("/auth/google", env.auth.GoogleSignIn)
	api.POST("/auth/logout", middleware.OptionalAuth(env.authService), env.auth.Logout)
	api.GET("/auth/me", authRequired, env.auth.Me)

	orgs := api.Group("/organizations", authRequired)
	orgs.POST("", env.organization.CreateOrganization)
	orgs.GET("/me", env.organization.GetMyOrganization)
	orgs.GET("/:id", middleware.RequireUUIDParams("id"), env.organization.GetOrganization)
	orgs.PUT("/:id", middleware.RequireUUIDParams("id"), env.organization.UpdateOrganization)
	orgs.DELETE("/:id", middleware.RequireUUIDParams("id"), env.organization.DeleteOrganization)
	orgs.GET("/:id/members", middleware.RequireUUIDParams("id"), env.organization.ListMembers)
	orgs.POST("/:id/members", middleware.RequireUUIDParams("id"), env.organization.AddMember)
	orgs.PUT("/:id/members/:userId", middleware.RequireUUIDParams("id", "userId"), env.organization.UpdateMember)
	orgs.DELETE("/:id/members/:userId", middleware.RequireUUIDParams("id", "userId"), env.organization.RemoveMember)
	orgs.GET("/:id/jobs", middleware.RequireUUIDParams("id"), env.job.ListOrganizationJobs)

	api.GET("/jobs/public", env.job.ListPublicJobs)
	api.GET("/jobs/:id", middleware.RequireUUIDParams("id"), middleware.OptionalAuth(env.authService), env.job.GetJob)
	jobs := api.Group("/jobs", authRequired)
	jobs.POST("", env.job.CreateJob)
	jobs.GET("/mine", env.job.ListMyJobs)
	jobs.PUT("/:id", middleware.RequireUUIDParams("id"), env.job.UpdateJob)
	jobs.PATCH("/:id/status", middleware.RequireUUIDParams("id"), env.job.ChangeJobStatus)
	jobs.DELETE("/:id", middleware.RequireUUIDParams("id"), env.job.DeleteJob)
	jobs.POST("/:id/apply", middleware.RequireUUIDParams("id"), env.application.Apply)
	jobs.GET("/:id/applications", middleware.RequireUUIDParams("id"), env.application.ListJobApplications)

	apps := api.Group("/applications", authRequired)
	apps.GET("/mine", env.application.ListMyApplications)
	apps.GET("/:id", middleware.RequireUUIDParams("id"), env.application.GetApplication)
	apps.PATCH("/:id/status", middleware.RequireUUIDParams("id"), env.application.UpdateApplicationStatus)

	api.GET("/recruiter/dashboard/stats", authRequired, recruiterOnly, env.dashboard.Stats)

	return r
}

func (env handlerTestEnv) register(t *testing.T, email string, role models.Role) *services.AuthResult {
	t.Helper()
	res, err := env.authService.Register(context.Background(), services.RegisterInput{
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return res
}

func (env handlerTestEnv) principal(t *testing.T, res *services.AuthResult) services.Principal {
	t.Helper()
	p, err := env.authService.ResolvePrincipal(context.Background(), res.Token)
	require.NoError(t, err)
	return *p
}

// recruiterWithOrg registers a recruiter who owns a fresh organization.
func (env handlerTestEnv) recruiterWithOrg(t *testing.T, email, slug string) (*services.AuthResult, *models.Organization) {
	t.Helper()
	res := env.register(t, email, models.RoleRecruiter)
	org, err := env.orgService.Create(context.Background(), env.principal(t, res), services.CreateOrganizationInput{
		Name: slug,
		Slug: slug,
	})
	require.NoError(t, err)
	return res, org
}

// ongoingJob creates a job and opens it for applications.
func (env handlerTestEnv) ongoingJob(t *testing.T, recruiter *services.AuthResult, visibility models.JobVisibility) *models.Job {
	t.Helper()
	p := env.principal(t, recruiter)
	job, err := env.jobService.Create(context.Background(), p, services.CreateJobInput{
		Title:       "Backend Engineer",
		Description: "Go services",
		Visibility:  visibility,
	})
	require.NoError(t, err)
	job, err = env.jobService.ChangeStatus(context.Background(), p, job.ID, models.JobStatusOngoing)
	require.NoError(t, err)
	return job
}

func performRequest(t *testing.T, r http.Handler, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", constants.BearerPrefix+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func newRequestWithCookies(method, path string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addMemberInput(email string, role models.Role) services.AddMemberInput {
	return services.AddMemberInput{Email: email, Role: role}
}
