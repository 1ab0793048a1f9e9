package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/hiring-platform-api/internal/config"
	"github.com/yukikurage/hiring-platform-api/internal/constants"
	"github.com/yukikurage/hiring-platform-api/internal/handlers"
	"github.com/yukikurage/hiring-platform-api/internal/middleware"
	"github.com/yukikurage/hiring-platform-api/internal/models"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Organization *handlers.OrganizationHandler
	Job          *handlers.JobHandler
	Application  *handlers.ApplicationHandler
	Dashboard    *handlers.DashboardHandler
	Health       *handlers.HealthHandler
}

// NewRouter wires middleware and routes onto a gin engine.
func NewRouter(
	cfg *config.Config,
	store sessions.Store,
	resolver middleware.PrincipalResolver,
	registry *prometheus.Registry,
	h Handlers,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.NewMetricsBuilder(registry).Build())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	requireAuth := middleware.RequireAuth(resolver)
	optionalAuth := middleware.OptionalAuth(resolver)
	requireRecruiter := middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin)
	id := middleware.RequireUUIDParams("id")

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/google", h.Auth.GoogleSignIn)
			auth.POST("/logout", optionalAuth, h.Auth.Logout)
			auth.GET("/me", requireAuth, h.Auth.Me)
		}

		orgs := api.Group("/organizations")
		orgs.Use(requireAuth)
		{
			orgs.POST("", h.Organization.CreateOrganization)
			orgs.GET("/me", h.Organization.GetMyOrganization)
			orgs.GET("/:id", id, h.Organization.GetOrganization)
			orgs.PUT("/:id", id, h.Organization.UpdateOrganization)
			orgs.DELETE("/:id", id, h.Organization.DeleteOrganization)
			orgs.GET("/:id/members", id, h.Organization.ListMembers)
			orgs.POST("/:id/members", id, h.Organization.AddMember)
			orgs.PUT("/:id/members/:userId", middleware.RequireUUIDParams("id", "userId"), h.Organization.UpdateMember)
			orgs.DELETE("/:id/members/:userId", middleware.RequireUUIDParams("id", "userId"), h.Organization.RemoveMember)
			orgs.GET("/:id/jobs", id, h.Job.ListOrganizationJobs)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("/public", h.Job.ListPublicJobs)
			jobs.GET("/:id", id, optionalAuth, h.Job.GetJob)

			jobs.POST("", requireAuth, h.Job.CreateJob)
			jobs.GET("/mine", requireAuth, h.Job.ListMyJobs)
			jobs.PUT("/:id", requireAuth, id, h.Job.UpdateJob)
			jobs.PATCH("/:id/status", requireAuth, id, h.Job.ChangeJobStatus)
			jobs.DELETE("/:id", requireAuth, id, h.Job.DeleteJob)
			jobs.POST("/:id/apply", requireAuth, id, h.Application.Apply)
			jobs.GET("/:id/applications", requireAuth, id, h.Application.ListJobApplications)
		}

		apps := api.Group("/applications")
		apps.Use(requireAuth)
		{
			apps.GET("/mine", h.Application.ListMyApplications)
			apps.GET("/:id", id, h.Application.GetApplication)
			apps.PATCH("/:id/status", id, h.Application.UpdateApplicationStatus)
		}

		api.GET("/recruiter/dashboard/stats", requireAuth, requireRecruiter, h.Dashboard.Stats)
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	c.AllowCredentials = true
	c.MaxAge = 12 * time.Hour
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
