package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/hiring-platform-api/internal/errors"
	"github.com/yukikurage/hiring-platform-api/internal/logger"
	"github.com/yukikurage/hiring-platform-api/internal/middleware"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// badRequestBody reports a binding failure, listing the rejected fields when
// validation is what failed.
func badRequestBody(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	details := make([]apierrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apierrors.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	apierrors.BadRequestWithDetails(c, "Invalid request body", details)
}

// respondError maps a service error to its HTTP response. Store details are logged, never returned.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		logger.Error("request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "")
		return
	}

	switch svcErr.Kind {
	case services.KindUnauthenticated:
		apierrors.Unauthorized(c, svcErr.Message)
	case services.KindForbidden:
		apierrors.Forbidden(c, svcErr.Message)
	case services.KindNotFound:
		apierrors.NotFound(c, svcErr.Message)
	case services.KindConflict:
		apierrors.Conflict(c, svcErr.Message)
	case services.KindValidation:
		apierrors.BadRequest(c, svcErr.Message)
	default:
		logger.Error("request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, svcErr.Message)
	}
}

// principal returns the caller set by RequireAuth or writes a 401.
func principal(c *gin.Context) (services.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
	}
	return p, ok
}
