package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequireUUIDParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orgs/:id/members/:userId", RequireUUIDParams("id", "userId"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	valid := uuid.NewString()
	assert.Equal(t, http.StatusOK, get(r, "/orgs/"+valid+"/members/"+uuid.NewString(), "").Code)

	w := get(r, "/orgs/"+valid+"/members/42", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid userId")

	assert.Equal(t, http.StatusBadRequest, get(r, "/orgs/abc/members/"+valid, "").Code)
}
