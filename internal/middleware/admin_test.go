package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRoles struct {
	admin bool
	err   error
	calls int
}

func (f *fakeRoles) HasRole(_ context.Context, _ uint, _ string) (bool, error) {
	f.calls++
	return f.admin, f.err
}

type fakeRevoker struct {
	revoked []string
}

func (f *fakeRevoker) Revoke(_ context.Context, jti string, _ time.Time) error {
	f.revoked = append(f.revoked, jti)
	return nil
}

func adminRouter(roles RoleChecker, revoker TokenRevoker, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(func(c *gin.Context) {
		c.Set(ContextUserID, uint(7))
		c.Set(ContextTokenID, "jti-1")
		c.Set(ContextTokenExp, time.Now().Add(time.Hour))
	})
	r.Use(RequireAdmin(roles, revoker))

	r.GET("/admin/ping", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	roles := &fakeRoles{admin: true}
	revoker := &fakeRevoker{}
	hits := 0

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	adminRouter(roles, revoker, &hits).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Empty(t, revoker.revoked)
}

func TestRequireAdminDeniesWithoutRole(t *testing.T) {
	roles := &fakeRoles{admin: false}
	revoker := &fakeRevoker{}
	hits := 0

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	adminRouter(roles, revoker, &hits).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin_required")
	assert.Contains(t, w.Body.String(), "No tenés permisos de administrador")

	// el handler del panel nunca corre y el token queda revocado
	assert.Equal(t, 0, hits)
	assert.Equal(t, []string{"jti-1"}, revoker.revoked)
}

func TestRequireAdminFailsClosedOnLookupError(t *testing.T) {
	roles := &fakeRoles{admin: true, err: errors.New("connection refused")}
	revoker := &fakeRevoker{}
	hits := 0

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	adminRouter(roles, revoker, &hits).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, hits)
	assert.Equal(t, []string{"jti-1"}, revoker.revoked)
}
