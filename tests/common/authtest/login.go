//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"barberbook/internal/handler/dto/request"
	"barberbook/internal/handler/dto/response"
	"barberbook/tests/common/dbtest"
	"barberbook/tests/common/httptest"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.AuthResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.Token, "Login response did not include a token")

	return resp.Token
}

// CreateAndLogin seeds a user row and returns a bearer token for it.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, name, email, role)
	return LoginUser(t, router, email, "password123")
}
