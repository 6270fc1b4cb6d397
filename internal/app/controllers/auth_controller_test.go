package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/auth"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "melodica.test",
	})
	controller := NewAuthController(jwtService, zerolog.Nop())

	router := gin.New()
	router.POST("/jwt", controller.IssueToken)
	return router
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthController_IssueToken(t *testing.T) {
	router := newAuthTestRouter()

	t.Run("issues a token for a valid request", func(t *testing.T) {
		w := postJSON(router, "/jwt", dto.TokenRequest{Email: "sam@melodica.app", Role: "STUDENT"})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data dto.TokenResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Token)
		assert.True(t, resp.Data.ExpiresAt.After(time.Now()))
	})

	t.Run("defaults the role when none is asserted", func(t *testing.T) {
		w := postJSON(router, "/jwt", dto.TokenRequest{Email: "sam@melodica.app"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		w := postJSON(router, "/jwt", dto.TokenRequest{Email: "sam@melodica.app", Role: "SUPERUSER"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown role")
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		w := postJSON(router, "/jwt", dto.TokenRequest{Role: "STUDENT"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
