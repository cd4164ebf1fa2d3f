package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softblush/signup-landing/pkg/cache"
	"github.com/softblush/signup-landing/pkg/clients/ingest"
	"github.com/softblush/signup-landing/pkg/services"
	"github.com/softblush/signup-landing/pkg/store"
)

type signupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Outcome *struct {
		Kind   string `json:"kind"`
		Reason string `json:"reason"`
		Cause  string `json:"cause"`
	} `json:"outcome"`
	Page struct {
		ModalVisible bool `json:"modal_visible"`
		Error        struct {
			Text    string `json:"text"`
			Visible bool   `json:"visible"`
		} `json:"error"`
		Success struct {
			Text    string `json:"text"`
			Visible bool   `json:"visible"`
		} `json:"success"`
	} `json:"page"`
}

func setupRouter(t *testing.T, endpoint string) (*gin.Engine, *cache.SignupCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signups := cache.NewSignupCache(store.NewMemory(), "")
	controller := services.NewSignupController(ingest.NewClient(endpoint, nil), signups, "")

	router := gin.New()
	NewHandlers(controller, signups, "secret").Register(router)
	return router, signups
}

func postJSON(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, signupResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp signupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleSignupValidationError(t *testing.T) {
	router, signups := setupRouter(t, "")

	w, resp := postJSON(t, router, `{"name":"","email":"jane@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Please provide both your name and email.", resp.Message)
	assert.Nil(t, resp.Outcome)
	assert.True(t, resp.Page.Error.Visible)
	assert.False(t, resp.Page.Success.Visible)
	assert.Empty(t, signups.ReadAll(context.Background()))
}

func TestHandleSignupLocalOnly(t *testing.T) {
	router, signups := setupRouter(t, "")

	w, resp := postJSON(t, router, `{"name":"Jane","email":"Jane@X.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.Message, "saved locally")
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, "unreachable", resp.Outcome.Kind)
	assert.Equal(t, "not-configured", resp.Outcome.Cause)
	assert.True(t, resp.Page.ModalVisible)
	assert.Len(t, signups.ReadAll(context.Background()), 1)
}

func TestHandleSignupRemoteResponses(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantCode   int
		wantStatus string
		wantMsg    string
		wantCached int
	}{
		{"accepted", `{"ok":true}`, http.StatusOK, "success", services.MsgReceived, 1},
		{"duplicate", `{"error":"Duplicate email"}`, http.StatusOK, "success", services.MsgAlreadyListed, 1},
		{"rejected", `{"error":"Invalid payload"}`, http.StatusUnprocessableEntity, "error", "There was a problem processing your request: Invalid payload", 0},
		{"garbage", `oops`, http.StatusOK, "success", services.MsgSavedLocallyUnreachable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			router, signups := setupRouter(t, srv.URL)
			w, resp := postJSON(t, router, `{"name":"Jane","email":"jane@x.com"}`)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Len(t, signups.ReadAll(context.Background()), tt.wantCached)
		})
	}
}

func TestHandleSignupFormEncoded(t *testing.T) {
	router, signups := setupRouter(t, "")

	form := url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "honeypot": {""}}
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, signups.ReadAll(context.Background()), 1)
}

func TestHandleSignupHoneypot(t *testing.T) {
	router, signups := setupRouter(t, "")

	w, resp := postJSON(t, router, `{"name":"Jane","email":"jane@x.com","honeypot":"http://spam"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid submission.", resp.Message)
	assert.Empty(t, signups.ReadAll(context.Background()))
}

func TestHandleSignupBadJSON(t *testing.T) {
	router, _ := setupRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSignups(t *testing.T) {
	router, _ := setupRouter(t, "")
	postJSON(t, router, `{"name":"Jane","email":"jane@x.com"}`)

	get := func(auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/signups", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, get("").Code)
	assert.Equal(t, http.StatusUnauthorized, get("Bearer wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, get("secret").Code)
	assert.Equal(t, http.StatusUnauthorized, get("Basic secret").Code)

	w := get("Bearer secret")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1,"signups":[{"name":"Jane","email":"jane@x.com"}]}`, w.Body.String())
}

func TestListSignupsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandlers(nil, nil, "").Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/signups", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
