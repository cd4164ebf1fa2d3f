package api

import (
	"context"
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/softblush/signup-landing/pkg/models"
	"github.com/softblush/signup-landing/pkg/services"
	"github.com/softblush/signup-landing/pkg/ui"
	"github.com/softblush/signup-landing/pkg/utils"
)

// SignupLister exposes the local signup cache for inspection
type SignupLister interface {
	ReadAll(ctx context.Context) []models.Signup
}

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	controller services.SignupController
	signups    SignupLister
	adminToken string
}

// NewHandlers creates a new Handlers instance. An empty adminToken
// disables the signup listing.
func NewHandlers(controller services.SignupController, signups SignupLister, adminToken string) *Handlers {
	return &Handlers{
		controller: controller,
		signups:    signups,
		adminToken: adminToken,
	}
}

// Register mounts the routes on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/health", h.HealthCheck)
	router.POST("/api/signup", h.HandleSignup)
	router.GET("/api/signups", h.ListSignups)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleSignup runs one submission of the signup form. The body may be JSON
// or a plain form post.
func (h *Handlers) HandleSignup(c *gin.Context) {
	var form models.SignupFormData
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[%s] Error binding signup form: %v", utils.RequestID(c.Request.Context()), err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request format"})
		return
	}

	page := &ui.Page{}
	page.Open()
	page.Fields = ui.Fields{Name: form.Name, Email: form.Email, Honeypot: form.Honeypot}

	res := h.controller.Submit(c.Request.Context(), page, form)

	status := "success"
	code := http.StatusOK
	switch {
	case res.ValidationErr != nil:
		status, code = "error", http.StatusBadRequest
	case !res.Success:
		status, code = "error", http.StatusUnprocessableEntity
	}

	body := gin.H{
		"status":  status,
		"message": res.Message,
		"page":    page,
	}
	if res.Outcome.Kind != "" {
		body["outcome"] = res.Outcome
	}
	c.JSON(code, body)
}

// ListSignups returns the local signup cache to a caller holding the admin token
func (h *Handlers) ListSignups(c *gin.Context) {
	if h.adminToken == "" || h.signups == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	signups := h.signups.ReadAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"count":   len(signups),
		"signups": signups,
	})
}
