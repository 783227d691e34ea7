package controllers

import (
	"net/http"

	"github.com/blogem/user-management/services"
	"github.com/blogem/user-management/userctx"
)

// HomeController handles the landing page
type HomeController struct {
	services    *services.Services
	authEnabled bool
}

// NewHomeController creates a new home controller
func NewHomeController(services *services.Services, authEnabled bool) *HomeController {
	return &HomeController{
		services:    services,
		authEnabled: authEnabled,
	}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	if c.authEnabled && userctx.GetUserID(r.Context()) == "" {
		renderTemplate(w, "landing", "landing.html", newPage(r, "Welcome", "home"))
		return
	}

	active, err := c.services.User.GetByActiveStatus(r.Context(), true)
	if err != nil {
		http.Error(w, "Failed to load users: "+err.Error(), http.StatusInternalServerError)
		return
	}
	inactive, err := c.services.User.GetByActiveStatus(r.Context(), false)
	if err != nil {
		http.Error(w, "Failed to load users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		pageData
		TotalUsers    int
		ActiveUsers   int
		InactiveUsers int
	}{
		pageData:      newPage(r, "Home", "home"),
		TotalUsers:    len(active) + len(inactive),
		ActiveUsers:   len(active),
		InactiveUsers: len(inactive),
	}

	renderTemplate(w, "home", "home.html", templateData)
}

// NotFound renders the 404 page for unknown routes
func (c *HomeController) NotFound(w http.ResponseWriter, r *http.Request) {
	renderNotFound(w, r, "The page you are looking for does not exist.")
}
