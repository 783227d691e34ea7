package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/services"
)

// LogsController handles audit log requests
type LogsController struct {
	services *services.Services
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services) *LogsController {
	return &LogsController{
		services: services,
	}
}

// Index handles GET /logs, optionally filtered by ?user_id=
func (c *LogsController) Index(w http.ResponseWriter, r *http.Request) {
	title := "All Logs"
	var (
		logs []models.LogModel
		err  error
	)

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || userID <= 0 {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}
		title = fmt.Sprintf("Logs for user %d", userID)
		logs, err = c.services.Log.GetByUserID(r.Context(), userID)
	} else {
		logs, err = c.services.Log.GetAll(r.Context())
	}
	if err != nil {
		http.Error(w, "Failed to load logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		pageData
		Logs []models.LogModel
	}{
		pageData: newPage(r, title, "logs"),
		Logs:     logs,
	}

	renderTemplate(w, "logs", "logs.html", templateData)
}

// View handles GET /logs/{id}
func (c *LogsController) View(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "Invalid log ID", http.StatusBadRequest)
		return
	}

	entry, err := c.services.Log.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		renderNotFound(w, r, "The requested log entry does not exist.")
		return
	}
	if err != nil {
		http.Error(w, "Failed to load log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		pageData
		Log *models.LogModel
	}{
		pageData: newPage(r, fmt.Sprintf("Log %d", entry.ID), "logs"),
		Log:      entry,
	}

	renderTemplate(w, "log_view", "log_view.html", templateData)
}
