package controllers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/services"
	"github.com/blogem/user-management/templates"
	"github.com/blogem/user-management/userctx"
)

const (
	flashSuccessKey = "flash_success"
	flashErrorKey   = "flash_error"
)

var templateFuncs = template.FuncMap{
	"formatDate":     models.FormatDate,
	"formatDateTime": models.FormatDateTime,
}

// pageData carries the fields every page passes to the layout
type pageData struct {
	Title       string
	CurrentPage string
	Error       string
	Success     string
	Operator    string
}

// newPage builds the layout fields for a request, consuming any pending flash message
func newPage(r *http.Request, title, currentPage string) pageData {
	page := pageData{
		Title:       title,
		CurrentPage: currentPage,
		Operator:    userctx.GetDisplayName(r.Context()),
	}

	sess := session.GetSession(r)
	if msg, ok := sess.Get(flashSuccessKey).(string); ok {
		page.Success = msg
		sess.Delete(flashSuccessKey)
	}
	if msg, ok := sess.Get(flashErrorKey).(string); ok {
		page.Error = msg
		sess.Delete(flashErrorKey)
	}
	return page
}

// setFlash stores a message shown on the next rendered page
func setFlash(r *http.Request, flash models.FlashMessage) {
	key := flashSuccessKey
	if flash.Type == "error" {
		key = flashErrorKey
	}
	session.GetSession(r).Set(key, flash.Message)
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl, err := template.New(templateName).Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("Failed to render template %s: %v", pageTemplate, err)
		return err
	}

	return nil
}

// renderNotFound renders the 404 page with the given message
func renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	templateData := struct {
		pageData
		Message string
	}{
		pageData: newPage(r, "Not Found", ""),
		Message:  message,
	}

	renderTemplateWithStatus(w, http.StatusNotFound, "not_found", "not_found.html", templateData)
}

// parseID reads a positive integer route parameter
func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Controllers holds all controller instances
type Controllers struct {
	Auth  *AuthController
	Home  *HomeController
	Users *UsersController
	Logs  *LogsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, authEnabled bool) *Controllers {
	return &Controllers{
		Auth:  NewAuthController(),
		Home:  NewHomeController(services, authEnabled),
		Users: NewUsersController(services),
		Logs:  NewLogsController(services),
	}
}
