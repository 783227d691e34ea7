package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/services"
)

// UsersController handles user management requests
type UsersController struct {
	services *services.Services
}

// NewUsersController creates a new users controller
func NewUsersController(services *services.Services) *UsersController {
	return &UsersController{
		services: services,
	}
}

// List handles GET /users
func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.User.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to load users: "+err.Error(), http.StatusInternalServerError)
		return
	}
	c.renderList(w, r, "All Users", users)
}

// ListActive handles GET /users/active
func (c *UsersController) ListActive(w http.ResponseWriter, r *http.Request) {
	c.listByStatus(w, r, true, "Active Users")
}

// ListInactive handles GET /users/notactive
func (c *UsersController) ListInactive(w http.ResponseWriter, r *http.Request) {
	c.listByStatus(w, r, false, "Non Active Users")
}

func (c *UsersController) listByStatus(w http.ResponseWriter, r *http.Request, isActive bool, title string) {
	users, err := c.services.User.GetByActiveStatus(r.Context(), isActive)
	if err != nil {
		http.Error(w, "Failed to load users: "+err.Error(), http.StatusInternalServerError)
		return
	}
	c.renderList(w, r, title, users)
}

func (c *UsersController) renderList(w http.ResponseWriter, r *http.Request, title string, users []models.UserModel) {
	templateData := struct {
		pageData
		Users []models.UserModel
	}{
		pageData: newPage(r, title, "users"),
		Users:    users,
	}

	renderTemplate(w, "users", "users.html", templateData)
}

// Add handles GET /users/add
func (c *UsersController) Add(w http.ResponseWriter, r *http.Request) {
	c.renderAddForm(w, r, http.StatusOK, &models.AddUserModel{}, nil, "")
}

// Create handles POST /users/create
func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.AddUserModel{
		Forename:    strings.TrimSpace(r.FormValue("forename")),
		Surname:     strings.TrimSpace(r.FormValue("surname")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		DateOfBirth: parseFormDate(r.FormValue("date_of_birth")),
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.renderAddForm(w, r, http.StatusBadRequest, form, errs, "")
		return
	}

	if _, err := c.services.User.Add(r.Context(), form); err != nil {
		log.Printf("Failed to create user %s %s: %v", form.Forename, form.Surname, err)
		c.renderAddForm(w, r, http.StatusInternalServerError, form, nil,
			"An error occurred while creating the user. Please try again.")
		return
	}

	setFlash(r, models.FlashMessage{Type: "success", Message: "User created successfully!"})
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (c *UsersController) renderAddForm(w http.ResponseWriter, r *http.Request, status int, form *models.AddUserModel, errs []string, message string) {
	page := newPage(r, "Add User", "users")
	if message != "" {
		page.Error = message
	}

	templateData := struct {
		pageData
		Form   *models.AddUserModel
		Errors []string
	}{
		pageData: page,
		Form:     form,
		Errors:   errs,
	}

	renderTemplateWithStatus(w, status, "user_add", "user_add.html", templateData)
}

// View handles GET /users/{id}
func (c *UsersController) View(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := c.services.User.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if user == nil {
		renderNotFound(w, r, "The requested user does not exist.")
		return
	}

	templateData := struct {
		pageData
		User *models.UserModel
	}{
		pageData: newPage(r, user.FullName(), "users"),
		User:     user,
	}

	renderTemplate(w, "user_view", "user_view.html", templateData)
}

// Edit handles GET /users/{id}/edit
func (c *UsersController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	form, err := c.services.User.GetUpdateModel(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		renderNotFound(w, r, "The requested user does not exist.")
		return
	}
	if err != nil {
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	c.renderEditForm(w, r, http.StatusOK, form, nil)
}

// Update handles POST /users/{id}
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	// The hidden field comes first, so a checked box wins
	activeValues := r.Form["is_active"]
	isActive := len(activeValues) > 0 && activeValues[len(activeValues)-1] == "on"

	form := &models.UpdateUserModel{
		ID:          id,
		Forename:    strings.TrimSpace(r.FormValue("forename")),
		Surname:     strings.TrimSpace(r.FormValue("surname")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		DateOfBirth: parseFormDate(r.FormValue("date_of_birth")),
		IsActive:    isActive,
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.renderEditForm(w, r, http.StatusBadRequest, form, errs)
		return
	}

	err := c.services.User.Update(r.Context(), form)
	if errors.Is(err, repositories.ErrNotFound) {
		renderNotFound(w, r, "The requested user does not exist.")
		return
	}
	if err != nil {
		http.Error(w, "Failed to update user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	setFlash(r, models.FlashMessage{Type: "success", Message: "User updated successfully!"})
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (c *UsersController) renderEditForm(w http.ResponseWriter, r *http.Request, status int, form *models.UpdateUserModel, errs []string) {
	templateData := struct {
		pageData
		Form   *models.UpdateUserModel
		Errors []string
	}{
		pageData: newPage(r, "Edit User", "users"),
		Form:     form,
		Errors:   errs,
	}

	renderTemplateWithStatus(w, status, "user_edit", "user_edit.html", templateData)
}

// Logs handles GET /users/{id}/logs
func (c *UsersController) Logs(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := c.services.User.GetUserAndLogs(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to load user logs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if user == nil {
		renderNotFound(w, r, "The requested user does not exist.")
		return
	}

	templateData := struct {
		pageData
		User *models.UserLogsModel
	}{
		pageData: newPage(r, "User Logs", "users"),
		User:     user,
	}

	renderTemplate(w, "user_logs", "user_logs.html", templateData)
}

// Delete handles POST /users/{id}/delete
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	err := c.services.User.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		renderNotFound(w, r, "The requested user does not exist.")
		return
	}
	if err != nil {
		http.Error(w, "Failed to delete user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	setFlash(r, models.FlashMessage{Type: "success", Message: "User deleted successfully!"})
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// parseFormDate returns the zero time for a missing or malformed date, which validation reports
func parseFormDate(value string) time.Time {
	date, err := models.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}
	}
	return date
}
