package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/user-management/authenticator"
)

const (
	sessionStateKey         = "state"
	sessionUserIDKey        = "user_id"
	sessionNicknameKey      = "user_nickname"
	sessionRedirectAfterKey = "redirect_after_login"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set(sessionStateKey, state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the callback from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		storedState, ok := sess.Get(sessionStateKey).(string)
		if !ok || storedState == "" {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		subject := claims.Subject()
		if subject == "" {
			http.Error(w, "ID Token has no subject", http.StatusUnauthorized)
			return
		}

		sess.Set(sessionUserIDKey, subject)
		sess.Set(sessionNicknameKey, claims.DisplayName())
		sess.Delete(sessionStateKey)
		log.Printf("Operator %s signed in", claims.DisplayName())

		target := "/"
		if dest, ok := sess.Get(sessionRedirectAfterKey).(string); ok && dest != "" {
			target = dest
			sess.Delete(sessionRedirectAfterKey)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// Logout clears the operator from the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(sessionUserIDKey)
	sess.Delete(sessionNicknameKey)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
