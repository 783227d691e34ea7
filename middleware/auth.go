package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/user-management/userctx"
)

// LoadOperator copies the signed-in operator, if any, from the session into the request context
func LoadOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		if userID, ok := sess.Get("user_id").(string); ok && userID != "" {
			ctx := userctx.SetUserID(r.Context(), userID)
			if name, ok := sess.Get("user_nickname").(string); ok {
				ctx = userctx.SetDisplayName(ctx, name)
			}
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth ensures the operator is authenticated
// If not authenticated, redirects to /login and stores the intended destination.
// LoadOperator must run first.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.GetUserID(r.Context()) == "" {
			sess := session.GetSession(r)
			sess.Set("redirect_after_login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
