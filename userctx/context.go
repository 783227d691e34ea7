// Package userctx carries the signed-in operator's identity through a request context.
package userctx

import "context"

// Context key type
type contextKey string

const (
	displayNameKey contextKey = "operator_name"
	UserIDKey      contextKey = "user_id"
)

// SetDisplayName adds the operator's display name to request context
func SetDisplayName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, displayNameKey, name)
}

// GetDisplayName retrieves the operator's display name from request context
func GetDisplayName(ctx context.Context) string {
	name, ok := ctx.Value(displayNameKey).(string)
	if !ok {
		return ""
	}
	return name
}

// SetUserID adds the operator's subject ID to request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves the operator's subject ID from request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
