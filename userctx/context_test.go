package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorIdentity(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetUserID(ctx))
	assert.Empty(t, GetDisplayName(ctx))

	ctx = SetUserID(ctx, "auth0|123")
	ctx = SetDisplayName(ctx, "jane")

	assert.Equal(t, "auth0|123", GetUserID(ctx))
	assert.Equal(t, "jane", GetDisplayName(ctx))
}

func TestGetUserID_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, 42)
	assert.Empty(t, GetUserID(ctx))
}
