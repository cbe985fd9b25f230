package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository/memory"
	authUC "github.com/domainflow/backend/usecase/auth"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	users := memory.NewUserRepository(memory.NewStore())
	_, err := users.Create(context.Background(), &domain.User{
		Username: "demo",
		Password: "demo123",
		Email:    "demo@example.com",
		FullName: "Demo User",
		Role:     "admin",
	})
	require.NoError(t, err)
	return NewAuthHandler(authUC.New(users, "test-secret", "domainflow", time.Hour, nil), nil, nil)
}

func TestAuthHandlerLogin(t *testing.T) {
	h := newAuthHandler(t)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBodyString(`{"username":"demo","password":"demo123"}`)
	h.Login(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "demo", user["username"])
	assert.NotContains(t, user, "password")
}

func TestAuthHandlerLoginRejectsBadCredentials(t *testing.T) {
	h := newAuthHandler(t)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBodyString(`{"username":"demo","password":"nope"}`)
	h.Login(ctx)

	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "UNAUTHORIZED", envelope.Code)
}

func TestAuthHandlerLoginValidatesPayload(t *testing.T) {
	h := newAuthHandler(t)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBodyString(`{"username":"demo"}`)
	h.Login(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestAuthHandlerSession(t *testing.T) {
	h := newAuthHandler(t)

	ctx := authedCtx("1")
	h.Session(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "demo", data["username"])
	assert.NotContains(t, data, "password")
}
