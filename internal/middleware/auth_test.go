package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/testutil"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_AuthVerifier_Middleware(t *testing.T) {
	ctx := testutil.MockContext()

	token, err := xcontext.TokenEngine(ctx).Generate("user1", model.AccessToken{
		ID:   "user1",
		Name: "user1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	newCtx, err := NewAuthVerifier().WithAccessToken().
		Middleware()(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))
}

func Test_AuthVerifier_Middleware_invalidToken(t *testing.T) {
	ctx := testutil.MockContext()

	req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	_, err := NewAuthVerifier().WithAccessToken().
		Middleware()(xcontext.WithHTTPRequest(ctx, req))
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.Unauthenticated), errx.Code)
}

func Test_AuthVerifier_Middleware_optional(t *testing.T) {
	ctx := testutil.MockContext()

	req := httptest.NewRequest(http.MethodGet, "/getEvents", nil)
	newCtx, err := NewAuthVerifier().WithAccessToken().WithOptional().
		Middleware()(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Nil(t, newCtx)
}
