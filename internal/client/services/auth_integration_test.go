package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hotelhub/internal/apitest"
	"github.com/dmitrijs2005/hotelhub/internal/client/client"
	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_AgainstFakeAPI(t *testing.T) {
	api := apitest.New()
	t.Cleanup(api.Close)
	api.AddUser("a@b.com", "x")

	db := setupDB(t)
	bus := events.NewLoadingBus()
	rec := recordLoading(bus)
	nav := &fakeNav{}
	hc := client.NewHTTPClient(api.URL(), client.WithHTTPClient(api.Client()))
	svc := NewAuthService(hc, db, bus, nav, WithLogoutDelay(0))
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx)
	require.Error(t, err)
	assert.Empty(t, api.Requests(), "no request without a stored token")

	_, err = svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong"})
	require.EqualError(t, err, apitest.DetailBadLogin)
	assert.Empty(t, storedKeys(t, db))

	lr, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, lr.AccessToken, storedKeys(t, db)["access_token"])

	u, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)

	me := api.RequestsTo("/user/me")
	require.Len(t, me, 1)
	assert.Equal(t, "Bearer "+lr.AccessToken, me[0].Authorization)

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, storedKeys(t, db))
	assert.Equal(t, []string{"/login"}, nav.routes)
	assert.Equal(t, []bool{true, false, true, false, true, false}, rec.events)
	require.NoError(t, svc.Close(ctx))
}
