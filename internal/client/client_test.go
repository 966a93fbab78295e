package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-user-directory/internal/client"
	"go-user-directory/internal/domain"
	"go-user-directory/internal/store"
	"go-user-directory/internal/transport/http/handler"
	"go-user-directory/internal/transport/http/router"
)

// newTestServer 起一个跑真实路由的服务端
func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewSeeded()
	srv := httptest.NewServer(router.NewAPIEngine(zap.NewNop(), handler.NewUserHandler(st)))
	t.Cleanup(srv.Close)
	return srv, st
}

func TestClientCRUD(t *testing.T) {
	srv, _ := newTestServer(t)
	cl := client.New(srv.URL)
	ctx := context.Background()

	users, err := cl.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	created, err := cl.Create(ctx, domain.UserInput{Name: "Ana Ruiz", Email: "ana@email.com", Phone: "600", Age: domain.AgeFromString("28")})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	updated, err := cl.Update(ctx, 4, domain.UserInput{Name: "Ana R.", Email: "ana@email.com"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.ID)
	assert.Equal(t, "Ana R.", updated.Name)
	assert.Nil(t, updated.Phone)

	require.NoError(t, cl.Delete(ctx, 4))

	users, err = cl.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestClientDecodesErrorBody(t *testing.T) {
	srv, _ := newTestServer(t)
	cl := client.New(srv.URL)
	ctx := context.Background()

	_, err := cl.Create(ctx, domain.UserInput{Name: "X", Email: "juan@email.com"})
	var ae *client.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, "email already registered", ae.Message)

	err = cl.Delete(ctx, 999)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "user not found", ae.Message)
}

func TestCacheReloadReplacesWholesale(t *testing.T) {
	srv, st := newTestServer(t)
	cl := client.New(srv.URL)
	cache := client.NewCache(cl)
	ctx := context.Background()

	require.NoError(t, cache.Load(ctx))
	assert.Len(t, cache.Users(), 3)

	// 服务端在镜像背后发生变化，重载后完整反映
	_, err := st.Create(domain.UserInput{Name: "Ana", Email: "ana@email.com"})
	require.NoError(t, err)
	require.NoError(t, cache.Load(ctx))
	users := cache.Users()
	require.Len(t, users, 4)
	assert.Equal(t, 4, users[3].ID, "server-assigned id reflected")
}

func TestCacheFallsBackToDemoData(t *testing.T) {
	srv, _ := newTestServer(t)
	cl := client.New(srv.URL)
	srv.Close()

	cache := client.NewCache(cl)
	err := cache.Load(context.Background())
	require.Error(t, err)

	users := cache.Users()
	require.Len(t, users, 3)
	assert.Equal(t, "Juan Pérez", users[0].Name)
}

func TestCacheFilter(t *testing.T) {
	srv, _ := newTestServer(t)
	cache := client.NewCache(client.New(srv.URL))
	require.NoError(t, cache.Load(context.Background()))

	got := cache.Filter("maria")
	require.Len(t, got, 1)
	assert.Equal(t, "María García", got[0].Name)

	got = cache.Filter("EMAIL.COM")
	assert.Len(t, got, 3, "matching is case-insensitive")

	got = cache.Filter("5555")
	require.Len(t, got, 1)
	assert.Equal(t, "Carlos López", got[0].Name)

	assert.Len(t, cache.Filter(""), 3, "empty query means no filter")
	assert.Len(t, cache.Filter("   "), 3, "whitespace query means no filter")
	assert.Empty(t, cache.Filter("zzz"))
}

func TestSessionEditFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	sess := client.NewSession(client.New(srv.URL))
	ctx := context.Background()
	require.NoError(t, sess.Start(ctx))

	form, ok := sess.BeginEdit(2)
	require.True(t, ok)
	assert.Equal(t, "María García", form.Name)
	assert.Equal(t, "987654321", form.Phone)
	assert.Equal(t, "25", form.Age)
	assert.True(t, sess.State().Editing())

	u, err := sess.Submit(ctx, domain.UserInput{Name: "María G.", Email: "maria@email.com", Age: domain.AgeFromString("26")})
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID, "update keeps the id")
	assert.False(t, sess.State().Editing(), "edit state clears after success")

	users := sess.Visible()
	require.Len(t, users, 3)
	assert.Equal(t, "María G.", users[1].Name)
}

func TestSessionSubmitCreatesWhenNotEditing(t *testing.T) {
	srv, _ := newTestServer(t)
	sess := client.NewSession(client.New(srv.URL))
	ctx := context.Background()
	require.NoError(t, sess.Start(ctx))

	u, err := sess.Submit(ctx, domain.UserInput{Name: "Ana", Email: "ana@email.com"})
	require.NoError(t, err)
	assert.Equal(t, 4, u.ID)
	assert.Len(t, sess.Visible(), 4, "mirror reloaded after the mutation")
}

func TestSessionSubmitFailureLeavesMirrorAlone(t *testing.T) {
	srv, _ := newTestServer(t)
	sess := client.NewSession(client.New(srv.URL))
	ctx := context.Background()
	require.NoError(t, sess.Start(ctx))

	_, ok := sess.BeginEdit(1)
	require.True(t, ok)

	_, err := sess.Submit(ctx, domain.UserInput{Name: "Juan", Email: "maria@email.com"})
	var ae *client.APIError
	require.ErrorAs(t, err, &ae)
	assert.True(t, sess.State().Editing(), "failed submit keeps edit state")
	assert.Equal(t, "juan@email.com", sess.Visible()[0].Email, "no speculative local mutation")
}

func TestSessionDeleteFlow(t *testing.T) {
	srv, st := newTestServer(t)
	sess := client.NewSession(client.New(srv.URL))
	ctx := context.Background()
	require.NoError(t, sess.Start(ctx))

	// 取消：不打服务端
	sess.RequestDelete(3)
	sess.CancelDelete()
	require.NoError(t, sess.ConfirmDelete(ctx))
	assert.Len(t, st.List(), 3)

	// 确认：真正删除并重载
	sess.RequestDelete(3)
	require.NoError(t, sess.ConfirmDelete(ctx))
	assert.Zero(t, sess.State().DeleteID)
	assert.Len(t, sess.Visible(), 2)
	assert.Len(t, st.List(), 2)
}

func TestSessionSearchAgainstMirrorOnly(t *testing.T) {
	srv, st := newTestServer(t)
	sess := client.NewSession(client.New(srv.URL))
	ctx := context.Background()
	require.NoError(t, sess.Start(ctx))

	// 搜索不回源：镜像背后的服务端变化在重载前不可见
	_, err := st.Create(domain.UserInput{Name: "Mariano", Email: "mariano@email.com"})
	require.NoError(t, err)

	got := sess.Search("maria")
	require.Len(t, got, 1)
	assert.Equal(t, "María García", got[0].Name)
	assert.Equal(t, "maria", sess.State().Query)

	assert.Len(t, sess.ClearSearch(), 3)
	assert.Empty(t, sess.State().Query)
}
