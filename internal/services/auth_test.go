package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarquez/tiendita/internal/models"
	"github.com/dmarquez/tiendita/internal/session"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSignIn_PersistsAndReturnsSession(t *testing.T) {
	store := &fakeStore{}
	client := &fakeAuthClient{creds: &models.Credentials{LocalID: "u-1", Email: "ana@example.com", Token: "tok"}}
	svc := NewAuthService(client, store, discardLogger())

	sess, err := svc.SignIn(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "u-1", sess.LocalID)

	require.NotNil(t, store.sess)
	assert.Equal(t, *sess, *store.sess)
}

func TestSignIn_RemoteErrorPropagates(t *testing.T) {
	client := &fakeAuthClient{err: errors.New("boom")}
	svc := NewAuthService(client, &fakeStore{}, discardLogger())

	_, err := svc.SignIn(context.Background(), "a@example.com", "pw")
	require.Error(t, err)
}

func TestSignIn_SaveFailureKeepsSessionInMemory(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	client := &fakeAuthClient{creds: &models.Credentials{LocalID: "u-1", Email: "a@example.com", Token: "tok"}}
	svc := NewAuthService(client, store, discardLogger())

	sess, err := svc.SignIn(context.Background(), "a@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Nil(t, store.sess)
}

func TestRestore_NoStoredSessionReturnsNil(t *testing.T) {
	svc := NewAuthService(&fakeAuthClient{}, &fakeStore{}, discardLogger())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRestore_ReturnsStoredSession(t *testing.T) {
	stored := session.Session{LocalID: "u-1", Email: "a@example.com", Token: signedToken(t, time.Now().Add(time.Hour))}
	store := &fakeStore{sess: &stored}
	svc := NewAuthService(&fakeAuthClient{}, store, discardLogger())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, stored, *sess)
}

func TestRestore_ExpiredTokenClearsStore(t *testing.T) {
	stored := session.Session{LocalID: "u-1", Email: "a@example.com", Token: signedToken(t, time.Now().Add(-time.Hour))}
	store := &fakeStore{sess: &stored}
	svc := NewAuthService(&fakeAuthClient{}, store, discardLogger())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Nil(t, store.sess)
}

func TestRestore_ExpiredTokenWithFailingClearStillReturnsNil(t *testing.T) {
	stored := session.Session{LocalID: "u-1", Email: "a@example.com", Token: signedToken(t, time.Now().Add(-time.Hour))}
	store := &fakeStore{sess: &stored, clearErr: errors.New("database locked")}
	svc := NewAuthService(&fakeAuthClient{}, store, discardLogger())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRestore_OpaqueTokenNeverExpires(t *testing.T) {
	stored := session.Session{LocalID: "u-1", Email: "a@example.com", Token: "not-a-jwt"}
	store := &fakeStore{sess: &stored}
	svc := NewAuthService(&fakeAuthClient{}, store, discardLogger())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestRestore_LoadFailureIsTreatedAsNoSession(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("corrupt")}
	svc := NewAuthService(&fakeAuthClient{}, store, discardLogger())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSignOut_ClearsStore(t *testing.T) {
	store := &fakeStore{sess: &session.Session{LocalID: "u-1"}}
	svc := NewAuthService(&fakeAuthClient{}, store, discardLogger())

	require.NoError(t, svc.SignOut(context.Background()))
	assert.Nil(t, store.sess)
}
