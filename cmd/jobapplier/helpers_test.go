package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
)

func TestMatchBar(t *testing.T) {
	assert.Equal(t, "[----------]", matchBar(0))
	assert.Equal(t, "[#####-----]", matchBar(55))
	assert.Equal(t, "[##########]", matchBar(100))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long job title", 10))
}

func TestStateDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBAPPLIER_STATE_DIR", dir)

	got, err := stateDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JOBAPPLIER_STATE_DIR", t.TempDir())

	token, err := loadToken()
	require.NoError(t, err)
	assert.Empty(t, token, "no saved token is not an error")

	require.NoError(t, saveToken("tok123"))
	token, err = loadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	require.NoError(t, clearToken())
	token, err = loadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, clearToken(), "clearing twice is fine")
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestNewClientDropsExpiredSession(t *testing.T) {
	t.Setenv("JOBAPPLIER_STATE_DIR", t.TempDir())

	require.NoError(t, saveToken(signedToken(t, time.Now().Add(-time.Hour))))
	assert.Empty(t, newClient().Token(), "expired session must not be attached")

	live := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, saveToken(live))
	assert.Equal(t, live, newClient().Token(), "live session is kept")
}

func TestResolveJobDescription(t *testing.T) {
	reset := func() {
		assistJobDescription = ""
		assistJobDescFile = ""
	}

	t.Run("inline text", func(t *testing.T) {
		reset()
		assistJobDescription = "build APIs"
		got, err := resolveJobDescription()
		require.NoError(t, err)
		assert.Equal(t, "build APIs", got)
	})

	t.Run("from file", func(t *testing.T) {
		reset()
		path := filepath.Join(t.TempDir(), "jd.txt")
		require.NoError(t, os.WriteFile(path, []byte("run infra"), 0644))
		assistJobDescFile = path

		got, err := resolveJobDescription()
		require.NoError(t, err)
		assert.Equal(t, "run infra", got)
	})

	t.Run("missing input", func(t *testing.T) {
		reset()
		_, err := resolveJobDescription()
		assert.Error(t, err)
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		reset()
		assistJobDescription = "text"
		assistJobDescFile = "file.txt"
		_, err := resolveJobDescription()
		assert.Error(t, err)
	})
}

func TestSnapshotOf(t *testing.T) {
	t.Setenv("JOBAPPLIER_STATE_DIR", t.TempDir())

	st, err := openStore()
	require.NoError(t, err)

	snapshot := snapshotOf(st)
	assert.False(t, snapshot.IsAuthenticated)
	assert.Equal(t, onboarding.StageUnauthenticated, onboarding.CurrentStage(snapshot))
}
