package session

import (
	"os"
	"path"
	"testing"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := path.Join(t.TempDir(), "assetgrid")
	store := NewFileStore(dir)

	persisted := PersistedSession{
		User:            &sdk.User{Name: "Alice", Email: "alice@example.com"},
		AccessToken:     "A1",
		RefreshToken:    "R1",
		IsAuthenticated: true,
		ExpiresAt:       1767225600000,
	}
	require.NoError(t, store.Save(persisted))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, persisted, *loaded)

	// The bare token is mirrored alongside the session document.
	tokenBytes, err := os.ReadFile(path.Join(dir, "token"))
	require.NoError(t, err)
	require.Equal(t, "A1", string(tokenBytes))
}

func TestFileStoreFilesAreOwnerOnly(t *testing.T) {
	dir := path.Join(t.TempDir(), "assetgrid")
	store := NewFileStore(dir)
	require.NoError(t, store.Save(PersistedSession{AccessToken: "A1"}))

	for _, name := range []string{"session", "token"} {
		info, err := os.Stat(path.Join(dir, name))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestFileStoreLoadWithNothingSaved(t *testing.T) {
	store := NewFileStore(path.Join(t.TempDir(), "assetgrid"))
	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStoreLoadRejectsCorruptSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(
		t,
		os.WriteFile(path.Join(dir, "session"), []byte("not json"), 0600),
	)
	store := NewFileStore(dir)
	_, err := store.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "error parsing session file")
}

func TestFileStoreClear(t *testing.T) {
	dir := path.Join(t.TempDir(), "assetgrid")
	store := NewFileStore(dir)
	require.NoError(t, store.Save(PersistedSession{AccessToken: "A1"}))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
	_, err = os.Stat(path.Join(dir, "token"))
	require.True(t, os.IsNotExist(err))

	// Clearing an already-clean store is fine.
	require.NoError(t, store.Clear())
}
