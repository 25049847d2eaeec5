package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/picacg/encryption"
	apperrors "github.com/kbukum/picacg/errors"
)

func TestStore_LoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	settings, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Settings{}, settings)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_data":{"token":""},"net_data":{"image_server":""}}`, string(data))
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	want := Settings{
		UserData: UserData{Token: "jwt-token"},
		NetData:  NetData{ImageServer: "https://storage1.picacomic.com"},
	}
	require.NoError(t, s.Save(context.Background(), want))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_MissingSectionsDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"user_data":{"token":"abc"}}`), 0o600))

	got, err := NewStore(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", got.UserData.Token)
	assert.Empty(t, got.NetData.ImageServer)
}

func TestStore_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0o600))

	_, err := NewStore(dir).Load(context.Background())
	assert.True(t, apperrors.IsKind(err, apperrors.KindParseJSON), "got %v", err)
}

func TestStore_ReadError(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0o700))

	_, err := NewStore(dir).Load(context.Background())
	assert.True(t, apperrors.IsKind(err, apperrors.KindFileRead), "got %v", err)
}

func TestStore_WriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := NewStore(filepath.Join(blocker, "sub")).Save(context.Background(), Settings{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindFileWrite), "got %v", err)
}

func TestStore_LockErrorOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore(t.TempDir()).Load(ctx)
	assert.True(t, apperrors.IsKind(err, apperrors.KindLock), "got %v", err)
}

func TestStore_LockErrorWhileHeld(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.acquire(context.Background()))
	defer s.release()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Save(ctx, Settings{})
	}()
	cancel()

	err := <-done
	assert.True(t, apperrors.IsKind(err, apperrors.KindLock), "got %v", err)
}

func TestStore_Update(t *testing.T) {
	s := NewStore(t.TempDir())
	got, err := s.Update(context.Background(), func(st *Settings) {
		st.UserData.Token = "fresh"
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.UserData.Token)

	again, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", again.UserData.Token)
}

func TestStore_EncryptedToken(t *testing.T) {
	dir := t.TempDir()
	enc, err := encryption.New("device-key")
	require.NoError(t, err)

	s := NewStore(dir, WithEncryptor(enc))
	require.NoError(t, s.Save(context.Background(), Settings{UserData: UserData{Token: "secret-token"}}))

	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")

	var onDisk Settings
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.True(t, strings.HasPrefix(onDisk.UserData.Token, sealedPrefix))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret-token", got.UserData.Token)

	_, err = NewStore(dir).Load(context.Background())
	assert.True(t, apperrors.IsKind(err, apperrors.KindParse), "got %v", err)
}

func TestStore_PlainTokenWithEncryptor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStore(dir).Save(context.Background(), Settings{UserData: UserData{Token: "plain"}}))

	enc, err := encryption.New("device-key")
	require.NoError(t, err)
	got, err := NewStore(dir, WithEncryptor(enc)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plain", got.UserData.Token)
}
