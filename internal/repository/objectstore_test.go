package repository

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectStoreSaveProfileImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewObjectStore(dir, "/uploads/")
	require.NoError(t, err)

	payload := []byte("fake png bytes")
	url, err := store.SaveProfileImage("user-1", "image/png", int64(len(payload)), bytes.NewReader(payload))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/user-1-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestObjectStoreRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewObjectStore(dir, "/uploads")
	require.NoError(t, err)

	_, err = store.SaveProfileImage("user-1", "application/pdf", 10, strings.NewReader("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestObjectStoreRejectsOversizedUpload(t *testing.T) {
	store, err := NewObjectStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.SaveProfileImage("user-1", "image/jpeg", MaxUploadSize+1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUploadTooLarge)
}

func TestObjectStoreRejectsLyingContentLength(t *testing.T) {
	dir := t.TempDir()
	store, err := NewObjectStore(dir, "/uploads")
	require.NoError(t, err)

	// Declared size is fine, actual body is over the limit
	body := bytes.NewReader(make([]byte, MaxUploadSize+1))
	_, err = store.SaveProfileImage("user-1", "image/jpeg", 100, body)
	assert.ErrorIs(t, err, ErrUploadTooLarge)

	// The partial file is cleaned up
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
