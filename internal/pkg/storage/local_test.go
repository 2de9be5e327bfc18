package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadExistsDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("png-bytes"), "avatars/7/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "avatars/7/a.png", key)

	data, err := os.ReadFile(filepath.Join(s.BasePath(), "avatars", "7", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Equal(t, "/uploads/avatars/7/a.png", s.URL(key))
	back, ok := s.KeyFromURL(s.URL(key))
	assert.True(t, ok)
	assert.Equal(t, key, back)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key)) // idempotent

	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_StaysInsideBase(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(base, "store"), "/uploads")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("x"), "../../escape.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "escape.txt", key)

	_, err = os.Stat(filepath.Join(base, "escape.txt"))
	assert.True(t, os.IsNotExist(err))

	_, err = s.Upload(ctx, strings.NewReader("x"), "", "text/plain")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestLocalStorage_KeyFromURL_Foreign(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, ok := s.KeyFromURL("https://cdn.example.com/a.png")
	assert.False(t, ok)
}
