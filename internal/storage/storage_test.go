package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = Rules{
	MaxSizeBytes: 5 << 20,
	AllowedTypes: []string{"application/pdf", "image/jpeg", "image/png"},
}

func TestRules_Check(t *testing.T) {
	assert.NoError(t, testRules.Check(1024, "application/pdf"))
	assert.NoError(t, testRules.Check(5<<20, "image/png"))

	assert.ErrorIs(t, testRules.Check(5<<20+1, "application/pdf"), ErrFileTooLarge)
	assert.ErrorIs(t, testRules.Check(0, "application/pdf"), ErrFileTooLarge)
	assert.ErrorIs(t, testRules.Check(1024, "image/gif"), ErrUnsupportedType)
	assert.ErrorIs(t, testRules.Check(1024, "application/zip"), ErrUnsupportedType)
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), testRules)
	require.NoError(t, err)
	ctx := context.Background()

	content := "polita de asigurare"
	key, err := store.Save(ctx, "polita.pdf", "application/pdf", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	r, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer r.Close()

	buf := new(strings.Builder)
	_, err = io.Copy(buf, r)
	require.NoError(t, err)
	assert.Equal(t, content, buf.String())

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_RejectsBadUploads(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), testRules)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, "mare.pdf", "application/pdf", testRules.MaxSizeBytes+1, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = store.Save(ctx, "arhiva.zip", "application/zip", 10, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), testRules)
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "nu-exista.pdf"))
}
