// Copyright (c) 2026 Picstream. All rights reserved.

package mediastore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/picstream/internal/platform/mediastore"
)

/*
TestLocalStore_Save verifies that content is written under a timestamped name
preserving the original filename suffix.
*/
func TestLocalStore_Save(t *testing.T) {
	store, err := mediastore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	storedName, err := store.Save("holiday.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(storedName, "-holiday.jpg"), "stored name %q should end with original name", storedName)
	assert.NotEqual(t, "holiday.jpg", storedName)

	content, err := os.ReadFile(filepath.Join(store.Dir(), storedName))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

/*
TestLocalStore_Save_StripsPathComponents verifies that directory traversal in
client filenames is neutralized.
*/
func TestLocalStore_Save_StripsPathComponents(t *testing.T) {
	store, err := mediastore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	storedName, err := store.Save("../../etc/passwd", strings.NewReader("nope"))
	require.NoError(t, err)

	assert.False(t, strings.Contains(storedName, "/"))
	assert.True(t, strings.HasSuffix(storedName, "-passwd"))

	// The file must exist inside the media dir, nowhere else.
	_, err = os.Stat(filepath.Join(store.Dir(), storedName))
	assert.NoError(t, err)
}

/*
TestLocalStore_Remove verifies stored files can be deleted again and that
removing an absent file is a no-op.
*/
func TestLocalStore_Remove(t *testing.T) {
	store, err := mediastore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	storedName, err := store.Save("holiday.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(storedName))
	_, err = os.Stat(filepath.Join(store.Dir(), storedName))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(storedName), "double remove is not an error")
}
