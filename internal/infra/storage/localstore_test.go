package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
)

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := storage.Open(path)

	require.NoError(t, err)
	assert.NoError(t, s.Warning())
	assert.False(t, s.Has("anything"))
}

func TestSetGetRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := storage.Open(path)
	require.NoError(t, err)

	type item struct {
		Name string `json:"name"`
		Qty  int    `json:"qty"`
	}

	require.NoError(t, s.Set("cart", []item{{Name: "hoodie", Qty: 2}}))

	var got []item
	assert.True(t, s.Get("cart", &got))
	assert.Equal(t, []item{{Name: "hoodie", Qty: 2}}, got)
	assert.True(t, s.Has("cart"))
}

// Setはファイルへ即時書き込みなので、開き直しても値が残る。
func TestPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := storage.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("wishlist", []int64{1, 4}))

	reopened, err := storage.Open(path)
	require.NoError(t, err)

	var ids []int64
	assert.True(t, reopened.Get("wishlist", &ids))
	assert.Equal(t, []int64{1, 4}, ids)
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := storage.Open(path)

	// 壊れたファイルはエラーにせず空ストアで立ち上がる
	require.NoError(t, err)
	assert.ErrorIs(t, s.Warning(), storage.ErrCorruptState)
	assert.False(t, s.Has("cart"))

	// 書き込みもできる
	assert.NoError(t, s.Set("cart", []int{}))
}

func TestGetMissingKey(t *testing.T) {
	s, err := storage.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	var v []int
	assert.False(t, s.Get("nope", &v))
}

// キーの値が目的の型に合わなければGetはfalse。
func TestGetTypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cart": "not an array"}`), 0o644))

	s, err := storage.Open(path)
	require.NoError(t, err)

	var v []int
	assert.False(t, s.Get("cart", &v))
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := storage.Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("cart", []int{1}))
	require.NoError(t, s.Delete("cart"))

	assert.False(t, s.Has("cart"))

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.Has("cart"))
}
