package translation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"l10n-manager/core/errs"
	"l10n-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "french.csv"), []byte("s1, one, un\n"), 0o644))

	src := NewDirSource(dir)
	m := Mapping{Name: "french", Locale: "fr"}
	assert.Equal(t, filepath.Join(dir, "french.csv"), src.Location(m))

	rows, err := src.Load(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Hint: "s1", Original: "one", Translated: "un", Line: 1}}, rows)

	_, err = src.Load(context.Background(), Mapping{Name: "german", Locale: "de"})
	assert.True(t, errs.IsKind(err, errs.KindResource))
}

func TestStorageSource(t *testing.T) {
	m := Mapping{Name: "french", Locale: "fr"}

	t.Run("Load", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "l10n", "translations/french.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("one,un\n")), nil)

		src := NewStorageSource(client, "l10n", "translations")
		rows, err := src.Load(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, []Row{{Original: "one", Translated: "un", Line: 1}}, rows)
		assert.Equal(t, "s3://l10n/translations/french.csv", src.Location(m))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "l10n", "translations/french.csv", mock.Anything).
			Return(nil, assert.AnError)

		_, err := NewStorageSource(client, "l10n", "translations").Load(context.Background(), m)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindResource))
		assert.Equal(t, "s3://l10n/translations/french.csv", errs.PathOf(err))
	})

	t.Run("Malformed", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "l10n", "translations/french.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("a,b\nc\n")), nil)

		_, err := NewStorageSource(client, "l10n", "translations").Load(context.Background(), m)
		assert.True(t, errs.IsKind(err, errs.KindImportFormat))
	})
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Source: SourceDir}, "translations", nil, "")
	require.NoError(t, err)
	assert.IsType(t, &DirSource{}, src)

	src, err = NewSource(Config{Source: SourceStorage, Prefix: "p"}, "", new(mocks.Client), "b")
	require.NoError(t, err)
	assert.IsType(t, &StorageSource{}, src)

	_, err = NewSource(Config{Source: SourceStorage}, "", nil, "b")
	assert.True(t, errs.IsKind(err, errs.KindArgument))

	_, err = NewSource(Config{Source: "ftp"}, "", nil, "")
	assert.True(t, errs.IsKind(err, errs.KindArgument))
}
