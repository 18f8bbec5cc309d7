package reconcile

import (
	"context"
	"os"
	"testing"
	"time"

	"l10n-manager/core/errs"
	"l10n-manager/core/record"
	"l10n-manager/core/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefaults(t *testing.T, layout resource.Layout, records []record.TextRecord) {
	t.Helper()
	require.NoError(t, os.MkdirAll(layout.ResDir+"/"+layout.ValuesDir, 0o755))
	f, err := os.Create(layout.DefaultPath())
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, resource.Write(f, records))
}

func TestPools(t *testing.T) {
	layout := resource.NewLayout(t.TempDir())
	writeDefaults(t, layout, []record.TextRecord{
		record.New("s1", "one", true),
		record.New("brand", "Acme", false),
	})

	t.Run("Uncached", func(t *testing.T) {
		pool, err := NewPools(resource.NewReader(layout), nil).Pool(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []record.TextRecord{record.New("s1", "one", true)}, pool)
	})

	t.Run("CachedUntilInvalidated", func(t *testing.T) {
		pools := NewPools(resource.NewReader(layout), NewPoolCache(time.Hour))
		first, err := pools.Pool(context.Background())
		require.NoError(t, err)

		writeDefaults(t, layout, []record.TextRecord{record.New("s2", "two", true)})
		cached, err := pools.Pool(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, cached)

		pools.Invalidate()
		fresh, err := pools.Pool(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []record.TextRecord{record.New("s2", "two", true)}, fresh)
	})

	t.Run("MissingDefault", func(t *testing.T) {
		_, err := NewPools(resource.NewReader(resource.NewLayout(t.TempDir())), nil).Pool(context.Background())
		assert.True(t, errs.IsKind(err, errs.KindResource))
	})
}
