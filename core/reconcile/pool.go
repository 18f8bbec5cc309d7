package reconcile

import (
	"context"

	"l10n-manager/core/record"
	"l10n-manager/core/resource"
)

// Pools provides the canonical pool of a res directory, optionally cached.
type Pools struct {
	reader *resource.Reader
	cache  *PoolCache
}

// NewPools creates a Pools. cache may be nil to read the default file on every call.
func NewPools(reader *resource.Reader, cache *PoolCache) *Pools {
	return &Pools{reader: reader, cache: cache}
}

// Pool returns the translatable canonical records.
func (p *Pools) Pool(ctx context.Context) ([]record.TextRecord, error) {
	if p.cache == nil {
		return p.load(ctx)
	}
	return p.cache.Get(ctx, p.reader.Layout().DefaultPath(), p.load)
}

// Invalidate forgets the cached pool.
func (p *Pools) Invalidate() {
	if p.cache != nil {
		p.cache.Invalidate(p.reader.Layout().DefaultPath())
	}
}

func (p *Pools) load(_ context.Context) ([]record.TextRecord, error) {
	defaults, err := p.reader.ReadDefault()
	if err != nil {
		return nil, err
	}
	return Filter(defaults.Records), nil
}
