package service

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"cadastro/internal/model"
)

// AddressLookup resolves a normalized CEP to an address.
type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (*model.Address, error)
}

// CachedLookup keeps successful answers for ttl. Failures, including
// not-found answers, always go back to the upstream service.
type CachedLookup struct {
	next  AddressLookup
	cache *gocache.Cache
	ttl   time.Duration
}

func NewCachedLookup(next AddressLookup, ttl time.Duration) *CachedLookup {
	return &CachedLookup{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (c *CachedLookup) Lookup(ctx context.Context, cep string) (*model.Address, error) {
	if v, found := c.cache.Get(cep); found {
		if addr, ok := v.(model.Address); ok {
			slog.Debug("cep cache hit", "cep", cep)
			return &addr, nil
		}
	}

	addr, err := c.next.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}
	c.cache.Set(cep, *addr, c.ttl)
	return addr, nil
}
