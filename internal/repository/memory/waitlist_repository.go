package memory

import (
	"context"
	"strings"

	"recruai-web/internal/model"
	"recruai-web/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// WaitlistRepository keeps sign-ups in process when no database is configured.
// Entries are lost on restart.
type WaitlistRepository struct {
	cache *cache.Cache
}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *WaitlistRepository) Create(_ context.Context, entry *model.WaitlistEntry) error {
	if err := r.cache.Add(emailKey(entry.Email), *entry, cache.NoExpiration); err != nil {
		return contract.ErrDuplicateEntry
	}
	return nil
}

func (r *WaitlistRepository) FindByEmail(_ context.Context, email string) (*model.WaitlistEntry, error) {
	if x, found := r.cache.Get(emailKey(email)); found {
		entry := x.(model.WaitlistEntry)
		return &entry, nil
	}
	return nil, nil
}

func (r *WaitlistRepository) Count(_ context.Context) (int64, error) {
	return int64(r.cache.ItemCount()), nil
}
