package memory

import (
	"context"
	"time"

	"github.com/crewdesk/crewdesk/internal/domain/draft"
	"github.com/crewdesk/crewdesk/internal/logger"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultDraftTTL bounds how long an idle editing session is kept
const DefaultDraftTTL = 2 * time.Hour

// DraftRepository is the production draft store. Drafts have no
// persistence beyond the editing session, so the store is an
// in-process TTL cache: every save resets the session clock and an
// expired draft is simply gone.
type DraftRepository struct {
	store  *goCache.Cache
	ttl    time.Duration
	logger *logger.Logger
}

func NewDraftRepository(ttl time.Duration, log *logger.Logger) *DraftRepository {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftRepository{
		store:  goCache.New(ttl, 10*time.Minute),
		ttl:    ttl,
		logger: log,
	}
}

func (r *DraftRepository) Save(ctx context.Context, d draft.Draft) error {
	r.store.Set(d.ID, d, r.ttl)
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, id string) (draft.Draft, error) {
	value, found := r.store.Get(id)
	if !found {
		return draft.Draft{}, draft.ErrDraftNotFound
	}

	d, ok := value.(draft.Draft)
	if !ok {
		return draft.Draft{}, draft.ErrDraftNotFound
	}
	return d, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	r.store.Delete(id)
	return nil
}
