package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// DraftStore implements ports.DraftRepository on Redis. Each draft is one
// JSON value under draft:<id> with a rolling TTL, so abandoned drafts expire
// on their own. IDs come from an INCR counter.
type DraftStore struct {
	client *goredis.Client
	clock  ports.Clock
	prefix string
	seqKey string
	ttl    time.Duration
}

func NewDraftStore(client *goredis.Client, clock ports.Clock, ttl time.Duration) *DraftStore {
	return &DraftStore{
		client: client,
		clock:  clock,
		prefix: "draft:",
		seqKey: "draft:seq",
		ttl:    ttl,
	}
}

// Save creates the draft when its ID is empty, otherwise overwrites it in
// place. Every save refreshes the TTL.
func (s *DraftStore) Save(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	d := *draft
	if d.ID == "" {
		seq, err := s.client.Incr(ctx, s.seqKey).Result()
		if err != nil {
			return nil, fmt.Errorf("redis draft seq: %w", err)
		}
		d.ID = fmt.Sprintf("DRAFT-%04d", seq)
	}
	d.SavedAt = s.clock.Now()

	payload, err := json.Marshal(&d)
	if err != nil {
		return nil, fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+d.ID, payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("redis draft set: %w", err)
	}
	return &d, nil
}

func (s *DraftStore) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	val, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, apperror.ErrDraftNotFound()
		}
		return nil, fmt.Errorf("redis draft get: %w", err)
	}

	var draft domain.Draft
	if err := json.Unmarshal(val, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &draft, nil
}

// ListAll scans the draft keyspace and returns drafts newest first.
func (s *DraftStore) ListAll(ctx context.Context) ([]domain.Draft, error) {
	var drafts []domain.Draft
	iter := s.client.Scan(ctx, 0, s.prefix+"DRAFT-*", 100).Iterator()
	for iter.Next(ctx) {
		val, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == goredis.Nil {
				// Expired between SCAN and GET.
				continue
			}
			return nil, fmt.Errorf("redis draft get: %w", err)
		}

		var draft domain.Draft
		if err := json.Unmarshal(val, &draft); err != nil {
			return nil, fmt.Errorf("unmarshal draft: %w", err)
		}
		drafts = append(drafts, draft)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis draft scan: %w", err)
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].SavedAt.After(drafts[j].SavedAt)
	})
	return drafts, nil
}

func (s *DraftStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, s.prefix+id).Result()
	if err != nil {
		return fmt.Errorf("redis draft delete: %w", err)
	}
	if removed == 0 {
		return apperror.ErrDraftNotFound()
	}
	return nil
}
