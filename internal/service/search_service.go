package service

import (
	"context"
	"sync"

	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// searchService runs directory searches with last-request-wins semantics:
// whenever a newer search starts, any still-running one resolves as
// superseded and its result is discarded. Searches are directory reads, so
// transient failures are retried before supersession is judged.
type searchService struct {
	directory ports.TransactionDirectory
	retry     retryPolicy
	log       zerolog.Logger

	mu  sync.Mutex
	seq uint64
}

func NewSearchService(directory ports.TransactionDirectory, retry retryPolicy, log zerolog.Logger) ports.SearchService {
	return &searchService{directory: directory, retry: retry, log: log}
}

func (s *searchService) Search(ctx context.Context, params ports.TransactionSearchParams, page, pageSize int) (*ports.TransactionPage, error) {
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	s.mu.Unlock()

	var result *ports.TransactionPage
	err := s.retry.do(ctx, "directory.search", func() error {
		var e error
		result, e = s.directory.Search(ctx, params, page, pageSize)
		return e
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	superseded := ticket != s.seq
	s.mu.Unlock()
	if superseded {
		s.log.Debug().Uint64("ticket", ticket).Msg("search superseded by a newer request")
		return nil, apperror.ErrSearchSuperseded()
	}

	return result, nil
}
