// Package service exposes the bridge's operations as plain function
// calls for whatever presentation layer fronts it. None of these
// perform their own retries; they delegate entirely to the shared
// transport, limiter and retry components.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/landbridge/michrazim/internal/core/domain"
	"github.com/landbridge/michrazim/internal/infra/upstream"
	"github.com/landbridge/michrazim/internal/resolve"
	"github.com/landbridge/michrazim/internal/search"
)

// Upstream endpoint paths for single-tender lookups.
const (
	detailsPath    = "/MichrazDetailsApi/Get"
	mapDetailsPath = "/MichrazDetailsApi/GetMichrazMapaDetails"
)

// Getter issues retried GETs. Satisfied by *upstream.Transport.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values) (*upstream.RawResponse, error)
}

// Service is the composition of the client-access components behind a
// typed operation surface.
type Service struct {
	engine    *search.Engine
	resolver  *resolve.Resolver
	transport Getter
	retrier   *upstream.Retrier
}

// New wires the service from its collaborators.
func New(engine *search.Engine, resolver *resolve.Resolver, transport Getter, retrier *upstream.Retrier) *Service {
	return &Service{
		engine:    engine,
		resolver:  resolver,
		transport: transport,
		retrier:   retrier,
	}
}

// SearchTenders resolves a free-text settlement if one is present, then
// runs the search. A low-confidence settlement name fails distinctly
// (resolve.ErrNoConfidentMatch) so callers can say "not found" instead
// of "system error".
func (s *Service) SearchTenders(ctx context.Context, filter domain.SearchFilter) (*domain.Page, error) {
	if filter.Settlement != "" && filter.SettlementCode == 0 {
		match, err := s.resolver.Resolve(ctx, filter.Settlement)
		if err != nil {
			return nil, err
		}
		filter.SettlementCode = match.Code
		// The upstream matches KodYeshuv, not free text.
		filter.Settlement = ""
	}
	return s.engine.Search(ctx, &filter)
}

// GetActiveTenders returns only currently active tenders. A nil filter
// means no further constraints.
func (s *Service) GetActiveTenders(ctx context.Context, filter *domain.SearchFilter) (*domain.Page, error) {
	f := domain.SearchFilter{}
	if filter != nil {
		f = *filter
	}
	f.ActiveOnly = true
	return s.SearchTenders(ctx, f)
}

// GetAllTenders retrieves the complete unfiltered tender list in one
// page.
func (s *Service) GetAllTenders(ctx context.Context) (*domain.Page, error) {
	return s.SearchTenders(ctx, domain.SearchFilter{PageSize: 10000})
}

// SearchByType returns tenders of a single type code.
func (s *Service) SearchByType(ctx context.Context, typeCode int) (*domain.Page, error) {
	return s.SearchTenders(ctx, domain.SearchFilter{
		TenderTypes: []int{typeCode},
		PageSize:    10000,
	})
}

// SearchByLocation searches by resolved settlement code, neighborhood
// and/or region codes.
func (s *Service) SearchByLocation(ctx context.Context, settlementCode int, neighborhood string, regions []int) (*domain.Page, error) {
	return s.SearchTenders(ctx, domain.SearchFilter{
		SettlementCode: settlementCode,
		Neighborhood:   neighborhood,
		Regions:        regions,
		PageSize:       10000,
	})
}

// GetRecentResults returns tenders whose submission deadline fell in
// the last N days.
func (s *Service) GetRecentResults(ctx context.Context, days int) (*domain.Page, error) {
	if days <= 0 {
		days = 30
	}
	return s.SearchTenders(ctx, domain.SearchFilter{
		SubmissionDeadline: domain.DateRange{
			From: time.Now().AddDate(0, 0, -days),
		},
		PageSize: 10000,
	})
}

// GetTenderDetails fetches the full record for one tender.
func (s *Service) GetTenderDetails(ctx context.Context, id int64) (*domain.TenderDetails, error) {
	resp, err := s.getByID(ctx, detailsPath, id)
	if err != nil {
		return nil, err
	}
	var details domain.TenderDetails
	if err := resp.JSON(&details); err != nil {
		return nil, fmt.Errorf("tender %d details: %w", id, err)
	}
	return &details, nil
}

// GetTenderMapDetails fetches the geographic payload for one tender.
func (s *Service) GetTenderMapDetails(ctx context.Context, id int64) (domain.MapDetails, error) {
	resp, err := s.getByID(ctx, mapDetailsPath, id)
	if err != nil {
		return nil, err
	}
	var details domain.MapDetails
	if err := resp.JSON(&details); err != nil {
		return nil, fmt.Errorf("tender %d map details: %w", id, err)
	}
	return details, nil
}

// ResolveSettlement converts a free-text settlement name into its Kod
// Yeshuv match.
func (s *Service) ResolveSettlement(ctx context.Context, name string) (*resolve.Match, error) {
	return s.resolver.Resolve(ctx, name)
}

// SuggestSettlements returns the top-n candidates for a name, for "did
// you mean" output.
func (s *Service) SuggestSettlements(ctx context.Context, name string, n int) ([]resolve.Match, error) {
	return s.resolver.Suggestions(ctx, name, n)
}

func (s *Service) getByID(ctx context.Context, path string, id int64) (*upstream.RawResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("tender id must be positive, got %d", id)
	}
	query := url.Values{"michrazID": {strconv.FormatInt(id, 10)}}
	resp, err := s.retrier.Do(ctx, func(ctx context.Context) (*upstream.RawResponse, error) {
		return s.transport.Get(ctx, path, query)
	})
	if err != nil {
		return nil, fmt.Errorf("tender %d: %w", id, err)
	}
	return resp, nil
}

// IsNotFound reports whether err is a "no confident match" resolution
// failure rather than a hard error.
func IsNotFound(err error) bool {
	var nm *resolve.ErrNoConfidentMatch
	return errors.As(err, &nm)
}
