package store

import (
	"context"
	"fmt"

	"github.com/Tally-lab/Tally-BE/internal/app"
	jsoniter "github.com/json-iterator/go"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
}

const (
	contributionStatsPrefix = "cs/"
	organizationStatsPrefix = "os/"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatsStore keeps computed stats as json documents in KVStore.
// This struct is an adapter for app.Store.
type StatsStore struct {
	kv KVStore
}

var _ app.Store = &StatsStore{}

// NewStatsStore creates new StatsStore instance.
func NewStatsStore(kv KVStore) *StatsStore {
	return &StatsStore{kv: kv}
}

// SaveContributionStats stores stats under their id, replacing previous version.
func (s *StatsStore) SaveContributionStats(ctx context.Context, stats *app.ContributionStats) error {
	if stats == nil || stats.ID == "" {
		return app.InvalidRequestError("contribution stats id cannot be empty")
	}

	return s.save(ctx, contributionStatsPrefix+stats.ID, stats)
}

// ContributionStats returns stats stored under id.
func (s *StatsStore) ContributionStats(ctx context.Context, id string) (*app.ContributionStats, error) {
	var stats app.ContributionStats
	if err := s.load(ctx, contributionStatsPrefix+id, &stats); err != nil {
		if app.IsNotFoundError(err) {
			return nil, app.NotFoundError(fmt.Sprintf("contribution stats %s not found", id))
		}
		return nil, err
	}

	return &stats, nil
}

// DeleteContributionStats removes stats stored under id.
func (s *StatsStore) DeleteContributionStats(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(contributionStatsPrefix + id)
	data, err := s.kv.ReadKey(key)
	if err != nil {
		return fmt.Errorf("reading contribution stats %s: %w", id, err)
	}
	if data == nil {
		return app.NotFoundError(fmt.Sprintf("contribution stats %s not found", id))
	}
	if err := s.kv.DeleteKey(key); err != nil {
		return fmt.Errorf("deleting contribution stats %s: %w", id, err)
	}

	return nil
}

// SaveOrganizationStats stores stats under their id, replacing previous version.
func (s *StatsStore) SaveOrganizationStats(ctx context.Context, stats *app.OrganizationStats) error {
	if stats == nil || stats.ID == "" {
		return app.InvalidRequestError("organization stats id cannot be empty")
	}

	return s.save(ctx, organizationStatsPrefix+stats.ID, stats)
}

// OrganizationStats returns stats stored under id.
func (s *StatsStore) OrganizationStats(ctx context.Context, id string) (*app.OrganizationStats, error) {
	var stats app.OrganizationStats
	if err := s.load(ctx, organizationStatsPrefix+id, &stats); err != nil {
		if app.IsNotFoundError(err) {
			return nil, app.NotFoundError(fmt.Sprintf("organization stats %s not found", id))
		}
		return nil, err
	}

	return &stats, nil
}

func (s *StatsStore) save(ctx context.Context, key string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", key, err)
	}
	if err := s.kv.UpdateKey([]byte(key), data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}

func (s *StatsStore) load(ctx context.Context, key string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.kv.ReadKey([]byte(key))
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if data == nil {
		return app.NotFoundError(key + " not found")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshalling %s: %w", key, err)
	}

	return nil
}
