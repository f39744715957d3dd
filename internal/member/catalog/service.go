package catalog

import (
	"context"
	"errors"
	"sync"
)

// ErrNotConfigured indicates the catalog service dependency has not been provided.
var ErrNotConfigured = errors.New("catalog service not configured")

// Service exposes the dashboard display data.
type Service interface {
	// Catalog returns the display data used by every section.
	Catalog(ctx context.Context) (*Catalog, error)
}

// StaticService serves the catalog compiled into the binary.
type StaticService struct {
	once sync.Once
	data *Catalog
	err  error
	src  []byte
}

// NewStaticService returns a StaticService backed by the embedded catalog.
func NewStaticService() *StaticService {
	return &StaticService{src: embedded}
}

// NewStaticServiceFrom returns a StaticService decoding the provided YAML document.
func NewStaticServiceFrom(data []byte) *StaticService {
	return &StaticService{src: data}
}

// Catalog decodes the catalog on first use and returns the shared value.
func (s *StaticService) Catalog(ctx context.Context) (*Catalog, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}
	s.once.Do(func() {
		s.data, s.err = Parse(s.src)
	})
	return s.data, s.err
}

// PlanFor returns the earning plan whose minimum package equals size.
func (c *Catalog) PlanFor(size PackageSize) (EarningPlan, bool) {
	if c == nil {
		return EarningPlan{}, false
	}
	for _, plan := range c.EarningPlans {
		if plan.MinPackage == size {
			return plan, true
		}
	}
	return EarningPlan{}, false
}

// VisibleLevels returns at most n level-unlock rows.
func (c *Catalog) VisibleLevels(n int) []LevelUnlock {
	if c == nil {
		return nil
	}
	if n <= 0 || n > len(c.Levels) {
		n = len(c.Levels)
	}
	out := make([]LevelUnlock, n)
	copy(out, c.Levels[:n])
	return out
}
