package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"quotactl/pkg/types"
)

// UsageLister fetches usage/limit records for one region.
type UsageLister interface {
	UsageList(ctx context.Context, region string) ([]types.Usage, error)
}

// Scanner computes per-region model availability from the quota API.
type Scanner struct {
	az      UsageLister
	catalog []types.CatalogModel
	log     zerolog.Logger
}

// NewScanner builds a Scanner over the given usage source and model catalog.
func NewScanner(az UsageLister, catalog []types.CatalogModel, log zerolog.Logger) *Scanner {
	return &Scanner{az: az, catalog: catalog, log: log}
}

// Scan queries every region and returns the availability report.
//
// A failed region query is logged and skipped; it never aborts the scan of the
// remaining regions. A region is kept as a candidate only when at least one
// chat model and one embedding model have strictly positive availability.
func (s *Scanner) Scan(ctx context.Context, regions []string) (*types.AvailabilityReport, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions to scan")
	}
	start := time.Now()
	report := &types.AvailabilityReport{}
	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		usages, err := s.az.UsageList(ctx, region)
		if err != nil {
			s.log.Warn().Str("region", region).Err(err).Msg("usage query failed, skipping region")
			report.Skipped = append(report.Skipped, region)
			regionsSkipped.Inc()
			continue
		}
		regionsScanned.Inc()
		ra := s.regionAvailability(region, usages)
		if isCandidate(ra) {
			report.Candidates = append(report.Candidates, ra)
		} else {
			s.log.Debug().Str("region", region).Msg("region has no usable chat+embedding pair")
		}
	}
	report.FetchedAt = time.Now().UTC()
	scanDuration.Observe(time.Since(start).Seconds())
	candidateRegions.Set(float64(len(report.Candidates)))
	s.log.Info().
		Int("candidates", len(report.Candidates)).
		Int("skipped", len(report.Skipped)).
		Dur("dur", time.Since(start)).
		Msg("quota scan complete")
	return report, nil
}

// regionAvailability joins the usage records against the catalog.
// Catalog models absent from the region's usage list are not offered there.
func (s *Scanner) regionAvailability(region string, usages []types.Usage) types.RegionAvailability {
	byName := make(map[string]types.Usage, len(usages))
	for _, u := range usages {
		byName[u.Name.Value] = u
	}
	ra := types.RegionAvailability{Region: region}
	for _, m := range s.catalog {
		u, ok := byName[m.UsageName]
		if !ok {
			continue
		}
		used := int(u.CurrentValue)
		limit := int(u.Limit)
		avail := limit - used
		if avail < 0 {
			avail = 0
		}
		ra.Models = append(ra.Models, types.ModelAvailability{
			Model:     m,
			Used:      used,
			Limit:     limit,
			Available: avail,
		})
	}
	return ra
}

func isCandidate(ra types.RegionAvailability) bool {
	return len(ra.Kind(types.KindChat)) > 0 && len(ra.Kind(types.KindEmbedding)) > 0
}
