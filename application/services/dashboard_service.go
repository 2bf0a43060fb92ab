package services

import (
	"context"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// areaSitePrefix maps a management area to the leading digit of its site
// codes.
var areaSitePrefix = map[string]byte{
	"SS":    '9',
	"CS":    '8',
	"AMPB":  '7',
	"PAPMC": '6',
}

// DashboardFilter narrows the summary. Every field is independently
// optional; zero values match everything.
type DashboardFilter struct {
	Area     string `json:"area"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	SiteCode string `json:"siteCode"`
}

// SiteSummary is one site's status breakdown.
type SiteSummary struct {
	SiteCode   string `json:"siteCode"`
	SiteName   string `json:"siteName"`
	New        int    `json:"new"`
	InProgress int    `json:"inProgress"`
	Closed     int    `json:"closed"`
	Total      int    `json:"total"`
}

// DashboardSummary is the aggregated report.
type DashboardSummary struct {
	Filter DashboardFilter `json:"filter"`
	Sites  []*SiteSummary  `json:"sites"`
	Totals SiteSummary     `json:"totals"`
}

// DashboardConfig selects the partial-failure behavior of the status
// fan-out. FailFast aborts the whole summary on the first failed per-status
// query; otherwise the summary degrades to the statuses that loaded, with a
// warning logged per failure. A degraded summary undercounts silently, which
// is why fail-fast is the default.
type DashboardConfig struct {
	FailFast bool
}

// DashboardService aggregates inspections into per-site status counts.
type DashboardService struct {
	inspections *repository.InspectionRepository
	cfg         DashboardConfig
	logger      *zap.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(inspections *repository.InspectionRepository, cfg DashboardConfig, logger *zap.Logger) *DashboardService {
	return &DashboardService{inspections: inspections, cfg: cfg, logger: logger}
}

// GetSummary fans out one by-status query per known status, filters in
// memory and groups by site code.
func (s *DashboardService) GetSummary(ctx context.Context, filter DashboardFilter) (*DashboardSummary, error) {
	if filter.Area != "" {
		if _, ok := areaSitePrefix[filter.Area]; !ok {
			return nil, apperrors.NewValidationError("area must be one of: SS, CS, AMPB, PAPMC")
		}
	}

	var all []*model.Inspection
	for _, status := range model.Statuses {
		list, err := s.inspections.FindByStatus(ctx, status)
		if err != nil {
			if s.cfg.FailFast {
				return nil, err
			}
			s.logger.Warn("dashboard degraded: status query failed",
				zap.String("status", status),
				zap.Error(err),
			)
			continue
		}
		all = append(all, list...)
	}

	groups := make(map[string]*SiteSummary)
	for _, insp := range all {
		if !matchesFilter(insp, filter) {
			continue
		}
		if insp.SiteCode == "" {
			continue
		}
		group, ok := groups[insp.SiteCode]
		if !ok {
			group = &SiteSummary{SiteCode: insp.SiteCode, SiteName: insp.SiteName}
			groups[insp.SiteCode] = group
		}
		switch insp.Status {
		case model.StatusNew:
			group.New++
		case model.StatusInProgress:
			group.InProgress++
		case model.StatusClosed:
			group.Closed++
		}
		group.Total++
	}

	sites := make([]*SiteSummary, 0, len(groups))
	for _, g := range groups {
		sites = append(sites, g)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].SiteCode < sites[j].SiteCode })

	var totals SiteSummary
	for _, g := range sites {
		totals.New += g.New
		totals.InProgress += g.InProgress
		totals.Closed += g.Closed
		totals.Total += g.Total
	}

	return &DashboardSummary{
		Filter: filter,
		Sites:  sites,
		Totals: totals,
	}, nil
}

func matchesFilter(insp *model.Inspection, filter DashboardFilter) bool {
	if filter.SiteCode != "" && insp.SiteCode != filter.SiteCode {
		return false
	}
	if filter.Area != "" {
		// An inspection without a site code can never belong to an area.
		if insp.SiteCode == "" || insp.SiteCode[0] != areaSitePrefix[filter.Area] {
			return false
		}
	}
	if filter.Year != 0 || filter.Month != 0 {
		year, month, ok := parseStartDate(insp.StartDate)
		if !ok {
			return false
		}
		if filter.Year != 0 && year != filter.Year {
			return false
		}
		if filter.Month != 0 && month != filter.Month {
			return false
		}
	}
	return true
}

// parseStartDate extracts year and month from a YYYY-MM-DD string.
func parseStartDate(startDate string) (int, int, bool) {
	if len(startDate) < 7 || startDate[4] != '-' {
		return 0, 0, false
	}
	year, err := strconv.Atoi(startDate[0:4])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(startDate[5:7])
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
