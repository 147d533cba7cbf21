package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"shudao/internal/models/response_models"
	"shudao/internal/repositories"
	"shudao/pkg/utils"
)

// keywordLimit caps the keyword vocabulary. Values beyond the first 50
// alphabetically are dropped; the splitting itself is best effort over
// comma-separated free text.
const (
	keywordLimit   = 50
	keywordRowScan = 100
)

type FilterServiceInterface interface {
	GetOptions(ctx context.Context) (*response_models.FilterOptions, error)
}

type FilterService struct {
	filterRepo repositories.FilterRepository
	logger     *zap.Logger
}

func NewFilterService(filterRepo repositories.FilterRepository, logger *zap.Logger) FilterServiceInterface {
	return &FilterService{
		filterRepo: filterRepo,
		logger:     logger,
	}
}

func (f *FilterService) GetOptions(ctx context.Context) (*response_models.FilterOptions, error) {
	options := &response_models.FilterOptions{}

	// Fixed whitelist of (table, column, destination) triples; the
	// repository never sees caller-supplied identifiers.
	single := []struct {
		table  string
		column string
		dest   *[]string
	}{
		{"poems.poems", "dynasty", &options.Dynasties},
		{"poems.poems", "author", &options.Authors},
		{"poems.poems", "poemtype", &options.Poemtypes},
		{"heritage.heritage", "rx_time", &options.RxTimes},
		{"heritage.heritage", "type", &options.HeritageTypes},
		{"history.history", "people", &options.People},
		{"history.history", "period", &options.Periods},
		{"history.history", "property", &options.Properties},
		{"scenic.scenic", "sight_level", &options.SightLevels},
	}
	for _, q := range single {
		values, err := f.filterRepo.DistinctValues(ctx, q.table, q.column)
		if err != nil {
			f.logger.Error("distinct query failed",
				zap.String("table", q.table), zap.String("column", q.column), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		*q.dest = values
	}

	keywordRows, err := f.filterRepo.DistinctKeywordRows(ctx, keywordRowScan)
	if err != nil {
		f.logger.Error("keyword scan failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	options.Keywords = splitKeywords(keywordRows, keywordLimit)

	unions := []struct {
		column string
		tables []string
		dest   *[]string
	}{
		{"province", []string{"poems.poems", "heritage.heritage", "history.history"}, &options.Provinces},
		{"city", []string{"poems.poems", "history.history"}, &options.Cities},
		{"county", []string{"poems.poems", "history.history"}, &options.Counties},
	}
	for _, q := range unions {
		set := make(map[string]struct{})
		for _, table := range q.tables {
			values, err := f.filterRepo.DistinctValues(ctx, table, q.column)
			if err != nil {
				f.logger.Error("distinct union query failed",
					zap.String("table", table), zap.String("column", q.column), zap.Error(err))
				return nil, utils.ErrDatabaseError
			}
			for _, v := range values {
				set[v] = struct{}{}
			}
		}
		*q.dest = sortedValues(set)
	}

	minScore, maxScore, err := f.filterRepo.ScoreRange(ctx)
	if err != nil {
		f.logger.Error("score range query failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	options.ScoreRange = response_models.ScoreRange{Min: 0, Max: 5}
	if minScore != nil {
		options.ScoreRange.Min = *minScore
	}
	if maxScore != nil {
		options.ScoreRange.Max = *maxScore
	}

	return options, nil
}

// splitKeywords breaks comma-separated keyword strings into a
// deduplicated sorted vocabulary, truncated to limit entries.
func splitKeywords(rows []string, limit int) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		for _, part := range strings.Split(row, ",") {
			if keyword := strings.TrimSpace(part); keyword != "" {
				set[keyword] = struct{}{}
			}
		}
	}

	keywords := sortedValues(set)
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

func sortedValues(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
