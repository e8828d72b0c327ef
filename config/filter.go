package config

import (
	"os"
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/timeutil"
)

// FilterConfig represents a configuration to filter fasting records in
// the database by their start time, end time, and assigned tags.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Tags      []string
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// setFilterConfig updates the filter configuration from command-line
// arguments.
func setFilterConfig(ctx *cli.Context) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	if ctx.String("tag") != "" {
		filterCfg.Tags = strings.Split(ctx.String("tag"), ",")
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	// reporting defaults to the past 7 days
	if period == "" && ctx.String("start") == "" {
		period = timeutil.Period7Days
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	start := ctx.String("start")
	if start != "" {
		parsed, err := dateparser.Parse(nil, start)
		if err != nil {
			return nil, err
		}

		filterCfg.StartTime = parsed.Time
	}

	now := time.Now()

	if now.After(filterCfg.StartTime) {
		filterCfg.EndTime = now
	} else {
		filterCfg.EndTime = timeutil.RoundToEnd(filterCfg.StartTime)
	}

	end := ctx.String("end")
	if end != "" {
		parsed, err := dateparser.Parse(nil, end)
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = parsed.Time
	}

	if filterCfg.StartTime.IsZero() {
		return nil, errInvalidStartDate
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

// Filter initializes and returns a configuration to filter fasting
// records from command-line arguments.
func Filter(ctx *cli.Context) *FilterConfig {
	cfg, err := setFilterConfig(ctx)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	return cfg
}
