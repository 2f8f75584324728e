// Package stats aggregates a feeding log into per-day statistics.
package stats

import (
	"time"

	"github.com/cjjknight/baby-feeding/internal/models"
)

// DailySeries transforms a feeding log snapshot into a dense per-day series
// covering every calendar day from the earliest feeding through the day of
// now, in the location of now. Days without feedings appear with zero values.
// An empty log produces an empty series.
func DailySeries(log models.FeedingLog, now time.Time) []models.DailyStat {
	if len(log) == 0 {
		return nil
	}

	loc := now.Location()
	sorted := log.Sorted()

	byDay := make(map[time.Time]models.FeedingLog)
	for _, t := range sorted {
		day := startOfDay(t.In(loc))
		byDay[day] = append(byDay[day], t)
	}

	startDay := startOfDay(sorted[0].In(loc))
	endDay := startOfDay(now.In(loc))

	var series []models.DailyStat
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		series = append(series, dayStat(day, byDay[day], loc))
	}
	return series
}

// Window selects the suffix of a dense day series for the given time range.
// The annual range returns the full series.
func Window(series []models.DailyStat, r models.TimeRange) []models.DailyStat {
	days := r.Days()
	if days <= 0 || len(series) <= days {
		return series
	}
	return series[len(series)-days:]
}

func dayStat(day time.Time, feedings models.FeedingLog, loc *time.Location) models.DailyStat {
	stat := models.DailyStat{Date: day, NumberOfMeals: len(feedings)}
	if len(feedings) == 0 {
		return stat
	}

	daytime := 0
	for _, t := range feedings {
		hour := t.In(loc).Hour()
		if hour >= models.DaytimeStartHour && hour < models.DaytimeEndHour {
			daytime++
		}
	}
	stat.PercentDaytime = float64(daytime) / float64(len(feedings)) * 100

	// feedings arrive sorted ascending from DailySeries
	for i := 1; i < len(feedings); i++ {
		gap := feedings[i].Sub(feedings[i-1]).Hours()
		if gap > stat.LongestGapHours {
			stat.LongestGapHours = gap
		}
	}
	return stat
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
