// Package sitemap derives crawl hints from post freshness and writes the
// sitemap document.
package sitemap

import "time"

// ChangeFreq sitemap changefreq value
type ChangeFreq string

// Change frequency hints
const (
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

type priorityBand struct {
	maxDays  float64
	priority float64
}

type freqBand struct {
	maxDays float64
	freq    ChangeFreq
}

// Bands are checked in order; the first band whose bound is >= days wins.
var (
	priorityBands = []priorityBand{
		{7, 0.9},
		{30, 0.8},
		{90, 0.7},
		{180, 0.6},
		{365, 0.5},
	}
	freqBands = []freqBand{
		{1, Hourly},
		{7, Daily},
		{30, Weekly},
		{365, Monthly},
	}
)

const (
	stalePriority = 0.4
	staleFreq     = Yearly
)

// ScorePriority maps days since the last update to a priority in [0.4, 0.9].
// Negative input lands in the freshest band.
func ScorePriority(daysSinceUpdate float64) float64 {
	for _, b := range priorityBands {
		if daysSinceUpdate <= b.maxDays {
			return b.priority
		}
	}
	return stalePriority
}

// ScoreChangeFrequency maps days since the last update to a changefreq hint
func ScoreChangeFrequency(daysSinceUpdate float64) ChangeFreq {
	for _, b := range freqBands {
		if daysSinceUpdate <= b.maxDays {
			return b.freq
		}
	}
	return staleFreq
}

// DaysBetween fractional days from updatedAt to now
func DaysBetween(updatedAt, now time.Time) float64 {
	return now.Sub(updatedAt).Hours() / 24
}
