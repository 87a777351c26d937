package dates

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
)

// currentEndConfidence is the end-date confidence assumed when the end is
// "today" because the position is still held.
const currentEndConfidence = 0.8

const daysPerYear = 365.25

// TenureResult is the outcome of a single start/end calculation.
type TenureResult struct {
	TenureYears float64
	Confidence  float64
	IsCurrent   bool
	StartDate   time.Time
	EndDate     time.Time
	HasStart    bool
	HasEnd      bool
}

// CalculateTenure computes the tenure of one position in years. Current
// positions end today at 0.8 confidence; overall confidence is the mean of
// the two date confidences. When the end date cannot be resolved the tenure
// stays zero and the start confidence is halved.
func CalculateTenure(startDate, endDate string, today time.Time) TenureResult {
	var result TenureResult

	start, startConf, hasStart := ParseDate(startDate, false, today)
	result.StartDate, result.HasStart = start, hasStart

	result.IsCurrent = IsCurrentPosition(endDate, today)

	end, endConf, hasEnd := ParseDate(endDate, true, today)
	result.EndDate, result.HasEnd = end, hasEnd

	if !hasStart {
		return result
	}

	if result.IsCurrent {
		// Diff whole calendar days: a wall-clock today would leak a
		// fractional day into the tenure.
		end, hasEnd = midnight(today), true
		endConf = currentEndConfidence
	}

	if hasEnd && !end.Before(start) {
		days := end.Sub(start).Hours() / 24
		result.TenureYears = round(days/daysPerYear, 2)
		result.Confidence = (startConf + endConf) / 2
	} else {
		result.Confidence = startConf * 0.5
	}
	return result
}

// usLocationIndicators mark a job location as inside the United States:
// a comma-state suffix or an explicit country mention, matched against the
// uppercased location.
var usLocationIndicators = []string{
	", AL", ", AK", ", AZ", ", AR", ", CA", ", CO", ", CT", ", DE", ", FL",
	", GA", ", HI", ", ID", ", IL", ", IN", ", IA", ", KS", ", KY", ", LA",
	", ME", ", MD", ", MA", ", MI", ", MN", ", MS", ", MO", ", MT", ", NE",
	", NV", ", NH", ", NJ", ", NM", ", NY", ", NC", ", ND", ", OH", ", OK",
	", OR", ", PA", ", RI", ", SC", ", SD", ", TN", ", TX", ", UT", ", VT",
	", VA", ", WA", ", WV", ", WI", ", WY",
	"UNITED STATES", "USA", "U.S.A",
}

func isUSLocation(location string) bool {
	upper := strings.ToUpper(location)
	for _, indicator := range usLocationIndicators {
		if strings.Contains(upper, indicator) {
			return true
		}
	}
	return false
}

// CalculateExperienceMetrics aggregates tenure across a work history.
// Stints without a company are skipped entirely; stints whose tenure or
// confidence is zero appear in JobMetrics but do not count toward totals.
// Totals and averages round to one decimal.
func CalculateExperienceMetrics(jobs []types.JobStint, today time.Time) types.ExperienceMetrics {
	var metrics types.ExperienceMetrics
	if len(jobs) == 0 {
		return metrics
	}

	var totalTenure, usTenure, totalConfidence float64
	validJobs, usJobs := 0, 0

	for _, job := range jobs {
		if !job.Company.Known || job.Company.Value == "" {
			continue
		}

		tenure := CalculateTenure(job.StartDate.Value, job.EndDate.Value, today)
		metrics.JobMetrics = append(metrics.JobMetrics, types.JobMetric{
			Company:     job.Company.Value,
			Location:    job.Location.Value,
			TenureYears: tenure.TenureYears,
			Confidence:  tenure.Confidence,
			IsCurrent:   tenure.IsCurrent,
			StartDate:   tenure.StartDate,
			EndDate:     tenure.EndDate,
			HasStart:    tenure.HasStart,
			HasEnd:      tenure.HasEnd,
		})

		if tenure.TenureYears <= 0 || tenure.Confidence <= 0 {
			continue
		}
		totalTenure += tenure.TenureYears
		totalConfidence += tenure.Confidence
		validJobs++

		if isUSLocation(job.Location.Value) {
			usTenure += tenure.TenureYears
			usJobs++
		}
	}

	if validJobs > 0 {
		metrics.TotalExperience = round(totalTenure, 1)
		metrics.AvgTenure = round(totalTenure/float64(validJobs), 1)
		metrics.Confidence = totalConfidence / float64(validJobs)
	}
	if usJobs > 0 {
		metrics.USExperience = round(usTenure, 1)
	}
	return metrics
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
