package dates

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

// fallbackAvgTenure is assumed when a work history exists but no tenure
// could be computed from it.
const fallbackAvgTenure = 2.0

// StintsFromFields collects the up-to-seven work-history entries whose
// company is known, most recent first.
func StintsFromFields(fields types.ParsedFieldSet) []types.JobStint {
	var jobs []types.JobStint
	for i := 0; i < types.MaxStints; i++ {
		company, start, end, location := types.StintFieldNames(i)
		c := fields.Get(company)
		if !c.Known || c.Value == "" {
			continue
		}
		jobs = append(jobs, types.JobStint{
			Company:   c,
			StartDate: fields.Get(start),
			EndDate:   fields.Get(end),
			Location:  fields.Get(location),
		})
	}
	return jobs
}

// EnhanceExperienceFields fills YearsofExperience, AvgTenure, and
// LengthinUS from computed work-history metrics. Values the model already
// supplied are preserved; computed values fill gaps, and crude fallbacks
// apply when even the computation comes up empty.
func EnhanceExperienceFields(fields types.ParsedFieldSet, today time.Time, log *zap.Logger) types.ExperienceMetrics {
	jobs := StintsFromFields(fields)
	metrics := CalculateExperienceMetrics(jobs, today)

	for _, jm := range metrics.JobMetrics {
		if jm.IsCurrent {
			log.Info("detected current position",
				zap.String("company", jm.Company),
				zap.Float64("tenure_years", jm.TenureYears))
		}
	}

	switch {
	case fields.Get("YearsofExperience").Known:
		log.Info("preserving model years of experience",
			zap.String("value", fields.Value("YearsofExperience")))
	case metrics.TotalExperience > 0:
		fields.Set("YearsofExperience", types.KnownField(formatYears(metrics.TotalExperience)))
	case len(jobs) > 0:
		// Crude floor: one year per named employer.
		fields.Set("YearsofExperience", types.KnownField(strconv.Itoa(len(jobs))))
	}

	switch {
	case fields.Get("AvgTenure").Known:
		log.Info("preserving model average tenure",
			zap.String("value", fields.Value("AvgTenure")))
	case metrics.AvgTenure > 0:
		fields.Set("AvgTenure", types.KnownField(formatYears(metrics.AvgTenure)))
	case len(jobs) > 0:
		fallback := fallbackAvgTenure
		if metrics.TotalExperience > 0 {
			fallback = round(metrics.TotalExperience/float64(len(jobs)), 1)
		}
		fields.Set("AvgTenure", types.KnownField(formatYears(fallback)))
	}

	switch {
	case fields.Get("LengthinUS").Known:
		log.Info("preserving model US experience",
			zap.String("value", fields.Value("LengthinUS")))
	case metrics.USExperience > 0:
		fields.Set("LengthinUS", types.KnownField(formatYears(metrics.USExperience)))
	case hasUSIndicators(jobs) && metrics.TotalExperience > 0:
		fields.Set("LengthinUS", types.KnownField(formatYears(metrics.TotalExperience)))
	}

	return metrics
}

// hasUSIndicators is the looser location sniff used only for the LengthinUS
// fallback.
func hasUSIndicators(jobs []types.JobStint) bool {
	for _, job := range jobs {
		upper := strings.ToUpper(job.Location.Value)
		if strings.Contains(upper, "USA") ||
			strings.Contains(upper, "UNITED STATES") ||
			strings.Contains(upper, "TX") ||
			strings.Contains(upper, ", US") {
			return true
		}
	}
	return false
}

// formatYears renders a year count with one decimal, matching the string
// form the downstream columns expect.
func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
