package copytext

import "github.com/rgehrsitz/countdown/internal/domain"

// Slider captions of the assumptions editor
var (
	HealthMarks = map[int]string{
		1: "Poor",
		2: "Fair",
		3: "OK",
		4: "Good",
		5: "Great",
	}

	EatingMarks = map[int]string{
		1: "Ultra-processed",
		2: "Convenience",
		3: "Mixed",
		4: "Mostly whole",
		5: "Whole-food",
	}
)

var lifeExpectancyLabels = map[domain.LifeExpectancy]string{
	domain.LifeExpectancyShort:      "Short",
	domain.LifeExpectancyAverage:    "Average",
	domain.LifeExpectancyOptimistic: "Optimistic",
}

var toneLabels = map[domain.Tone]string{
	domain.ToneDry:          "Dry",
	domain.ToneBleak:        "Bleak",
	domain.ToneBureaucratic: "Bureaucratic",
	domain.ToneCosmic:       "Cosmic",
}

var unitModeLabels = map[domain.UnitMode]string{
	domain.UnitModeWeekly: "Weeks",
	domain.UnitModeYearly: "Years",
}

// LifeExpectancyLabel is the toggle caption of a band
func LifeExpectancyLabel(le domain.LifeExpectancy) string {
	if l, ok := lifeExpectancyLabels[le]; ok {
		return l
	}
	return string(le)
}

// ToneLabel is the selector caption of a tone
func ToneLabel(t domain.Tone) string {
	if l, ok := toneLabels[t]; ok {
		return l
	}
	return string(t)
}

// UnitModeLabel is the toggle caption of a unit mode
func UnitModeLabel(u domain.UnitMode) string {
	if l, ok := unitModeLabels[u]; ok {
		return l
	}
	return string(u)
}
