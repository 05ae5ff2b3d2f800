package enrichment

import (
	"strings"

	"foodiefind/reservation-svc/internal/domain"
)

// Recommendations suggests a dining style for the weather. A nil weather
// yields no suggestions.
func Recommendations(w *domain.Weather) []domain.Recommendation {
	out := []domain.Recommendation{}
	if w == nil {
		return out
	}

	switch {
	case w.Temperature > 25:
		out = append(out, domain.Recommendation{
			Type:       "hot",
			Title:      "Perfect weather for outdoor dining!",
			Suggestion: "Consider restaurants with patios or rooftop seating",
			Icon:       "fas fa-sun text-warning",
		})
	case w.Temperature < 10:
		out = append(out, domain.Recommendation{
			Type:       "cold",
			Title:      "Cozy indoor dining recommended",
			Suggestion: "Warm soups and hot beverages would be perfect",
			Icon:       "fas fa-snowflake text-info",
		})
	default:
		out = append(out, domain.Recommendation{
			Type:       "mild",
			Title:      "Great weather for any dining experience",
			Suggestion: "Both indoor and outdoor dining options available",
			Icon:       "fas fa-cloud-sun text-primary",
		})
	}

	desc := strings.ToLower(w.Description)
	if strings.Contains(desc, "rain") || strings.Contains(desc, "drizzle") {
		out = append(out, domain.Recommendation{
			Type:       "rain",
			Title:      "Rainy day comfort food",
			Suggestion: "Perfect time for hearty meals and warm drinks",
			Icon:       "fas fa-cloud-rain text-primary",
		})
	}
	return out
}
