package advisor

import (
	"fmt"
	"strings"

	"go-healthnav/types"
)

// Classify keyword-matches the complaint to a condition and the hospital
// service that treats it. Unknown complaints return empty strings and
// fall through to the general message.
func Classify(symptoms string) (condition, service string) {
	lower := strings.ToLower(symptoms)
	switch {
	case containsAny(lower, "cardiac", "heart attack", "heart", "chest pain"):
		return "cardiac", "Cardiology"
	case strings.Contains(lower, "stroke"):
		return "stroke", "Stroke Center"
	case strings.Contains(lower, "trauma"):
		return "trauma", "Trauma"
	default:
		return "", ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ConditionMessage is the deterministic reply used when no LLM is
// configured.
func ConditionMessage(condition, symptoms string, severity types.Severity) string {
	priority := strings.ToUpper(string(severity))
	switch condition {
	case "cardiac":
		return fmt.Sprintf("Detected possible cardiac emergency (%s priority). Recommending cardiac-capable hospitals with ICU and 24/7 emergency services.", priority)
	case "stroke":
		return fmt.Sprintf("Suspected stroke (%s priority). Prioritizing stroke-certified facilities with neurology departments and CT scan availability.", priority)
	case "trauma":
		return fmt.Sprintf("Trauma incident detected (%s priority). Showing nearest Level I trauma centers with helicopter access and trauma teams.", priority)
	default:
		return fmt.Sprintf("Medical condition noted (%s priority). Displaying nearby hospitals and emergency facilities.", priority)
	}
}
