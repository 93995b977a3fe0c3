package insights

// Risk is a PCOS risk tier derived from a symptom self-assessment.
type Risk string

const (
	RiskLow      Risk = "Low"
	RiskModerate Risk = "Moderate"
	RiskHigh     Risk = "High"
)

// riskTips maps each tier to its fixed advice list. The strings are shown to
// the user verbatim and do not depend on which symptoms were selected.
var riskTips = map[Risk][]string{
	RiskLow: {
		"Maintain a balanced diet and regular exercise.",
		"Continue tracking your cycle and symptoms.",
		"Schedule regular checkups with your doctor.",
	},
	RiskModerate: {
		"Consider consulting a gynecologist for further evaluation.",
		"Adopt a healthy lifestyle: balanced diet, exercise, stress management.",
		"Monitor symptoms and menstrual cycle closely.",
	},
	RiskHigh: {
		"Consult a healthcare provider for a detailed diagnosis and management plan.",
		"Discuss possible treatments and lifestyle changes.",
		"Seek support for emotional well-being if needed.",
	},
}

// Classify maps a free-form assessment submission to a risk tier and its tip
// list. Only the size of the "symptoms" list matters: more than 3 selected
// symptoms is High, more than 1 is Moderate, anything else is Low. A missing
// or malformed symptoms field counts as zero symptoms.
func Classify(answers map[string]any) (Risk, []string) {
	n := symptomCount(answers)

	risk := RiskLow
	switch {
	case n > 3:
		risk = RiskHigh
	case n > 1:
		risk = RiskModerate
	}

	tips := make([]string, len(riskTips[risk]))
	copy(tips, riskTips[risk])
	return risk, tips
}

func symptomCount(answers map[string]any) int {
	if answers == nil {
		return 0
	}
	switch v := answers["symptoms"].(type) {
	case []string:
		return len(v)
	case []any:
		// JSON-decoded submissions arrive as []any.
		return len(v)
	default:
		return 0
	}
}
