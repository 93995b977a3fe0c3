package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/riyaaaa19/shecare/internal/models"
)

// Category tags one recommendation. At most one recommendation per category is
// emitted per evaluation; the first rule to claim a category wins.
type Category string

const (
	CategoryCycle      Category = "cycle"
	CategoryMood       Category = "mood"
	CategorySupport    Category = "support"
	CategoryWellness   Category = "wellness"
	CategoryRest       Category = "rest"
	CategoryEngagement Category = "engagement"
	CategoryMotivation Category = "motivation"
	CategoryPCOS       Category = "pcos"
	CategorySymptom    Category = "symptom"
	CategoryHydration  Category = "hydration"
	CategoryGeneral    Category = "general"
)

// categoryIDs gives each category a small stable id, unique within one
// response. The exact numbers are display-only.
var categoryIDs = map[Category]int{
	CategoryCycle:      1,
	CategoryMood:       2,
	CategorySupport:    3,
	CategoryWellness:   4,
	CategoryRest:       5,
	CategoryEngagement: 6,
	CategoryMotivation: 7,
	CategoryPCOS:       8,
	CategorySymptom:    9,
	CategoryHydration:  10,
	CategoryGeneral:    11,
}

// Recommendation is one derived advisory message. It is never persisted.
type Recommendation struct {
	ID       int       `json:"id"`
	Category Category  `json:"type"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}

// Input is an immutable snapshot of one user's records. Cycles must be sorted
// ascending by start date; Journals may be in any order. Now is captured once
// by the caller so every rule agrees on the current time.
type Input struct {
	Cycles     []models.CycleEntry
	Journals   []models.JournalEntry
	LatestRisk *models.RiskCheck
	Now        time.Time
}

// A rule inspects the input and proposes zero or more candidate
// recommendations. The orchestrator drops candidates whose category has
// already been claimed earlier in the same evaluation.
type rule func(in Input) []Recommendation

// rules run in this order. Output order is rule order.
var rules = []rule{
	cycleRegularityRule,
	moodDistressRule,
	wellnessKeywordRule,
	restKeywordRule,
	engagementRule,
	motivationRule,
	riskNoteRule,
	pmsKeywordRule,
	hydrationRule,
}

// Recommend runs every rule against the snapshot and assembles the ordered,
// category-deduplicated result. The list is never empty: when no rule fires, a
// single general nudge is returned.
func Recommend(in Input) []Recommendation {
	claimed := make(map[Category]bool, len(categoryIDs))
	var out []Recommendation

	for _, r := range rules {
		for _, cand := range r(in) {
			if claimed[cand.Category] {
				continue
			}
			claimed[cand.Category] = true
			out = append(out, cand)
		}
	}

	if len(out) == 0 {
		out = append(out, newRecommendation(CategoryGeneral,
			"Start logging your cycle, moods, and symptoms to receive personalized recommendations.",
			in.Now))
	}

	return out
}

func newRecommendation(c Category, text string, date time.Time) Recommendation {
	return Recommendation{
		ID:       categoryIDs[c],
		Category: c,
		Text:     text,
		Date:     date,
	}
}

// cycleRegularityRule looks at the gaps between consecutive cycle start
// dates. The branches overlap; the first satisfied condition wins.
func cycleRegularityRule(in Input) []Recommendation {
	if len(in.Cycles) < 2 {
		return nil
	}

	gaps := make([]float64, 0, len(in.Cycles)-1)
	for i := 1; i < len(in.Cycles); i++ {
		gap := in.Cycles[i].StartDate.Sub(in.Cycles[i-1].StartDate).Hours() / 24
		gaps = append(gaps, gap)
	}

	sum, minGap, maxGap := 0.0, gaps[0], gaps[0]
	for _, g := range gaps {
		sum += g
		if g < minGap {
			minGap = g
		}
		if g > maxGap {
			maxGap = g
		}
	}
	avg := sum / float64(len(gaps))
	spread := maxGap - minGap

	var text string
	switch {
	case avg < 25:
		text = fmt.Sprintf("Your average cycle length is about %.0f days, which is on the shorter side. Consider mentioning this at your next checkup.", avg)
	case avg > 35:
		text = fmt.Sprintf("Your average cycle length is about %.0f days, which is on the longer side. Consider mentioning this at your next checkup.", avg)
	case spread > 7:
		text = "Your cycle lengths vary by more than a week. Consistent tracking helps you and your doctor spot patterns."
	default:
		text = "Your cycles look regular. Keep logging to stay on top of any changes."
	}

	return []Recommendation{newRecommendation(CategoryCycle, text, in.Now)}
}

// moodDistressRule counts negative-mood journal entries. Above the first
// threshold it proposes both a self-care and a support message; the stronger
// support message above the second threshold is still proposed but can never
// survive the claim set, since the milder one has already taken the category.
func moodDistressRule(in Input) []Recommendation {
	negative := 0
	for _, j := range in.Journals {
		switch strings.ToLower(j.Mood) {
		case "sad", "stressed", "anxious":
			negative++
		}
	}

	var out []Recommendation
	if negative > 3 {
		out = append(out,
			newRecommendation(CategoryMood,
				"You've logged several difficult days recently. Set aside time for self-care activities you enjoy.",
				in.Now),
			newRecommendation(CategorySupport,
				"Talking things through with a friend or loved one can help when moods feel heavy.",
				in.Now),
		)
	}
	if negative > 7 {
		out = append(out, newRecommendation(CategorySupport,
			"Your mood entries suggest a rough stretch. Consider reaching out to a mental health professional.",
			in.Now))
	}
	return out
}

func wellnessKeywordRule(in Input) []Recommendation {
	if !journalsMention(in.Journals, "headache", "fatigue", "cramp") {
		return nil
	}
	return []Recommendation{newRecommendation(CategoryWellness,
		"Your journal mentions physical symptoms. Staying hydrated and eating nutritious meals can help.",
		in.Now)}
}

func restKeywordRule(in Input) []Recommendation {
	if !journalsMention(in.Journals, "tired", "sleep", "rest") {
		return nil
	}
	return []Recommendation{newRecommendation(CategoryRest,
		"Feeling run down? Prioritize sleep hygiene and aim for 7-9 hours a night.",
		in.Now)}
}

const staleAfter = 14 * 24 * time.Hour

// engagementRule nudges the user when either record stream has gone quiet.
// A user with no records at all gets the general fallback instead.
func engagementRule(in Input) []Recommendation {
	if len(in.Cycles) == 0 && len(in.Journals) == 0 {
		return nil
	}

	cycleStale := len(in.Cycles) == 0 ||
		in.Now.Sub(in.Cycles[len(in.Cycles)-1].StartDate) > staleAfter

	journalStale := true
	if last := latestJournal(in.Journals); last != nil {
		journalStale = in.Now.Sub(last.Date) > staleAfter
	}

	if !cycleStale && !journalStale {
		return nil
	}
	return []Recommendation{newRecommendation(CategoryEngagement,
		"It's been a while since your last entry. Logging regularly makes your insights more accurate.",
		in.Now)}
}

func motivationRule(in Input) []Recommendation {
	cutoff := in.Now.Add(-30 * 24 * time.Hour)
	recent := 0
	for _, j := range in.Journals {
		if j.Date.After(cutoff) {
			recent++
		}
	}
	if recent <= 10 {
		return nil
	}
	return []Recommendation{newRecommendation(CategoryMotivation,
		"Great consistency! You've logged more than 10 journal entries this month. Keep it up.",
		in.Now)}
}

// riskNoteRule fires whenever an assessment exists, regardless of tier.
func riskNoteRule(in Input) []Recommendation {
	if in.LatestRisk == nil {
		return nil
	}
	return []Recommendation{newRecommendation(CategoryPCOS,
		"Based on your PCOS assessment, keep up healthy habits and consult a gynecologist with any concerns.",
		in.Now)}
}

func pmsKeywordRule(in Input) []Recommendation {
	if !journalsMention(in.Journals, "bloating", "craving") {
		return nil
	}
	return []Recommendation{newRecommendation(CategorySymptom,
		"Noticing PMS symptoms? Cutting back on sugar and caffeine before your period can help.",
		in.Now)}
}

// hydrationRule reminds the user when no journal entry has mentioned water
// recently. It stays silent when there are no journal entries at all.
func hydrationRule(in Input) []Recommendation {
	if len(in.Journals) == 0 {
		return nil
	}

	var lastMention *time.Time
	for _, j := range in.Journals {
		text := strings.ToLower(j.Text)
		if !strings.Contains(text, "water") && !strings.Contains(text, "hydration") {
			continue
		}
		if lastMention == nil || j.Date.After(*lastMention) {
			d := j.Date
			lastMention = &d
		}
	}

	if lastMention != nil && in.Now.Sub(*lastMention) <= 2*24*time.Hour {
		return nil
	}
	return []Recommendation{newRecommendation(CategoryHydration,
		"Don't forget to drink water regularly throughout the day.",
		in.Now)}
}

// journalsMention reports whether any journal text contains one of the given
// keywords. Plain case-insensitive substring match on the raw text; "no cramp"
// still matches "cramp".
func journalsMention(journals []models.JournalEntry, keywords ...string) bool {
	for _, j := range journals {
		text := strings.ToLower(j.Text)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

func latestJournal(journals []models.JournalEntry) *models.JournalEntry {
	var latest *models.JournalEntry
	for i := range journals {
		if latest == nil || journals[i].Date.After(latest.Date) {
			latest = &journals[i]
		}
	}
	return latest
}
