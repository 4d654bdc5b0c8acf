package common

import "time"

// ChallengeType names the run metric a daily leaderboard ranks by.
type ChallengeType string

const (
	ChallengePoints     ChallengeType = "points"
	ChallengeTime       ChallengeType = "time"
	ChallengeComboTime  ChallengeType = "combo_time"
	ChallengeObjectsCut ChallengeType = "objects_cut"
)

// Metrics lists every metric persisted on submission, in wire order.
var Metrics = []ChallengeType{
	ChallengePoints,
	ChallengeTime,
	ChallengeComboTime,
	ChallengeObjectsCut,
}

// Valid reports whether c is one of the known metrics.
func (c ChallengeType) Valid() bool {
	for _, m := range Metrics {
		if m == c {
			return true
		}
	}
	return false
}

// Challenge describes the leaderboard featured on a given weekday.
type Challenge struct {
	ID          ChallengeType `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Better      string        `json:"better"`
}

// WeeklyChallenges maps each weekday to its featured challenge.
var WeeklyChallenges = map[time.Weekday]Challenge{
	time.Monday: {
		ID:          ChallengePoints,
		Name:        "Shuriken Showdown",
		Description: "Slice fast and rack up the highest score!",
		Better:      "higher",
	},
	time.Tuesday: {
		ID:          ChallengeTime,
		Name:        "Shadow Survival",
		Description: "Stay alive as long as you can.",
		Better:      "higher",
	},
	time.Wednesday: {
		ID:          ChallengeComboTime,
		Name:        "Combo Endurance",
		Description: "Keep your strikes chained for the longest duration.",
		Better:      "higher",
	},
	time.Thursday: {
		ID:          ChallengeComboTime,
		Name:        "Rapid Strike Master",
		Description: "Maintain combo streaks efficiently over time.",
		Better:      "higher",
	},
	time.Friday: {
		ID:          ChallengeObjectsCut,
		Name:        "Blade Frenzy",
		Description: "Slice as many objects as possible with precision.",
		Better:      "higher",
	},
	time.Saturday: {
		ID:          ChallengeTime,
		Name:        "Ninja Marathon",
		Description: "Test your survival skills to the max.",
		Better:      "higher",
	},
	time.Sunday: {
		ID:          ChallengePoints,
		Name:        "Final Strike",
		Description: "Push for the ultimate score before the week ends!",
		Better:      "higher",
	},
}

// ChallengeFor returns the challenge featured on t's weekday.
func ChallengeFor(t time.Time) Challenge {
	return WeeklyChallenges[t.Weekday()]
}

// DayKey formats t as the YYYY-MM-DD key used for daily leaderboards.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
