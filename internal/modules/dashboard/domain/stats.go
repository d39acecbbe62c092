package domain

// Stats is one dashboard load's aggregate numbers, produced fresh by the
// backend on every visit and never persisted client-side. The backend
// does not guarantee LongestStreak >= CurrentStreak, so nothing here
// enforces it.
type Stats struct {
	TotalActivities int `json:"totalActivities"`
	CurrentStreak   int `json:"currentStreak"`
	LongestStreak   int `json:"longestStreak"`
	ConsistencyRate int `json:"consistencyRate"`
	SkillsLearned   int `json:"skillsLearned"`
}
