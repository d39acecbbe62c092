package domain

import "time"

// Achievement is one badge definition from the fixed catalog.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement string
	unlock      func(Stats) bool
}

// AchievementStatus annotates a catalog entry with this evaluation's
// outcome. Unlock state is recomputed on every dashboard load and the
// date stamped with evaluation time, so it reads "unlocked as of now",
// not the true first-unlock moment.
type AchievementStatus struct {
	Achievement
	Unlocked     bool
	UnlockedDate time.Time
}

var catalog = []Achievement{
	{
		ID:          "first_step",
		Name:        "First Step",
		Description: "Log your first learning activity",
		Icon:        "🎯",
		Requirement: "totalActivities >= 1",
		unlock:      func(s Stats) bool { return s.TotalActivities >= 1 },
	},
	{
		ID:          "on_fire",
		Name:        "On Fire!",
		Description: "Maintain a 7-day streak",
		Icon:        "🔥",
		Requirement: "currentStreak >= 7",
		unlock:      func(s Stats) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID:          "consistent",
		Name:        "Consistency King",
		Description: "Maintain 80% consistency rate",
		Icon:        "👑",
		Requirement: "consistencyRate >= 80",
		unlock:      func(s Stats) bool { return s.ConsistencyRate >= 80 },
	},
	{
		ID:          "skill_master",
		Name:        "Skill Master",
		Description: "Learn 5 different skills",
		Icon:        "🎓",
		Requirement: "skillsLearned >= 5",
		unlock:      func(s Stats) bool { return s.SkillsLearned >= 5 },
	},
	{
		ID:          "unstoppable",
		Name:        "Unstoppable",
		Description: "Achieve a 30-day streak",
		Icon:        "⚡",
		Requirement: "currentStreak >= 30",
		unlock:      func(s Stats) bool { return s.CurrentStreak >= 30 },
	},
	{
		ID:          "legend",
		Name:        "Legend",
		Description: "Complete 100+ activities",
		Icon:        "👹",
		Requirement: "totalActivities >= 100",
		unlock:      func(s Stats) bool { return s.TotalActivities >= 100 },
	},
	{
		ID:          "perfectionist",
		Name:        "Perfectionist",
		Description: "Achieve 95% consistency rate",
		Icon:        "✨",
		Requirement: "consistencyRate >= 95",
		unlock:      func(s Stats) bool { return s.ConsistencyRate >= 95 },
	},
	{
		ID:          "renaissance",
		Name:        "Renaissance",
		Description: "Master 10+ skills",
		Icon:        "🏆",
		Requirement: "skillsLearned >= 10",
		unlock:      func(s Stats) bool { return s.SkillsLearned >= 10 },
	},
}

// Catalog returns the fixed badge definitions in display order.
func Catalog() []Achievement {
	return append([]Achievement(nil), catalog...)
}

// EvaluateAchievements checks every catalog entry against stats. All 8
// entries are always returned, locked ones included.
func EvaluateAchievements(stats Stats, now time.Time) []AchievementStatus {
	out := make([]AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		status := AchievementStatus{Achievement: a, Unlocked: a.unlock(stats)}
		if status.Unlocked {
			status.UnlockedDate = now
		}
		out = append(out, status)
	}
	return out
}
