package dto

type StatsOutput struct {
	TotalActivities int
	CurrentStreak   int
	LongestStreak   int
	ConsistencyRate int
	SkillsLearned   int
}

type ActivityPoint struct {
	Date  string
	Count int
}

type SkillOutput struct {
	ID       string
	Name     string
	Level    int
	Category string
}

type InsightOutput struct {
	ID          string
	Title       string
	Description string
	Type        string
	Icon        string
	Timestamp   string
}

type AchievementOutput struct {
	ID           string
	Name         string
	Description  string
	Icon         string
	Requirement  string
	Unlocked     bool
	UnlockedDate string
}

// AggregateOutput is one complete dashboard load: either every slot is
// filled or the load failed as a whole.
type AggregateOutput struct {
	Stats        StatsOutput
	Activities   []ActivityPoint
	Skills       []SkillOutput
	Insights     []InsightOutput
	Achievements []AchievementOutput
}
