package domain

const (
	InsightTip         = "tip"
	InsightAchievement = "achievement"
	InsightMilestone   = "milestone"
)

type Insight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Timestamp   string `json:"timestamp"`
}
