package domain_test

import (
	"testing"
	"time"

	"ghostwrite/internal/modules/dashboard/domain"
)

func unlockedSet(statuses []domain.AchievementStatus) map[string]bool {
	out := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		out[s.ID] = s.Unlocked
	}
	return out
}

func TestEvaluateAchievementsReturnsFullCatalog(t *testing.T) {
	t.Parallel()
	statuses := domain.EvaluateAchievements(domain.Stats{}, time.Now())
	if len(statuses) != 8 {
		t.Fatalf("expected the full catalog of 8, got %d", len(statuses))
	}
	for _, s := range statuses {
		if s.Unlocked {
			t.Fatalf("zero stats should unlock nothing, %s is unlocked", s.ID)
		}
	}
}

func TestEvaluateAchievementsThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		id    string
		at    domain.Stats
		below domain.Stats
	}{
		{"first_step", domain.Stats{TotalActivities: 1}, domain.Stats{TotalActivities: 0}},
		{"on_fire", domain.Stats{CurrentStreak: 7}, domain.Stats{CurrentStreak: 6}},
		{"consistent", domain.Stats{ConsistencyRate: 80}, domain.Stats{ConsistencyRate: 79}},
		{"skill_master", domain.Stats{SkillsLearned: 5}, domain.Stats{SkillsLearned: 4}},
		{"unstoppable", domain.Stats{CurrentStreak: 30}, domain.Stats{CurrentStreak: 29}},
		{"legend", domain.Stats{TotalActivities: 100}, domain.Stats{TotalActivities: 99}},
		{"perfectionist", domain.Stats{ConsistencyRate: 95}, domain.Stats{ConsistencyRate: 94}},
		{"renaissance", domain.Stats{SkillsLearned: 10}, domain.Stats{SkillsLearned: 9}},
	}
	now := time.Now()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			if !unlockedSet(domain.EvaluateAchievements(tc.at, now))[tc.id] {
				t.Fatalf("%s should unlock exactly at its threshold", tc.id)
			}
			if unlockedSet(domain.EvaluateAchievements(tc.below, now))[tc.id] {
				t.Fatalf("%s should stay locked one below its threshold", tc.id)
			}
		})
	}
}

func TestEvaluateAchievementsStampsEvaluationTime(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	statuses := domain.EvaluateAchievements(domain.Stats{TotalActivities: 1}, at)
	for _, s := range statuses {
		if s.ID != "first_step" {
			continue
		}
		if !s.Unlocked {
			t.Fatalf("first_step should be unlocked")
		}
		if !s.UnlockedDate.Equal(at) {
			t.Fatalf("unlock date should be the evaluation instant, got %v", s.UnlockedDate)
		}
		return
	}
	t.Fatalf("first_step missing from results")
}

func TestEvaluateAchievementsLockedHaveNoDate(t *testing.T) {
	t.Parallel()
	statuses := domain.EvaluateAchievements(domain.Stats{}, time.Now())
	for _, s := range statuses {
		if !s.UnlockedDate.IsZero() {
			t.Fatalf("locked %s should carry no unlock date", s.ID)
		}
	}
}

func TestCatalogIsACopy(t *testing.T) {
	t.Parallel()
	first := domain.Catalog()
	first[0].Name = "mutated"
	if domain.Catalog()[0].Name == "mutated" {
		t.Fatalf("catalog must not be mutable through the returned slice")
	}
}
