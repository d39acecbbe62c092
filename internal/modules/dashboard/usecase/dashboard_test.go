package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	activitydto "ghostwrite/internal/modules/activity/dto"
	"ghostwrite/internal/modules/dashboard/domain"
	"ghostwrite/internal/modules/dashboard/service"
	"ghostwrite/internal/modules/dashboard/usecase"
	skillsdto "ghostwrite/internal/modules/skills/dto"
	"ghostwrite/internal/platform/clock"
)

type fakeDashboardAPI struct {
	stats       domain.Stats
	statsErr    error
	insights    []domain.Insight
	insightsErr error
}

func (f *fakeDashboardAPI) GetStats(context.Context) (domain.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeDashboardAPI) GetInsights(context.Context) ([]domain.Insight, error) {
	return f.insights, f.insightsErr
}

type fakeActivity struct {
	data []activitydto.DatumOutput
	err  error
	days int
}

func (f *fakeActivity) Recent(_ context.Context, days int) ([]activitydto.DatumOutput, error) {
	f.days = days
	return f.data, f.err
}

func (f *fakeActivity) Log(context.Context, activitydto.LogInput) error { return nil }

type fakeSkills struct {
	skills []skillsdto.SkillOutput
	err    error
}

func (f *fakeSkills) List(context.Context) ([]skillsdto.SkillOutput, error) {
	return f.skills, f.err
}

func (f *fakeSkills) UpdateLevel(context.Context, string, int) error { return nil }

func TestLoadMergesAllSections(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	api := &fakeDashboardAPI{
		stats: domain.Stats{TotalActivities: 156, CurrentStreak: 12, LongestStreak: 34, ConsistencyRate: 87, SkillsLearned: 8},
		insights: []domain.Insight{
			{ID: "1", Title: "Amazing Streak!", Type: domain.InsightAchievement, Icon: "🔥"},
		},
	}
	activity := &fakeActivity{data: []activitydto.DatumOutput{
		{Date: "2024-01-10", Count: 5},
		{Date: "2024-01-11", Count: 8},
	}}
	skills := &fakeSkills{skills: []skillsdto.SkillOutput{
		{ID: "s1", Name: "React", Level: 90, Category: "Frontend"},
	}}

	uc := usecase.NewInteractor(service.NewDashboardService(clock.Fixed{At: at}, api), activity, skills)
	out, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if out.Stats.TotalActivities != 156 || out.Stats.ConsistencyRate != 87 {
		t.Fatalf("stats not merged: %+v", out.Stats)
	}
	if len(out.Activities) != 2 || out.Activities[0].Date != "2024-01-10" {
		t.Fatalf("activities not merged: %+v", out.Activities)
	}
	if activity.days != 7 {
		t.Fatalf("dashboard should request the 7-day window, asked for %d", activity.days)
	}
	if len(out.Skills) != 1 || out.Skills[0].Name != "React" {
		t.Fatalf("skills not merged: %+v", out.Skills)
	}
	if len(out.Insights) != 1 || out.Insights[0].Title != "Amazing Streak!" {
		t.Fatalf("insights not merged: %+v", out.Insights)
	}
	if len(out.Achievements) != 8 {
		t.Fatalf("all 8 achievements should be present, got %d", len(out.Achievements))
	}
}

func TestLoadStampsUnlockDates(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	api := &fakeDashboardAPI{stats: domain.Stats{TotalActivities: 1}}
	uc := usecase.NewInteractor(service.NewDashboardService(clock.Fixed{At: at}, api), &fakeActivity{}, &fakeSkills{})

	out, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, a := range out.Achievements {
		switch a.ID {
		case "first_step":
			if !a.Unlocked {
				t.Fatalf("first_step should be unlocked")
			}
			if a.UnlockedDate != at.Format(time.RFC3339) {
				t.Fatalf("unexpected unlock date %q", a.UnlockedDate)
			}
		default:
			if a.Unlocked {
				t.Fatalf("%s should stay locked", a.ID)
			}
			if a.UnlockedDate != "" {
				t.Fatalf("locked %s should carry no date, got %q", a.ID, a.UnlockedDate)
			}
		}
	}
}

func TestLoadFailsWholeOnSingleError(t *testing.T) {
	t.Parallel()
	boom := errors.New("skills backend down")
	api := &fakeDashboardAPI{stats: domain.Stats{TotalActivities: 3}}
	uc := usecase.NewInteractor(
		service.NewDashboardService(clock.SystemClock{}, api),
		&fakeActivity{data: []activitydto.DatumOutput{{Date: "2024-01-10", Count: 5}}},
		&fakeSkills{err: boom},
	)

	out, err := uc.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected the fetch error, got %v", err)
	}
	// No partial result: the aggregate is all or nothing.
	if len(out.Activities) != 0 || len(out.Achievements) != 0 {
		t.Fatalf("failed load must not leak partial data: %+v", out)
	}
}

func TestLoadFailsOnStatsError(t *testing.T) {
	t.Parallel()
	boom := errors.New("stats down")
	uc := usecase.NewInteractor(
		service.NewDashboardService(clock.SystemClock{}, &fakeDashboardAPI{statsErr: boom}),
		&fakeActivity{},
		&fakeSkills{},
	)
	if _, err := uc.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected stats error, got %v", err)
	}
}
