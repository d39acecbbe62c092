package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	activitydto "ghostwrite/internal/modules/activity/dto"
	activityin "ghostwrite/internal/modules/activity/port/in"
	"ghostwrite/internal/modules/dashboard/domain"
	"ghostwrite/internal/modules/dashboard/dto"
	dashboardin "ghostwrite/internal/modules/dashboard/port/in"
	"ghostwrite/internal/modules/dashboard/service"
	skillsdto "ghostwrite/internal/modules/skills/dto"
	skillsin "ghostwrite/internal/modules/skills/port/in"
)

// recentWindowDays is the activity window the dashboard renders.
const recentWindowDays = 7

// Interactor fans the four dashboard fetches out concurrently and joins
// them into one result. There is no partial rendering: one failed fetch
// fails the load.
type Interactor struct {
	svc      *service.DashboardService
	activity activityin.Usecase
	skills   skillsin.Usecase
}

func NewInteractor(svc *service.DashboardService, activity activityin.Usecase, skills skillsin.Usecase) dashboardin.Usecase {
	return &Interactor{svc: svc, activity: activity, skills: skills}
}

func (i *Interactor) Load(ctx context.Context) (dto.AggregateOutput, error) {
	var (
		stats      domain.Stats
		activities []activitydto.DatumOutput
		skills     []skillsdto.SkillOutput
		insights   []domain.Insight
	)

	// Plain errgroup: all four run to completion, first error wins.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		stats, err = i.svc.Stats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = i.activity.Recent(ctx, recentWindowDays)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = i.skills.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		insights, err = i.svc.Insights(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.AggregateOutput{}, fmt.Errorf("load dashboard: %w", err)
	}

	out := dto.AggregateOutput{
		Stats: dto.StatsOutput{
			TotalActivities: stats.TotalActivities,
			CurrentStreak:   stats.CurrentStreak,
			LongestStreak:   stats.LongestStreak,
			ConsistencyRate: stats.ConsistencyRate,
			SkillsLearned:   stats.SkillsLearned,
		},
	}
	for _, a := range activities {
		out.Activities = append(out.Activities, dto.ActivityPoint{Date: a.Date, Count: a.Count})
	}
	for _, s := range skills {
		out.Skills = append(out.Skills, dto.SkillOutput{ID: s.ID, Name: s.Name, Level: s.Level, Category: s.Category})
	}
	for _, ins := range insights {
		out.Insights = append(out.Insights, dto.InsightOutput{
			ID:          ins.ID,
			Title:       ins.Title,
			Description: ins.Description,
			Type:        ins.Type,
			Icon:        ins.Icon,
			Timestamp:   ins.Timestamp,
		})
	}
	for _, status := range i.svc.Achievements(stats) {
		item := dto.AchievementOutput{
			ID:          status.ID,
			Name:        status.Name,
			Description: status.Description,
			Icon:        status.Icon,
			Requirement: status.Requirement,
			Unlocked:    status.Unlocked,
		}
		if status.Unlocked {
			item.UnlockedDate = status.UnlockedDate.Format(time.RFC3339)
		}
		out.Achievements = append(out.Achievements, item)
	}
	return out, nil
}
