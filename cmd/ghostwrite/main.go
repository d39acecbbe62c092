package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghostwrite/internal/bootstrap"
	"ghostwrite/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var home string

	root := &cobra.Command{
		Use:           "ghostwrite",
		Short:         "GhostWrite learning tracker client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&home, "home", "", "data directory (default ~/.ghostwrite)")

	root.AddCommand(newTUICmd(&home))
	root.AddCommand(newSignUpCmd(&home))
	root.AddCommand(newSignInCmd(&home))
	root.AddCommand(newSignOutCmd(&home))
	root.AddCommand(newWhoamiCmd(&home))
	root.AddCommand(newUserCmd(&home))
	root.AddCommand(newDashboardCmd(&home))
	root.AddCommand(newActivityCmd(&home))
	root.AddCommand(newSkillsCmd(&home))
	root.AddCommand(newThemeCmd(&home))
	return root
}

func loadApp(home string) (*bootstrap.App, error) {
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the GhostWrite terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newSignUpCmd(home *string) *cobra.Command {
	var username, email, password, confirm string
	signup := &cobra.Command{
		Use:   "signup --username <name> --email <addr> --password <pw>",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if confirm == "" {
				confirm = password
			}
			out, err := app.AccountCLI.SignUp(context.Background(), username, email, password, confirm)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed up as %s <%s>\n", out.Username, out.Email)
			return nil
		},
	}
	signup.Flags().StringVar(&username, "username", "", "username")
	signup.Flags().StringVar(&email, "email", "", "email address")
	signup.Flags().StringVar(&password, "password", "", "password")
	signup.Flags().StringVar(&confirm, "confirm", "", "password confirmation (defaults to --password)")
	return signup
}

func newSignInCmd(home *string) *cobra.Command {
	var email, password string
	signin := &cobra.Command{
		Use:   "signin --email <addr> --password <pw>",
		Short: "Sign in to GhostWrite",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.SignIn(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", out.Username)
			return nil
		},
	}
	signin.Flags().StringVar(&email, "email", "", "email address")
	signin.Flags().StringVar(&password, "password", "", "password")
	return signin
}

func newSignOutCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.SignOut(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> joined=%s\n", out.Username, out.Email, out.JoinDate)
			return nil
		},
	}
}

func newUserCmd(home *string) *cobra.Command {
	var byID bool
	user := &cobra.Command{
		Use:   "user <username|id>",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			lookup := app.AccountCLI.GetUser
			if byID {
				lookup = app.AccountCLI.GetUserByID
			}
			out, err := lookup(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", out.Username, out.Email)
			if out.Bio != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Bio)
			}
			if out.JoinDate != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "joined %s\n", out.JoinDate)
			}
			return nil
		},
	}
	user.Flags().BoolVar(&byID, "id", false, "look up by user id instead of username")
	return user
}

func newDashboardCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Load and print the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.DashboardCLI.Load(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			s := out.Stats
			_, _ = fmt.Fprintf(w, "activities=%d streak=%d longest=%d consistency=%d%% skills=%d\n",
				s.TotalActivities, s.CurrentStreak, s.LongestStreak, s.ConsistencyRate, s.SkillsLearned)
			for _, a := range out.Activities {
				_, _ = fmt.Fprintf(w, "%s %d\n", a.Date, a.Count)
			}
			for _, skill := range out.Skills {
				_, _ = fmt.Fprintf(w, "%s/%s %d\n", skill.Category, skill.Name, skill.Level)
			}
			for _, ins := range out.Insights {
				_, _ = fmt.Fprintf(w, "%s [%s] %s: %s\n", ins.Icon, ins.Type, ins.Title, ins.Description)
			}
			for _, ach := range out.Achievements {
				marker := "locked"
				if ach.Unlocked {
					marker = "unlocked " + ach.UnlockedDate
				}
				_, _ = fmt.Fprintf(w, "%s %s (%s): %s\n", ach.Icon, ach.Name, marker, ach.Requirement)
			}
			return nil
		},
	}
}

func newActivityCmd(home *string) *cobra.Command {
	activity := &cobra.Command{Use: "activity", Short: "Activity operations"}

	var days int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "Show recent activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			data, err := app.ActivityCLI.Recent(context.Background(), days)
			if err != nil {
				return err
			}
			for _, d := range data {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", d.Date, d.Count)
			}
			return nil
		},
	}
	recent.Flags().IntVar(&days, "days", 7, "window size in days")

	var activityType, description string
	var count int
	logCmd := &cobra.Command{
		Use:   "log --type <kind>",
		Short: "Log a learning activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.ActivityCLI.Log(context.Background(), activityType, description, count); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "activity logged")
			return nil
		},
	}
	logCmd.Flags().StringVar(&activityType, "type", "", "activity type")
	logCmd.Flags().StringVar(&description, "description", "", "what you did")
	logCmd.Flags().IntVar(&count, "count", 1, "how many units")

	activity.AddCommand(recent, logCmd)
	return activity
}

func newSkillsCmd(home *string) *cobra.Command {
	skills := &cobra.Command{Use: "skills", Short: "Skill operations"}

	skills.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tracked skills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.SkillsCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, skill := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s/%s %d\n", skill.Category, skill.Name, skill.Level)
			}
			return nil
		},
	})

	var skillID string
	var level int
	set := &cobra.Command{
		Use:   "set --id <skill> --level <0-100>",
		Short: "Update a skill level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.SkillsCLI.UpdateLevel(context.Background(), skillID, level); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "skill %s set to %d\n", skillID, level)
			return nil
		},
	}
	set.Flags().StringVar(&skillID, "id", "", "skill id")
	set.Flags().IntVar(&level, "level", 0, "proficiency 0-100")
	skills.AddCommand(set)

	return skills
}

func newThemeCmd(home *string) *cobra.Command {
	themeCmd := &cobra.Command{Use: "theme", Short: "Theme preference"}

	themeCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.PrefsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Name)
			return nil
		},
	})

	themeCmd.AddCommand(&cobra.Command{
		Use:   "set <dark|light>",
		Short: "Set the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.PrefsCLI.Set(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Name)
			return nil
		},
	})

	themeCmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between dark and light",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.PrefsCLI.Toggle(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Name)
			return nil
		},
	})

	return themeCmd
}
