package goals

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"omnisite/internal/cli"
	"omnisite/internal/constants"
	"omnisite/internal/models"
	"omnisite/internal/stats"
)

func parseGoalKind(s string) (constants.GoalKind, error) {
	switch constants.GoalKind(s) {
	case constants.GoalStreakDays:
		return constants.GoalStreakDays, nil
	case constants.GoalWeeklyPlacements:
		return constants.GoalWeeklyPlacements, nil
	case constants.GoalSiteCoverage:
		return constants.GoalSiteCoverage, nil
	default:
		return "", fmt.Errorf("invalid goal kind: %s (expected streak_days|weekly_placements|site_coverage)", s)
	}
}

func describeGoal(goal models.Goal) string {
	switch goal.Kind {
	case constants.GoalStreakDays:
		return fmt.Sprintf("log placements %d days in a row", goal.Target)
	case constants.GoalWeeklyPlacements:
		return fmt.Sprintf("log %d placements this week", goal.Target)
	case constants.GoalSiteCoverage:
		return fmt.Sprintf("use %d distinct sites", goal.Target)
	default:
		return string(goal.Kind)
	}
}

type GoalAddCmd struct {
	Kind   string `arg:"" help:"Goal kind (streak_days|weekly_placements|site_coverage)."`
	Target int    `arg:"" help:"Target count."`
}

func (c *GoalAddCmd) Validate() error {
	if _, err := parseGoalKind(c.Kind); err != nil {
		return err
	}
	if c.Target <= 0 {
		return fmt.Errorf("target must be greater than zero")
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	kind, _ := parseGoalKind(c.Kind)

	goal := models.Goal{
		ID:        uuid.New().String(),
		Kind:      kind,
		Target:    c.Target,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	fmt.Printf("Added goal: %s (ID: %s)\n", describeGoal(goal), goal.ID)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetAllGoals(false)
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}

	if len(goals) == 0 {
		fmt.Println("No goals set. Add one with 'omnisite goal add'.")
		return nil
	}

	fmt.Printf("Goals (%d):\n\n", len(goals))
	for _, g := range goals {
		achieved := ""
		if g.AchievedAt != nil {
			achieved = fmt.Sprintf("  achieved %s", g.AchievedAt.Format(constants.DateFormat))
		}
		fmt.Printf("  %s  %s%s\n", g.ID, describeGoal(g), achieved)
	}

	return nil
}

type GoalCheckCmd struct{}

func (c *GoalCheckCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetAllGoals(false)
	if err != nil {
		return fmt.Errorf("failed to get goals: %w", err)
	}
	if len(goals) == 0 {
		fmt.Println("No goals set.")
		return nil
	}

	placements, err := ctx.Store.GetAllPlacements()
	if err != nil {
		return fmt.Errorf("failed to get placements: %w", err)
	}
	sites, err := ctx.Store.GetAllSites(false, false)
	if err != nil {
		return fmt.Errorf("failed to get sites: %w", err)
	}

	today := ctx.Today()

	fmt.Println("Goal progress:")
	for _, g := range goals {
		progress := stats.EvaluateGoal(g, placements, sites, today)
		mark := " "
		if progress.Achieved {
			mark = "✓"
		}
		fmt.Printf("  %s %s: %d / %d\n", mark, describeGoal(g), progress.Value, g.Target)

		// Persist first-time achievement so the list command can show it
		if progress.Achieved && g.AchievedAt == nil {
			now := time.Now()
			g.AchievedAt = &now
			if err := ctx.Store.UpdateGoal(g); err != nil {
				return fmt.Errorf("failed to record goal achievement: %w", err)
			}
		}
	}

	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID to delete."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteGoal(c.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	fmt.Printf("Deleted goal with ID: %s\n", c.ID)
	return nil
}
