package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/interviewer/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show how an interview would be planned for some skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		skills, err := resolveSkills(cmd, e.cfg.MaxSkills)
		if err != nil {
			return err
		}

		plan, err := session.NewPlanner(e.bank, e.cfg.Budget).BuildPlan(skills)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Strategy:  %s\n", plan.Strategy)
		fmt.Fprintf(out, "Matched:   %s\n", orNone(plan.Matched))
		fmt.Fprintf(out, "Unmatched: %s\n\n", orNone(plan.Unmatched))

		fmt.Fprintf(out, "%-24s  %6s  %9s\n", "Skill", "Target", "Available")
		fmt.Fprintln(out, strings.Repeat("─", 43))
		for _, entry := range plan.Entries {
			fmt.Fprintf(out, "%-24s  %6d  %9d\n", entry.SkillKey, entry.Target, e.bank.Count(entry.SkillKey))
		}
		fmt.Fprintf(out, "\n%d of %d questions planned\n", plan.Total(), plan.Budget)
		return nil
	},
}

func init() {
	addSkillFlags(planCmd)
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
