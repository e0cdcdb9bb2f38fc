package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/interviewer/internal/questionbank"
	"github.com/abhisek/interviewer/internal/skillmatch"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions (optionally filtered by skill or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetStringSlice("skill")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		e, err := loadEnv()
		if err != nil {
			return err
		}

		d := questionbank.Difficulty(difficulty)
		if d != "" && !d.Valid() {
			return fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", difficulty)
		}

		var keys []string
		if len(skills) > 0 {
			matched, unmatched := skillmatch.MatchAll(skills, e.bank.Keys())
			if len(matched) == 0 {
				return fmt.Errorf("no bank skill matches %s", strings.Join(unmatched, ", "))
			}
			for _, m := range matched {
				keys = append(keys, m.Key)
			}
		}

		questions := e.bank.Filter(keys, d)

		// Header.
		fmt.Printf("%-12s  %-18s  %-16s  %-6s  %s\n",
			"ID", "Skill", "Category", "Level", "Question")
		fmt.Println(strings.Repeat("─", 110))

		for _, q := range questions {
			prompt := q.Prompt
			if len(prompt) > 60 {
				prompt = prompt[:57] + "..."
			}
			fmt.Printf("%-12s  %-18s  %-16s  %-6s  %s\n",
				q.ID, q.SkillKey, q.Category, q.Difficulty, prompt)
		}

		fmt.Printf("\n%d questions\n", len(questions))
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := v.GetString("bank")
		if len(args) == 1 {
			path = args[0]
		}

		b, err := loadBank(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d skills, %d questions, categories: %s\n",
			bankSource(path), len(b.Keys()), b.Len(), strings.Join(b.Categories(), ", "))
		return nil
	},
}

func init() {
	bankListCmd.Flags().StringSlice("skill", nil, "only these skills (any spelling)")
	bankListCmd.Flags().String("difficulty", "", "only this difficulty: easy, medium or hard")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
