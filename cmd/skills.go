package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Work with candidate skills",
}

var skillsDetectCmd = &cobra.Command{
	Use:   "detect <resume.txt>",
	Short: "Detect technical skills in a plain-text resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _ := cmd.Flags().GetString("catalog")
		top, _ := cmd.Flags().GetInt("top")

		d, err := loadDetector(catalog)
		if err != nil {
			return err
		}
		text, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}

		res := d.Detect(string(text))
		if res.Total() == 0 {
			fmt.Println("No skills detected.")
			return nil
		}

		for _, f := range res.Categories {
			fmt.Printf("%-24s  %s\n", f.Category, strings.Join(f.Skills, ", "))
		}
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%d skills. Top %d: %s\n", res.Total(), top, strings.Join(res.TopSkills(top), ", "))
		return nil
	},
}

func init() {
	skillsDetectCmd.Flags().String("catalog", "", "skill catalog file (default is the built-in catalog)")
	skillsDetectCmd.Flags().Int("top", 20, "number of top skills to print")

	skillsCmd.AddCommand(skillsDetectCmd)
}

// addSkillFlags registers the candidate skill inputs shared by run and plan.
func addSkillFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("skills", nil, "comma-separated candidate skills")
	cmd.Flags().String("resume", "", "plain-text resume to detect skills from")
	cmd.Flags().String("catalog", "", "skill catalog file for --resume")
	cmd.MarkFlagsMutuallyExclusive("skills", "resume")
}

// resolveSkills returns the candidate skills from --skills or --resume,
// capped at limit.
func resolveSkills(cmd *cobra.Command, limit int) ([]string, error) {
	skills, _ := cmd.Flags().GetStringSlice("skills")
	path, _ := cmd.Flags().GetString("resume")

	if path != "" {
		catalog, _ := cmd.Flags().GetString("catalog")
		d, err := loadDetector(catalog)
		if err != nil {
			return nil, err
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read resume: %w", err)
		}
		skills = d.Detect(string(text)).TopSkills(limit)
	}

	return capSkills(skills, limit), nil
}

func capSkills(skills []string, limit int) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
