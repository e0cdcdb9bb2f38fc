package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interviewer/internal/evaluator"
	"github.com/abhisek/interviewer/internal/session"
	"github.com/abhisek/interviewer/internal/similarity"
	"github.com/abhisek/interviewer/internal/ui/components"
)

const (
	PromptNext   = "Next question"
	PromptFinish = "Finish the interview"
	cardWidth    = 80
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive interview",
	Example: "  interviewer run --skills python,sql,docker\n" +
		"  interviewer run --resume resume.txt --media",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInterview(cmd)
	},
}

func init() {
	addSkillFlags(runCmd)
	runCmd.Flags().Uint64("seed", 0, "random seed for question selection (0 picks one)")
	runCmd.Flags().Bool("media", false, "also prompt for transcription and audio/video scores")
	runCmd.Flags().String("report", "", "write the final summary as JSON to this file")
	runCmd.Flags().IntP("budget", "n", 0, "number of questions (overrides config)")
	runCmd.Flags().String("similarity", "", "answer similarity: lexical, embedding or judge")

	v.BindPFlag("budget", runCmd.Flags().Lookup("budget"))
	v.BindPFlag("similarity.mode", runCmd.Flags().Lookup("similarity"))
}

func runInterview(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	skills, err := resolveSkills(cmd, e.cfg.MaxSkills)
	if err != nil {
		return err
	}

	sim, err := similarity.New(ctx, e.cfg.Similarity, e.cfg.LLM, e.logger)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	reg := session.NewRegistry(e.bank, session.Options{
		Budget:    e.cfg.Budget,
		MaxSkills: e.cfg.MaxSkills,
		Evaluator: evaluator.New(sim, e.logger),
		Rand:      session.NewRand(seed),
		Logger:    e.logger,
	})

	s, info, err := reg.Start(skills)
	if err != nil {
		return err
	}

	lipgloss.Println(components.Checklist("Skills", info.MatchedSkills))
	if unmatched := info.Plan.Unmatched; len(unmatched) > 0 {
		lipgloss.Println(components.Checklist("No questions", unmatched))
	}
	lipgloss.Printf("%d questions planned, similarity: %s\n\n", info.TotalQuestions, e.cfg.Similarity.Mode)

	media, _ := cmd.Flags().GetBool("media")
	number := 0
	for {
		sel, ok := s.Next()
		if !ok {
			break
		}
		number++
		lipgloss.Println(components.QuestionCard{
			Question: sel.Question,
			Number:   number,
			Total:    info.TotalQuestions,
			Width:    cardWidth,
		}.View())

		ans, err := promptAnswer(media)
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			break
		}
		if err != nil {
			return err
		}

		eval, err := submit(ctx, s, sel.Question.ID, ans, e)
		if err != nil {
			return err
		}
		lipgloss.Println(components.EvaluationView{Eval: eval, Width: cardWidth - 20}.View())
		lipgloss.Println()

		if s.Done() {
			break
		}
		if _, action, err := nextPrompt.Run(); err != nil || action == PromptFinish {
			break
		}
	}

	summary, err := reg.End(info.SessionID)
	if err != nil {
		return err
	}
	lipgloss.Println(components.SummaryView{Summary: summary, Width: cardWidth}.View())

	if path, _ := cmd.Flags().GetString("report"); path != "" {
		if err := writeReport(path, summary); err != nil {
			return err
		}
		e.logger.Info("report written", zap.String("path", path))
	}
	return nil
}

var nextPrompt = promptui.Select{
	Label: "Continue?",
	Items: []string{PromptNext, PromptFinish},
}

// submit scores one answer, bounding model-backed similarity by the LLM
// timeout.
func submit(ctx context.Context, s *session.Session, id string, ans evaluator.Answer, e *env) (evaluator.CompositeEvaluation, error) {
	if e.cfg.Similarity.Mode != similarity.ModeLexical && e.cfg.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.LLM.Timeout)
		defer cancel()
	}
	return s.SubmitAnswer(ctx, id, ans)
}

func promptAnswer(media bool) (evaluator.Answer, error) {
	var ans evaluator.Answer

	raw, err := (&promptui.Prompt{Label: "Your answer"}).Run()
	if err != nil {
		return ans, err
	}
	ans.Raw = raw

	if !media {
		return ans, nil
	}

	if ans.Transcription, err = (&promptui.Prompt{Label: "Transcription (optional)"}).Run(); err != nil {
		return ans, err
	}
	if ans.Audio, err = promptScore("Audio score 0-1 (optional)"); err != nil {
		return ans, err
	}
	if ans.Video, err = promptScore("Video score 0-1 (optional)"); err != nil {
		return ans, err
	}
	return ans, nil
}

func promptScore(label string) (*float64, error) {
	p := promptui.Prompt{Label: label, Validate: validateScore}
	in, err := p.Run()
	if err != nil {
		return nil, err
	}
	return parseScore(in)
}

// parseScore reads an optional score in [0, 1]. Blank means not supplied.
func parseScore(in string) (*float64, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", in)
	}
	if f < 0 || f > 1 {
		return nil, fmt.Errorf("score must be between 0 and 1, got %v", f)
	}
	return evaluator.Score(f), nil
}

func validateScore(in string) error {
	_, err := parseScore(in)
	return err
}

func writeReport(path string, summary session.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
