package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/abhisek/ratiolab/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer one problem set on the command line (no TUI)",
	Long: `Work through a problem set line by line on stdin/stdout.

Type an answer and press Enter. A blank line skips the question and "q" ends
the set early. A summary table is printed at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.Close()

		p := practiceRun{
			in:            cmd.InOrStdin(),
			out:           cmd.OutOrStdout(),
			generator:     e.generator,
			setSize:       e.cfg.QuestionCount,
			answerOptions: e.cfg.AnswerOptions(),
			log:           e.log,
			now:           time.Now,
		}
		_, err = p.run()
		return err
	},
}

// practiceRun holds one line-mode problem set.
type practiceRun struct {
	in            io.Reader
	out           io.Writer
	generator     *problemgen.Generator
	setSize       int
	answerOptions problemgen.AnswerOptions
	log           zerolog.Logger
	now           func() time.Time
}

// errQuit ends the set early.
var errQuit = errors.New("quit")

func (p practiceRun) run() (*session.SessionSummary, error) {
	scanner := bufio.NewScanner(p.in)
	state := session.NewSessionState(session.NewID(), p.generator.GenerateSet(p.setSize), p.now())
	log := p.log.With().Str("session", state.ID).Logger()

	log.Info().Int("questions", len(state.Questions)).Msg("practice started")

loop:
	for {
		q := state.CurrentQuestion()
		if q == nil {
			break
		}
		p.printQuestion(state, q)

		answer, err := p.readAnswer(scanner)
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			break loop
		case errors.Is(err, problemgen.ErrEmptyAnswer):
			fmt.Fprintln(p.out, text.FgHiBlack.Sprint("(skipped)"))
		case err != nil:
			return nil, err
		default:
			var outcome session.Outcome
			state, outcome, err = session.Submit(state, answer)
			if err != nil {
				return nil, fmt.Errorf("submitting answer: %w", err)
			}
			log.Info().
				Str("ratio", outcome.Type.Slug()).
				Bool("correct", outcome.Correct).
				Msg("answer submitted")
			p.printOutcome(q, outcome)
		}

		next, ok := session.Next(state)
		if !ok {
			break
		}
		state = next
	}

	sum := session.BuildSummary(state, p.now())
	p.printSummary(sum)
	log.Info().
		Int("score", sum.Score).
		Int("attempted", sum.TotalAttempted).
		Msg("practice finished")
	return sum, nil
}

// readAnswer prompts until the line is blank, "q", or a valid answer.
func (p practiceRun) readAnswer(scanner *bufio.Scanner) (float64, error) {
	for {
		fmt.Fprint(p.out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading answer: %w", err)
			}
			return 0, io.EOF
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return 0, errQuit
		}

		answer, err := problemgen.ParseAnswer(line, p.answerOptions)
		switch {
		case err == nil, errors.Is(err, problemgen.ErrEmptyAnswer):
			return answer, err
		case errors.Is(err, problemgen.ErrOutOfRange):
			fmt.Fprintf(p.out, "Answers must be between %g and %g.\n", p.answerOptions.Min, p.answerOptions.Max)
		default:
			fmt.Fprintln(p.out, "That is not a number.")
		}
	}
}

func (p practiceRun) printQuestion(state session.SessionState, q *problemgen.Question) {
	fmt.Fprintf(p.out, "\n── Question %d/%d · %s ──\n", state.Current+1, len(state.Questions), q.Type)
	fmt.Fprintln(p.out, q.Company)
	fmt.Fprintln(p.out, q.Scenario)
	fmt.Fprintln(p.out)

	tw := table.NewWriter()
	tw.SetOutputMirror(p.out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Financial Data", "Amount"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	for _, item := range q.Data {
		tw.AppendRow(table.Row{item.Name, problemgen.Dollars(item.Amount)})
	}
	tw.Render()

	fmt.Fprintln(p.out, q.Formula)
}

func (p practiceRun) printOutcome(q *problemgen.Question, o session.Outcome) {
	if o.Correct {
		fmt.Fprintln(p.out, text.FgGreen.Sprint("✓ Correct!"))
	} else {
		fmt.Fprintln(p.out, text.FgRed.Sprintf("✗ Incorrect. The correct answer is %s.",
			problemgen.FormatAnswer(q, o.CorrectAnswer)))
	}
	fmt.Fprintln(p.out)
	for _, line := range problemgen.Explain(q) {
		if problemgen.IsHeading(line) {
			line = text.Bold.Sprint(line)
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p practiceRun) printSummary(sum *session.SessionSummary) {
	fmt.Fprintln(p.out)

	tw := table.NewWriter()
	tw.SetOutputMirror(p.out)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Session Summary")
	tw.AppendHeader(table.Row{"#", "Ratio", "Company", "Yours", "Correct", ""})
	for i, r := range sum.Results {
		q := &problemgen.Question{Type: r.Type}
		yours, mark := "-", ""
		if r.Answered {
			yours = problemgen.FormatSubmitted(q, r.Answer)
			mark = "✗"
			if r.Correct {
				mark = "✓"
			}
		}
		tw.AppendRow(table.Row{i + 1, r.Type.String(), r.Company, yours, problemgen.FormatAnswer(q, r.CorrectAnswer), mark})
	}
	tw.AppendFooter(table.Row{"", "", "Score", fmt.Sprintf("%d/%d", sum.Score, sum.SetSize), "", ""})
	tw.Render()

	if allAnswered(sum) {
		fmt.Fprintln(p.out, sum.Headline())
	}
	fmt.Fprintln(p.out, sum.AccuracyLine())
	fmt.Fprintln(p.out, sum.Rating.Message())
}

func allAnswered(sum *session.SessionSummary) bool {
	if len(sum.Results) == 0 {
		return false
	}
	for _, r := range sum.Results {
		if !r.Answered {
			return false
		}
	}
	return true
}
