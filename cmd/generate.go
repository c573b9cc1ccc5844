package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/ratiolab/internal/problemgen"
)

// Output formats accepted by generate.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated questions",
	Long: `Generate questions without answering them.

Without --type a problem set of --count distinct ratios is drawn. With --type,
--count questions of that ratio are drawn. Answers are included with
--solutions, and always in json and yaml output.`,
	Example: `  ratiolab generate --count 3
  ratiolab generate --type gpm --count 2 --solutions
  ratiolab generate --format yaml --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.Close()

		typeName, _ := cmd.Flags().GetString("type")
		format, _ := cmd.Flags().GetString("format")
		solutions, _ := cmd.Flags().GetBool("solutions")

		var questions []*problemgen.Question
		if typeName != "" {
			t, err := problemgen.ParseRatioType(typeName)
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}
			questions = generateOfType(e.generator, t, e.cfg.QuestionCount)
		} else {
			questions = e.generator.GenerateSet(e.cfg.QuestionCount)
		}

		e.log.Debug().Int("questions", len(questions)).Str("format", format).Msg("generated")
		return writeQuestions(cmd.OutOrStdout(), questions, format, solutions)
	},
}

func init() {
	generateCmd.Flags().StringP("type", "t", "", "Ratio type slug or alias (cr, de, gpm, roe, it)")
	generateCmd.Flags().StringP("format", "f", formatTable, "Output format: table, json or yaml")
	generateCmd.Flags().Bool("solutions", false, "Include answers and worked solutions in table output")
}

// generateOfType draws count questions of type t with IDs 1..count.
func generateOfType(g *problemgen.Generator, t problemgen.RatioType, count int) []*problemgen.Question {
	questions := make([]*problemgen.Question, 0, count)
	for i := 1; i <= count; i++ {
		q := g.Generate(t)
		q.ID = i
		questions = append(questions, q)
	}
	return questions
}

func writeQuestions(w io.Writer, questions []*problemgen.Question, format string, solutions bool) error {
	switch strings.ToLower(format) {
	case formatTable:
		writeQuestionTable(w, questions, solutions)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(questions); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(questions); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func writeQuestionTable(w io.Writer, questions []*problemgen.Question, solutions bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = true

	header := table.Row{"#", "Ratio", "Company", "Data"}
	if solutions {
		header = append(header, "Answer", "Tolerance")
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, q := range questions {
		data := make([]string, 0, len(q.Data))
		for _, item := range q.Data {
			data = append(data, fmt.Sprintf("%s: %s", item.Name, problemgen.Dollars(item.Amount)))
		}
		row := table.Row{q.ID, q.Type.String(), q.Company, strings.Join(data, "\n")}
		if solutions {
			row = append(row, problemgen.FormatAnswer(q, q.CorrectAnswer), fmt.Sprintf("±%g", q.Tolerance))
		}
		tw.AppendRow(row)
	}
	tw.Render()

	if !solutions {
		return
	}
	for _, q := range questions {
		fmt.Fprintf(w, "\n%d. %s · %s\n", q.ID, q.Type, q.Company)
		for _, line := range problemgen.Explain(q) {
			fmt.Fprintln(w, "   "+line)
		}
	}
}
