package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/ratiolab/internal/app"
	sessionscreen "github.com/abhisek/ratiolab/internal/screens/session"
)

// runApp builds dependencies and launches the TUI. Logs never reach the
// terminal here; they go to --log-file or are discarded.
func runApp(cmd *cobra.Command) error {
	e, err := newEnv(cmd, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	e.log.Info().Msg("starting interactive session")
	return app.Run(app.Options{
		Session: sessionscreen.Options{
			Generator:     e.generator,
			SetSize:       e.cfg.QuestionCount,
			AnswerOptions: e.cfg.AnswerOptions(),
			Logger:        e.log,
		},
		SkipSplash: skipSplash,
		Logger:     e.log,
	})
}
