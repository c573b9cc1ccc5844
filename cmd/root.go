package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/ratiolab/internal/config"
	"github.com/abhisek/ratiolab/internal/logger"
	"github.com/abhisek/ratiolab/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:   "ratiolab",
	Short: "Financial ratio practice in the terminal",
	Long: "Ratio Lab generates realistic financial-statement problems for five common ratios,\n" +
		"checks your answers within a tolerance and explains every calculation.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(ratiosCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs: resolved configuration, a logger and a
// generator seeded from the configuration.
type env struct {
	cfg       *config.Config
	log       zerolog.Logger
	generator *problemgen.Generator
	close     func() error
}

// newEnv loads configuration and builds the logger. Logs go to logOut
// unless --log-file is set; pass nil to discard them when no file is
// configured.
func newEnv(cmd *cobra.Command, logOut io.Writer) (*env, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	out, closeLog := logOut, func() error { return nil }
	if cfg.LogFile != "" || logOut == nil {
		out, closeLog, err = logger.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, out).
		With().Str("cmd", cmd.Name()).Logger()

	genCfg := problemgen.DefaultConfig()
	genCfg.Logger = log

	log.Debug().
		Int("question_count", cfg.QuestionCount).
		Uint64("seed", cfg.Seed).
		Msg("configuration loaded")

	return &env{
		cfg:       cfg,
		log:       log,
		generator: problemgen.NewSeeded(cfg.Seed, genCfg),
		close:     closeLog,
	}, nil
}

func (e *env) Close() {
	if err := e.close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", err)
	}
}
