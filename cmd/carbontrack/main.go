package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"carbontrack/internal/bootstrap"
	footprint "carbontrack/internal/modules/footprint/domain"
	sessiondto "carbontrack/internal/modules/session/dto"
	"carbontrack/internal/platform/config"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "carbontrack",
		Short:         "Carbon footprint tracker for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default carbontrack.yaml in . or $HOME)")

	tui := newTUICmd(&configFile)
	root.RunE = tui.RunE
	root.AddCommand(tui)
	root.AddCommand(newScoreCmd(&configFile))
	root.AddCommand(newRunCmd(&configFile))
	root.AddCommand(newCatalogCmd(&configFile))
	root.AddCommand(newReportCmd(&configFile))
	root.AddCommand(newConfigCmd(&configFile))
	return root
}

func loadApp(configFile string) (*bootstrap.App, error) {
	cfg, err := config.New(configFile)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp loads the application, runs fn and flushes the logger.
func withApp(configFile string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(configFile)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()
	return fn(app)
}

func newTUICmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*configFile, bootstrap.RunTUI)
		},
	}
}

// answerFlags binds one severity flag per habit category.
type answerFlags struct {
	transport   string
	energy      string
	diet        string
	consumption string
	target      int
}

func (f *answerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.transport, "transport", "", "transport severity (low|medium|high)")
	cmd.Flags().StringVar(&f.energy, "energy", "", "energy severity (low|medium|high)")
	cmd.Flags().StringVar(&f.diet, "diet", "", "diet severity (low|medium|high)")
	cmd.Flags().StringVar(&f.consumption, "consumption", "", "consumption severity (low|medium|high)")
	cmd.Flags().IntVar(&f.target, "target", 0, "target footprint in kg CO2/month (default from config)")
}

func (f answerFlags) answers() map[string]string {
	out := map[string]string{}
	for category, severity := range map[string]string{
		"transport":   f.transport,
		"energy":      f.energy,
		"diet":        f.diet,
		"consumption": f.consumption,
	} {
		if severity != "" {
			out[category] = severity
		}
	}
	return out
}

func newScoreCmd(configFile *string) *cobra.Command {
	var flags answerFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the footprint score for a set of answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*configFile, func(app *bootstrap.App) error {
				out, err := app.FootprintCLI.Score(cmd.Context(), flags.answers(), flags.target)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "score: %d kg CO2/mês\n", out.Score)
				_, _ = fmt.Fprintf(w, "target: %d kg\n", out.Target)
				_, _ = fmt.Fprintf(w, "progress: %.1f%%\n", out.ProgressPercent)
				_, _ = fmt.Fprintf(w, "goal reached: %t\n", out.GoalReached)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newRunCmd(configFile *string) *cobra.Command {
	var email, password string
	var registerMode bool
	var answers map[string]string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive a whole session headlessly: login, survey and dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*configFile, func(app *bootstrap.App) error {
				return runSession(cmd.Context(), cmd.OutOrStdout(), app, email, password, registerMode, answers)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login identifier")
	cmd.Flags().StringVar(&password, "password", "", "login secret (not checked)")
	cmd.Flags().BoolVar(&registerMode, "register", false, "use registration mode")
	cmd.Flags().StringToStringVar(&answers, "answers", nil, "category=severity pairs, e.g. transport=low,energy=medium")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func runSession(ctx context.Context, w io.Writer, app *bootstrap.App, email, password string, registerMode bool, answers map[string]string) error {
	catalog, err := app.SurveyCLI.Catalog(ctx)
	if err != nil {
		return err
	}
	answers, err = normalizeAnswers(answers)
	if err != nil {
		return err
	}
	for _, step := range catalog.Steps {
		if _, ok := answers[step.Category]; !ok {
			return fmt.Errorf("missing answer for %s", step.Category)
		}
	}

	session, err := app.SessionCLI.Start(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.SessionCLI.End(ctx, session.SessionID) }()
	_, _ = fmt.Fprintf(w, "session %s screen=%s\n", session.SessionID, session.Screen)

	if registerMode {
		if _, err := app.SessionCLI.ToggleRegistrationMode(ctx, session.SessionID); err != nil {
			return err
		}
	}
	out, err := app.SessionCLI.SubmitCredentials(ctx, session.SessionID, email, password)
	if err != nil {
		return err
	}
	printEvents(w, out.Events)

	for _, step := range catalog.Steps {
		if _, err := app.SessionCLI.Answer(ctx, session.SessionID, step.Category, answers[step.Category]); err != nil {
			return err
		}
		out, err := app.SessionCLI.Advance(ctx, session.SessionID)
		if err != nil {
			return err
		}
		printEvents(w, out.Events)
	}

	board, err := app.SessionCLI.Dashboard(ctx, session.SessionID)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "score: %d kg CO2/mês\n", board.Metrics.Score)
	_, _ = fmt.Fprintf(w, "target: %d kg\n", board.Metrics.Target)
	_, _ = fmt.Fprintf(w, "progress: %.1f%%\n", board.Metrics.ProgressPercent)
	_, _ = fmt.Fprintf(w, "goal reached: %t\n", board.Metrics.GoalReached)
	for _, rank := range board.Ranking {
		marker := ""
		if rank.CurrentUser {
			marker = " *"
		}
		_, _ = fmt.Fprintf(w, "rank %d\t%s\t%d%s\n", rank.Position, rank.Name, rank.Score, marker)
	}
	return nil
}

// normalizeAnswers lower-cases category keys and rejects unknown ones.
func normalizeAnswers(raw map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		category, err := footprint.ParseCategory(k)
		if err != nil {
			return nil, fmt.Errorf("--answers: %w", err)
		}
		if _, dup := out[string(category)]; dup {
			return nil, fmt.Errorf("--answers: %s given twice", category)
		}
		out[string(category)] = v
	}
	return out, nil
}

func printEvents(w io.Writer, events []sessiondto.EventOutput) {
	for _, ev := range events {
		if ev.Title == "" {
			_, _ = fmt.Fprintf(w, "event %s screen=%s\n", ev.Kind, ev.Screen)
			continue
		}
		_, _ = fmt.Fprintf(w, "event %s screen=%s title=%q message=%q", ev.Kind, ev.Screen, ev.Title, ev.Message)
		if ev.Identifier != "" {
			_, _ = fmt.Fprintf(w, " identifier=%q registration=%t", ev.Identifier, ev.Registration)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func newCatalogCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List survey steps and options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*configFile, func(app *bootstrap.App) error {
				catalog, err := app.SurveyCLI.Catalog(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for i, step := range catalog.Steps {
					_, _ = fmt.Fprintf(w, "%d. %s (%s)\n   %s\n", i+1, step.Title, step.Category, step.Subtitle)
					for _, opt := range step.Options {
						_, _ = fmt.Fprintf(w, "   - %s: %s [%s]\n", opt.ID, opt.Label, opt.Severity)
					}
				}
				return nil
			})
		},
	}
}

func newReportCmd(configFile *string) *cobra.Command {
	var flags answerFlags
	var render bool
	var width int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a markdown footprint report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*configFile, func(app *bootstrap.App) error {
				out, err := app.FootprintCLI.Report(cmd.Context(), flags.answers(), flags.target, render, width)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
				return nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&render, "render", false, "render the report for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width when rendering")
	return cmd
}

func newConfigCmd(configFile *string) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Inspect configuration"}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*configFile)
			if err != nil {
				return err
			}
			raw, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			if cfg.Source != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", cfg.Source)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return nil
		},
	})
	return cfgCmd
}
