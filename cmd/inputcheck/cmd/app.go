package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/environment"
	"github.com/dmitrymomot/inputkit/pkg/i18n"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

const serviceName = "inputcheck"

// Option adjusts how the root command reads its settings.
type Option func(*app)

// WithEnvironment makes the command read settings from environ instead of
// the process environment.
func WithEnvironment(environ map[string]string) Option {
	return func(a *app) { a.environ = environ }
}

type flagValues struct {
	envFiles    []string
	lang        string
	messagesDir string
	foldWidth   bool
	allowEmpty  bool
	concurrency int
}

// app carries what every subcommand needs once the root command has run its
// setup.
type app struct {
	environ map[string]string

	flags flagValues

	cfg  Config
	log  *slog.Logger
	tr   *i18n.Translator
	lang string
}

func (a *app) setup(cmd *cobra.Command) error {
	opts := []config.ParseOption{config.WithEnvFiles(a.flags.envFiles...)}
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	}
	if err := config.Parse(&a.cfg, opts...); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("messages") {
		a.cfg.MessagesDir = a.flags.messagesDir
	}
	if flags.Changed("fold-width") {
		a.cfg.FoldWidth = a.flags.foldWidth
	}
	if flags.Changed("allow-empty") {
		a.cfg.AllowEmpty = a.flags.allowEmpty
	}
	if flags.Changed("concurrency") {
		a.cfg.Concurrency = a.flags.concurrency
	}

	log, err := newLogger(a.cfg, cmd)
	if err != nil {
		return err
	}
	a.log = log

	ctx := environment.WithContext(cmd.Context(), a.cfg.Env)
	cmd.SetContext(ctx)

	if a.tr, err = newTranslator(ctx, a.cfg.MessagesDir, a.log); err != nil {
		return err
	}

	preferred := i18n.LocaleFromEnv(a.cfg.Lang)
	if flags.Changed("lang") {
		preferred = a.flags.lang
	}
	a.lang = a.tr.Match(preferred)
	cmd.SetContext(i18n.WithLanguage(ctx, a.lang))

	a.log.DebugContext(ctx, "settings loaded",
		logger.Lang(a.lang),
		slog.Bool("allow_empty", a.cfg.AllowEmpty),
		slog.Bool("fold_width", a.cfg.FoldWidth),
	)
	return nil
}

func newLogger(cfg Config, cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func newTranslator(ctx context.Context, dir string, log *slog.Logger) (*i18n.Translator, error) {
	source := i18n.Builtin()
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("messages directory: %w", err)
		}
		source = i18n.Merge(source, i18n.FSSource(os.DirFS(dir), "."))
		log.DebugContext(ctx, "loading message overrides", logger.Source(dir))
	}
	return i18n.NewTranslator(ctx, source,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}

// prepare turns raw input into the value that is checked.
func (a *app) prepare(value string) string {
	if a.cfg.FoldWidth {
		return sanitizer.FoldWidth(value)
	}
	return value
}

// rules builds the rule for kind, preceded by Required when empty input is
// not allowed.
func (a *app) rules(kind, field, value string, args []string) ([]validator.Rule, error) {
	rule, err := validator.RuleFor(kind, field, value, args...)
	if err != nil {
		return nil, err
	}
	if a.cfg.AllowEmpty || kind == "required" {
		return []validator.Rule{rule}, nil
	}
	return []validator.Rule{validator.Required(field, value), rule}, nil
}

func (a *app) message(e validator.ValidationError) string {
	return a.tr.Td(a.lang, e.TranslationKey, e.Message, e.TranslationValues)
}

func (a *app) printErrors(cmd *cobra.Command, errs validator.ValidationErrors) {
	out := cmd.OutOrStdout()
	for _, e := range errs {
		fmt.Fprintf(out, "%s: %s\n", e.Field, a.message(e))
	}
}
