package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/arcanaland/cardpack/internal/config"
	"github.com/arcanaland/cardpack/internal/deck"
	"github.com/arcanaland/cardpack/internal/locale"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardpack",
	Short: "Tool for building, shuffling and drawing from decks of playing cards",
	Long: `Cardpack builds decks of playing cards for several games (French, Tarot, Skat,
Pinochle, Canasta, Euchre, Spades), shuffles, sorts and draws from them, and
prints card names in any language carried by its locale templates.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

var (
	langFlag string
	verbose  bool
	logger   = slog.Default()
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Display language, e.g. en-US or de (default from config)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// session carries what a command needs to render cards.
type session struct {
	config *config.Config
	bundle *locale.Bundle
	lang   language.Tag
}

func loadSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	bundle := locale.Default()
	if dir := cfg.GetLocaleDir(); dir != "" {
		logger.Debug("loading locales", "dir", dir)
		bundle, err = locale.LoadDir(dir, locale.USEnglish)
		if err != nil {
			return nil, fmt.Errorf("error loading locales: %w", err)
		}
	}

	tag := langFlag
	if tag == "" {
		tag = cfg.GetLanguage()
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", tag, err)
	}

	if matched := bundle.Match(lang); matched != lang {
		logger.Warn("language not carried, using closest match", "requested", lang, "using", matched)
	}

	logger.Debug("session ready", "variant", cfg.DefaultVariant, "lang", lang)
	return &session{config: cfg, bundle: bundle, lang: lang}, nil
}

// family resolves the variant named in args, or the configured default.
func (s *session) family(args []string) (deck.Family, error) {
	name := s.config.DefaultVariant
	if len(args) > 0 {
		name = args[0]
	}
	f, err := deck.Lookup(name)
	if err != nil {
		return deck.Family{}, err
	}
	return f.WithWeights(s.bundle), nil
}
