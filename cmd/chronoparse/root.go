package main

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hrygo/chronoparse/internal/observability"
	"github.com/hrygo/chronoparse/internal/profile"
	"github.com/hrygo/chronoparse/plugin/aitime"
	"github.com/hrygo/chronoparse/plugin/datetime/timezone"
)

const (
	flagConfig   = "config"
	flagLogLevel = "loglevel"
	flagRef      = "ref"
	flagOutput   = "output"
)

var refLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronoparse [sub-command]",
		Short: "Resolve time expressions into timex values and calendar ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "path to a config file; CHRONOPARSE_* variables override it")
	flags.String(flagLogLevel, "", "log level (debug, info, warn, error); overrides the profile")
	flags.String(flagRef, "", `reference moment, e.g. "2016-11-07" or RFC 3339; defaults to now`)
	flags.StringP(flagOutput, "o", formatJSON, "output format (json, yaml, text)")

	cmd.AddCommand(newResolveCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newOccurrencesCommand())
	return cmd
}

// session is the state every sub-command builds from the global flags.
type session struct {
	service *aitime.Service
	logger  *slog.Logger
	ref     time.Time
	format  string
}

func newSession(cmd *cobra.Command) (*session, error) {
	configFile, _ := cmd.Flags().GetString(flagConfig)
	p, err := profile.Load(configFile)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString(flagLogLevel); level != "" {
		p.LogLevel = level
	}

	format, _ := cmd.Flags().GetString(flagOutput)
	if !validFormat(format) {
		return nil, errors.Errorf("invalid output format %q", format)
	}

	logger := observability.NewLogger(p.LogLevel)
	svc, err := aitime.NewService(p, logger)
	if err != nil {
		return nil, err
	}

	loc, err := timezone.ParseTimezone(p.DefaultTimezone)
	if err != nil {
		return nil, err
	}
	refText, _ := cmd.Flags().GetString(flagRef)
	ref, err := parseReference(refText, loc)
	if err != nil {
		return nil, err
	}
	return &session{service: svc, logger: logger, ref: ref, format: format}, nil
}

func parseReference(text string, loc *time.Location) (time.Time, error) {
	if text == "" {
		return time.Now().In(loc), nil
	}
	for _, layout := range refLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized reference moment %q", text)
}
