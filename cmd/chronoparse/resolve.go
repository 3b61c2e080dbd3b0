package main

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hrygo/chronoparse/internal/observability"
	"github.com/hrygo/chronoparse/plugin/datetime/model"
)

const (
	flagKind  = "kind"
	flagRange = "range"
	flagCount = "count"
)

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve one span of the given kind",
		Example: `  chronoparse resolve --ref 2016-11-07 "next Sunday"
  chronoparse resolve --kind timerange -o yaml "between 5 and 6pm"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			kind, _ := cmd.Flags().GetString(flagKind)
			withRange, _ := cmd.Flags().GetBool(flagRange)
			sp := newSpan(strings.Join(args, " "), model.Kind(kind))

			ctx := observability.WithRequestContext(cmd.Context(), observability.NewRequestContext(s.logger, "resolve"))
			res, ok, err := s.service.Resolve(ctx, sp, s.ref)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("%q does not resolve as %s", sp.Text, sp.Kind)
			}
			view := newResultView(res)
			if withRange {
				tr, err := s.service.ParseNaturalTime(ctx, sp, s.ref)
				if err != nil {
					return err
				}
				view.Range = &tr
			}
			return write(cmd.OutOrStdout(), s.format, []resultView{view})
		},
	}
	cmd.Flags().StringP(flagKind, "k", string(model.KindDate), "entity kind of the span, e.g. date, timerange, duration, set")
	cmd.Flags().Bool(flagRange, false, "also print the concrete range the span denotes")
	return cmd
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "batch",
		Short:   `Resolve "kind: text" lines read from stdin`,
		Example: `  printf 'date: next Sunday\nduration: half year\n' | chronoparse batch --ref 2016-11-07`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			spans, err := readSpans(cmd)
			if err != nil {
				return err
			}
			results, err := s.service.ResolveBatch(cmd.Context(), spans, s.ref)
			if err != nil {
				return err
			}
			views := make([]resultView, len(results))
			for i, res := range results {
				views[i] = newResultView(res)
			}
			return write(cmd.OutOrStdout(), s.format, views)
		},
	}
}

func newOccurrencesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "occurrences <text>",
		Short:   "List the next occurrences of a recurring set",
		Example: `  chronoparse occurrences --ref 2016-11-07 --count 3 "every monday"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt(flagCount)
			sp := newSpan(strings.Join(args, " "), model.KindSet)

			res, ok, err := s.service.Resolve(cmd.Context(), sp, s.ref)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("%q is not a recurring set", sp.Text)
			}
			times, err := s.service.Occurrences(res, s.ref, count)
			if err != nil {
				return err
			}
			view := newResultView(res)
			view.Occurrences = times
			return write(cmd.OutOrStdout(), s.format, []resultView{view})
		},
	}
	cmd.Flags().IntP(flagCount, "n", 5, "number of occurrences")
	return cmd
}

func newSpan(text string, kind model.Kind) model.Span {
	return model.Span{Text: text, Length: len(text), Kind: kind}
}

// readSpans parses "kind: text" lines. Offsets count bytes across the
// whole input so results can be traced back to their line.
func readSpans(cmd *cobra.Command) ([]model.Span, error) {
	var spans []model.Span
	offset := 0
	sc := bufio.NewScanner(cmd.InOrStdin())
	for line := 1; sc.Scan(); line++ {
		raw := sc.Text()
		kind, text, ok := strings.Cut(raw, ":")
		if strings.TrimSpace(raw) != "" {
			if !ok {
				return nil, errors.Errorf("line %d: want \"kind: text\", got %q", line, raw)
			}
			text = strings.TrimSpace(text)
			sp := newSpan(text, model.Kind(strings.TrimSpace(kind)))
			sp.Start = offset + strings.Index(raw, text)
			spans = append(spans, sp)
		}
		offset += len(raw) + 1
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read spans")
	}
	return spans, nil
}
