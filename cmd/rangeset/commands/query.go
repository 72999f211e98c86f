package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/baratali/rangeset/pkg/rangeset"
)

const queryArgCount = 1

// ErrNoQuery is returned when none of query's flags were given.
var ErrNoQuery = errors.New("query: one of --contains, --span, or --encloses-lower/--encloses-upper is required")

// ErrIncompleteEncloses is returned when only one of --encloses-lower and
// --encloses-upper is given.
var ErrIncompleteEncloses = errors.New("query: --encloses-lower and --encloses-upper must be given together")

// NewQueryCommand creates the query subcommand: answer a single
// membership, enclosure, or span question against a built range set.
func NewQueryCommand(configPath *string) *cobra.Command {
	var (
		containsValue  float64
		hasContains    bool
		encloseLower   float64
		encloseUpper   float64
		wantEncloses   bool
		wantSpan       bool
		complement     bool
		windowLower    float64
		windowUpper    float64
		hasWindowLower bool
		hasWindowUpper bool
	)

	cmd := &cobra.Command{
		Use:   "query <operations-file>",
		Short: "Answer a membership, enclosure, or span question against a built range set",
		Args:  cobra.ExactArgs(queryArgCount),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}

			if !hasContains && !wantSpan && !wantEncloses {
				return ErrNoQuery
			}

			if cobraCmd.Flags().Changed("encloses-lower") != cobraCmd.Flags().Changed("encloses-upper") {
				return ErrIncompleteEncloses
			}

			window := cfg.DefaultWindow
			if hasWindowLower {
				window.Lower = windowLower
			}

			if hasWindowUpper {
				window.Upper = windowUpper
			}

			return runQuery(args[0], queryOptions{
				containsValue: containsValue,
				hasContains:   hasContains,
				wantEncloses:  wantEncloses,
				encloseLower:  encloseLower,
				encloseUpper:  encloseUpper,
				wantSpan:      wantSpan,
				complement:    complement,
				window:        window,
			})
		},
	}

	cmd.Flags().Float64Var(&containsValue, "contains", 0, "check whether this value is in the set")
	cmd.Flags().Float64Var(&encloseLower, "encloses-lower", 0, "lower bound of the range to test for enclosure (requires --encloses-upper)")
	cmd.Flags().Float64Var(&encloseUpper, "encloses-upper", 0, "upper bound of the range to test for enclosure (requires --encloses-lower)")
	cmd.Flags().BoolVar(&wantSpan, "span", false, "print the smallest range enclosing the whole set, restricted to --window-lower/--window-upper (default: config default_window)")
	cmd.Flags().BoolVar(&complement, "complement", false, "query the complement of the built set instead")
	cmd.Flags().Float64Var(&windowLower, "window-lower", 0, "lower bound of the span window (default: config default_window.lower)")
	cmd.Flags().Float64Var(&windowUpper, "window-upper", 0, "upper bound of the span window (default: config default_window.upper)")

	cmd.PreRunE = func(_ *cobra.Command, _ []string) error {
		hasContains = cmd.Flags().Changed("contains")
		wantEncloses = cmd.Flags().Changed("encloses-lower") || cmd.Flags().Changed("encloses-upper")
		hasWindowLower = cmd.Flags().Changed("window-lower")
		hasWindowUpper = cmd.Flags().Changed("window-upper")

		return nil
	}

	return cmd
}

// queryOptions bundles runQuery's flag-derived arguments so adding a new
// query kind doesn't grow a long positional parameter list.
type queryOptions struct {
	containsValue float64
	hasContains   bool
	wantEncloses  bool
	encloseLower  float64
	encloseUpper  float64
	wantSpan      bool
	complement    bool
	window        WindowConfig
}

func runQuery(path string, opts queryOptions) error {
	ops, loadErr := LoadOperations(path)
	if loadErr != nil {
		return loadErr
	}

	set, applyErr := Apply(ops)
	if applyErr != nil {
		return applyErr
	}

	var target rangeset.RangeSet[float64] = set
	if opts.complement {
		target = set.Complement()
	}

	if opts.hasContains {
		printContains(target, opts.containsValue)
	}

	if opts.wantEncloses {
		q, rangeErr := rangeset.Closed(float64Cmp, opts.encloseLower, opts.encloseUpper)
		if rangeErr != nil {
			return rangeErr
		}

		printEncloses(target, q)
	}

	if opts.wantSpan {
		w, windowErr := rangeset.Closed(float64Cmp, opts.window.Lower, opts.window.Upper)
		if windowErr != nil {
			return windowErr
		}

		printSpan(target.SubRangeSet(w))
	}

	return nil
}

func printContains(set rangeset.RangeSet[float64], v float64) {
	if !set.Contains(v) {
		fmt.Printf("%s is not in the set\n", humanize.Commaf(v))

		return
	}

	r, _ := set.RangeContaining(v)
	fmt.Printf("%s is in the set, within %s\n", humanize.Commaf(v), r.String())
}

func printEncloses(set rangeset.RangeSet[float64], q rangeset.Range[float64]) {
	if set.Encloses(q) {
		fmt.Printf("%s is enclosed by the set\n", q.String())

		return
	}

	fmt.Printf("%s is not enclosed by the set\n", q.String())
}

func printSpan(set rangeset.RangeSet[float64]) {
	span, err := set.Span()
	if err != nil {
		fmt.Println("span: the set has no ranges")

		return
	}

	lower, hasLower := span.Lower().Value()
	upper, hasUpper := span.Upper().Value()

	if !hasLower || !hasUpper {
		fmt.Printf("span: %s\n", span.String())

		return
	}

	fmt.Printf("span: %s .. %s (width %s)\n",
		humanize.Commaf(lower), humanize.Commaf(upper), humanize.Commaf(upper-lower))
}
