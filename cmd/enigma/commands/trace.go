package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/enigma-sim/enigma-go/pkg/trace"
)

var (
	traceKind    string
	traceSession string
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Inspect keypress trace files",
	Long: `Trace reads the CBOR trace files written by encode --trace or the
console's trace command.`,
}

var traceViewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Print the events in a trace file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := traceFilter()
		if err != nil {
			return err
		}
		return runTraceView(os.Stdout, args[0], filter)
	},
}

var traceStatsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print aggregate statistics about a trace file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraceStats(os.Stdout, args[0])
	},
}

func init() {
	traceViewCmd.Flags().StringVar(&traceKind, "kind", "", "only show events of this kind (keypress, config)")
	traceViewCmd.Flags().StringVar(&traceSession, "session", "", "only show events of this session")
	traceCmd.AddCommand(traceViewCmd)
	traceCmd.AddCommand(traceStatsCmd)
	rootCmd.AddCommand(traceCmd)
}

func traceFilter() (trace.Filter, error) {
	filter := trace.Filter{SessionID: traceSession}
	switch strings.ToLower(traceKind) {
	case "":
	case "keypress":
		kind := trace.KindKeypress
		filter.Kind = &kind
	case "config":
		kind := trace.KindConfig
		filter.Kind = &kind
	default:
		return trace.Filter{}, fmt.Errorf("unknown event kind %q (keypress, config)", traceKind)
	}
	return filter, nil
}

func runTraceView(w io.Writer, path string, filter trace.Filter) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading event: %w", err)
		}
		formatEvent(w, event)
		count++
	}

	fmt.Fprintf(w, "%d events\n", count)
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event trace.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] #%d %-8s %s\n",
		ts, shortenSessionID(event.SessionID), event.Seq, event.Kind, event.Machine)

	switch {
	case event.Keypress != nil:
		kp := event.Keypress
		fmt.Fprintf(w, "  %s -> %s  positions %s\n", kp.Input, kp.Output, kp.Positions)
		for _, step := range kp.Steps {
			label := step.Model
			if label == "" {
				label = fmt.Sprintf("slot %d", step.Index)
			}
			fmt.Fprintf(w, "  step %s: %s -> %s\n", label, step.From, step.To)
		}
	case event.Config != nil:
		fmt.Fprintf(w, "  %s", event.Config.Op)
		if event.Config.Detail != "" {
			fmt.Fprintf(w, ": %s", event.Config.Detail)
		}
		fmt.Fprintln(w)
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// traceStats holds aggregate statistics about a trace file.
type traceStats struct {
	TotalEvents  int
	EventsByKind map[trace.Kind]int
	Sessions     map[string]*sessionStats
	StepsByRotor map[string]int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// sessionStats holds statistics for a single machine session.
type sessionStats struct {
	Machine    string
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Keypresses int
}

func runTraceStats(w io.Writer, path string) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	defer reader.Close()

	stats := &traceStats{
		EventsByKind: make(map[trace.Kind]int),
		Sessions:     make(map[string]*sessionStats),
		StepsByRotor: make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &sessionStats{
				Machine:   event.Machine,
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		if event.Keypress != nil {
			sess.Keypresses++
			for _, step := range event.Keypress.Steps {
				label := step.Model
				if label == "" {
					label = fmt.Sprintf("slot %d", step.Index)
				}
				stats.StepsByRotor[label]++
			}
		}
	}

	printTraceStats(w, stats)
	return nil
}

func printTraceStats(w io.Writer, stats *traceStats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return
	}

	fmt.Fprintf(w, "Time range:   %s - %s\n",
		stats.TimeRange.Start.UTC().Format(time.RFC3339),
		stats.TimeRange.End.UTC().Format(time.RFC3339))

	fmt.Fprintln(w, "\nEvents by kind:")
	for _, kind := range []trace.Kind{trace.KindKeypress, trace.KindConfig} {
		if n := stats.EventsByKind[kind]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", kind, n)
		}
	}

	if len(stats.StepsByRotor) > 0 {
		fmt.Fprintln(w, "\nRotor steps:")
		rotors := make([]string, 0, len(stats.StepsByRotor))
		for name := range stats.StepsByRotor {
			rotors = append(rotors, name)
		}
		sort.Strings(rotors)
		for _, name := range rotors {
			fmt.Fprintf(w, "  %-8s %d\n", name, stats.StepsByRotor[name])
		}
	}

	fmt.Fprintln(w, "\nSessions:")
	ids := make([]string, 0, len(stats.Sessions))
	for id := range stats.Sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Sessions[ids[i]].FirstSeen.Before(stats.Sessions[ids[j]].FirstSeen)
	})
	for _, id := range ids {
		sess := stats.Sessions[id]
		fmt.Fprintf(w, "  %s  %-10s %d events, %d keypresses\n",
			shortenSessionID(id), sess.Machine, sess.Events, sess.Keypresses)
	}
}
