package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/enigma-sim/enigma-go/pkg/preset"
)

var modelsCmd = &cobra.Command{
	Use:   "models [name]",
	Short: "List machine models or show one model's components",
	Long: `Models lists the built-in machine models. With a name it shows the
model's full component tables: rotor wirings with their notch letters,
reflectors and entry wheels.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showModel(os.Stdout, args[0])
		}
		return listModels(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func listModels(w io.Writer) error {
	fmt.Fprintf(w, "%-12s %-6s %-7s %-7s %-11s %s\n", "MODEL", "YEAR", "ROTORS", "LIMIT", "REFLECTORS", "ENTRY WHEELS")
	for _, name := range preset.Models() {
		m, err := preset.Load(name)
		if err != nil {
			return err
		}
		limit := "-"
		if m.MaxRotors > 0 {
			limit = fmt.Sprintf("%d", m.MaxRotors)
		}
		fmt.Fprintf(w, "%-12s %-6d %-7d %-7s %-11d %d\n",
			m.Name, m.Year, len(m.Rotors), limit, len(m.Reflectors), len(m.EntryWheels))
	}
	return nil
}

func showModel(w io.Writer, name string) error {
	m, err := preset.Load(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%d)\n", m.Name, m.Year)
	if m.MaxRotors > 0 {
		fmt.Fprintf(w, "  Rotor limit: %d\n", m.MaxRotors)
	} else {
		fmt.Fprintln(w, "  Rotor limit: unlimited")
	}

	fmt.Fprintln(w, "  Rotors:")
	for _, r := range m.Rotors {
		notches := r.Notches
		if notches == "" {
			notches = "-"
		}
		fmt.Fprintf(w, "    %-10s %s  notch %s\n", r.Name, r.Wiring, notches)
	}

	if len(m.Reflectors) > 0 {
		fmt.Fprintln(w, "  Reflectors:")
		for _, r := range m.Reflectors {
			fmt.Fprintf(w, "    %-10s %s\n", r.Name, r.Wiring)
		}
	}
	if len(m.EntryWheels) > 0 {
		fmt.Fprintln(w, "  Entry wheels:")
		for _, e := range m.EntryWheels {
			fmt.Fprintf(w, "    %-10s %s\n", e.Name, e.Wiring)
		}
	}
	return nil
}
