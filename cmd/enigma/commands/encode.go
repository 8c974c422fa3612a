package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/keysheet"
	"github.com/enigma-sim/enigma-go/pkg/preset"
	"github.com/enigma-sim/enigma-go/pkg/trace"
)

// cipherOptions holds the machine configuration flags shared by the
// encode and decode commands.
type cipherOptions struct {
	model      string
	rotors     []string
	positions  string
	reflector  string
	entryWheel string
	plugs      []string
	format     bool
	tracePath  string
	sheetPath  string
	day        int
	outputFile string
}

var (
	encodeOpts cipherOptions
	decodeOpts cipherOptions
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encrypt text with a configured machine",
	Long: `Encode runs text through a configured machine. Input is read from the
named file, or from stdin when no file is given. Non-letter characters
pass through unchanged unless --format regroups the output into
five-letter blocks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCipher(cmd, args, &encodeOpts)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decrypt text with a configured machine",
	Long: `Decode recovers plaintext from a ciphertext. A rotor machine is its
own inverse: decoding is encoding from the same starting positions, so
this command is an alias of encode kept for readability of scripts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCipher(cmd, args, &decodeOpts)
	},
}

func init() {
	addCipherFlags(encodeCmd, &encodeOpts)
	addCipherFlags(decodeCmd, &decodeOpts)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func addCipherFlags(cmd *cobra.Command, opts *cipherOptions) {
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "machine model (default M3, or ENIGMA_MODEL)")
	cmd.Flags().StringSliceVarP(&opts.rotors, "rotors", "r", nil, "rotor names, leftmost first (default: the model's first rotors)")
	cmd.Flags().StringVarP(&opts.positions, "positions", "p", "", "starting position letters, one per rotor")
	cmd.Flags().StringVar(&opts.reflector, "reflector", "", "reflector name (default: the model's first reflector)")
	cmd.Flags().StringVar(&opts.entryWheel, "entry-wheel", "", "entry wheel name (default: the model's first entry wheel)")
	cmd.Flags().StringSliceVar(&opts.plugs, "plugs", nil, "plugboard pairs, e.g. AB,CD")
	cmd.Flags().BoolVarP(&opts.format, "format", "g", false, "group output into five-letter blocks")
	cmd.Flags().StringVar(&opts.tracePath, "trace", "", "write a keypress trace to this file")
	cmd.Flags().StringVar(&opts.sheetPath, "sheet", "", "configure the machine from this key sheet")
	cmd.Flags().IntVar(&opts.day, "day", 1, "key sheet day to apply")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "write output to this file instead of stdout")
}

func runCipher(cmd *cobra.Command, args []string, opts *cipherOptions) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	machine, closeTracer, err := buildMachine(opts)
	if err != nil {
		return err
	}
	defer closeTracer()

	slog.Debug("machine assembled",
		"model", machine.Name(),
		"rotors", strings.Join(machine.RotorModels(), " "),
		"positions", machine.RotorPositions())

	output, err := machine.Encode(input, opts.format)
	if err != nil {
		return err
	}

	return writeOutput(opts.outputFile, output)
}

// buildMachine assembles a machine from the options, either from a key
// sheet or from the individual component flags. The returned function
// closes the trace file, if one was requested.
func buildMachine(opts *cipherOptions) (*enigma.Machine, func() error, error) {
	noop := func() error { return nil }

	var tracer trace.Tracer
	closeTracer := noop
	if opts.tracePath != "" {
		ft, err := trace.NewFileTracer(opts.tracePath)
		if err != nil {
			return nil, noop, fmt.Errorf("opening trace file: %w", err)
		}
		tracer = ft
		closeTracer = ft.Close
	}

	if opts.sheetPath != "" {
		m, err := machineFromSheet(opts, tracer)
		if err != nil {
			closeTracer()
			return nil, noop, err
		}
		return m, closeTracer, nil
	}

	model := opts.model
	if model == "" {
		model = viper.GetString("model")
	}
	if model == "" {
		model = preset.M3
	}

	rotors := opts.rotors
	if len(rotors) == 0 {
		rotors = defaultRotors(model)
	}

	b := preset.NewBuilder(model).Rotors(rotors...).Tracer(tracer)
	if opts.positions != "" {
		b = b.Positions(opts.positions)
	}
	if opts.reflector != "" {
		b = b.Reflector(opts.reflector)
	}
	if opts.entryWheel != "" {
		b = b.EntryWheel(opts.entryWheel)
	}
	if len(opts.plugs) > 0 {
		b = b.Plugs(opts.plugs...)
	}

	m, err := b.Build()
	if err != nil {
		closeTracer()
		return nil, noop, err
	}
	return m, closeTracer, nil
}

// machineFromSheet builds a machine of the sheet's model and applies
// the daily key. Explicit --positions still override the sheet's.
func machineFromSheet(opts *cipherOptions, tracer trace.Tracer) (*enigma.Machine, error) {
	sheet, err := keysheet.NewStore(opts.sheetPath).Load()
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, fmt.Errorf("no key sheet at %s", opts.sheetPath)
	}

	key, err := sheet.Key(opts.day)
	if err != nil {
		return nil, err
	}

	cfg, err := preset.Config(sheet.Model)
	if err != nil {
		return nil, err
	}
	cfg.Tracer = tracer

	m, err := enigma.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := keysheet.Apply(m, key); err != nil {
		return nil, err
	}
	if opts.positions != "" {
		if err := m.SetRotorPositions(opts.positions); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// defaultRotors picks the model's first cataloged rotors, up to its
// rotor limit or three, in catalog order.
func defaultRotors(model string) []string {
	manifest, err := preset.Load(model)
	if err != nil {
		return nil // the builder reports the unknown model
	}
	n := manifest.MaxRotors
	if n <= 0 || n > 3 {
		n = 3
	}
	if n > len(manifest.Rotors) {
		n = len(manifest.Rotors)
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = manifest.Rotors[i].Name
	}
	return names
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeOutput(path, output string) error {
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	if path == "" {
		_, err := fmt.Print(output)
		return err
	}
	return os.WriteFile(path, []byte(output), 0644)
}
