package commands

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/preset"
	"github.com/enigma-sim/enigma-go/pkg/trace"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive machine console",
	Long: `Console opens an interactive prompt for assembling a machine and
encoding text keypress by keypress. Type 'help' at the prompt for the
command list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newConsole()
		if err != nil {
			return err
		}
		return c.run()
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

// switchTracer is a tracer that can be pointed at a file tracer after
// the machine it is attached to was built. It forwards events only
// while tracing is switched on.
type switchTracer struct {
	mu    sync.Mutex
	inner *trace.FileTracer
}

func (s *switchTracer) Trace(event trace.Event) {
	s.mu.Lock()
	inner := s.inner
	s.mu.Unlock()
	if inner != nil {
		inner.Trace(event)
	}
}

func (s *switchTracer) set(inner *trace.FileTracer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if s.inner != nil {
		err = s.inner.Close()
	}
	s.inner = inner
	return err
}

func (s *switchTracer) active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner != nil
}

// console holds the interactive session state: the machine under
// assembly and a tracer it can switch on and off.
type console struct {
	rl      *readline.Instance
	machine *enigma.Machine
	tracer  *switchTracer
}

func newConsole() (*console, error) {
	c := &console{tracer: &switchTracer{}}

	completer := readline.NewPrefixCompleter(
		readline.PcItem("model", readline.PcItemDynamic(func(string) []string {
			return preset.Models()
		})),
		readline.PcItem("rotors", readline.PcItemDynamic(c.completeRotors)),
		readline.PcItem("positions"),
		readline.PcItem("reflector", readline.PcItemDynamic(c.completeReflectors)),
		readline.PcItem("etw", readline.PcItemDynamic(c.completeEntryWheels)),
		readline.PcItem("plug"),
		readline.PcItem("encode"),
		readline.PcItem("status"),
		readline.PcItem("reset"),
		readline.PcItem("trace", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "enigma> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	c.rl = rl
	return c, nil
}

func (c *console) completeRotors(string) []string {
	if c.machine == nil {
		return nil
	}
	return c.machine.AvailableRotors()
}

func (c *console) completeReflectors(string) []string {
	if c.machine == nil {
		return nil
	}
	return c.machine.AvailableReflectors()
}

func (c *console) completeEntryWheels(string) []string {
	if c.machine == nil {
		return nil
	}
	return c.machine.AvailableEntryWheels()
}

// run starts the interactive command loop.
func (c *console) run() error {
	defer c.rl.Close()
	defer c.tracer.set(nil)

	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return nil
		}
		c.dispatch(c.rl.Stdout(), cmd, args)
	}
}

// dispatch runs a single console command, writing results to w.
func (c *console) dispatch(w io.Writer, cmd string, args []string) {
	switch cmd {
	case "help", "?":
		c.printHelp()

	case "model":
		c.cmdModel(w, args)

	case "rotors":
		c.withMachine(w, func(m *enigma.Machine) error {
			return m.SetRotors(args...)
		})

	case "positions":
		c.withMachine(w, func(m *enigma.Machine) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: positions <letters>")
			}
			return m.SetRotorPositions(args[0])
		})

	case "reflector":
		c.withMachine(w, func(m *enigma.Machine) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: reflector <name>")
			}
			return m.SetReflector(args[0])
		})

	case "etw":
		c.withMachine(w, func(m *enigma.Machine) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: etw <name>")
			}
			return m.SetEntryWheel(args[0])
		})

	case "plug":
		c.withMachine(w, func(m *enigma.Machine) error {
			return m.SetPlugboard(args...)
		})

	case "encode":
		c.cmdEncode(w, args)

	case "status":
		c.cmdStatus(w)

	case "reset":
		c.withMachine(w, func(m *enigma.Machine) error {
			return m.SetRotorPositions(strings.Repeat("A", len(m.RotorModels())))
		})

	case "trace":
		c.cmdTrace(w, args)

	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
}

// withMachine runs a configuration operation against the current
// machine, reporting errors instead of propagating them so the loop
// keeps running.
func (c *console) withMachine(w io.Writer, fn func(*enigma.Machine) error) {
	if c.machine == nil {
		fmt.Fprintln(w, "No machine selected (use 'model <name>' first)")
		return
	}
	if err := fn(c.machine); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func (c *console) cmdModel(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(w, "usage: model <name>  (available: %s)\n", strings.Join(preset.Models(), ", "))
		return
	}

	cfg, err := preset.Config(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	cfg.Tracer = c.tracer

	machine, err := enigma.New(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	c.machine = machine
	fmt.Fprintf(w, "%s (%d): rotors %s\n",
		machine.Name(), machine.Year(), strings.Join(machine.AvailableRotors(), " "))
}

func (c *console) cmdEncode(w io.Writer, args []string) {
	if c.machine == nil {
		fmt.Fprintln(w, "No machine selected (use 'model <name>' first)")
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(w, "usage: encode <text>")
		return
	}
	output, err := c.machine.Encode(strings.Join(args, " "), false)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s  (positions now %s)\n", output, c.machine.RotorPositions())
}

func (c *console) cmdStatus(w io.Writer) {
	if c.machine == nil {
		fmt.Fprintln(w, "No machine selected (use 'model <name>' first)")
		return
	}
	m := c.machine
	fmt.Fprintf(w, "Model:      %s (%d)\n", m.Name(), m.Year())
	fmt.Fprintf(w, "Rotors:     %s\n", orNone(strings.Join(m.RotorModels(), " ")))
	fmt.Fprintf(w, "Positions:  %s\n", orNone(m.RotorPositions()))
	fmt.Fprintf(w, "Reflector:  %s\n", orNone(m.ReflectorModel()))
	fmt.Fprintf(w, "Entry:      %s\n", orNone(m.EntryWheelModel()))
	fmt.Fprintf(w, "Plugboard:  %s\n", orNone(strings.Join(m.PlugboardPairs(), " ")))
	if c.tracer.active() {
		fmt.Fprintln(w, "Tracing:    on")
	} else {
		fmt.Fprintln(w, "Tracing:    off")
	}
}

func (c *console) cmdTrace(w io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(w, "usage: trace on [file] | trace off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		path := "enigma-trace.cbor"
		if len(args) > 1 {
			path = args[1]
		}
		ft, err := trace.NewFileTracer(path)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
		if err := c.tracer.set(ft); err != nil {
			fmt.Fprintf(w, "Error closing previous trace: %v\n", err)
		}
		fmt.Fprintf(w, "Tracing to %s\n", path)
	case "off":
		if err := c.tracer.set(nil); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(w, "Tracing off")
	default:
		fmt.Fprintln(w, "usage: trace on [file] | trace off")
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func (c *console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Enigma Console Commands:
  Machine assembly:
    model <name>         - Select a machine model (see 'models' names)
    rotors <names...>    - Install rotors, leftmost first
    positions <letters>  - Set rotor positions, e.g. ADT
    reflector <name>     - Install a reflector
    etw <name>           - Install an entry wheel
    plug <AB CD ...>     - Configure the plugboard

  Operation:
    encode <text>        - Encode text on the current machine
    status               - Show the machine configuration
    reset                - Turn all rotors back to A

  Tracing:
    trace on [file]      - Record keypress events to a file
    trace off            - Stop recording

  General:
    help                 - Show this help
    quit                 - Exit the console`)
}
