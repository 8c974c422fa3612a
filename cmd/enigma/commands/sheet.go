package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/enigma-sim/enigma-go/pkg/keysheet"
	"github.com/enigma-sim/enigma-go/pkg/preset"
)

var (
	sheetModel string
	sheetDays  int
	sheetOut   string
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Derive a daily key sheet from a passphrase",
	Long: `Sheet derives a run of daily machine settings from a shared
passphrase. Two stations deriving from the same model and passphrase
get identical sheets, so a sheet file never has to travel.

The passphrase is read from the terminal without echo, from stdin when
stdin is not a terminal, or from ENIGMA_PASSPHRASE.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase, err := readPassphrase()
		if err != nil {
			return err
		}

		sheet, err := keysheet.Derive(sheetModel, passphrase, sheetDays)
		if err != nil {
			return err
		}

		if sheetOut != "" {
			if err := keysheet.NewStore(sheetOut).Save(sheet); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %d-day sheet for %s to %s\n", sheet.Days(), sheet.Model, sheetOut)
			return nil
		}

		sheet.Version = keysheet.Version
		sheet.IssuedAt = time.Now().UTC()
		data, err := yaml.Marshal(sheet)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	sheetCmd.Flags().StringVarP(&sheetModel, "model", "m", preset.M3, "machine model to derive settings for")
	sheetCmd.Flags().IntVar(&sheetDays, "days", 31, "number of days on the sheet")
	sheetCmd.Flags().StringVarP(&sheetOut, "output", "o", "", "write the sheet to this file (stdout when unset)")
	rootCmd.AddCommand(sheetCmd)
}

// readPassphrase obtains the derivation passphrase, preferring the
// terminal over the environment so the passphrase stays out of shell
// history and process listings.
func readPassphrase() ([]byte, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Enter the passphrase: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		if len(secret) == 0 {
			return nil, fmt.Errorf("empty passphrase")
		}
		return secret, nil
	}

	if viper.IsSet("passphrase") {
		return []byte(viper.GetString("passphrase")), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	secret := strings.TrimRight(line, "\r\n")
	if secret == "" {
		return nil, fmt.Errorf("empty passphrase")
	}
	return []byte(secret), nil
}
