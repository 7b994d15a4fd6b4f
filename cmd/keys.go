package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/terminal"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "print the keypad layout",
	Args:  cobra.NoArgs,
	RunE:  Keys,
}

func Keys(cmd *cobra.Command, args []string) error {
	km, err := screen.ParseKeyMap(viper.GetStringMapString("keymap"))
	if err != nil {
		return err
	}

	termKeys, err := terminal.ParseKeys(viper.GetStringMapString("terminal.keymap"))
	if err != nil {
		return err
	}

	typed := map[uint8]byte{}
	for c, k := range termKeys {
		typed[k] = c
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "key\twindow\tterminal")
	for k, b := range km {
		fmt.Fprintf(w, "%X\t%v\t%c\n", k, b, typed[uint8(k)])
	}
	return w.Flush()
}
