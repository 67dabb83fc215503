package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"errata/internal/errcode"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs [word]",
	Short: "List the attribute vocabulary or look one word up",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAttrs,
}

func runAttrs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		d, ok := errcode.ParseDesc(args[0])
		if !ok {
			return fmt.Errorf("unknown attribute %q", args[0])
		}
		word := d.Attr().String()
		if d.Negated() {
			word = "NOT " + word
		}
		fmt.Fprintf(out, "%3d %s\n", d.Attr(), word)
		return nil
	}

	for a := errcode.AttrA; a <= errcode.AttrWrong; a++ {
		fmt.Fprintf(out, "%3d %s\n", a, a)
	}
	return nil
}
