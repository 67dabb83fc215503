package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"errata/internal/errcode"
	"errata/internal/errfmt"
	"errata/internal/version"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags]",
	Short: "Build a packed error code from its parts",
	Long:  `Build a 64-bit error code from an attribute, an optional NOT, a noun and locator fields, and print it in decimal and hex`,
	Args:  cobra.NoArgs,
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().String("attr", "", "attribute word (e.g. FULL, NOT_FOUND, INVALID) or numeric code")
	encodeCmd.Flags().Bool("not", false, "set the negate bit (NOT <attribute>)")
	encodeCmd.Flags().Int("noun", 0, "noun code (0 = no noun)")
	encodeCmd.Flags().String("noun-word", "", "noun word, reverse-resolved through the glossary")
	encodeCmd.Flags().Int("line", 0, "source line to record in the locator")
	encodeCmd.Flags().Int("api-version", -1, "API version for the locator (default: build-time value)")
	encodeCmd.Flags().Int("api-revision", -1, "API revision for the locator (default: build-time value)")
	addGlossaryFlags(encodeCmd)
}

func runEncode(cmd *cobra.Command, _ []string) error {
	desc, err := resolveAttrFlag(cmd)
	if err != nil {
		return err
	}
	if not, _ := cmd.Flags().GetBool("not"); not {
		desc = desc.Negate()
	}

	noun, err := resolveNounFlags(cmd)
	if err != nil {
		return err
	}
	desc = desc.WithNoun(noun)

	line, _ := cmd.Flags().GetInt("line")
	if _, err := safecast.Conv[uint16](line); err != nil {
		return fmt.Errorf("line %d does not fit the 16-bit locator field", line)
	}

	ver, rev, err := resolveLocatorFlags(cmd)
	if err != nil {
		return err
	}

	c := errcode.New(ver, rev, line, desc)

	out := cmd.OutOrStdout()
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		fmt.Fprintf(out, "%d\n", int64(c))
		return nil
	}
	g, err := loadGlossary(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d\n%s\n%s\n", int64(c), c, errfmt.Message(c, g.Func()))
	return nil
}

func resolveAttrFlag(cmd *cobra.Command) (errcode.Desc, error) {
	attr, err := cmd.Flags().GetString("attr")
	if err != nil {
		return 0, err
	}
	if attr == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(attr); err == nil {
		a, err := safecast.Conv[uint8](n)
		if err != nil {
			return 0, fmt.Errorf("attribute code %d does not fit the 8-bit field", n)
		}
		return errcode.Attr(a).Desc(), nil
	}
	d, ok := errcode.ParseDesc(attr)
	if !ok {
		return 0, fmt.Errorf("unknown attribute %q (try: errata attrs)", attr)
	}
	return d, nil
}

func resolveNounFlags(cmd *cobra.Command) (int, error) {
	word, err := cmd.Flags().GetString("noun-word")
	if err != nil {
		return 0, err
	}
	if word != "" {
		g, err := loadGlossary(cmd)
		if err != nil {
			return 0, err
		}
		for code, w := range g {
			if w == word {
				return code, nil
			}
		}
		return 0, fmt.Errorf("noun %q not in the glossary", word)
	}
	noun, _ := cmd.Flags().GetInt("noun")
	if noun < 0 || noun > errcode.MaxNoun {
		return 0, fmt.Errorf("noun code %d does not fit the 15-bit field", noun)
	}
	return noun, nil
}

func resolveLocatorFlags(cmd *cobra.Command) (ver, rev int, err error) {
	ver, _ = cmd.Flags().GetInt("api-version")
	rev, _ = cmd.Flags().GetInt("api-revision")
	if ver < 0 {
		ver = version.APIVersion()
	} else if ver > errcode.MaxVersion {
		return 0, 0, fmt.Errorf("api version %d does not fit the 7-bit field", ver)
	}
	if rev < 0 {
		rev = version.APIRevision()
	} else if _, convErr := safecast.Conv[uint16](rev); convErr != nil {
		return 0, 0, fmt.Errorf("api revision %d does not fit the 16-bit field", rev)
	}
	return ver, rev, nil
}
