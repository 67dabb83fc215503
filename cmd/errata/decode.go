package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"errata/internal/errcode"
	"errata/internal/errfmt"
	"errata/internal/glossary"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] <code>...",
	Short: "Decode packed error codes into readable messages",
	Long:  `Decode one or more 64-bit error codes (decimal, 0x hex, or ERR_0x form) into their readable messages and locator fields`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	decodeCmd.Flags().Bool("extended", false, "append raw locator and descriptor fields")
	addGlossaryFlags(decodeCmd)
}

var (
	decodeMsgColor = color.New(color.Bold)
	decodeRawColor = color.New(color.Faint)
)

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "short":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", format)
	}
	extended, err := cmd.Flags().GetBool("extended")
	if err != nil {
		return err
	}

	g, err := loadGlossary(cmd)
	if err != nil {
		return err
	}
	resolve := g.Func()

	codes := make([]errcode.Code, 0, len(args))
	for _, arg := range args {
		c, err := parseCode(arg)
		if err != nil {
			return err
		}
		codes = append(codes, c)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		payload := make([]errfmt.CodeJSON, 0, len(codes))
		for _, c := range codes {
			payload = append(payload, errfmt.Describe(c, resolve))
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	for _, c := range codes {
		switch {
		case format == "short":
			fmt.Fprintf(out, "%s %s\n", c, errfmt.Message(c, resolve))
		case extended:
			msg, raw, _ := strings.Cut(errfmt.Extended(c, resolve), " ; ")
			fmt.Fprintf(out, "%s ; %s\n", decodeMsgColor.Sprint(msg), decodeRawColor.Sprint(raw))
		default:
			fmt.Fprintln(out, decodeMsgColor.Sprint(errfmt.Message(c, resolve)))
		}
	}
	return nil
}

// parseCode accepts decimal (signed), 0x hex, and the ERR_0x spelling the
// decoder itself prints. Hex values with the top bit set overflow ParseInt
// and are retried unsigned.
func parseCode(s string) (errcode.Code, error) {
	arg := strings.TrimPrefix(strings.TrimSpace(s), "ERR_")
	if n, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return errcode.Code(n), nil
	}
	if hexDigits, ok := strings.CutPrefix(arg, "0x"); ok {
		if u, err := strconv.ParseUint(hexDigits, 16, 64); err == nil {
			return errcode.Code(u), nil
		}
	}
	return 0, fmt.Errorf("bad code %q: expected a 64-bit integer", s)
}

// addGlossaryFlags registers the noun-resolution flags shared by decode and
// encode.
func addGlossaryFlags(cmd *cobra.Command) {
	cmd.Flags().String("glossary", "", "TOML glossary file for noun resolution (default: built-in demo nouns)")
	cmd.Flags().Bool("no-cache", false, "bypass the parsed-glossary disk cache")
}

// loadGlossary resolves the glossary flags into a noun table. A missing or
// unusable cache falls back to parsing the file directly.
func loadGlossary(cmd *cobra.Command) (glossary.Map, error) {
	path, err := cmd.Flags().GetString("glossary")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return glossary.Demo(), nil
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		return glossary.Load(path)
	}
	cache, err := glossary.OpenCache("errata")
	if err != nil {
		return glossary.Load(path)
	}
	return glossary.LoadCached(cache, path)
}
