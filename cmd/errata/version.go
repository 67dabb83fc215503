package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"errata/internal/version"
)

type versionInfo struct {
	Version     string
	GitCommit   string
	BuildDate   string
	APIVersion  int
	APIRevision int
}

type versionPayload struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	GitCommit   string `json:"git_commit,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
	APIVersion  int    `json:"api_version"`
	APIRevision int    `json:"api_revision"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show errata build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(versionFormat)
		switch format {
		case "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := collectVersionInfo()
		if format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info)
		}
		renderVersionPretty(cmd.OutOrStdout(), info)
		return nil
	},
}

func collectVersionInfo() versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return versionInfo{
		Version:     v,
		GitCommit:   strings.TrimSpace(version.GitCommit),
		BuildDate:   strings.TrimSpace(version.BuildDate),
		APIVersion:  version.APIVersion(),
		APIRevision: version.APIRevision(),
	}
}

func renderVersionPretty(out io.Writer, info versionInfo) {
	fmt.Fprintf(out, "errata %s\n", info.Version)
	fmt.Fprintf(out, "locator: api=%d rev=%d\n", info.APIVersion, info.APIRevision)
	if info.GitCommit != "" {
		fmt.Fprintf(out, "commit: %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "built:  %s\n", info.BuildDate)
	}
}

func renderVersionJSON(out io.Writer, info versionInfo) error {
	payload := versionPayload{
		Tool:        "errata",
		Version:     info.Version,
		GitCommit:   info.GitCommit,
		BuildDate:   info.BuildDate,
		APIVersion:  info.APIVersion,
		APIRevision: info.APIRevision,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
