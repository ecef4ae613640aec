package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sprintboard/internal/models"
	"sprintboard/internal/validation"
)

// snapshot is the whole board as written by export.
type snapshot struct {
	Backlogs []models.Backlog `json:"backlogs" yaml:"backlogs" toml:"backlogs"`
	Sprints  []models.Sprint  `json:"sprints" yaml:"sprints" toml:"sprints"`
}

var exportFormats = []string{"json", "yaml", "toml"}

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		format   string
		keysOnly bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every backlog and sprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if flags.jsonOutput {
				format = "json"
			}
			return withApp(cmd, flags, func(a *app) error {
				if keysOnly {
					keys, err := a.store.Keys(cmd.Context())
					if err != nil {
						return err
					}
					for _, k := range keys {
						fmt.Fprintln(cmd.OutOrStdout(), k)
					}
					return nil
				}
				snap := snapshot{
					Backlogs: a.board.ListBacklogs(cmd.Context()),
					Sprints:  a.board.ListSprints(cmd.Context()),
				}
				return writeSnapshot(cmd.OutOrStdout(), format, snap)
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: "+strings.Join(exportFormats, ", "))
	cmd.Flags().BoolVar(&keysOnly, "keys", false, "List the keys held in the store instead")
	return cmd
}

func writeSnapshot(w io.Writer, format string, snap snapshot) error {
	switch format {
	case "json":
		return printJSON(w, snap)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(snap); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return validation.Invalid("format", "must be one of: "+validation.FormatValidValues(exportFormats))
	}
}
