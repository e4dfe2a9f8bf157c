package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flow-hydraulics/launcher-settings/settings"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func newSettingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or replace the launcher settings",
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")

	cmd.AddCommand(
		newSettingsGetCmd(opts),
		newSettingsSetCmd(opts),
		newSettingsResetCmd(opts),
	)

	return cmd
}

func newSettingsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.service().Get(cmd.Context())
			if err != nil {
				return err
			}
			return writeSettings(cmd.OutOrStdout(), opts.output, s)
		},
	}
}

func newSettingsSetCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set -f FILE",
		Short: "Replace the settings with the contents of a JSON or YAML file",
		Long: `Replace the entire settings record. Fields missing from the file take
their zero value. Use "-" to read from standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			s, err := readSettings(r)
			if err != nil {
				return err
			}

			svc := opts.service()
			if err := svc.Set(cmd.Context(), s); err != nil {
				return err
			}

			res, err := svc.Get(cmd.Context())
			if err != nil {
				return err
			}
			return writeSettings(cmd.OutOrStdout(), opts.output, res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "settings file, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSettingsResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the settings with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.service()
			if err := svc.Set(cmd.Context(), settings.Default()); err != nil {
				return err
			}

			res, err := svc.Get(cmd.Context())
			if err != nil {
				return err
			}
			return writeSettings(cmd.OutOrStdout(), opts.output, res)
		},
	}
}

// readSettings decodes YAML or JSON, JSON being a subset of YAML. Keys are
// the JSON field names.
func readSettings(r io.Reader) (*settings.Settings, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty settings file")
		}
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	d := json.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()

	s := &settings.Settings{}
	if err := d.Decode(s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return s, nil
}

func writeSettings(w io.Writer, format string, s *settings.Settings) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case outputYAML:
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(b, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q, expected %s or %s", format, outputJSON, outputYAML)
}
