package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/attrs/internal/errors"
)

type entryOutput struct {
	Name    string  `json:"name"`
	Value   *string `json:"value,omitempty"`
	Present bool    `json:"present"`
}

func normalizeCmd() *cobra.Command {
	var (
		opts   inputOptions
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Flatten an attribute document into entries",
		Long: `Read a JSON or YAML object of attributes and print the flattened
entries, one per line, as name="value" or a bare name.

The document is read from the file argument, or from stdin when the
argument is missing or "-".

Examples:
  attrs normalize attrs.yaml
  echo '{"data": {":user_id": 7}}' | attrs normalize
  attrs normalize --json --format yaml < attrs.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := opts.readAttrs(cmd, args)
			if err != nil {
				return err
			}

			entries, err := opts.normalizer().NormalizeAll(attrs...)
			if err != nil {
				return errors.Classify(err, "A002")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				list := make([]entryOutput, 0, len(entries))
				for _, e := range entries {
					item := entryOutput{Name: e.Name, Present: !e.HasValue()}
					if text, ok := e.Value.Value(); ok {
						item.Value = &text
					}
					list = append(list, item)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			for _, e := range entries {
				fmt.Fprintln(out, e.String())
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as a JSON array")

	return cmd
}
