package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/attrs/internal/errors"
	"github.com/vango-dev/attrs/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		opts inputOptions
		tag  string
		text string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an element with the attributes of a document",
		Long: `Read a JSON or YAML object of attributes and print a single HTML
element carrying them. Attribute values and text are escaped.

Examples:
  attrs render --tag input attrs.json
  echo '{"class": ["btn", "primary"]}' | attrs render --tag button --text Save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := opts.readAttrs(cmd, args)
			if err != nil {
				return err
			}

			var children []*render.Node
			if text != "" {
				children = append(children, render.Text(text))
			}

			r := render.NewRenderer(render.RendererConfig{Normalizer: opts.normalizer()})
			html, err := r.RenderToString(render.El(tag, attrs, children...))
			if err != nil {
				return errors.Classify(err, "A011")
			}

			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&tag, "tag", "t", "div", "Element tag name")
	cmd.Flags().StringVar(&text, "text", "", "Text content of the element")

	return cmd
}
