package main

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/attrs/internal/errors"
	"github.com/vango-dev/attrs/pkg/attr"
	"github.com/vango-dev/attrs/pkg/attrio"
)

// inputOptions are the flags shared by commands that read a document.
type inputOptions struct {
	format   string
	maxDepth int
}

func (o *inputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Input format: json or yaml (default from file extension, else json)")
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", attr.DefaultMaxDepth, "Maximum nesting depth of attribute values")
}

func (o *inputOptions) normalizer() *attr.Normalizer {
	return attr.New(attr.WithMaxDepth(o.maxDepth))
}

// readAttrs reads the document named by args, or stdin, as attributes.
func (o *inputOptions) readAttrs(cmd *cobra.Command, args []string) ([]attr.Attr, error) {
	path := "<stdin>"
	var (
		data []byte
		err  error
	)
	if len(args) > 0 && args[0] != "-" {
		path = args[0]
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, errors.New("A022").WithDetail("Could not read " + path).Wrap(err)
	}

	format := attrio.FormatForPath(path)
	if o.format != "" {
		if format, err = attrio.ParseFormat(o.format); err != nil {
			return nil, errors.Newf(errors.CategoryCLI, "%v", err)
		}
	}

	var attrs []attr.Attr
	depth := attrio.WithMaxDepth(o.maxDepth)
	switch format {
	case attrio.FormatYAML:
		attrs, err = attrio.DecodeYAMLAttrs(data, depth)
	default:
		attrs, err = attrio.DecodeJSONAttrs(data, depth)
	}
	if err != nil {
		ae := errors.Classify(err, "A020")
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			ae.WithOffset(path, data, syntaxErr.Offset)
		}
		return nil, ae
	}
	return attrs, nil
}
