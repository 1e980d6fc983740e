// Package export writes every stored record as one JSON or YAML document.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/errdefs"
	"tableflip.dev/study/pkg/printers"
)

type Export struct {
	State  *app.State
	Format string
	Out    io.Writer
}

func (e *Export) Do(_ context.Context) error {
	doc := e.State.Export()
	w := printers.New(e.Out).Out

	switch strings.ToLower(e.Format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errdefs.Validation("output", fmt.Sprintf("unknown format %q, want json or yaml", e.Format))
	}
}
