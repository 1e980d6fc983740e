// Package palette prints the deadline color palette.
package palette

import (
	"context"
	"io"

	"tableflip.dev/study/pkg/printers"
)

type Palette struct {
	Out io.Writer
}

func (p *Palette) Do(_ context.Context) error {
	pp := printers.New(p.Out)
	pp.NewLine()
	pp.Palette()
	return nil
}
