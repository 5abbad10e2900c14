package debug

import (
	"io"
	"kirchhoff/equation"
	"kirchhoff/types"
)

// WriteText 以文本输出电路与方程组
func WriteText(w io.Writer, c *types.Circuit, p *equation.Problem) error {
	if _, err := io.WriteString(w, c.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, p.String())
	return err
}
