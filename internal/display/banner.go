package display

import (
	"fmt"
	"io"

	"github.com/backmassage/clipshrink/internal/term"
)

const banner = `      _ _           _          _       _
  ___| (_)_ __  ___| |__  _ __(_)_ __ | | __
 / __| | | '_ \/ __| '_ \| '__| | '_ \| |/ /
| (__| | | |_) \__ \ | | | |  | | | | |   <
 \___|_|_| .__/|___/_| |_|_|  |_|_| |_|_|\_\
         |_|
`

// PrintBanner writes the ASCII banner to w, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Active.Banner, banner))
}
