// Command enginecli runs the search core behind a line-oriented protocol on
// stdin/stdout, suitable for driving from a GUI or script.
package main

import (
	"os"

	"github.com/halcyonchess/engine/internal/protocol"
)

func main() {
	d := protocol.NewDriver(os.Stdout)
	d.Run(os.Stdin)
}
