package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"
)

func splitCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "split",
		Help: "extract pages from the single file in the set\n\nUsage: split <pages>\n\nPages are 1-based, comma separated, ranges allowed: split 1-3, 5, 7-9",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing page selection, e.g. split 1-3, 5"))
				return
			}
			// "1-3, 5" arrives as two args; the parser wants one string.
			spec := strings.Join(c.Args, " ")

			c.Printf("extracting pages [%s]...", spec)
			outPath, err := ctx.session.Split(spec)
			if err != nil {
				c.Println(" FAILED")
				c.Err(err)
				return
			}
			c.Println(" OK")
			c.Println("wrote", outPath)
		},
	}
}
