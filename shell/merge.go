package shell

import (
	"strings"

	"github.com/abiosoft/ishell"
)

func mergeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "merge",
		Help: "merge all files in the set, in order, into one PDF\n\nNeeds two or more files. Encrypted files are skipped; the merge\nfails only when none of the inputs can be read.",
		Func: func(c *ishell.Context) {
			c.Printf("merging %d files...", len(ctx.session.Files()))
			res, err := ctx.session.Merge()
			if err != nil {
				c.Println(" FAILED")
				c.Err(err)
				return
			}
			c.Println(" OK")

			if len(res.Skipped) > 0 {
				c.Printf("skipped password protected: %s\n", strings.Join(res.Skipped, ", "))
			}
			c.Println("wrote", res.OutputPath)
		},
	}
}
