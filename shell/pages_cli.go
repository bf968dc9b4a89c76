package shell

import (
	"errors"
	"fmt"
)

func pagesCommand(ctx *Context) Command {
	return Command{
		Name: "pages",
		Help: "show page counts of PDF files",
		Func: func(ctx *Context, args []string) error {
			if len(args) == 0 {
				return errors.New("missing input files")
			}

			if err := ctx.session.AddPaths(args...); err != nil {
				return err
			}

			for _, info := range ctx.session.InspectAll() {
				if info.Err != nil {
					fmt.Printf("%-40s %v\n", info.Name, info.Err)
					continue
				}
				fmt.Printf("%-40s %d pages\n", info.Name, info.Pages)
			}
			return nil
		},
	}
}
