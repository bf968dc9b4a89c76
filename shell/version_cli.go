package shell

import (
	"fmt"

	"github.com/pdfdeck/pdfdeck/version"
)

func versionCommand(ctx *Context) Command {
	return Command{
		Name: "version",
		Help: "show pdfdeck version",
		Func: func(ctx *Context, args []string) error {
			fmt.Println("pdfdeck version:", version.Version)
			return nil
		},
	}
}
