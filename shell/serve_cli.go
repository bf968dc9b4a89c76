package shell

import (
	"flag"
	"fmt"

	"github.com/pdfdeck/pdfdeck/server"
)

func serveCommand(ctx *Context) Command {
	return Command{
		Name: "serve",
		Help: "serve the merge/split JSON API over HTTP",
		Func: func(ctx *Context, args []string) error {
			flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
			addr := flagSet.String("l", ctx.cfg.ListenAddr, "listen address")

			if err := flagSet.Parse(args); err != nil {
				return err
			}

			cfg := ctx.cfg
			cfg.ListenAddr = *addr

			fmt.Println("listening on", cfg.ListenAddr)
			return server.New(cfg).ListenAndServe()
		},
	}
}
