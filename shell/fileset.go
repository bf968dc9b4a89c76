package shell

import (
	"errors"
	"flag"

	"github.com/abiosoft/ishell"

	"github.com/pdfdeck/pdfdeck/version"
)

func addCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "add",
		Help: "add PDF files to the set\n\nUsage: add <file.pdf> [more.pdf ...]\n\nFiles already in the set (by name) are rejected.",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing file paths"))
				return
			}
			if err := ctx.session.AddPaths(c.Args...); err != nil {
				c.Err(err)
				c.SetPrompt(ctx.prompt())
				return
			}
			if msg := ctx.session.Message(); msg != "" {
				// Soft inspection failure: the file is in, the page
				// count is not.
				c.Println("warning:", msg)
			}
			c.Printf("%d file(s) in set\n", len(ctx.session.Files()))
			c.SetPrompt(ctx.prompt())
		},
	}
}

func lsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "ls",
		Help: "list files in merge order\n\nUsage: ls [-v]\n\nOptions:\n  -v    also show the page count of every file",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
			verbose := flagSet.Bool("v", false, "show page counts")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			if *verbose {
				for i, info := range ctx.session.InspectAll() {
					if info.Err != nil {
						c.Printf("%2d  %-40s %v\n", i+1, info.Name, info.Err)
						continue
					}
					c.Printf("%2d  %-40s %d pages\n", i+1, info.Name, info.Pages)
				}
				return
			}

			for i, f := range ctx.session.Files() {
				c.Printf("%2d  %s\n", i+1, f.Name)
			}
		},
	}
}

func rmCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "rm",
		Help: "remove a file from the set\n\nUsage: rm <position|name>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: rm <position|name>"))
				return
			}
			f, err := ctx.resolveFile(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			if err := ctx.session.Remove(f.ID); err != nil {
				c.Err(err)
				return
			}
			c.Println("removed", f.Name)
			c.SetPrompt(ctx.prompt())
		},
	}
}

func mvCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "mv",
		Help: "move a file onto another file's position\n\nUsage: mv <moved> <target>\n\nBoth arguments are positions or names. Example: mv 3 1",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("usage: mv <moved> <target>"))
				return
			}
			moved, err := ctx.resolveFile(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			target, err := ctx.resolveFile(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			ctx.session.Reorder(moved.ID, target.ID)
			for i, f := range ctx.session.Files() {
				c.Printf("%2d  %s\n", i+1, f.Name)
			}
		},
	}
}

func pagesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "pages",
		Help: "show the page count of every file in the set",
		Func: func(c *ishell.Context) {
			for _, info := range ctx.session.InspectAll() {
				if info.Err != nil {
					c.Printf("%-40s %v\n", info.Name, info.Err)
					continue
				}
				c.Printf("%-40s %d pages\n", info.Name, info.Pages)
			}
		},
	}
}

func modeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "mode",
		Help: "show which operation the current set supports",
		Func: func(c *ishell.Context) {
			c.Println(ctx.session.Mode())
		},
	}
}

func statusCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "status",
		Help: "show mode, file count and leading page count",
		Func: func(c *ishell.Context) {
			c.Println("mode: ", ctx.session.Mode())
			c.Println("files:", len(ctx.session.Files()))
			if n := ctx.session.FirstPageCount(); n > 0 {
				c.Println("pages:", n)
			}
			if msg := ctx.session.Message(); msg != "" {
				c.Println("last error:", msg)
			}
		},
	}
}

func resetCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "reset",
		Help: "clear the file set and start over",
		Func: func(c *ishell.Context) {
			ctx.session.Reset()
			c.Println("cleared")
			c.SetPrompt(ctx.prompt())
		},
	}
}

func versionCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "version",
		Help: "show pdfdeck version",
		Func: func(c *ishell.Context) {
			c.Println("pdfdeck version:", version.Version)
		},
	}
}
