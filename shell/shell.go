package shell

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/pdfdeck/pdfdeck/config"
	"github.com/pdfdeck/pdfdeck/fileset"
	"github.com/pdfdeck/pdfdeck/session"
	"github.com/pdfdeck/pdfdeck/version"
)

// ShellCtxt holds the state of one interactive session
type ShellCtxt struct {
	session *session.Session
}

// prompt reflects the applicable operation so the user always sees which
// action the current file set supports.
func (ctx *ShellCtxt) prompt() string {
	return fmt.Sprintf("[%s]> ", ctx.session.Mode())
}

// resolveFile turns a user argument (1-based position or display name) into
// a file in the current set.
func (ctx *ShellCtxt) resolveFile(arg string) (fileset.File, error) {
	files := ctx.session.Files()
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(files) {
			return fileset.File{}, fmt.Errorf("no file at position %d", idx)
		}
		return files[idx-1], nil
	}
	for _, f := range files {
		if f.Name == arg {
			return f, nil
		}
	}
	return fileset.File{}, fmt.Errorf("no file named %s", arg)
}

// shellCmds is the full interactive command roster.
func shellCmds(ctx *ShellCtxt) []*ishell.Cmd {
	return []*ishell.Cmd{
		addCmd(ctx),
		lsCmd(ctx),
		rmCmd(ctx),
		mvCmd(ctx),
		pagesCmd(ctx),
		modeCmd(ctx),
		statusCmd(ctx),
		resetCmd(ctx),
		mergeCmd(ctx),
		splitCmd(ctx),
		versionCmd(ctx),
	}
}

// RunShell starts the interactive shell
func RunShell(cfg config.Config) error {
	shell := ishell.New()
	ctx := &ShellCtxt{session: session.New(cfg)}

	shell.Println("pdfdeck", version.Version, "- add PDF files, then merge or split them")
	shell.SetPrompt(ctx.prompt())

	for _, cmd := range shellCmds(ctx) {
		shell.AddCmd(cmd)
	}

	shell.Run()
	return nil
}
