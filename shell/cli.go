package shell

import (
	"fmt"
	"sort"

	"github.com/pdfdeck/pdfdeck/config"
	"github.com/pdfdeck/pdfdeck/session"
)

// Command represents a CLI command
type Command struct {
	Name string
	Help string
	Func func(ctx *Context, args []string) error
}

// Context holds the execution context for commands
type Context struct {
	cfg     config.Config
	session *session.Session
}

// RunCLI executes one-shot CLI commands without the interactive shell
func RunCLI(cfg config.Config, args []string) error {
	ctx := &Context{
		cfg:     cfg,
		session: session.New(cfg),
	}

	// Register all commands
	commands := make(map[string]Command)
	registerCommand(commands, mergeCommand(ctx))
	registerCommand(commands, splitCommand(ctx))
	registerCommand(commands, pagesCommand(ctx))
	registerCommand(commands, serveCommand(ctx))
	registerCommand(commands, versionCommand(ctx))

	if len(args) == 0 {
		printUsage(commands)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		return fmt.Errorf("unknown command: %s\n\nRun 'pdfdeck' without arguments for the interactive shell", cmdName)
	}

	return cmd.Func(ctx, args[1:])
}

func registerCommand(commands map[string]Command, cmd Command) {
	commands[cmd.Name] = cmd
}

func printUsage(commands map[string]Command) {
	fmt.Println("pdfdeck - merge and split PDF files")
	fmt.Println("\nUsage: pdfdeck <command> [options]")
	fmt.Println("\nAvailable commands:")

	// Sort commands alphabetically
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-12s %s\n", name, cmd.Help)
	}

	fmt.Println("\nFor command-specific help, use: pdfdeck <command> -h")
}
