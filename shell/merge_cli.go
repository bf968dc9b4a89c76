package shell

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

func mergeCommand(ctx *Context) Command {
	return Command{
		Name: "merge",
		Help: "merge two or more PDF files into one",
		Func: func(ctx *Context, args []string) error {
			flagSet := flag.NewFlagSet("merge", flag.ContinueOnError)
			output := flagSet.String("o", "", "output file (default: derived from input names)")

			if err := flagSet.Parse(args); err != nil {
				return err
			}

			inputs := flagSet.Args()
			if len(inputs) < 2 {
				return errors.New("merge needs at least two input files")
			}

			if err := ctx.session.AddPaths(inputs...); err != nil {
				return err
			}

			fmt.Printf("merging %d files...", len(inputs))
			res, err := ctx.session.Merge()
			if err != nil {
				fmt.Println(" FAILED")
				return err
			}
			fmt.Println(" OK")

			if len(res.Skipped) > 0 {
				fmt.Printf("skipped password protected: %s\n", strings.Join(res.Skipped, ", "))
			}

			outPath := res.OutputPath
			if *output != "" {
				if err := os.Rename(res.OutputPath, *output); err != nil {
					return fmt.Errorf("failed to move output: %v", err)
				}
				outPath = *output
			}
			fmt.Println("wrote", outPath)
			return nil
		},
	}
}
