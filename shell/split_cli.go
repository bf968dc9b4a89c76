package shell

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func splitCommand(ctx *Context) Command {
	return Command{
		Name: "split",
		Help: "extract a subset of pages from a PDF file",
		Func: func(ctx *Context, args []string) error {
			flagSet := flag.NewFlagSet("split", flag.ContinueOnError)
			pages := flagSet.String("p", "", "pages to extract, e.g. \"1-3, 5, 7-9\"")
			output := flagSet.String("o", "", "output file (default: derived from input name)")

			if err := flagSet.Parse(args); err != nil {
				return err
			}

			inputs := flagSet.Args()
			if len(inputs) != 1 {
				return errors.New("split needs exactly one input file")
			}
			if *pages == "" {
				return errors.New("missing page selection, use -p \"1-3, 5\"")
			}

			if err := ctx.session.AddPaths(inputs[0]); err != nil {
				return err
			}

			fmt.Printf("extracting pages [%s]...", *pages)
			outPath, err := ctx.session.Split(*pages)
			if err != nil {
				fmt.Println(" FAILED")
				return err
			}
			fmt.Println(" OK")

			if *output != "" {
				if err := os.Rename(outPath, *output); err != nil {
					return fmt.Errorf("failed to move output: %v", err)
				}
				outPath = *output
			}
			fmt.Println("wrote", outPath)
			return nil
		},
	}
}
