package main

import (
	"fmt"
	"os"

	"github.com/ogier/pflag"

	"github.com/pdfdeck/pdfdeck/config"
	"github.com/pdfdeck/pdfdeck/shell"
	"github.com/pdfdeck/pdfdeck/version"
)

func main() {
	configPath := pflag.StringP("config", "c", config.Path(), "config file")
	outputDir := pflag.StringP("output-dir", "o", "", "directory for merge/split results")
	ignoreEnc := pflag.BoolP("ignore-encryption", "k", false, "accept owner-locked documents instead of rejecting them")
	showVersion := pflag.Bool("version", false, "print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags the user actually passed beat the config file, in both
	// directions (-k=false turns the setting off again).
	var overrides config.Overrides
	pflag.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "output-dir":
			overrides.OutputDir = outputDir
		case "ignore-encryption":
			overrides.IgnoreEncryption = ignoreEnc
		}
	})
	cfg = overrides.Apply(cfg)

	args := pflag.Args()
	if len(args) == 0 {
		if err := shell.RunShell(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := shell.RunCLI(cfg, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
