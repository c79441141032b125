package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	OldFile    string
	NewFile    string
	ConfigFile string
	Mode       string
	OutputFile string
}

func ParseFlags() AppFlags {
	oldFile := flag.String("old", "", "Path to the first (old) HTML document.")
	newFile := flag.String("new", "", "Path to the second (new) HTML document.")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	modeFlag := flag.String("mode", "", "Comparison mode: mutual or target (overrides config file if set)")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	outputFile := flag.String("output", "", "Report file name written under the configured output directory.")
	outputFileAlias := flag.String("o", "", "Alias for -output")

	flag.Parse()

	flags := AppFlags{
		OldFile: *oldFile,
		NewFile: *newFile,
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if flags.OldFile == "" || flags.NewFile == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] both -old and -new arguments are required")
		os.Exit(1)
	}

	return flags
}
