package main

import (
	"fmt"
	"os"

	"github.com/huntlog/huntlog/cmd"
	"github.com/huntlog/huntlog/internal/buildinfo"
	"github.com/huntlog/huntlog/internal/conf"
)

func main() {
	settings := &conf.Settings{}

	rootCmd := cmd.RootCommand(settings, buildinfo.Current())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
