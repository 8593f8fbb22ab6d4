// main is the entry point for the repo-doctor CLI.
package main

import (
	"github.com/consigcody94/repo-doctor/cmd"
	"github.com/consigcody94/repo-doctor/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
