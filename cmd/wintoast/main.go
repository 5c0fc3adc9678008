// Package main provides the entry point for the wintoast CLI.
package main

import (
	"context"
	"os"

	"github.com/llehouerou/wintoast/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		app.PrintError(err)
		os.Exit(1)
	}
}
