// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat
//
// main.go — segfeat command-line entry point.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/segfeat/cmd/segfeat/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
