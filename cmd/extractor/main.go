// Package main processes photos of sticker sheets into individual stickers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/stickerbook/internal/platform/config"
	extractorcmd "github.com/louisbranch/stickerbook/internal/tools/extractor"
)

func main() {
	cfg, err := extractorcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[EXTRACTOR] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := extractorcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
