package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/stickerbook/internal/platform/config"
	"github.com/louisbranch/stickerbook/internal/tools/importer"
)

func main() {
	cfg, err := importer.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := importer.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
