// main.go
package main

import (
	"embed"
	"errors"
	"log"
	"os"

	"github.com/spf13/pflag"

	"coinshower/config"
	"coinshower/logging"
)

//go:embed assets/*
var assets embed.FS

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	logFile, err := logging.Init(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.ConfigFile != "" {
		logging.Log.Printf("using config %s", cfg.ConfigFile)
	}

	if err := NewGame(cfg).Run(); err != nil {
		logging.Log.Fatal(err)
	}
}
