package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/podmark/internal/cli"
	"github.com/patrickprogramme/podmark/internal/config"
	"github.com/patrickprogramme/podmark/internal/ui"
)

func main() {
	// .env optionnel : les PODMARK_* qu'il définit surchargent la config
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("warning: %v", err)
	}

	// déterminer binDir
	binDir := "."
	if exePath, err := os.Executable(); err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	deps := &cli.Dependencies{BinDir: binDir, UI: tui}

	if err := cli.NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		tui.PrintError(ctx, err.Error())
		stop()
		os.Exit(1)
	}
}
