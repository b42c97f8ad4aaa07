package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"monstersim/internal/combat"
	"monstersim/internal/config"
	"monstersim/internal/logging"
	"monstersim/internal/random"
	"monstersim/internal/shell"
)

func main() {
	fs := flag.NewFlagSet("monstersim", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: monstersim <config_file_path> [seed|debug]")
		fs.PrintDefaults()
	}
	settings, err := config.ParseSettings(fs, os.Args[1:])
	if err != nil {
		fs.Usage()
		logging.Fatal("invalid arguments", err, nil)
	}

	raw, err := os.ReadFile(settings.ConfigPath)
	if err != nil {
		logging.Fatal("read config", err, logging.Fields{"path": settings.ConfigPath})
	}
	os.Stdout.Write(raw)

	cat, dropped, err := combat.LoadCatalog(settings.ConfigPath)
	for _, d := range dropped {
		logging.Info("dropped declaration", logging.Fields{"path": settings.ConfigPath, "reason": d.Error()})
	}
	if err != nil {
		fmt.Println("Error: Invalid or empty configuration file.")
		logging.Fatal("load catalog", err, logging.Fields{"path": settings.ConfigPath})
	}
	fmt.Println()
	fmt.Printf("Loaded %d actions, %d monsters.\n", len(cat.Actions()), len(cat.Monsters()))

	mode := random.ModeSeeded
	if settings.Debug {
		mode = random.ModeInteractive
		fmt.Println("Debug mode enabled")
	}
	in := bufio.NewScanner(os.Stdin)
	src := random.New(mode, settings.Seed, in, os.Stdout)
	logging.Info("shell started", logging.Fields{"mode": mode.String(), "seed": settings.Seed})

	if err := shell.New(cat, src, in, os.Stdout).Run(); err != nil && !errors.Is(err, random.ErrInputClosed) {
		logging.Error("read commands", err, nil)
		os.Exit(1)
	}
}
