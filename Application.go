package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PongArena/config"
	"PongArena/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		return err
	}

	settings, err := config.ReadProperties(flags)
	if err != nil {
		return err
	}

	if err := logger.Log.Init(config.ConfigDir(flags)); err != nil {
		return err
	}
	defer logger.Log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewPongGame(settings).Start(ctx)
}
