// main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Clean1ines/hot100/pkg/cli"
)

func main() {
	// Ctrl+C прерывает текущий поиск; уже разрешенные песни остаются в кэше.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
