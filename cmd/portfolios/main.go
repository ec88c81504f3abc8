package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/five82/portfolios/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	logPath := flag.String("log", "", "override log file path (optional)")
	forceMobile := flag.Bool("mobile", false, "use the single-app layout regardless of width")
	flag.Parse()

	// A .env file may set PORTFOLIOS_LOG_LEVEL; its absence is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogPath:    *logPath,
		Mobile:     *forceMobile,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "portfolios: %v\n", err)
		return 1
	}
	return 0
}
