// Command picacg is a small command line front end for the picacg client.
//
//	picacg [global flags] <command> [command flags]
//
// Commands: login, logout, status, profile, categories, comics, info, eps,
// search, version.
// Results are written to stdout as JSON.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
