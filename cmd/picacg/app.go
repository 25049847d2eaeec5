package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/picacg/config"
	"github.com/kbukum/picacg/encryption"
	apperrors "github.com/kbukum/picacg/errors"
	"github.com/kbukum/picacg/logger"
	"github.com/kbukum/picacg/observability"
	"github.com/kbukum/picacg/picacg"
	"github.com/kbukum/picacg/version"
)

const (
	appName       = "picacg"
	passphraseEnv = "PICACG_PASSPHRASE"
)

// fileConfig is the layout of config.yml.
type fileConfig struct {
	picacg.Config `mapstructure:",squash"`

	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

type app struct {
	client *picacg.Client
	store  *config.Store
	log    *logger.Logger
	out    io.Writer
}

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":      {"login --email E --password P", cmdLogin},
	"logout":     {"logout", cmdLogout},
	"status":     {"status", cmdStatus},
	"profile":    {"profile", cmdProfile},
	"categories": {"categories", cmdCategories},
	"comics":     {"comics [-c category] [-t tag] [-s sort] [--page N]", cmdComics},
	"info":       {"info <comic-id>", cmdInfo},
	"eps":        {"eps [--page N] <comic-id>", cmdEpisodes},
	"search":     {"search [-s sort] [--page N] <keyword>", cmdSearch},
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "config file (default: searched)")
	dataDir := fs.String("data-dir", "", "directory of the settings file")
	passphrase := fs.String("passphrase", "", "encrypts the stored token (default $"+passphraseEnv+")")
	verbose := fs.BoolP("verbose", "v", false, "debug logging")
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *passphrase == "" {
		*passphrase = os.Getenv(passphraseEnv)
	}
	if fs.NArg() == 0 {
		usage(fs, stderr)
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]

	if name == "version" {
		return exit(stderr, writeJSON(stdout, version.Get()))
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		usage(fs, stderr)
		return 2
	}

	var fc fileConfig
	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if err := config.LoadConfig(appName, &fc, opts...); err != nil {
		return exit(stderr, err)
	}
	cfg := fc.Config
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.ApplyDefaults()

	a, err := newApp(ctx, cfg, *passphrase, stdout)
	if err != nil {
		return exit(stderr, err)
	}
	shutdown, err := observability.Setup(ctx, fc.Telemetry, appName, version.Get().Version, a.log)
	if err != nil {
		return exit(stderr, err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.log.WithError(err).Warn("telemetry shutdown failed")
		}
	}()
	if err := cmd.run(ctx, a, rest); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stderr, "usage: %s %s\n", appName, cmd.usage)
			return 2
		}
		return exit(stderr, err)
	}
	return 0
}

func newApp(ctx context.Context, cfg picacg.Config, passphrase string, out io.Writer) (*app, error) {
	log := logger.New(&cfg.Logging, appName)

	storeOpts := []config.StoreOption{config.WithStoreLogger(log)}
	if passphrase != "" {
		enc, err := encryption.New(passphrase)
		if err != nil {
			return nil, err
		}
		storeOpts = append(storeOpts, config.WithEncryptor(enc))
	}
	store := config.NewStore(cfg.DataDir, storeOpts...)

	client, err := picacg.New(cfg, picacg.WithLogger(log))
	if err != nil {
		return nil, err
	}
	settings, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	client.RestoreSession(settings)

	return &app{client: client, store: store, log: log, out: out}, nil
}

// persist writes the session of the client back to the settings file.
func (a *app) persist(ctx context.Context) error {
	s := a.client.Settings()
	_, err := a.store.Update(ctx, func(cur *config.Settings) {
		cur.UserData.Token = s.UserData.Token
	})
	return err
}

// exit reports err on stderr as a JSON error report.
func exit(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	report := apperrors.From(err).ToReport()
	if werr := writeJSON(stderr, map[string]any{"error": report}); werr != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return apperrors.SerializeJSON("Failed to write output", err)
	}
	return nil
}

func usage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "usage: %s [flags] <command> [args]\n\ncommands:\n", appName)
	names := []string{"login", "logout", "status", "profile", "categories", "comics", "info", "eps", "search"}
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", commands[n].usage)
	}
	fmt.Fprintf(w, "  version\n\nflags:\n")
	fs.PrintDefaults()
}

// subFlags builds the flag set of a subcommand. Its output is discarded;
// usage is reported by run.
func subFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
