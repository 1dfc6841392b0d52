package main

import (
	"context"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/brettbedarf/fssim"
	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/internal/util"
	"github.com/brettbedarf/fssim/shell"
	"go.uber.org/fx"
)

type CLI struct {
	Config   string `help:"Path to a YAML or JSON config override file." short:"c" type:"existingfile"`
	Verbose  int    `help:"Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn)." short:"v"`
	NoBanner bool   `help:"Skip the banner and command list on startup."`
}

// overrides builds the config override from the config file, if any, with
// command line flags taking precedence
func (c *CLI) overrides() (*config.ConfigOverride, error) {
	override := &config.ConfigOverride{}
	if c.Config != "" {
		var err error
		if override, err = config.LoadConfigOverrideFile(c.Config); err != nil {
			return nil, err
		}
	}
	if c.Verbose > 0 {
		override.LogLvl = util.Pointer(c.Verbose)
	}
	if c.NoBanner {
		override.Banner = util.Pointer(false)
	}
	return override, nil
}

func main() {
	cli := new(CLI)
	kctx := kong.Parse(
		cli,
		kong.Name("fssim"),
		kong.Description("In-memory file system simulator shell"),
	)

	override, err := cli.overrides()
	kctx.FatalIfErrorf(err)
	cfg := config.NewConfig(override)

	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Str("config", cli.Config).Msg("Invalid config")
	}
	logger.Info().Str("config", cli.Config).Str("root", cfg.RootName).Msg("fssim initializing")

	var session *shell.Session
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(newSession),
		fx.Invoke(registerTeardown),
		fx.Populate(&session),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start")
	}

	runErr := session.Run()
	if runErr != nil {
		logger.Error().Err(runErr).Msg("Session ended with error")
	}

	// Tears the tree down through the OnStop hook
	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to stop cleanly")
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func newSession(cfg *config.Config) *shell.Session {
	return fssim.New(cfg, os.Stdin, os.Stdout)
}

func registerTeardown(lc fx.Lifecycle, s *shell.Session) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return s.Close()
		},
	})
}
