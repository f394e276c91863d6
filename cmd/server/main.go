package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/nba-linebot/internal/commands"
	"github.com/preston-bernstein/nba-linebot/internal/config"
	"github.com/preston-bernstein/nba-linebot/internal/logging"
	"github.com/preston-bernstein/nba-linebot/internal/server"
)

const (
	appName    = "nba-linebot"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	serve := &cli.Command{
		Name:   "serve",
		Usage:  "run the LINE webhook server",
		Action: runServe,
	}

	return &cli.App{
		Name:      appName,
		Usage:     "LINE bot answering NBA stats questions",
		Version:   appVersion,
		Writer:    stdout,
		ErrWriter: stderr,
		Action:    runServe,
		Commands: []*cli.Command{
			serve,
			{
				Name:      "ask",
				Usage:     "answer one message against the configured stats provider and print the reply",
				ArgsUsage: "<message>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "provider",
						Usage: "override STATS_PROVIDER (nbastats or fixture)",
					},
				},
				Action: runAsk,
			},
		},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p := c.String("provider"); p != "" {
		cfg.Stats.Provider = p
	}
	return cfg, nil
}

func loggerConfig(cfg config.Config, out io.Writer) logging.Config {
	return logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: appName,
		Version: appVersion,
		Output:  out,
	}
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := logging.NewLogger(loggerConfig(cfg, c.App.Writer))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	srv.Run(ctx, stop)
	return nil
}

func runAsk(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("ask: missing message text")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	// Logs go to stderr so stdout carries only the reply.
	logger := logging.NewLogger(loggerConfig(cfg, c.App.ErrWriter))

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	reply := server.NewBot(cfg, logger).Respond(ctx, commands.Parse(text))
	_, err = fmt.Fprintln(c.App.Writer, reply)
	return err
}
