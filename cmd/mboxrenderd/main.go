package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/emurenMRz/mboxrender/internal/config"
	"github.com/emurenMRz/mboxrender/internal/labels"
	"github.com/emurenMRz/mboxrender/internal/mailbox"
	"github.com/emurenMRz/mboxrender/internal/render"
	"github.com/emurenMRz/mboxrender/internal/rtfhtml"
	"github.com/emurenMRz/mboxrender/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file path")
		path       = flag.String("path", "", "path to mbox files")
		addr       = flag.String("addr", "", "listen address")
		locale     = flag.String("locale", "", "label locale")
		hyperlinks = flag.Bool("hyperlinks", true, "render links in HTML output")
		strict     = flag.Bool("strict", false, "fail on empty required header fields")
		staticDir  = flag.String("static", "", "directory with the viewer assets")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "path":
			cfg.Path = *path
		case "addr":
			cfg.Addr = *addr
		case "locale":
			cfg.Locale = *locale
		case "hyperlinks":
			cfg.Hyperlinks = *hyperlinks
		case "strict":
			cfg.Strict = *strict
		case "static":
			cfg.StaticDir = *staticDir
		}
	})

	table, err := labels.Load(cfg.Locale)
	if err != nil {
		logger.Error("loading labels", "locale", cfg.Locale, "error", err)
		os.Exit(1)
	}

	srv := server.New(server.Options{
		Store:  mailbox.NewStore(cfg.Path),
		Labels: table,
		Renderer: render.New(table,
			render.WithConverter(rtfhtml.Converter{}),
			render.WithHyperlinks(cfg.Hyperlinks),
			render.WithStrict(cfg.Strict),
		),
		Logger:    logger,
		StaticDir: cfg.StaticDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("listening", "addr", cfg.Addr, "path", cfg.Path, "locale", table.Tag().String())
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		logger.Error("serving", "error", err)
		os.Exit(1)
	}
}
