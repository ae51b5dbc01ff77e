package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/client"
	"github.com/SscSPs/sya_logistica/internal/platform/config"
	"github.com/spf13/pflag"
)

const usage = `usage: sya_desktop <command> [flags]

commands:
  download    save the requirements ledger into the download directory
  materiales  print the materials catalog
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	fs := pflag.NewFlagSet(command, pflag.ExitOnError)
	config.RegisterDesktopFlags(fs)
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.LoadDesktopConfig(fs)
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	c := client.New(cfg.ServerURL, cfg.RequestTimeout)
	ctx := context.Background()

	switch command {
	case "download":
		err = download(ctx, c, cfg.DownloadDir)
	case "materiales":
		err = listMaterials(ctx, c)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConnectivity):
			logger.Error("Could not reach the server, try again", slog.String("server_url", cfg.ServerURL), slog.String("error", err.Error()))
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Error("The server has no materials catalog configured", slog.String("error", err.Error()))
		default:
			logger.Error("The server failed to process the request", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}

func download(ctx context.Context, c *client.Client, dir string) error {
	path, err := c.DownloadLedger(ctx, dir, time.Now())
	if err != nil {
		return err
	}
	slog.Info("Ledger downloaded", slog.String("path", path))
	fmt.Println(path)
	return nil
}

func listMaterials(ctx context.Context, c *client.Client) error {
	materials, err := c.ListMaterials(ctx)
	if err != nil {
		return err
	}
	for _, m := range materials {
		fmt.Printf("%s\t%s\n", m.Material, m.Unidad)
	}
	slog.Info("Materials listed", slog.Int("count", len(materials)))
	return nil
}
