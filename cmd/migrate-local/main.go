// Command migrate-local copies the data stored in the local data directory
// for one Telegram user (or group chat) into the remote store. It runs the
// same one-shot migration the server exposes at POST /migrate.
//
// Usage:
//
//	migrate-local --telegram-id=12345 [--chat-id=-100500 --chat-type=supergroup]
//	migrate-local --list
//
// Exit codes: 0 = migrated (or listed), 1 = error, 2 = skipped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/scorekeeper-backend/internal/app"
	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
	"github.com/heartmarshall/scorekeeper-backend/internal/config"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/scoring"
)

func main() {
	telegramID := flag.Int64("telegram-id", 0, "Telegram user id that owns the migrated data")
	firstName := flag.String("first-name", "", "first name used if the user has to be registered")
	chatID := flag.Int64("chat-id", 0, "group chat id, when migrating a group context")
	chatType := flag.String("chat-type", "group", "chat type for --chat-id (group or supergroup)")
	list := flag.Bool("list", false, "list context ids found in the local data directory and exit")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	backends, err := app.OpenBackends(ctx, cfg, logger)
	if err != nil {
		logger.Error("open backends", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backends.Close()

	if *list {
		ids, err := backends.KV.Contexts()
		if err != nil {
			logger.Error("list local contexts", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	if *telegramID == 0 {
		fmt.Fprintln(os.Stderr, "Usage: migrate-local --telegram-id=ID [--chat-id=ID --chat-type=group]")
		os.Exit(1)
	}

	identity := &auth.PlatformIdentity{
		User: &auth.TelegramUser{ID: *telegramID, FirstName: *firstName},
	}
	if *chatID != 0 {
		identity.Chat = &auth.TelegramChat{ID: *chatID, Type: *chatType}
	}
	ctx = auth.WithIdentity(ctx, identity)

	ids, err := backends.Identity(logger, cfg.Identity.CacheSize)
	if err != nil {
		logger.Error("identity service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	svc := scoring.NewService(logger, ids, backends.Local, backends.Remote)

	rep := svc.MigrateWithReport(ctx)
	if !rep.Migrated {
		fmt.Printf("Migration of context %q skipped: %s.\n", auth.ResolveContext(identity).ID, rep.Skipped)
		os.Exit(2)
	}

	fmt.Printf("Context %q migrated: participants %d copied, %d failed; games %d copied, %d partial, %d skipped, %d failed.\n",
		auth.ResolveContext(identity).ID,
		rep.ParticipantsCopied, rep.ParticipantsFailed,
		rep.GamesCopied, rep.GamesPartial, rep.GamesSkipped, rep.GamesFailed,
	)
}
