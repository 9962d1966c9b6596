package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"restaurant-crm/internal/handler/middleware"
	"restaurant-crm/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
)

const schemaFile = "file://internal/infra/db/schema/schema.sql"

// migrate diffs the live database against schema.sql with the atlas CLI and applies the plan.
// The server applies the same DDL idempotently at startup; this tool is for reviewing changes first.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	devURL := flag.String("dev-url", envOr("ATLAS_DEV_URL", "docker://postgres/17/dev?search_path=public"), "atlas dev database")
	atlasBin := flag.String("atlas", envOr("ATLAS_BIN", "atlas"), "path to the atlas binary")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("atlas クライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          schemaFile,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("スキーマの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("pending", "stmt", stmt)
	}
	logger.Info("スキーマを適用しました",
		"dry_run", *dryRun,
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
