package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	owmstudio "github.com/kaim1005kaim/owm-studio"
	"github.com/kaim1005kaim/owm-studio/cache"
	"github.com/kaim1005kaim/owm-studio/provider"
	"github.com/kaim1005kaim/owm-studio/quota"
	"github.com/kaim1005kaim/owm-studio/ratelimit"
	"github.com/kaim1005kaim/owm-studio/storage"
	"github.com/kaim1005kaim/owm-studio/studio"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system environment variables")
	} else {
		slog.Info("Loaded .env file")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		slog.Error("GEMINI_API_KEY is not set")
		os.Exit(1)
	}
	baseURL := os.Getenv("GEMINI_BASE_URL")

	cfg := provider.NewConfig().WithAPIKey(apiKey)
	if baseURL != "" {
		cfg = cfg.WithBaseURL(baseURL)
	}
	gen := provider.NewClient(cfg)

	client, err := studio.New(gen,
		studio.WithPacer(ratelimit.NewFixedPacer(ratelimit.DefaultConfig())),
		studio.WithCache(cache.NewLRUCache(nil)),
		studio.WithQuota(quota.NewMemoryManager(nil)),
		studio.WithMetrics(studio.NewMetrics("owmstudio")),
	)
	if err != nil {
		slog.Error("Failed to build studio client", "error", err)
		os.Exit(1)
	}

	store := storage.Store(storage.NewMemoryStore())
	if os.Getenv("OWM_S3_BUCKET") != "" {
		s3store, err := storage.NewS3StoreFromEnv(context.Background())
		if err != nil {
			slog.Error("Failed to build S3 store", "error", err)
			os.Exit(1)
		}
		store = s3store
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = owmstudio.WithTenant(ctx, "example-tenant")
	ctx = owmstudio.WithRequestID(ctx, owmstudio.NewRequestID())

	// Annotate a reference image if one was provided. The file holds the
	// base64 payload, with or without a data URL prefix.
	if path := os.Getenv("REFERENCE_IMAGE_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read reference image", "path", path, "error", err)
			os.Exit(1)
		}
		ann, err := client.AnnotateImage(ctx, string(raw), "image/png")
		if err != nil {
			slog.Error("Annotation failed", "error", err)
			os.Exit(1)
		}
		pretty, _ := json.MarshalIndent(ann, "", "  ")
		slog.Info("Annotation", "result", string(pretty))
	}

	// Generate a small batch of designs
	results := client.GenerateDesigns(ctx, nil, "a relaxed two-piece linen set for early autumn", 2, &studio.GenerateOptions{AspectRatio: "3:4"})
	slog.Info("Batch finished", "requested", 2, "generated", len(results))

	for _, result := range results {
		key := "designs/" + result.ID + ".png"
		err := store.Put(ctx, storage.Object{Key: key, Data: []byte(result.Base64), ContentType: result.MIMEType})
		if err != nil {
			slog.Error("Failed to store design", "key", key, "error", err)
			continue
		}
		slog.Info("Stored design", "key", key)
	}
}
