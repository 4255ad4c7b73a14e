package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"motodesign/internal/catalog"
	"motodesign/pkg/config"
	"motodesign/pkg/models"
)

func main() {
	var (
		out      = flag.String("out", "data/inventory.csv", "output CSV path")
		proxyURL = flag.String("proxy", "http://localhost:8080/api/bikes", "proxy endpoint to fetch through")
	)
	flag.Parse()

	_ = godotenv.Load()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen}))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := catalog.NewClient(*proxyURL, config.LoadAPI())

	collection, err := client.FetchCollection(ctx)
	if err != nil {
		log.Error("fetch collection failed", "err", err)
		os.Exit(1)
	}

	if err := writeInventory(*out, collection); err != nil {
		log.Error("export failed", "err", err)
		os.Exit(1)
	}

	log.Info("inventory exported", "path", *out, "records", len(collection))
}

func writeInventory(outPath string, collection []models.Record) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "brand", "model", "category", "condition",
		"year", "price", "mileage_km", "engine_cc", "color",
		"featured", "available", "created_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range collection {
		created := ""
		if r.CreatedAt != nil {
			created = r.CreatedAt.Format(time.RFC3339)
		}

		row := []string{
			r.ID,
			r.Brand,
			r.Model,
			r.Category,
			r.Condition,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Price),
			strconv.Itoa(r.MileageKm),
			strconv.Itoa(r.EngineCc),
			r.Color,
			strconv.FormatBool(r.Featured),
			strconv.FormatBool(r.Available),
			created,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
