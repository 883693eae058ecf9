package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSampleCatalog writes data/catalog/sample.jsonl.gz for local seeding:
//
//	go run scripts/generate_sample_catalog.go
//	go run ./cmd/seed import --file data/catalog/sample.jsonl.gz
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	records := []map[string]interface{}{
		{"kind": "category", "id": "floral", "category_name": "Floral"},
		{"kind": "category", "id": "woody", "category_name": "Woody"},
		{"kind": "category", "id": "citrus", "category_name": "Citrus"},
		{"kind": "product", "id": "rose-edp", "category": "floral", "title": "Rose Eau de Parfum",
			"image": "https://example.com/img/rose.jpg", "is_enabled": 1, "origin_price": "1800", "price": "1500", "unit": "bottle"},
		{"kind": "product", "id": "jasmine-edt", "category": "floral", "title": "Jasmine Eau de Toilette",
			"image": "https://example.com/img/jasmine.jpg", "is_enabled": 1, "origin_price": "1200", "price": "990", "unit": "bottle"},
		{"kind": "product", "id": "cedar-oil", "category": "woody", "title": "Cedar Essential Oil",
			"image": "https://example.com/img/cedar.jpg", "is_enabled": 1, "origin_price": "650", "price": "650", "unit": "vial"},
		{"kind": "product", "id": "sandal-candle", "category": "woody", "title": "Sandalwood Candle",
			"image": "https://example.com/img/sandal.jpg", "is_enabled": 0, "origin_price": "880", "price": "720", "unit": "piece"},
		{"kind": "product", "id": "yuzu-mist", "category": "citrus", "title": "Yuzu Body Mist",
			"image": "https://example.com/img/yuzu.jpg", "is_enabled": 1, "origin_price": "560", "price": "480", "unit": "bottle"},
	}

	filePath := filepath.Join(dataDir, "sample.jsonl.gz")
	if err := createCatalogFile(filePath, records); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d records\n", filePath, len(records))
}

// createCatalogFile writes one JSON object per line into a gzipped file.
func createCatalogFile(filePath string, records []map[string]interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	enc := json.NewEncoder(gzipWriter)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}
