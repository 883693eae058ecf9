package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"scent-shop/internal/model"
)

// cancelCheckInterval is how many lines are read between context checks.
const cancelCheckInterval = 1000

type recordHeader struct {
	Kind string `json:"kind"`
}

// readSnapshot decompresses r and parses it line by line.
func readSnapshot(ctx context.Context, r io.Reader, source string) (*Snapshot, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	snap := &Snapshot{Source: source}

	scanner := bufio.NewScanner(gzipReader)
	// Product image URLs can make single lines long.
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		if lineNo%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := snap.add([]byte(line)); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", source, err)
	}

	return snap, nil
}

func (s *Snapshot) add(line []byte) error {
	var header recordHeader
	if err := json.Unmarshal(line, &header); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	switch header.Kind {
	case KindProduct:
		var p model.ProductInput
		if err := json.Unmarshal(line, &p); err != nil {
			return fmt.Errorf("invalid product: %w", err)
		}
		s.Products = append(s.Products, p)
	case KindCategory:
		var c model.CategoryInput
		if err := json.Unmarshal(line, &c); err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}
		s.Categories = append(s.Categories, c)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, header.Kind)
	}
	return nil
}
