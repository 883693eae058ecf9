// Package seed implements the catalog seeding CLI.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"scent-shop/internal/catalog"
	"scent-shop/internal/config"
	"scent-shop/internal/database"
	"scent-shop/internal/repository"
	"scent-shop/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	envFile string
	file    string
}

// NewRootCommand builds the seed command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Catalog seed tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "gzipped JSON-lines catalog file (S3 key suffix when S3 is enabled)")
	cmd.AddCommand(newImportCommand(opts), newValidateCommand(opts))
	return cmd
}

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Load a catalog file and create every record in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}

			snap, err := load(ctx, cfg, logger, opts.file)
			if err != nil {
				return err
			}

			pool, err := database.NewPool(ctx, cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer pool.Close()

			if err := database.Migrate(ctx, pool, logger); err != nil {
				return err
			}

			importer := catalog.NewImporter(
				service.NewProductService(repository.NewProductRepository(pool, logger), logger),
				service.NewCategoryService(repository.NewCategoryRepository(pool, logger), logger),
				logger,
			)

			res, err := importer.Import(ctx, snap)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories and %d products from %s\n",
				res.Categories, res.Products, snap.Source)
			return nil
		},
	}
}

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse a catalog file without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}

			snap, err := load(cmd.Context(), cfg, logger, opts.file)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories, %d products\n",
				snap.Source, len(snap.Categories), len(snap.Products))
			return nil
		},
	}
}

func setup(opts *options) (*config.Config, zerolog.Logger, error) {
	if strings.TrimSpace(opts.file) == "" {
		return nil, zerolog.Nop(), errors.New("--file is required")
	}
	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load env file %s: %w", opts.envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, config.NewLogger(cfg.Logger), nil
}

// load reads path through S3 with a local fallback when S3 is enabled, and
// from disk otherwise.
func load(ctx context.Context, cfg *config.Config, logger zerolog.Logger, path string) (*catalog.Snapshot, error) {
	fileLoader := catalog.NewFileLoader(logger)

	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		l, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 loader, using local file system only")
		} else {
			s3Loader = l
		}
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger).Load(ctx, path)
}
