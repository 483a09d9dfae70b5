package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"art-quiz-service/internal/app"
	"art-quiz-service/internal/domain"
	"art-quiz-service/internal/export"
	"art-quiz-service/internal/infra/memory"
	infraredis "art-quiz-service/internal/infra/redis"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewExportCmd dumps the filtered submission list to a CSV file without
// starting the server. Same pipeline as the dashboard download.
func NewExportCmd(configPath *string) *cobra.Command {
	var school, class, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored submissions to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), *configPath, school, class, outDir)
		},
	}
	cmd.Flags().StringVar(&school, "school", domain.FilterAll, "filter by school")
	cmd.Flags().StringVar(&class, "class", domain.FilterAll, "filter by class")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory to write the file into")
	return cmd
}

func runExport(ctx context.Context, configPath, school, class, outDir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Redis.Addr == "" {
		return fmt.Errorf("export needs a configured redis store; the in-memory store holds nothing between runs")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := infraredis.NewSubmissionStore(client, cfg.StorageKey())
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(builtinCatalog()), time.Minute)
	service := app.NewQuizService(store, catalogs, CatalogID, passphraseFromConfig(cfg))

	filename, payload, err := service.ExportCSV(ctx, domain.Filter{School: school, ClassName: class})
	if err != nil {
		return err
	}

	sink := export.DirSink{Dir: outDir}
	if err := sink.Save(filename, payload); err != nil {
		return err
	}
	fmt.Println(filepath.Join(outDir, filename))
	return nil
}
