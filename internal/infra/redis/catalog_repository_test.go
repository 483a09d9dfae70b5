package redis

import (
	"context"
	"testing"
	"time"

	"art-quiz-service/internal/domain"
	"art-quiz-service/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
)

func TestCatalogRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		CatalogLoader: memory.NewStaticCatalogLoader(map[string]domain.Catalog{
			"catalog-1": sampleCatalog(),
		}),
	}
	repo := NewCatalogRepository(client, loader, time.Minute)

	catalog, err := repo.GetCatalog(context.Background(), "catalog-1")
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if len(catalog.Questions) != 1 || catalog.Questions[0].Text == "" {
		t.Fatalf("expected full catalog with prompts, got %+v", catalog)
	}

	// Second call should hit cache, loader not incremented, prompts intact.
	cached, _ := repo.GetCatalog(context.Background(), "catalog-1")
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if cached.Questions[0].Text != catalog.Questions[0].Text {
		t.Fatalf("cached catalog lost question text: %+v", cached)
	}
}

type countingLoader struct {
	memory.CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx, catalogID)
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		ID: "catalog-1",
		Questions: []domain.QuizQuestion{
			{
				ID:   1,
				Text: "Qual é o tema central do documentário?",
				Options: []domain.QuestionOption{
					{ID: "a", Text: "A poluição"},
					{ID: "b", Text: "O apagamento dos grafites"},
				},
				CorrectAnswerID: "b",
			},
		},
	}
}
