package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"art-quiz-service/internal/app"
	"art-quiz-service/internal/domain"
	"art-quiz-service/internal/infra/memory"
)

const testPassphrase = "segredo"

func TestQuestionsEndpointHidesAnswers(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	res, err := http.Get(server.URL + "/api/questions")
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var questions []domain.QuizQuestion
	if err := json.NewDecoder(res.Body).Decode(&questions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.CorrectAnswerID != "" {
			t.Fatalf("question %d leaks correct answer", q.ID)
		}
	}
}

func TestSubmitAndTeacherFlow(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	// Student submits: one correct, one wrong.
	status, body := postJSON(t, server.URL+"/api/submissions", map[string]any{
		"student": map[string]string{
			"name":      "Ana Souza",
			"school":    "EE Milton Santos",
			"className": "9º Ano A",
		},
		"answers": map[string]any{"1": "b", "2": "a"},
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}
	var sub domain.Submission
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		t.Fatalf("decode submission: %v", err)
	}
	if sub.Score != 10 || sub.TotalQuestions != 2 {
		t.Fatalf("expected score 10 of 2 questions, got %+v", sub)
	}

	// Teacher without the key is rejected.
	res, err := http.Get(server.URL + "/api/teacher/submissions")
	if err != nil {
		t.Fatalf("get submissions: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", res.StatusCode)
	}

	// Teacher with the key sees the submission.
	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/teacher/submissions?school=EE+Milton+Santos", nil)
	req.Header.Set("X-Teacher-Key", testPassphrase)
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("teacher submissions: %v", err)
	}
	defer res.Body.Close()
	var listed []domain.Submission
	if err := json.NewDecoder(res.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].StudentName != "Ana Souza" {
		t.Fatalf("expected Ana's submission listed, got %+v", listed)
	}
}

func TestLoginEndpoint(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	status, body := postJSON(t, server.URL+"/api/teacher/login", map[string]string{"passphrase": "errada"})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong passphrase, got %d: %s", status, body)
	}

	status, _ = postJSON(t, server.URL+"/api/teacher/login", map[string]string{"passphrase": testPassphrase})
	if status != http.StatusOK {
		t.Fatalf("expected 200 for right passphrase, got %d", status)
	}
}

func TestExportDownload(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	// Empty store refuses the export with a notice.
	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/teacher/export", nil)
	req.Header.Set("X-Teacher-Key", testPassphrase)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for empty export, got %d", res.StatusCode)
	}

	postJSON(t, server.URL+"/api/submissions", map[string]any{
		"student": map[string]string{"name": "Ana", "school": "EE Milton Santos", "className": "9º Ano A"},
		"answers": map[string]any{"1": "b"},
	})

	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("export 2: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if cd := res.Header.Get("Content-Disposition"); !strings.Contains(cd, "notas_quiz_artes.csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(buf.String(), "Ana") {
		t.Fatalf("expected Ana in CSV, got %q", buf.String())
	}
}

func TestClassesEndpoint(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	res, err := http.Get(server.URL + "/api/classes?school=EE+Milton+Santos")
	if err != nil {
		t.Fatalf("get classes: %v", err)
	}
	defer res.Body.Close()
	var payload struct {
		Schools []string `json:"schools"`
		Classes []string `json:"classes"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Schools) != len(domain.Schools) {
		t.Fatalf("expected full roster, got %v", payload.Schools)
	}
	if len(payload.Classes) != 2 {
		t.Fatalf("expected 2 classes for school, got %v", payload.Classes)
	}
}

func postJSON(t *testing.T, url string, v any) (int, string) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer res.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, buf.String()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	service := newTestService()
	handler := NewHandler(service)
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("/ws/teacher", wsHandler.ServeWS)
	return httptest.NewServer(mux)
}

func newTestService() *app.QuizService {
	store := memory.NewSubmissionStore()
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(map[string]domain.Catalog{
		"catalog-1": sampleCatalog(),
	}), time.Minute)
	return app.NewQuizService(store, catalogs, "catalog-1", testPassphrase)
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		ID: "catalog-1",
		Questions: []domain.QuizQuestion{
			{
				ID:   1,
				Text: "Em qual cidade se passa o documentário?",
				Options: []domain.QuestionOption{
					{ID: "a", Text: "Rio de Janeiro"},
					{ID: "b", Text: "São Paulo"},
				},
				CorrectAnswerID: "b",
			},
			{
				ID:   2,
				Text: "Que cor cobre os murais?",
				Options: []domain.QuestionOption{
					{ID: "a", Text: "Branco"},
					{ID: "b", Text: "Cinza"},
				},
				CorrectAnswerID: "b",
			},
		},
	}
}
