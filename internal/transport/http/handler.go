package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"art-quiz-service/internal/app"
	"art-quiz-service/internal/domain"
)

// Handler exposes the student and teacher REST surface. Teacher endpoints
// are gated by the shared passphrase carried in the X-Teacher-Key header.
type Handler struct {
	service *app.QuizService
}

func NewHandler(service *app.QuizService) *Handler {
	return &Handler{service: service}
}

// Register mounts all routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/questions", h.questions)
	mux.HandleFunc("GET /api/classes", h.classes)
	mux.HandleFunc("POST /api/submissions", h.submit)
	mux.HandleFunc("POST /api/teacher/login", h.login)
	mux.HandleFunc("GET /api/teacher/submissions", h.teacherSubmissions)
	mux.HandleFunc("GET /api/teacher/export", h.teacherExport)
}

type submitRequest struct {
	Student domain.StudentInfo `json:"student"`
	Answers map[int]*string    `json:"answers"`
}

type loginRequest struct {
	Passphrase string `json:"passphrase"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) questions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.Questions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// classes reports the class names selectable under a school filter, plus the
// school roster, so the identification form and the teacher filters stay in
// sync with the server-side validation.
func (h *Handler) classes(w http.ResponseWriter, r *http.Request) {
	school := r.URL.Query().Get("school")
	if school == "" {
		school = domain.FilterAll
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"schools": domain.Schools,
		"classes": app.AvailableClasses(school),
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid submission payload"})
		return
	}
	sub, err := h.service.Submit(r.Context(), req.Student, req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid login payload"})
		return
	}
	if err := h.service.Authenticate(req.Passphrase); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) teacherSubmissions(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Submissions(r.Context(), filterFromQuery(r)))
}

// teacherExport streams the filtered view as a spreadsheet download. An
// empty view is refused with a notice instead of producing an empty file.
func (h *Handler) teacherExport(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}
	filename, payload, err := h.service.ExportCSV(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write([]byte(payload))
}

func (h *Handler) authorized(w http.ResponseWriter, r *http.Request) bool {
	if err := h.service.Authenticate(r.Header.Get("X-Teacher-Key")); err != nil {
		writeError(w, err)
		return false
	}
	return true
}

func filterFromQuery(r *http.Request) domain.Filter {
	return domain.Filter{
		School:    r.URL.Query().Get("school"),
		ClassName: r.URL.Query().Get("class"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrWrongPassphrase):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNoSubmissions):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrCatalogNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
