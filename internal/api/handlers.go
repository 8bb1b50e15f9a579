// Package api exposes the curriculum catalog over HTTP. Every handler
// performs a single store operation: identifier shape is checked before
// the store is touched, missing documents become 404, and store failures
// become 500 with a human-readable detail string.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aulamath/aulamath/internal/catalog"
	"github.com/aulamath/aulamath/internal/seed"
)

// Handler carries the catalog store and seed dataset into the route
// handlers. The store handle is process-scoped, injected at startup.
type Handler struct {
	store   catalog.Store
	dataset *seed.Dataset
	dbName  string
}

// NewHandler creates the API handler set.
func NewHandler(store catalog.Store, dataset *seed.Dataset, dbName string) *Handler {
	return &Handler{store: store, dataset: dataset, dbName: dbName}
}

// Root answers the API root with a fixed banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Math Education App API"})
}

// ListGrades returns all active grades ordered by grade number.
func (h *Handler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.store.ListGrades(r.Context())
	if err != nil {
		slog.Error("list grades failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch grades")
		return
	}
	respondJSON(w, http.StatusOK, grades)
}

// GetGrade returns a single grade by id.
func (h *Handler) GetGrade(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["grade_id"]
	if !catalog.ValidID(id) {
		respondError(w, http.StatusBadRequest, "Invalid grade ID")
		return
	}

	grade, err := h.store.GetGrade(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Grade not found")
		return
	}
	if err != nil {
		slog.Error("get grade failed", "grade_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch grade")
		return
	}
	respondJSON(w, http.StatusOK, grade)
}

// ListTopics returns the active topics of a grade in display order.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	gradeID := mux.Vars(r)["grade_id"]
	if !catalog.ValidID(gradeID) {
		respondError(w, http.StatusBadRequest, "Invalid grade ID")
		return
	}

	topics, err := h.store.ListTopicsByGrade(r.Context(), gradeID)
	if err != nil {
		slog.Error("list topics failed", "grade_id", gradeID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch topics")
		return
	}
	respondJSON(w, http.StatusOK, topics)
}

// GetTopic returns a single topic by id.
func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["topic_id"]
	if !catalog.ValidID(id) {
		respondError(w, http.StatusBadRequest, "Invalid topic ID")
		return
	}

	topic, err := h.store.GetTopic(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Topic not found")
		return
	}
	if err != nil {
		slog.Error("get topic failed", "topic_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch topic")
		return
	}
	respondJSON(w, http.StatusOK, topic)
}

// ListModules returns the active modules of a topic in display order.
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	topicID := mux.Vars(r)["topic_id"]
	if !catalog.ValidID(topicID) {
		respondError(w, http.StatusBadRequest, "Invalid topic ID")
		return
	}

	modules, err := h.store.ListModulesByTopic(r.Context(), topicID)
	if err != nil {
		slog.Error("list modules failed", "topic_id", topicID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch modules")
		return
	}
	respondJSON(w, http.StatusOK, modules)
}

// GetModule returns a single module by id.
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["module_id"]
	if !catalog.ValidID(id) {
		respondError(w, http.StatusBadRequest, "Invalid module ID")
		return
	}

	module, err := h.store.GetModule(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Module not found")
		return
	}
	if err != nil {
		slog.Error("get module failed", "module_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch module")
		return
	}
	respondJSON(w, http.StatusOK, module)
}

// ListContent returns all content units of a module, in no guaranteed order.
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["module_id"]
	if !catalog.ValidID(moduleID) {
		respondError(w, http.StatusBadRequest, "Invalid module ID")
		return
	}

	content, err := h.store.ListContentByModule(r.Context(), moduleID)
	if err != nil {
		slog.Error("list content failed", "module_id", moduleID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch content")
		return
	}
	respondJSON(w, http.StatusOK, content)
}

// GetContentByType returns the single content unit of the given type
// attached to a module.
func (h *Handler) GetContentByType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	moduleID := vars["module_id"]
	contentType := vars["content_type"]

	if !catalog.ValidID(moduleID) {
		respondError(w, http.StatusBadRequest, "Invalid module ID")
		return
	}
	if !catalog.ValidContentType(contentType) {
		respondError(w, http.StatusBadRequest, "Invalid content type")
		return
	}

	content, err := h.store.GetContentByType(r.Context(), moduleID, contentType)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Content not found")
		return
	}
	if err != nil {
		slog.Error("get content failed", "module_id", moduleID, "content_type", contentType, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch content")
		return
	}
	respondJSON(w, http.StatusOK, content)
}

// createUserRequest is the accepted user-creation payload. Progress is
// stored opaquely and never interpreted.
type createUserRequest struct {
	Name         string         `json:"name"`
	CurrentGrade int            `json:"current_grade"`
	Progress     map[string]any `json:"progress"`
}

// CreateUser persists a new user record and returns it with its
// store-generated identifier.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.store.CreateUser(r.Context(), catalog.User{
		Name:         req.Name,
		CurrentGrade: req.CurrentGrade,
		Progress:     req.Progress,
	})
	if err != nil {
		slog.Error("create user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetUser returns a single user record by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["user_id"]
	if !catalog.ValidID(id) {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("get user failed", "user_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// TestDB reports store connectivity. Unlike every other endpoint, a store
// failure here is reported in-band with a 200 status.
func (h *Handler) TestDB(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.CountGrades(r.Context())
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":       "connected",
		"grades_count": count,
		"db_name":      h.dbName,
	})
}

// InitializeData resets the catalog to the reference dataset. Destructive
// and not safe to run concurrently with read traffic; intended for
// administrative use only.
func (h *Handler) InitializeData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Apply(r.Context(), h.dataset, h.store); err != nil {
		slog.Error("seeding failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Error initializing database: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Database initialized successfully with complete 7th grade content structure!",
	})
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("encoding response failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

func respondError(w http.ResponseWriter, code int, detail string) {
	respondJSON(w, code, map[string]string{"detail": detail})
}
