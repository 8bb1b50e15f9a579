package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP surface: all routes under the /api prefix,
// wrapped in the permissive CORS middleware.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", h.Root).Methods(http.MethodGet)

	api.HandleFunc("/grades", h.ListGrades).Methods(http.MethodGet)
	api.HandleFunc("/grades/{grade_id}", h.GetGrade).Methods(http.MethodGet)
	api.HandleFunc("/grades/{grade_id}/topics", h.ListTopics).Methods(http.MethodGet)

	api.HandleFunc("/topics/{topic_id}", h.GetTopic).Methods(http.MethodGet)
	api.HandleFunc("/topics/{topic_id}/modules", h.ListModules).Methods(http.MethodGet)

	api.HandleFunc("/modules/{module_id}", h.GetModule).Methods(http.MethodGet)
	api.HandleFunc("/modules/{module_id}/content", h.ListContent).Methods(http.MethodGet)
	api.HandleFunc("/modules/{module_id}/content/{content_type}", h.GetContentByType).Methods(http.MethodGet)

	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}", h.GetUser).Methods(http.MethodGet)

	api.HandleFunc("/test-db", h.TestDB).Methods(http.MethodGet)
	api.HandleFunc("/initialize-data", h.InitializeData).Methods(http.MethodPost)

	return CORS(r)
}
