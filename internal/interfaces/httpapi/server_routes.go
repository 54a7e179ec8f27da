package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/metrics", handler.ListMetrics)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/seasons", handler.ListPlayerSeasons)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sessions", handler.CreateSession)
	mux.HandleFunc("GET /v1/sessions/{sessionID}", handler.GetSession)
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}", handler.DeleteSession)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/selections", handler.AddSelection)
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}/selections/{index}", handler.RemoveSelection)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/selections/{index}/season", handler.ChangeSelectionSeason)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/analysis", handler.RunAnalysis)
	mux.HandleFunc("GET /v1/sessions/{sessionID}/analysis/chart", handler.RenderAnalysisChart)
	mux.HandleFunc("GET /v1/sessions/{sessionID}/analysis/export", handler.ExportAnalysis)
}
