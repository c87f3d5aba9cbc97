package transport

import (
	"net/http"

	"bandhan/services/user/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(profileHandler *handler.ProfileHandler, preferenceHandler *handler.PreferenceHandler) http.Handler {
	mux := chi.NewRouter()

	// CORS 설정
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-User-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Post("/profile", profileHandler.RegisterProfile)
	mux.Get("/profile", profileHandler.FindMyProfile)
	mux.Patch("/profile", profileHandler.UpdateProfile)
	mux.Delete("/profile", profileHandler.RetireProfile)
	mux.Get("/profile/{userId}", profileHandler.FindProfile)

	mux.Get("/preference", preferenceHandler.FindPreference)
	mux.Patch("/preference", preferenceHandler.UpdatePreference)

	return mux
}
