package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mockstore/storefront-backend/internal/modules/catalog"
	"github.com/mockstore/storefront-backend/internal/modules/category"
	"github.com/mockstore/storefront-backend/internal/modules/recommend"
	"github.com/mockstore/storefront-backend/internal/modules/review"
	"github.com/mockstore/storefront-backend/internal/store"
)

const apiVersion = "1.0.0"

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file found, relying on environment")
	}

	// ── Store & seed data ───────────────────────────────────
	db := store.New()
	store.Seed(db)
	stats := db.Stats()
	logger.Info().
		Int("products", stats.TotalProducts).
		Int("reviews", stats.TotalReviews).
		Int("sellers", stats.TotalSellers).
		Msg("seed data loaded")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Recommendations ─────────────────────────────────────
	engine := recommend.NewEngine(db)
	recommend.NewHandler(engine, db).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogService := catalog.NewService(db, engine)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Reviews ─────────────────────────────────────────────
	reviewService := review.NewService(db)
	review.NewHandler(reviewService).RegisterRoutes(router)

	// ── Categories ──────────────────────────────────────────
	categoryService := category.NewService(db)
	category.NewHandler(categoryService).RegisterRoutes(router)

	// ── General endpoints ───────────────────────────────────
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]interface{}{
			"status":  "online",
			"message": "Storefront API is running",
			"version": apiVersion,
		})
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]interface{}{
			"status":   "healthy",
			"database": db.Stats(),
		})
	})
	if os.Getenv("APP_ENV") != "production" {
		// Demo credential listing, development only.
		router.Get("/api-keys", func(w http.ResponseWriter, r *http.Request) {
			type sellerKey struct {
				SellerID int    `json:"seller_id"`
				Seller   string `json:"seller"`
				APIKey   string `json:"api_key"`
			}
			keys := []sellerKey{}
			for sellerID, key := range db.APIKeys() {
				name := ""
				if s, ok := db.GetSeller(sellerID); ok {
					name = s.Name
				}
				keys = append(keys, sellerKey{SellerID: sellerID, Seller: name, APIKey: key})
			}
			respondJSON(w, map[string]interface{}{"api_keys": keys})
		})
	}

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("storefront API server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func respondJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}
