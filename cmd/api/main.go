package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"newsportal/cmd/app"
	"newsportal/internal/config"
	handlers "newsportal/internal/handler"
	"newsportal/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET и REFRESH_TOKEN_SECRET должны быть установлены в .env файле")
	}

	db, store, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()
	newsCache := middleware.ResponseCache(store, cfg.Cache.TTL)

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	auth := router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", handler.Refresh).Methods(http.MethodPost)
	auth.Handle("/logout", middleware.RequireAuth(http.HandlerFunc(handler.Logout))).Methods(http.MethodPost)
	auth.Handle("/profile", middleware.RequireAuth(http.HandlerFunc(handler.Profile))).Methods(http.MethodGet)

	router.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	router.Handle("/users/{id}", middleware.RequireAuth(http.HandlerFunc(handler.UpdateUser))).Methods(http.MethodPut)
	router.Handle("/users/{id}", middleware.RequireAuth(http.HandlerFunc(handler.DeleteUser))).Methods(http.MethodDelete)

	router.Handle("/news", newsCache(http.HandlerFunc(handler.GetNewsList))).Methods(http.MethodGet)
	router.Handle("/news", middleware.RequireAuth(http.HandlerFunc(handler.CreateNews))).Methods(http.MethodPost)
	router.Handle("/news/{id}", newsCache(http.HandlerFunc(handler.GetNewsItem))).Methods(http.MethodGet)
	router.Handle("/news/{id}", middleware.RequireAuth(http.HandlerFunc(handler.UpdateNews))).Methods(http.MethodPatch)
	router.Handle("/news/{id}", middleware.RequireAuth(http.HandlerFunc(handler.DeleteNews))).Methods(http.MethodDelete)
	router.Handle("/news/{id}/comments", middleware.RequireAuth(http.HandlerFunc(handler.AddComment))).Methods(http.MethodPost)
	router.Handle("/news/{id}/comments/{cid}", middleware.RequireAuth(http.HandlerFunc(handler.RemoveComment))).Methods(http.MethodDelete)
	router.Handle("/news/{id}/images", middleware.RequireAuth(http.HandlerFunc(handler.AttachImage))).Methods(http.MethodPost)
	router.Handle("/news/{id}/images/{imageId}", middleware.RequireAuth(http.HandlerFunc(handler.RemoveImage))).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.Identity(services.Auth),
		middleware.CORS(cfg),
		middleware.Logging,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
