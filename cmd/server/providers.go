package main

import (
	"context"
	"database/sql"

	"github.com/gorilla/mux"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/Ahsanulk27/collab-flow/internal/auth"
	"github.com/Ahsanulk27/collab-flow/internal/config"
	"github.com/Ahsanulk27/collab-flow/internal/handler"
	"github.com/Ahsanulk27/collab-flow/internal/hub"
	"github.com/Ahsanulk27/collab-flow/internal/repository/mongo"
	"github.com/Ahsanulk27/collab-flow/internal/repository/postgres"
)

// App is the main application container.
type App struct {
	Config *config.Config
	Hub    *hub.Hub
	Router *mux.Router
}

func providePostgresDB(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideMongoDB(ctx context.Context, cfg *config.Config) (*mongodriver.Database, func(), error) {
	db, err := mongo.NewDB(ctx, cfg.MongoURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Client().Disconnect(ctx) }
	return db, cleanup, nil
}

func provideContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}

func provideVerifier(cfg *config.Config) *auth.Verifier {
	return auth.NewVerifier(cfg.JWTSecret)
}

func provideRouter(wsHandler *handler.WebsocketHandler, chatHandler *handler.ChatHandler, authMW *handler.AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	// Realtime channel; the gate verifies the token before the upgrade.
	r.HandleFunc("/ws", wsHandler.HandleConnection).Methods("GET")

	// History endpoint behind bearer-token auth.
	api := r.PathPrefix("/workspaces").Subrouter()
	api.Use(authMW.Handler)
	api.HandleFunc("/{workspaceId}/messages", chatHandler.GetWorkspaceMessages).Methods("GET")

	return r
}
