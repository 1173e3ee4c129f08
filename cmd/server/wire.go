//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Ahsanulk27/collab-flow/internal/config"
	"github.com/Ahsanulk27/collab-flow/internal/handler"
	"github.com/Ahsanulk27/collab-flow/internal/hub"
	"github.com/Ahsanulk27/collab-flow/internal/repository/mongo"
	"github.com/Ahsanulk27/collab-flow/internal/repository/postgres"
	"github.com/Ahsanulk27/collab-flow/internal/service"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		// Database & Context Providers
		wire.NewSet(
			provideContext,
			providePostgresDB,
			provideMongoDB,
		),
		// Repository Providers
		wire.NewSet(
			postgres.NewMembershipRepository,
			wire.Bind(new(service.IMembershipRepository), new(*postgres.MembershipRepository)),

			postgres.NewUserRepository,
			wire.Bind(new(service.IUserRepository), new(*postgres.UserRepository)),

			mongo.NewMessageRepository,
			wire.Bind(new(service.IMessageRepository), new(*mongo.MessageRepository)),
		),
		// Service Providers
		wire.NewSet(
			service.NewChatService,
			wire.Bind(new(service.IChatService), new(*service.ChatService)),
		),
		// Hub & Handler Providers
		hub.NewHub,
		provideVerifier,
		handler.NewWebsocketHandler,
		handler.NewChatHandler,
		handler.NewAuthMiddleware,
		provideRouter,
		// App Provider
		wire.NewSet(
			wire.Struct(new(App), "*"),
		),
	)
	return nil, nil, nil
}
