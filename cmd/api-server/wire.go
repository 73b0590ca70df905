//go:build wireinject
// +build wireinject

package main

import (
	"ichipets/config"
	"ichipets/handler"
	"ichipets/pkg/address"
	"ichipets/pkg/client"
	"ichipets/pkg/server"
	"ichipets/service"
	"ichipets/upstream"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		upstream.NewClient,
		address.NewClient,
		server.NewGinEngine,

		wire.Struct(new(handler.AuthHandler), "*"),
		wire.Struct(new(handler.StorefrontHandler), "*"),
		wire.Struct(new(handler.OrderHandler), "*"),
		wire.Struct(new(handler.RequestCallHandler), "*"),
		wire.Struct(new(handler.AddressHandler), "*"),
		wire.Struct(new(handler.AdminCatalogHandler), "*"),
		wire.Struct(new(handler.AdminContentHandler), "*"),
		wire.Struct(new(handler.AdminOrderHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		service.ProviderSet,
	)
	return nil
}
