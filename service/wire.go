package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCatalogService,
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	NewOrderService,
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(SectionService), "*"),
	wire.Bind(new(ISectionService), new(*SectionService)),

	NewRefCache,
	NewRedisProfileStore,
	wire.Bind(new(ProfileStore), new(*RedisProfileStore)),
)
