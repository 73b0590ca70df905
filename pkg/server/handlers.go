package server

import (
	"ichipets/handler"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Storefront   *handler.StorefrontHandler
	Order        *handler.OrderHandler
	RequestCall  *handler.RequestCallHandler
	Address      *handler.AddressHandler
	AdminCatalog *handler.AdminCatalogHandler
	AdminContent *handler.AdminContentHandler
	AdminOrder   *handler.AdminOrderHandler
}
