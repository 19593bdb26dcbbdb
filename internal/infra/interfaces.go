package infra

import "storefront/internal/storefront"

var (
	_ storefront.CatalogSource = (*CatalogClient)(nil)
	_ storefront.OrderPlacer   = (*OrdersClient)(nil)
)
