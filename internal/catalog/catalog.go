// Package catalog supplies the product list. The catalog is static content
// owned outside the core; the rest of the system only ever reads it.
package catalog

import (
	"context"

	"storefront/internal/domain"
)

var products = []domain.Product{
	{
		ID:           144,
		Name:         "Argentina Player Version World Cup 2026 Jersey (Full Sleeve)",
		RegularPrice: 1350,
		OfferPrice:   1300,
		Image:        "https://gameongarb.com/public/uploads/product/1765346289-argentina-player-version-full-sleeve-worldcup-26.webp",
		Link:         "https://gameongarb.com/product/argentina-player-version-world-cup-2026-jersey-144",
		Edition:      "Player",
	},
	{
		ID:           161,
		Name:         "Argentina Fan Version World Cup 2026 Jersey (Half Sleeve)",
		RegularPrice: 900,
		OfferPrice:   850,
		Image:        "https://gameongarb.com/public/uploads/product/1765346083-argentina-fan-version-half-sleeve-worldcup-26.webp",
		Link:         "https://gameongarb.com/product/argentina-fan-version-world-cup-2026-jersey-161",
		Edition:      "Fan",
	},
	{
		ID:           162,
		Name:         "Portugal Fan Version World Cup 2026 Jersey (Half Sleeve)",
		RegularPrice: 900,
		OfferPrice:   850,
		Image:        "https://gameongarb.com/public/uploads/product/1765345849-portugal-fan-version-half-sleeve-worldcup-26.webp",
		Link:         "https://gameongarb.com/product/portugal-fan-version-world-cup-2026-jersey-162",
		Edition:      "Fan",
	},
	{
		ID:           114,
		Name:         "Spain Player Version Home Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764838789-spain-player-version-home-jersey-world-cup-26.webp",
		Link:         "https://gameongarb.com/product/spain-player-version-home-jersey-world-cup-2026-114",
		Edition:      "Player",
	},
	{
		ID:           113,
		Name:         "Portugal Player Version Home Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764838696-portugal-player-version-home-jersey-world-cup-26.webp",
		Link:         "https://gameongarb.com/product/portugal-player-version-home-jersey-world-cup-2026-113",
		Edition:      "Player",
	},
	{
		ID:           111,
		Name:         "Mexico Player Version Home Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764838493-mexico-player-version-world-cup-jersey-26.jpg",
		Link:         "https://gameongarb.com/product/mexico-player-version-home-jersey-world-cup-2026-111",
		Edition:      "Player",
	},
	{
		ID:           109,
		Name:         "Japan Player Version Home Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764838198-japan.webp",
		Link:         "https://gameongarb.com/product/japan-player-version-home-jersey-world-cup-2026-109",
		Edition:      "Player",
	},
	{
		ID:           108,
		Name:         "Germany Player Version Home Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764838072-germany-player-version-home-jersey-world-cup-26.webp",
		Link:         "https://gameongarb.com/product/germany-player-version-home-jersey-world-cup-2026-108",
		Edition:      "Player",
	},
	{
		ID:           106,
		Name:         "England Player Version Home Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764837096-england-player-version-home-jersey-world-cup-26.webp",
		Link:         "https://gameongarb.com/product/england-player-version-home-jersey-world-cup-2026-106",
		Edition:      "Player",
	},
	{
		ID:           105,
		Name:         "Brazil Player Version Away Jersey – World Cup 2026",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764836976-brazil-player-version-away-jersey-2026-world-cup.webp",
		Link:         "https://gameongarb.com/product/brazil-player-version-away-jersey-world-cup-2026-105",
		Edition:      "Player",
	},
	{
		ID:           103,
		Name:         "Argentina Home Jersey 2026 – Player Edition",
		RegularPrice: 1100,
		OfferPrice:   1050,
		Image:        "https://gameongarb.com/public/uploads/product/1764836782-argentina-player-version-home-jersey-world-cup-26.jpg",
		Link:         "https://gameongarb.com/product/argentina-home-jersey-2026-player-edition-103",
		Edition:      "Player",
	},
}

// Static serves the built-in product list.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

// Products returns a copy of the catalog so callers cannot mutate it.
func (s *Static) Products(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out, nil
}
