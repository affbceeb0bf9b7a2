package client

import (
	"math"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Wire shapes match the backend JSON verbatim. No schema validation happens
// here; partial or garbage records map through as-is and the engine is
// expected to tolerate them.

type ratingDTO struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type productDTO struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Gender      string    `json:"gender,omitempty"`
	Image       string    `json:"image"`
	Rating      ratingDTO `json:"rating"`
}

type userDTO struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

func mapProductToDomain(dto productDTO, unit currency.Unit) domain.Product {
	return domain.Product{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Gender:      dto.Gender,
		Image:       dto.Image,
		Price:       domain.NewMoney(decimalFromFloat(dto.Price), unit),
		Rating: domain.Rating{
			Rate:  dto.Rating.Rate,
			Count: dto.Rating.Count,
		},
	}
}

func mapProductsToDomain(dtos []productDTO, unit currency.Unit) []domain.Product {
	var products []domain.Product
	for _, dto := range dtos {
		products = append(products, mapProductToDomain(dto, unit))
	}

	return products
}

func mapProductFromDomain(p domain.Product) productDTO {
	price, _ := p.Price.Amount.Float64()

	return productDTO{
		ID:          p.ID,
		Title:       p.Title,
		Price:       price,
		Description: p.Description,
		Category:    p.Category,
		Gender:      p.Gender,
		Image:       p.Image,
		Rating: ratingDTO{
			Rate:  p.Rating.Rate,
			Count: p.Rating.Count,
		},
	}
}

func mapUserToDomain(dto userDTO) domain.User {
	return domain.User{
		ID:       dto.ID,
		Name:     dto.Name,
		Email:    dto.Email,
		Password: dto.Password,
		Gender:   dto.Gender,
		Role:     domain.Role(dto.Role),
	}
}

func mapUsersToDomain(dtos []userDTO) []domain.User {
	var users []domain.User
	for _, dto := range dtos {
		users = append(users, mapUserToDomain(dto))
	}

	return users
}

func mapUserFromDomain(u domain.User) userDTO {
	return userDTO{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Gender:   u.Gender,
		Role:     string(u.Role),
	}
}

// decimalFromFloat guards against NaN/Inf, which decimal.NewFromFloat
// refuses; such prices map to zero rather than crashing the load.
func decimalFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(f)
}
