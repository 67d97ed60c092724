package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Price            float64            `json:"price" bson:"price"`
	Description      string             `json:"description" bson:"description"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription"`
	Image            string             `json:"image" bson:"image"`
	Category         string             `json:"category" bson:"category"`
	Featured         bool               `json:"featured" bson:"featured"`
	InStock          bool               `json:"inStock" bson:"inStock"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateProductRequest struct {
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"shortDescription"`
	Image            string  `json:"image"`
	Category         string  `json:"category"`
	Featured         bool    `json:"featured"`
	InStock          bool    `json:"inStock"`
}

// UpdateProductRequest carries a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name             *string  `json:"name"`
	Price            *float64 `json:"price"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	ImageURL         *string  `json:"imageUrl"`
	Category         *string  `json:"category"`
	Featured         *bool    `json:"featured"`
	InStock          *bool    `json:"inStock"`
}

type ProductFilter struct {
	Category *string
	Featured *bool
	InStock  *bool
}
