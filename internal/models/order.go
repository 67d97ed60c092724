package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID       primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName     string             `json:"productName" bson:"productName"`
	ProductPrice    float64            `json:"productPrice" bson:"productPrice"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	CustomerName    string             `json:"customerName" bson:"customerName"`
	CustomerEmail   string             `json:"customerEmail" bson:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone" bson:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress" bson:"shippingAddress"`
	OrderDate       time.Time          `json:"orderDate" bson:"orderDate"`
	Status          string             `json:"status" bson:"status"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type CreateOrderRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderFilter struct {
	Status *string
}

// StatusSales is one bucket of the sales-by-status aggregation.
type StatusSales struct {
	Status string  `json:"status" bson:"_id"`
	Count  int64   `json:"count" bson:"count"`
	Total  float64 `json:"total" bson:"total"`
}
