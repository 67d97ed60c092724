package db

import (
	"context"
	"log"
	"time"

	"beautytime/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var seedProducts = []models.Product{
	{
		Name:             "Elysian Rose",
		Price:            185,
		Description:      "A luxurious blend of Damascus rose, peony, and warm amber. Elysian Rose captures the essence of a Mediterranean garden at sunset.",
		ShortDescription: "Opulent rose with amber undertones",
		Image:            "/assets/perfume1.jpg",
		Category:         "floral",
		Featured:         true,
		InStock:          true,
	},
	{
		Name:             "Amber Noir",
		Price:            210,
		Description:      "An intoxicating oriental fragrance built around precious amber and dark woods, with spicy notes of cardamom and saffron.",
		ShortDescription: "Mysterious amber with spicy undertones",
		Image:            "/assets/perfume2.jpg",
		Category:         "oriental",
		Featured:         true,
		InStock:          true,
	},
	{
		Name:             "Velvet Orchid",
		Price:            165,
		Description:      "A seductive composition centered around rare orchid species, opening with mandarin and honey over suede and vanilla.",
		ShortDescription: "Sensual orchid and smooth vanilla",
		Image:            "/assets/perfume3.jpg",
		Category:         "floral",
		Featured:         false,
		InStock:          true,
	},
	{
		Name:             "Aqua Sublime",
		Price:            155,
		Description:      "A refreshing marine fragrance that captures the essence of Mediterranean coastlines, with bright citrus and sea notes.",
		ShortDescription: "Refreshing marine with citrus notes",
		Image:            "/assets/perfume4.jpg",
		Category:         "fresh",
		Featured:         false,
		InStock:          true,
	},
	{
		Name:             "Oud Royale",
		Price:            295,
		Description:      "A majestic fragrance centered around precious oud wood, unfolding into Bulgarian rose, patchouli, amber, and leather.",
		ShortDescription: "Opulent oud with rose and spices",
		Image:            "/assets/perfume5.jpg",
		Category:         "woody",
		Featured:         true,
		InStock:          true,
	},
	{
		Name:             "Solar Bloom",
		Price:            175,
		Description:      "A radiant floral fragrance inspired by sun-drenched gardens, with bergamot and mandarin over orange blossom and jasmine.",
		ShortDescription: "Bright florals with citrus and amber",
		Image:            "/assets/perfume6.jpg",
		Category:         "floral",
		Featured:         false,
		InStock:          true,
	},
}

// Seed wipes the three collections and repopulates them with sample data.
func Seed(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collections := []string{"products", "orders", "admins"}
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, map[string]interface{}{}); err != nil {
			log.Fatal("Seed cleanup failed:", err)
		}
	}

	now := time.Now()
	products := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		p.CreatedAt = now
		p.UpdatedAt = now
		products = append(products, p)
	}

	inserted, err := db.Collection("products").InsertMany(ctx, products)
	if err != nil {
		log.Fatal("Seed products failed:", err)
	}
	log.Printf("Inserted %d products", len(inserted.InsertedIDs))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Seed admin hash failed:", err)
	}

	admin := models.Admin{
		Username:     "admin",
		Email:        "admin@beautystore.com",
		PasswordHash: string(hash),
		Name:         "Admin User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.Collection("admins").InsertOne(ctx, admin); err != nil {
		log.Fatal("Seed admin failed:", err)
	}
	log.Println("Created admin user admin@beautystore.com")

	var sampleProducts []models.Product
	cursor, err := db.Collection("products").Find(ctx, map[string]interface{}{})
	if err != nil {
		log.Fatal("Seed order lookup failed:", err)
	}
	if err := cursor.All(ctx, &sampleProducts); err != nil {
		log.Fatal("Seed order lookup failed:", err)
	}

	orders := []interface{}{
		sampleOrder(sampleProducts[0], 1, "Emma Thompson", "emma@example.com", models.OrderStatusDelivered, now.AddDate(0, 0, -14)),
		sampleOrder(sampleProducts[1], 2, "James Wilson", "james@example.com", models.OrderStatusShipped, now.AddDate(0, 0, -5)),
		sampleOrder(sampleProducts[4], 1, "Sophia Chen", "sophia@example.com", models.OrderStatusPending, now.AddDate(0, 0, -1)),
	}
	if _, err := db.Collection("orders").InsertMany(ctx, orders); err != nil {
		log.Fatal("Seed orders failed:", err)
	}
	log.Printf("Inserted %d orders", len(orders))
}

func sampleOrder(p models.Product, qty int, name, email string, status models.OrderStatus, date time.Time) models.Order {
	return models.Order{
		ProductID:       p.ID,
		ProductName:     p.Name,
		ProductPrice:    p.Price,
		Quantity:        qty,
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   "555-0100",
		ShippingAddress: "42 Rosewood Lane, Portland, OR",
		OrderDate:       date,
		Status:          string(status),
		TotalAmount:     p.Price * float64(qty),
	}
}
