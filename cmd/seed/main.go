package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	"listing-service/internal/configs"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/pkg/postgres"
)

// Заполняет базу демонстрационными объявлениями для локальной разработки.
// Существующие объявления удаляются целиком, как и в исходном сидере.
func main() {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    slog.LevelInfo,
		UseColor: true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = contextkeys.ContextWithLogger(ctx, logger)

	dbPool, err := postgres.NewClient(ctx, postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbPool.Close()

	repo, err := postgres_adapter.NewPostgresPropertyAdapter(dbPool)
	if err != nil {
		log.Fatalf("Failed to create property repository: %v", err)
	}

	if _, err := dbPool.Exec(ctx, `DELETE FROM properties`); err != nil {
		log.Fatalf("Failed to clear properties table: %v", err)
	}

	for _, draft := range sampleDrafts() {
		draft.Normalize()
		if err := draft.Validate(); err != nil {
			log.Fatalf("Sample draft %q is invalid: %v", draft.Title, err)
		}
		if _, err := repo.Add(ctx, draft); err != nil {
			log.Fatalf("Failed to insert sample property %q: %v", draft.Title, err)
		}
	}

	log.Printf("Database seeded successfully with %d properties", len(sampleDrafts()))
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func placeholders(ids ...string) []string {
	urls := make([]string, len(ids))
	for i, id := range ids {
		urls[i] = "https://images.unsplash.com/" + id + "?w=800&h=600&fit=crop&auto=format"
	}
	return urls
}

// Демонстрационные объявления из исходного сидера. Картинки - публичные
// стоковые URL: хранилище ассетов их не знает и при удалении не трогает.
func sampleDrafts() []domain.PropertyDraft {
	return []domain.PropertyDraft{
		{
			Title:       "Luxury 3BHK Apartment in Sector 17",
			Description: "Beautiful 3BHK apartment in the heart of the commercial hub. Spacious rooms, modular kitchen and 24/7 security.",
			Price:       8500000,
			Location:    "Sector 17, Chandigarh",
			Type:        domain.TypeSale,
			Bedrooms:    intPtr(3),
			Bathrooms:   intPtr(2),
			Area:        floatPtr(1650),
			Amenities:   []string{"Parking", "Security", "Lift", "Power Backup", "Garden", "Gym"},
			Images:      placeholders("photo-1560448204-e02f11c3d0e2", "photo-1502672260266-1c1ef2d93688", "photo-1502672023488-70e25813eb80"),
			Contact:     domain.Contact{Name: "Rajesh Kumar", Phone: "+91 98765 43210", Email: "rajesh.kumar@example.com"},
		},
		{
			Title:       "Modern 2BHK for Rent in Sector 22",
			Description: "Fully furnished 2BHK apartment close to IT parks and shopping centers. Includes all modern amenities and appliances.",
			Price:       25000,
			Location:    "Sector 22, Chandigarh",
			Type:        domain.TypeRent,
			Bedrooms:    intPtr(2),
			Bathrooms:   intPtr(2),
			Area:        floatPtr(1200),
			Amenities:   []string{"Furnished", "AC", "WiFi", "Parking", "Security", "Lift"},
			Images:      placeholders("photo-1522708323590-d24dbb6b0267", "photo-1560448075-bb485b067938"),
			Contact:     domain.Contact{Name: "Priya Sharma", Phone: "+91 98765 43211", Email: "priya.sharma@example.com"},
		},
		{
			Title:       "Premium PG Accommodation in Sector 15",
			Description: "Comfortable accommodation for students and professionals with all meals, WiFi, laundry service and round-the-clock security.",
			Price:       12000,
			Location:    "Sector 15, Chandigarh",
			Type:        domain.TypeRent,
			Bedrooms:    intPtr(1),
			Bathrooms:   intPtr(1),
			Area:        floatPtr(150),
			Amenities:   []string{"Meals", "WiFi", "Laundry", "Security", "AC", "Common Area"},
			Images:      placeholders("photo-1522771739844-6a9f6d5f14af", "photo-1586023492125-27b2c045efd7"),
			Contact:     domain.Contact{Name: "Amit Singh", Phone: "+91 98765 43212", Email: "amit.singh@example.com"},
		},
		{
			Title:       "Spacious 4BHK Villa in Sector 9",
			Description: "Independent villa with a private garden and parking for two cars. Spacious rooms, modern kitchen and beautiful landscaping.",
			Price:       15000000,
			Location:    "Sector 9, Chandigarh",
			Type:        domain.TypeSale,
			Bedrooms:    intPtr(4),
			Bathrooms:   intPtr(3),
			Area:        floatPtr(2500),
			Amenities:   []string{"Garden", "Parking", "Security", "Independent", "Terrace", "Store Room"},
			Images:      placeholders("photo-1512917774080-9991f1c4c750", "photo-1568605114967-8130f3a36994", "photo-1564013799919-ab600027ffc6"),
			Contact:     domain.Contact{Name: "Deepak Verma", Phone: "+91 98765 43213", Email: "deepak.verma@example.com"},
		},
		{
			Title:       "Cozy 1BHK Studio in Sector 34",
			Description: "Compact studio apartment with open-plan living and great connectivity to major business districts.",
			Price:       18000,
			Location:    "Sector 34, Chandigarh",
			Type:        domain.TypeRent,
			Bedrooms:    intPtr(1),
			Bathrooms:   intPtr(1),
			Area:        floatPtr(600),
			Amenities:   []string{"Furnished", "AC", "WiFi", "Security", "Lift", "Balcony"},
			Images:      placeholders("photo-1536376072261-38c75010e6c9", "photo-1502672260266-1c1ef2d93688"),
			Contact:     domain.Contact{Name: "Neha Gupta", Phone: "+91 98765 43214", Email: "neha.gupta@example.com"},
		},
		{
			Title:       "Luxury Penthouse in Sector 26",
			Description: "Stunning penthouse with panoramic city views, high-end finishes, spacious terraces and world-class amenities.",
			Price:       25000000,
			Location:    "Sector 26, Chandigarh",
			Type:        domain.TypeSale,
			Bedrooms:    intPtr(3),
			Bathrooms:   intPtr(3),
			Area:        floatPtr(3000),
			Amenities:   []string{"Terrace", "City View", "Luxury Fittings", "Parking", "Pool", "Gym", "Concierge"},
			Images:      placeholders("photo-1600596542815-ffad4c1539a9", "photo-1600607687939-ce8a6c25118c", "photo-1600566753190-17f0baa2a6c3"),
			Contact:     domain.Contact{Name: "Rohit Malhotra", Phone: "+91 98765 43215", Email: "rohit.malhotra@example.com"},
		},
	}
}
