package infra

import (
	"context"
	"log"
	"os"
	"time"

	"tripgenius/internal/models/db_models"
	"tripgenius/internal/repositories"
	"tripgenius/internal/services"
	"tripgenius/pkg/utils"
)

// SeedDemoData loads a demo account and two sample trips so the API is
// usable straight after boot. Disable with SEED_DEMO_DATA=false.
func SeedDemoData(
	userRepo repositories.UserRepository,
	tripRepo repositories.TripRepository,
	hasher services.SecretHasher,
) error {
	if os.Getenv("SEED_DEMO_DATA") == "false" {
		return nil
	}

	ctx := context.Background()

	secretHash, err := hasher.Hash("demo123")
	if err != nil {
		return err
	}

	demoUser, err := userRepo.Insert(ctx, &db_models.User{
		Name:       "Demo User",
		Email:      "demo@travelgenius.com",
		SecretHash: secretHash,
		Avatar:     utils.AvatarURL("demo@travelgenius.com"),
		JoinDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		TripCount:  0,
	})
	if err != nil {
		return err
	}

	budgetParis := 1500
	budgetTokyo := 2500
	demoTrips := []*db_models.Trip{
		{
			UserID:      demoUser.ID,
			Destination: "Paris, France",
			StartDate:   "2024-06-15",
			EndDate:     "2024-06-20",
			Duration:    5,
			Cost:        1250,
			Travelers:   2,
			Budget:      &budgetParis,
			Interests:   []string{"Culture", "Food", "History"},
			Status:      db_models.TripStatusCompleted,
			Thumbnail:   "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=400&h=250&fit=crop",
			Itinerary:   []db_models.DayPlan{},
		},
		{
			UserID:      demoUser.ID,
			Destination: "Tokyo, Japan",
			StartDate:   "2024-08-10",
			EndDate:     "2024-08-17",
			Duration:    7,
			Cost:        2100,
			Travelers:   2,
			Budget:      &budgetTokyo,
			Interests:   []string{"Food", "Culture", "Shopping"},
			Status:      db_models.TripStatusUpcoming,
			Thumbnail:   "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=400&h=250&fit=crop",
			Itinerary:   []db_models.DayPlan{},
		},
	}

	for _, trip := range demoTrips {
		if _, err := tripRepo.Insert(ctx, trip); err != nil {
			return err
		}
		if _, err := userRepo.AdjustTripCount(ctx, demoUser.ID, 1); err != nil {
			return err
		}
	}

	log.Printf("Seeded demo data: user=%s trips=%d", demoUser.Email, len(demoTrips))
	return nil
}
