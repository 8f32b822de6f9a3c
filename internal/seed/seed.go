package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 14

type mealTemplate struct {
	name     string
	hour     int
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	fiber    float64
}

var meals = []mealTemplate{
	{name: "Oatmeal with banana", hour: 8, calories: 350, protein: 12, carbs: 60, fat: 7, fiber: 8},
	{name: "Greek yogurt with berries", hour: 10, calories: 220, protein: 17, carbs: 24, fat: 6, fiber: 3},
	{name: "Chicken and rice bowl", hour: 13, calories: 620, protein: 42, carbs: 70, fat: 16, fiber: 5},
	{name: "Apple with peanut butter", hour: 16, calories: 280, protein: 8, carbs: 30, fat: 16, fiber: 6},
	{name: "Salmon with vegetables", hour: 19, calories: 540, protein: 38, carbs: 28, fat: 28, fiber: 9},
}

// Run seeds the database with sample nutrition entries. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.NutritionLogEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		day := domain.DayKey(date)

		for j, meal := range meals {
			// Skip a couple of meals at random so days vary.
			if rng.Intn(5) == 0 {
				continue
			}

			clientReqID := fmt.Sprintf("seed-%s-%d", day, j)
			loggedAt := time.Date(date.Year(), date.Month(), date.Day(), meal.hour, rng.Intn(60), 0, 0, time.UTC)
			entry := domain.NutritionLogEntry{
				Day:             day,
				Name:            meal.name,
				Calories:        meal.calories,
				Protein:         meal.protein,
				Carbs:           meal.carbs,
				Fat:             meal.fat,
				Fiber:           meal.fiber,
				ClientRequestID: &clientReqID,
				LoggedAt:        loggedAt,
			}
			if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&entry).Error; err != nil {
				return fmt.Errorf("failed to seed entry %s: %w", clientReqID, err)
			}
		}
	}

	log.Println("Seed completed")
	return nil
}
