package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripgenius/internal/models/db_models"
	"tripgenius/pkg/utils"
)

const tripDateLayout = "2006-01-02"

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, destination string, startDate string, endDate string, interests []string) ([]db_models.DayPlan, error)
}

type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

// Generate builds one DayPlan per day of the inclusive date span,
// rotating through the activity templates by day offset.
func (s *ItineraryService) Generate(ctx context.Context, destination string, startDate string, endDate string, interests []string) ([]db_models.DayPlan, error) {
	start, end, err := ParseTripDates(startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := InclusiveDays(start, end)
	itinerary := make([]db_models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		template := dayTemplates[i%len(dayTemplates)]

		// Trips own their itinerary; hand out copies, not the
		// template slices themselves.
		activities := make([]db_models.Activity, len(template.Activities))
		copy(activities, template.Activities)

		dayCost := 0
		for _, activity := range activities {
			dayCost += ParseCostLabel(activity.Cost)
		}

		itinerary = append(itinerary, db_models.DayPlan{
			Day:        i + 1,
			Date:       date.Format(tripDateLayout),
			Theme:      template.Theme,
			Activities: activities,
			TotalCost:  "$" + strconv.Itoa(dayCost),
		})
	}

	return itinerary, nil
}

func ParseTripDates(startDate string, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(tripDateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date must be YYYY-MM-DD", utils.ErrValidation)
	}
	end, err := time.Parse(tripDateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date must be YYYY-MM-DD", utils.ErrValidation)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date must not be before start date", utils.ErrValidation)
	}
	return start, end, nil
}

// InclusiveDays is the day span counting both endpoints, so a trip
// from the 15th to the 17th lasts 3 days.
func InclusiveDays(start time.Time, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// ParseCostLabel reads a display cost label like "$15"; "Free" and
// anything unparseable count as zero.
func ParseCostLabel(label string) int {
	trimmed := strings.TrimPrefix(label, "$")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return n
}

// ItineraryCost sums the per-day totals into the trip cost.
func ItineraryCost(itinerary []db_models.DayPlan) int {
	total := 0
	for _, day := range itinerary {
		total += ParseCostLabel(day.TotalCost)
	}
	return total
}
