package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SeedBarbers creates the roster from names when the barbers table is empty.
// An existing roster is never touched.
func SeedBarbers(ctx context.Context, db *gorm.DB, names []string) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.Barber{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	var barbers []models.Barber
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			barbers = append(barbers, models.Barber{Name: n})
		}
	}
	if len(barbers) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).Create(&barbers).Error; err != nil {
		return 0, err
	}
	return len(barbers), nil
}
