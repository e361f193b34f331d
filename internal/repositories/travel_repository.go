package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Meyyun/HobbyHub/internal/authgate"
	"github.com/Meyyun/HobbyHub/internal/models"
	"gorm.io/gorm"
)

// ErrNoSingleMatch is returned when a title+username lookup finds zero
// or more than one post; legacy repost references resolve ambiguously
// and the caller renders nothing in that case.
var ErrNoSingleMatch = errors.New("no single matching post")

// TravelUpdate carries the editable columns the edit form replaces
// wholesale, zero values included.
type TravelUpdate struct {
	Title      string
	Location   string
	TravelType string
	Photos     string
	Body       string
}

// TravelRepository defines the interface for travel post data operations
type TravelRepository interface {
	CreateTravel(ctx context.Context, travel *models.Travel) error
	GetTravelByID(ctx context.Context, id uint) (*models.Travel, error)
	GetAllTravels(ctx context.Context) ([]models.Travel, error)
	FindByTitleAndUsername(ctx context.Context, title, username string) (*models.Travel, error)
	UpdateTravel(ctx context.Context, id uint, secret string, update TravelUpdate) error
	DeleteTravel(ctx context.Context, id uint, secret string) error
	IncrementLike(ctx context.Context, id uint) (int, error)
}

// PostgresTravelRepository implements TravelRepository for PostgreSQL
type PostgresTravelRepository struct {
	db *gorm.DB
}

// NewPostgresTravelRepository creates a new PostgresTravelRepository
func NewPostgresTravelRepository(db *gorm.DB) *PostgresTravelRepository {
	return &PostgresTravelRepository{db: db}
}

// CreateTravel creates a new travel post in PostgreSQL
func (r *PostgresTravelRepository) CreateTravel(ctx context.Context, travel *models.Travel) error {
	return r.db.WithContext(ctx).Create(travel).Error
}

// GetTravelByID retrieves a travel post by ID from PostgreSQL
func (r *PostgresTravelRepository) GetTravelByID(ctx context.Context, id uint) (*models.Travel, error) {
	var travel models.Travel
	if err := r.db.WithContext(ctx).First(&travel, id).Error; err != nil {
		return nil, err
	}
	return &travel, nil
}

// GetAllTravels retrieves the full collection, newest first
func (r *PostgresTravelRepository) GetAllTravels(ctx context.Context) ([]models.Travel, error) {
	var travels []models.Travel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

// FindByTitleAndUsername retrieves the single post matching both fields
// exactly. Zero or multiple matches return ErrNoSingleMatch.
func (r *PostgresTravelRepository) FindByTitleAndUsername(ctx context.Context, title, username string) (*models.Travel, error) {
	var travels []models.Travel
	err := r.db.WithContext(ctx).
		Where("title = ? AND username = ?", title, username).
		Limit(2).
		Find(&travels).Error
	if err != nil {
		return nil, err
	}
	if len(travels) != 1 {
		return nil, ErrNoSingleMatch
	}
	return &travels[0], nil
}

// UpdateTravel replaces the editable columns of a post after verifying
// the secret key against the stored credential. The secret check lives
// here, in the write path, so no mutation can bypass it.
func (r *PostgresTravelRepository) UpdateTravel(ctx context.Context, id uint, secret string, update TravelUpdate) error {
	var travel models.Travel
	if err := r.db.WithContext(ctx).First(&travel, id).Error; err != nil {
		return err
	}
	if err := authgate.Verify(secret, travel.SecretHash); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&travel).Updates(map[string]interface{}{
		"title":       update.Title,
		"location":    update.Location,
		"travel_type": update.TravelType,
		"photos":      update.Photos,
		"body":        update.Body,
	}).Error
}

// DeleteTravel removes a post and its comments after verifying the
// secret key. There is no soft delete.
func (r *PostgresTravelRepository) DeleteTravel(ctx context.Context, id uint, secret string) error {
	var travel models.Travel
	if err := r.db.WithContext(ctx).First(&travel, id).Error; err != nil {
		return err
	}
	if err := authgate.Verify(secret, travel.SecretHash); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("travel_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Travel{}, id).Error
	})
}

// IncrementLike bumps the like counter atomically in SQL and returns
// the new count. Concurrent likes from different clients cannot lose
// updates this way.
func (r *PostgresTravelRepository) IncrementLike(ctx context.Context, id uint) (int, error) {
	res := r.db.WithContext(ctx).Model(&models.Travel{}).
		Where("id = ?", id).
		UpdateColumn("like", gorm.Expr(`"like" + 1`))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var travel models.Travel
	if err := r.db.WithContext(ctx).First(&travel, id).Error; err != nil {
		return 0, fmt.Errorf("like incremented but reload failed: %w", err)
	}
	return travel.Like, nil
}
