package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

type SlotGormStore struct {
	db *gorm.DB
}

func NewSlotGormStore(db *gorm.DB) *SlotGormStore {
	return &SlotGormStore{db: db}
}

func (s *SlotGormStore) ListEnabled(
	ctx context.Context,
	date string,
	agentID string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := s.db.WithContext(ctx).
		Where("date = ? AND agent_id = ? AND enabled = true", date, agentID).
		Order("id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (s *SlotGormStore) Get(ctx context.Context, id uint) (*models.Slot, error) {
	var slot models.Slot
	if err := s.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *SlotGormStore) SetBooked(ctx context.Context, id uint, booked int) error {
	return s.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ?", id).
		Update("booked", booked).Error
}

// Compile-time check
var _ domain.SlotStore = (*SlotGormStore)(nil)
