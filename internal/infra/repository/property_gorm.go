package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

type PropertyGormResolver struct {
	db *gorm.DB
}

func NewPropertyGormResolver(db *gorm.DB) *PropertyGormResolver {
	return &PropertyGormResolver{db: db}
}

// Resolve convierte la referencia externa en id interno. Referencia
// desconocida o deshabilitada regresa (nil, nil): una cita sin vínculo a
// propiedad es válida.
func (s *PropertyGormResolver) Resolve(
	ctx context.Context,
	externalRef string,
) (*uint, error) {

	var prop models.Property
	err := s.db.WithContext(ctx).
		Where("external_ref = ? AND enabled = true", externalRef).
		First(&prop).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &prop.ID, nil
}

// Compile-time check
var _ domain.PropertyResolver = (*PropertyGormResolver)(nil)
