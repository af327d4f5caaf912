package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

type ClientGormStore struct {
	db *gorm.DB
}

func NewClientGormStore(db *gorm.DB) *ClientGormStore {
	return &ClientGormStore{db: db}
}

// UpsertByEmail crea o actualiza al cliente con llave de correo ya
// normalizado. Fusiona nombre y teléfono sin vaciar lo que ya se sabía:
// un campo vacío en la petición no borra el dato previo.
func (s *ClientGormStore) UpsertByEmail(
	ctx context.Context,
	email string,
	name string,
	phone string,
) (uint, error) {

	var client models.Client
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error

	if err == nil {
		updates := map[string]any{}
		if name != "" && name != client.Name {
			updates["name"] = name
		}
		if phone != "" && phone != client.Phone {
			updates["phone"] = phone
		}
		if len(updates) > 0 {
			if err := s.db.WithContext(ctx).
				Model(&client).
				Updates(updates).Error; err != nil {
				return 0, err
			}
		}
		return client.ID, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	client = models.Client{
		Email: email,
		Name:  name,
		Phone: phone,
	}

	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return 0, err
	}

	return client.ID, nil
}

// Compile-time check
var _ domain.ClientStore = (*ClientGormStore)(nil)
