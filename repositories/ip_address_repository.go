package repositories

import (
	"errors"

	"trickhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IPAddressRepository interface {
	GetOrCreate(ip string) (*models.IPAddress, error)
	HasHit(articleID, ipID uint) (bool, error)
	AddHit(articleID, ipID uint) error
	CountHits(articleID uint) (int64, error)
}

type ipAddressRepository struct {
	db *gorm.DB
}

func NewIPAddressRepository(db *gorm.DB) IPAddressRepository {
	return &ipAddressRepository{db: db}
}

// GetOrCreate returns the row for ip, inserting it first when unseen. A
// concurrent insert of the same address is absorbed by the unique index.
func (r *ipAddressRepository) GetOrCreate(ip string) (*models.IPAddress, error) {
	var address models.IPAddress
	err := r.db.Where("ip_address = ?", ip).First(&address).Error
	if err == nil {
		return &address, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	address = models.IPAddress{IPAddress: ip}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ip_address"}},
		DoNothing: true,
	}).Create(&address).Error
	if err != nil {
		return nil, err
	}

	if address.ID == 0 {
		// lost the race, read the winner's row
		if err := r.db.Where("ip_address = ?", ip).First(&address).Error; err != nil {
			return nil, err
		}
	}
	return &address, nil
}

func (r *ipAddressRepository) HasHit(articleID, ipID uint) (bool, error) {
	var count int64
	err := r.db.Table("article_hits").
		Where("article_id = ? AND ip_address_id = ?", articleID, ipID).
		Count(&count).Error
	return count > 0, err
}

func (r *ipAddressRepository) AddHit(articleID, ipID uint) error {
	return r.db.Table("article_hits").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{
			"article_id":    articleID,
			"ip_address_id": ipID,
		}).Error
}

func (r *ipAddressRepository) CountHits(articleID uint) (int64, error) {
	var count int64
	err := r.db.Table("article_hits").Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
