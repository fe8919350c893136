package storage

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot é a linha que guarda uma coleção serializada inteira.
// O nome da coleção é a chave primária; cada Write sobrescreve tudo.
type Snapshot struct {
	Name string `gorm:"primaryKey;size:100"`
	Data string `gorm:"type:text;not null"`
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Read(ctx context.Context, collection string, out any) error {
	var snap Snapshot
	if err := s.db.WithContext(ctx).First(&snap, "name = ?", collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(snap.Data), out)
}

func (s *GormStore) Write(ctx context.Context, collection string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	snap := Snapshot{Name: collection, Data: string(b)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&snap).Error
}

var _ Store = (*GormStore)(nil)
