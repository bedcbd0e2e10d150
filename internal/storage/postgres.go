package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord é a linha por coleção: chave fixa, blob JSON.
type KVRecord struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"type:jsonb"`

	UpdatedAt time.Time
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// PostgresStore usa uma tabela chave/valor com upsert, mantendo a
// semântica last-write-wins do storage original.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var rec KVRecord
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(rec.Value), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	rec := KVRecord{Key: key, Value: string(raw)}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}

var _ Store = (*PostgresStore)(nil)
