package sqlite

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

// snapshotRecord is one key/document pair, mirroring the single local
// storage entry of the original application.
type snapshotRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Document  string    `gorm:"column:document"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

// SnapshotStore implements store.SnapshotStore using a sqlite key/value
// table via GORM.
type SnapshotStore struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and migrates the
// snapshot table. ":memory:" is accepted for tests.
func Open(path string) (*SnapshotStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an existing GORM connection.
func New(db *gorm.DB) (*SnapshotStore, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, err
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Load(key string) ([]byte, error) {
	var rec snapshotRecord
	err := s.db.Where("key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, err
	}
	return []byte(rec.Document), nil
}

func (s *SnapshotStore) Save(key string, document []byte) error {
	rec := snapshotRecord{
		Key:       key,
		Document:  string(document),
		UpdatedAt: time.Now(),
	}
	return s.db.Save(&rec).Error
}

func (s *SnapshotStore) Delete(key string) error {
	return s.db.Delete(&snapshotRecord{}, "key = ?", key).Error
}

// Close releases the underlying database connection.
func (s *SnapshotStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
