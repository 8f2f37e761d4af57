package submit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrNoDraft is returned when a user has no saved draft.
var ErrNoDraft = errors.New("no draft saved")

// Draft is one autosaved form, one per user. Saving is unvalidated: a
// draft may hold any partial state.
type Draft struct {
	ID         uint   `gorm:"primaryKey"`
	OwnerEmail string `gorm:"uniqueIndex"`
	Payload    string
	Images     string
	SavedAt    time.Time
}

// DraftStore persists form drafts locally so an interrupted submission can
// be resumed. Successful submissions clear the owner's draft.
type DraftStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDraftStore(dbPath string, logger *logrus.Logger) (*DraftStore, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open draft database: %w", err)
	}
	if err := db.AutoMigrate(&Draft{}); err != nil {
		return nil, fmt.Errorf("failed to migrate draft database: %w", err)
	}

	return &DraftStore{db: db, logger: logger}, nil
}

// Save upserts the owner's draft with the current form values and any
// already-encoded images. No validation applies.
func (s *DraftStore) Save(ownerEmail string, form *PropertyForm, encodedImages []string) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}
	images, err := json.Marshal(encodedImages)
	if err != nil {
		return fmt.Errorf("failed to serialize draft images: %w", err)
	}

	draft := Draft{
		OwnerEmail: ownerEmail,
		Payload:    string(payload),
		Images:     string(images),
		SavedAt:    time.Now().UTC(),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_email = ?", ownerEmail).Delete(&Draft{}).Error; err != nil {
			return err
		}
		return tx.Create(&draft).Error
	})
}

// Load returns the owner's draft, or ErrNoDraft.
func (s *DraftStore) Load(ownerEmail string) (*PropertyForm, []string, time.Time, error) {
	var draft Draft
	err := s.db.Where("owner_email = ?", ownerEmail).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, time.Time{}, ErrNoDraft
	}
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("failed to load draft: %w", err)
	}

	var form PropertyForm
	if err := json.Unmarshal([]byte(draft.Payload), &form); err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("failed to parse draft: %w", err)
	}
	var images []string
	if draft.Images != "" {
		if err := json.Unmarshal([]byte(draft.Images), &images); err != nil {
			s.logger.WithError(err).Warn("Discarding unreadable draft images")
			images = nil
		}
	}

	return &form, images, draft.SavedAt, nil
}

// Clear removes the owner's draft, if any.
func (s *DraftStore) Clear(ownerEmail string) error {
	return s.db.Where("owner_email = ?", ownerEmail).Delete(&Draft{}).Error
}

// PurgeOlderThan deletes drafts not saved within the TTL and returns how
// many were removed. Run from the janitor schedule.
func (s *DraftStore) PurgeOlderThan(ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl)
	result := s.db.Where("saved_at < ?", cutoff).Delete(&Draft{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.WithField("purged", result.RowsAffected).Info("Purged expired drafts")
	}
	return result.RowsAffected, nil
}
