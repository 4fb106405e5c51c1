package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// GetOpenSessionForToday returns the driver's not-yet-ended session for the
// current calendar day. No open session is not an error; both return values
// are nil then.
func GetOpenSessionForToday(userID uint) (*models.Session, error) {
	var session models.Session

	today := time.Now().Format(models.DateLayout)
	err := DB.Where("user_id = ? AND date = ? AND status <> ?", userID, today, models.StatusEnded).
		Preload("Breaks", breakOrder).
		Preload("User").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// GetSessionByID retrieves a session with its breaks and owner
func GetSessionByID(id uint) (*models.Session, error) {
	var session models.Session

	err := DB.Preload("Breaks", breakOrder).Preload("User").First(&session, id).Error
	if err != nil {
		return nil, fmt.Errorf("session #%d not found", id)
	}

	return &session, nil
}

// GetSessionForDate returns the driver's session on a calendar day, ended or not
func GetSessionForDate(userID uint, date string) (*models.Session, error) {
	var session models.Session

	err := DB.Where("user_id = ? AND date = ?", userID, date).
		Preload("Breaks", breakOrder).
		Preload("User").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// SaveSession persists a session and its break sequence. Storage failures
// surface as-is; there is no retry at this layer.
func SaveSession(session *models.Session) error {
	if session.ID == 0 {
		return DB.Create(session).Error
	}
	return DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(session).Error
}

// ReplaceBreaks swaps a session's break sequence for an edited one
func ReplaceBreaks(session *models.Session, breaks []models.Break) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.Break{}).Error; err != nil {
			return err
		}
		for i := range breaks {
			breaks[i].ID = 0
			breaks[i].SessionID = session.ID
			if err := tx.Create(&breaks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func breakOrder(db *gorm.DB) *gorm.DB {
	return db.Order("breaks.id ASC")
}
