package db

import "github.com/aldiyarseitov/shiftlog/internal/models"

// AppendAuditEntries writes audit records for an admin edit. This call is
// independent of the session save; a failure here leaves the saved session
// in place and the caller is expected to report the audit gap loudly.
func AppendAuditEntries(entries []models.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return DB.Create(&entries).Error
}

// GetAuditEntries returns a session's audit trail, oldest first
func GetAuditEntries(sessionID uint) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry

	err := DB.Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
