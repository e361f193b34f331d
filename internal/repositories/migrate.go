package repositories

import (
	"log"

	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/Meyyun/HobbyHub/internal/thread"
	"gorm.io/gorm"
)

// MigrateLegacyThreads drains travel rows whose comments column still
// carries the old single-field thread encoding: the decoded story moves
// to the body column and each appended comment becomes a comment row.
// Rows without an encoded entry are left alone and keep being decoded
// at read time. Rows written after the split never populate that
// column, so the scan converges to a no-op.
func MigrateLegacyThreads(db *gorm.DB) error {
	var rows []models.Travel
	if err := db.Where("comments IS NOT NULL AND comments <> ''").Find(&rows).Error; err != nil {
		return err
	}

	migrated := 0
	for _, row := range rows {
		if !thread.HasEntries(row.LegacyThread) {
			continue
		}
		body, entries := thread.Parse(row.LegacyThread)
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, entry := range entries {
				comment := models.Comment{
					TravelID: row.ID,
					Author:   entry.Author,
					Content:  entry.Content,
				}
				if err := tx.Create(&comment).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.Travel{}).Where("id = ?", row.ID).Updates(map[string]interface{}{
				"body":     body,
				"comments": "",
			}).Error
		})
		if err != nil {
			return err
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("Migrated %d legacy comment threads.", migrated)
	}
	return nil
}
