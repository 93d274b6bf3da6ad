package services

import (
	"github.com/campuskit/lostfound-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activeMatchStatuses are the match states that bind their items. At most one
// match in these states may reference a given lost or found item.
var activeMatchStatuses = []models.MatchStatus{models.MatchPending, models.MatchApproved}

// lockForUpdate takes row locks inside a transaction on Postgres. SQLite
// (the test dialect) serializes writers and rejects FOR UPDATE, so the
// clause is applied only where it is supported.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
