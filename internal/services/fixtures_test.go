package services

import (
	"testing"
	"time"

	"github.com/campuskit/lostfound-backend/internal/database"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "-" + uuid.NewString()[:8] + "@campus.edu",
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user %s: %v", name, err)
	}
	return &user
}

func newLostItem(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name, category string, lostOn time.Time) *models.LostItem {
	t.Helper()
	item := models.LostItem{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Category:     category,
		Name:         name,
		LostDate:     datatypes.Date(lostOn),
		LostLocation: "Main Library",
		Status:       models.LostUnresolved,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("creating lost item %s: %v", name, err)
	}
	return &item
}

func newFoundItem(t *testing.T, db *gorm.DB, reporterID uuid.UUID, name, category string, foundOn time.Time) *models.FoundItem {
	t.Helper()
	item := models.FoundItem{
		ID:            uuid.New(),
		ReporterID:    reporterID,
		Category:      category,
		Name:          name,
		FoundDate:     datatypes.Date(foundOn),
		FoundLocation: "Library",
		Status:        models.FoundUnclaimed,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("creating found item %s: %v", name, err)
	}
	return &item
}

// matchFixture is a full staff-confirmed pairing: owner, finder, staff, one
// lost and one found item and the match between them.
type matchFixture struct {
	db    *gorm.DB
	owner *models.User
	staff *models.User
	lost  *models.LostItem
	found *models.FoundItem
	match *models.Match
}

func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()
	db := database.NewTestDB(t)

	owner := newUser(t, db, "alice", models.RoleStudent)
	finder := newUser(t, db, "bob", models.RoleStudent)
	staff := newUser(t, db, "carol", models.RoleStaff)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	lost := newLostItem(t, db, owner.ID, "black wallet", "Accessories", day)
	found := newFoundItem(t, db, finder.ID, "black wallet", "Accessories", day.AddDate(0, 0, 2))

	notifier := NewNotificationService(db)
	match, err := NewMatchService(db, notifier).Confirm(lost.ID, found.ID, staff.ID)
	if err != nil {
		t.Fatalf("confirming match: %v", err)
	}

	return &matchFixture{db: db, owner: owner, staff: staff, lost: lost, found: found, match: match}
}

func (f *matchFixture) reloadLost(t *testing.T) *models.LostItem {
	t.Helper()
	var item models.LostItem
	if err := f.db.First(&item, "id = ?", f.lost.ID).Error; err != nil {
		t.Fatalf("reloading lost item: %v", err)
	}
	return &item
}

func (f *matchFixture) reloadFound(t *testing.T) *models.FoundItem {
	t.Helper()
	var item models.FoundItem
	if err := f.db.First(&item, "id = ?", f.found.ID).Error; err != nil {
		t.Fatalf("reloading found item: %v", err)
	}
	return &item
}

func (f *matchFixture) reloadMatch(t *testing.T) *models.Match {
	t.Helper()
	var match models.Match
	if err := f.db.First(&match, "id = ?", f.match.ID).Error; err != nil {
		t.Fatalf("reloading match: %v", err)
	}
	return &match
}
