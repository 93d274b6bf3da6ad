package services

import (
	"testing"
	"time"

	"github.com/campuskit/lostfound-backend/internal/database"
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemService(t *testing.T) (*ItemService, *NotificationService) {
	t.Helper()
	db := database.NewTestDB(t)
	notifier := NewNotificationService(db)
	return NewItemService(db, notifier, NewContentFilter()), notifier
}

func TestReportLost(t *testing.T) {
	svc, _ := newItemService(t)
	ownerID := uuid.New()

	item, err := svc.ReportLost(ownerID, &dto.ReportItemRequest{
		Category:    "Electronics",
		Name:        "  iPhone 13  ",
		Description: "Blue case, cracked screen",
		Date:        "2026-03-10",
		Location:    "Main Library",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "iPhone 13", item.Name)
	assert.Equal(t, models.LostUnresolved, item.Status)
	assert.Equal(t, ownerID, item.OwnerID)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), time.Time(item.LostDate))
	assert.False(t, item.HasPhoto())

	loaded, err := svc.GetLost(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Name, loaded.Name)
}

func TestReportLostInvalidDateStored(t *testing.T) {
	svc, _ := newItemService(t)

	item, err := svc.ReportLost(uuid.New(), &dto.ReportItemRequest{
		Category: "Electronics",
		Name:     "iPhone 13",
		Date:     "10/03/2026",
	}, nil)
	require.NoError(t, err)
	assert.True(t, time.Time(item.LostDate).IsZero())
}

func TestReportLostValidation(t *testing.T) {
	svc, _ := newItemService(t)

	_, err := svc.ReportLost(uuid.New(), &dto.ReportItemRequest{Category: "Electronics"}, nil)
	assert.Error(t, err)

	_, err = svc.ReportLost(uuid.New(), &dto.ReportItemRequest{Name: "iPhone 13"}, nil)
	assert.Error(t, err)
}

func TestReportLostContentRejected(t *testing.T) {
	svc, _ := newItemService(t)

	_, err := svc.ReportLost(uuid.New(), &dto.ReportItemRequest{
		Category:    "Electronics",
		Name:        "iPhone 13",
		Description: "contact me at someone@example.com",
	}, nil)
	assert.ErrorIs(t, err, ErrContentRejected)
}

func TestReportFoundBroadcasts(t *testing.T) {
	svc, notifier := newItemService(t)

	item, err := svc.ReportFound(uuid.New(), &dto.ReportItemRequest{
		Category: "Accessories",
		Name:     "Black Wallet",
		Date:     "2026-03-12",
		Location: "Cafeteria",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.FoundUnclaimed, item.Status)

	broadcasts, err := notifier.ListBroadcast(10)
	require.NoError(t, err)
	require.Len(t, broadcasts, 1)
	assert.Contains(t, broadcasts[0].Message, "Black Wallet")
	assert.True(t, broadcasts[0].Broadcast())
}

func TestListLostByOwner(t *testing.T) {
	svc, _ := newItemService(t)
	owner := uuid.New()
	other := uuid.New()

	for _, name := range []string{"wallet", "keys"} {
		_, err := svc.ReportLost(owner, &dto.ReportItemRequest{Category: "Misc", Name: name}, nil)
		require.NoError(t, err)
	}
	_, err := svc.ReportLost(other, &dto.ReportItemRequest{Category: "Misc", Name: "umbrella"}, nil)
	require.NoError(t, err)

	items, err := svc.ListLostByOwner(owner)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	count, err := svc.CountLostByOwner(owner)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestListAvailableFoundExcludesClaimed(t *testing.T) {
	db := database.NewTestDB(t)
	svc := NewItemService(db, NewNotificationService(db), NewContentFilter())
	reporter := uuid.New()
	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	newFoundItem(t, db, reporter, "wallet", "Accessories", day)
	matched := newFoundItem(t, db, reporter, "keys", "Keys", day)
	claimed := newFoundItem(t, db, reporter, "umbrella", "Misc", day)

	require.NoError(t, db.Model(matched).Update("status", models.FoundMatched).Error)
	require.NoError(t, db.Model(claimed).Update("status", models.FoundClaimed).Error)

	items, err := svc.ListAvailableFound()
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, claimed.ID, item.ID)
	}
}

func TestGetLostNotFound(t *testing.T) {
	svc, _ := newItemService(t)

	_, err := svc.GetLost(uuid.New())
	assert.ErrorIs(t, err, ErrLostItemNotFound)
	assert.True(t, IsNotFound(err))
}

func TestPhotoRoundTrip(t *testing.T) {
	svc, _ := newItemService(t)
	photo := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	item, err := svc.ReportFound(uuid.New(), &dto.ReportItemRequest{
		Category: "Misc", Name: "umbrella",
	}, photo)
	require.NoError(t, err)

	stored, err := svc.FoundPhoto(item.ID)
	require.NoError(t, err)
	assert.Equal(t, photo, stored)
}

func TestPhotoMissing(t *testing.T) {
	svc, _ := newItemService(t)

	item, err := svc.ReportLost(uuid.New(), &dto.ReportItemRequest{
		Category: "Misc", Name: "umbrella",
	}, nil)
	require.NoError(t, err)

	_, err = svc.LostPhoto(item.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}
