package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItemService is the item registry: it owns lost and found item records.
// Item status is advanced only by MatchService and ClaimService, never
// directly by callers.
type ItemService struct {
	db       *gorm.DB
	notifier *NotificationService
	filter   *ContentFilter
}

func NewItemService(db *gorm.DB, notifier *NotificationService, filter *ContentFilter) *ItemService {
	return &ItemService{db: db, notifier: notifier, filter: filter}
}

// ReportLost registers a student's lost-item report with initial status
// Unresolved. photo may be empty; when present it has already been validated
// and re-encoded by the request layer.
func (s *ItemService) ReportLost(ownerID uuid.UUID, req *dto.ReportItemRequest, photo []byte) (*models.LostItem, error) {
	if err := s.validateReport(req); err != nil {
		return nil, err
	}

	item := models.LostItem{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Category:     req.Category,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		LostDate:     parseReportDate(req.Date),
		LostLocation: req.Location,
		Status:       models.LostUnresolved,
		Photo:        photo,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create lost item: %w", err)
	}
	return &item, nil
}

// ReportFound registers a found-item report with initial status Unclaimed
// and broadcasts the report to staff.
func (s *ItemService) ReportFound(reporterID uuid.UUID, req *dto.ReportItemRequest, photo []byte) (*models.FoundItem, error) {
	if err := s.validateReport(req); err != nil {
		return nil, err
	}

	item := models.FoundItem{
		ID:            uuid.New(),
		ReporterID:    reporterID,
		Category:      req.Category,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		FoundDate:     parseReportDate(req.Date),
		FoundLocation: req.Location,
		Status:        models.FoundUnclaimed,
		Photo:         photo,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create found item: %w", err)
	}

	s.notifier.EmitBroadcast(fmt.Sprintf(
		"New found item reported: %s at %s", item.Name, item.FoundLocation))

	return &item, nil
}

func (s *ItemService) GetLost(id uuid.UUID) (*models.LostItem, error) {
	var item models.LostItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLostItemNotFound
		}
		return nil, fmt.Errorf("failed to load lost item: %w", err)
	}
	return &item, nil
}

func (s *ItemService) GetFound(id uuid.UUID) (*models.FoundItem, error) {
	var item models.FoundItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoundItemNotFound
		}
		return nil, fmt.Errorf("failed to load found item: %w", err)
	}
	return &item, nil
}

// ListLostByOwner returns a student's own reports, newest loss first.
func (s *ItemService) ListLostByOwner(ownerID uuid.UUID) ([]models.LostItem, error) {
	var items []models.LostItem
	err := s.db.Where("owner_id = ?", ownerID).
		Order("lost_date DESC").
		Find(&items).Error
	return items, err
}

// ListAvailableFound returns found items a student could still claim:
// unclaimed ones, plus matched ones whose match is pending.
func (s *ItemService) ListAvailableFound() ([]models.FoundItem, error) {
	var items []models.FoundItem
	err := s.db.Where("status IN ?", []models.FoundItemStatus{models.FoundUnclaimed, models.FoundMatched}).
		Order("found_date DESC").
		Find(&items).Error
	return items, err
}

func (s *ItemService) CountLostByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.LostItem{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// LostPhoto returns the stored photo bytes for a lost item.
func (s *ItemService) LostPhoto(id uuid.UUID) ([]byte, error) {
	item, err := s.GetLost(id)
	if err != nil {
		return nil, err
	}
	if !item.HasPhoto() {
		return nil, ErrPhotoNotFound
	}
	return item.Photo, nil
}

// FoundPhoto returns the stored photo bytes for a found item.
func (s *ItemService) FoundPhoto(id uuid.UUID) ([]byte, error) {
	item, err := s.GetFound(id)
	if err != nil {
		return nil, err
	}
	if !item.HasPhoto() {
		return nil, ErrPhotoNotFound
	}
	return item.Photo, nil
}

func (s *ItemService) validateReport(req *dto.ReportItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("item name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return errors.New("category is required")
	}
	for _, text := range []string{req.Name, req.Description, req.Location} {
		if ok, reason := s.filter.Check(text); !ok {
			return fmt.Errorf("%w: %s", ErrContentRejected, s.filter.RejectionMessage(reason))
		}
	}
	return nil
}

// parseReportDate accepts YYYY-MM-DD. Anything else becomes the zero date,
// which the similarity engine treats as never date-qualifying.
func parseReportDate(value string) datatypes.Date {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return datatypes.Date{}
	}
	return datatypes.Date(t)
}
