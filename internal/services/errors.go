package services

import "errors"

// Sentinel errors returned by the core services. The request layer maps them
// onto HTTP statuses; nothing here renders user-facing text beyond the
// notification bodies the services themselves compose.
var (
	// Referenced entity absent.
	ErrUserNotFound         = errors.New("user not found")
	ErrLostItemNotFound     = errors.New("lost item not found")
	ErrFoundItemNotFound    = errors.New("found item not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrClaimNotFound        = errors.New("claim not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPhotoNotFound        = errors.New("no photo stored for item")
	ErrProofNotFound        = errors.New("no proof file stored for claim")

	// Entity not in a status that permits the requested transition.
	ErrLostItemUnavailable  = errors.New("lost item not available for matching")
	ErrFoundItemUnavailable = errors.New("found item not available for matching")
	ErrClaimAlreadyDecided  = errors.New("claim has already been decided")
	ErrMatchClosed          = errors.New("match is no longer pending")

	// Uniqueness violations.
	ErrDuplicateClaim    = errors.New("claim already submitted for this match")
	ErrActiveMatchExists = errors.New("item already has an active match")

	// Content screening.
	ErrContentRejected = errors.New("content rejected")

	// Auth.
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// IsNotFound reports whether err means a referenced entity is absent.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrUserNotFound, ErrLostItemNotFound, ErrFoundItemNotFound,
		ErrMatchNotFound, ErrClaimNotFound, ErrNotificationNotFound,
		ErrPhotoNotFound, ErrProofNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsInvalidState reports whether err means an entity refused a transition.
func IsInvalidState(err error) bool {
	for _, target := range []error{
		ErrLostItemUnavailable, ErrFoundItemUnavailable,
		ErrClaimAlreadyDecided, ErrMatchClosed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a uniqueness violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateClaim) || errors.Is(err, ErrActiveMatchExists)
}
