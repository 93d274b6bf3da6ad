package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campuskit/lostfound-backend/internal/config"
	"github.com/campuskit/lostfound-backend/internal/database"
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/handlers"
	"github.com/campuskit/lostfound-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db := database.NewTestDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}

	filter := services.NewContentFilter()
	notifier := services.NewNotificationService(db)
	authService := services.NewAuthService(db, cfg)
	itemService := services.NewItemService(db, notifier, filter)
	matchService := services.NewMatchService(db, notifier)
	claimService := services.NewClaimService(db, notifier, filter)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewItemHandler(itemService),
		handlers.NewMatchHandler(matchService),
		handlers.NewClaimHandler(claimService),
		handlers.NewNotificationHandler(notifier),
		handlers.NewStatsHandler(db),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(data) > 0 {
		json.Unmarshal(data, &decoded)
	}
	return resp, decoded
}

func registerUser(t *testing.T, app *fiber.App, name, email, role string) (token string, userID uuid.UUID) {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/api/auth/register", "", dto.RegisterRequest{
		Name: name, Email: email, Password: "correct-horse", Role: role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	token = body["access_token"].(string)
	user := body["user"].(map[string]any)
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)
	return token, userID
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/items/found/available", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/staff/suggestions", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStaffRoutesRejectStudents(t *testing.T) {
	app := newTestApp(t)
	studentToken, _ := registerUser(t, app, "Alice", "alice@campus.edu", "student")

	resp, _ := doJSON(t, app, "GET", "/api/staff/suggestions", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/staff/stats", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLostAndFoundFlow(t *testing.T) {
	app := newTestApp(t)

	aliceToken, aliceID := registerUser(t, app, "Alice", "alice@campus.edu", "student")
	bobToken, _ := registerUser(t, app, "Bob", "bob@campus.edu", "student")
	staffToken, _ := registerUser(t, app, "Carol", "carol@campus.edu", "staff")

	// Alice reports a lost wallet.
	resp, lostBody := doJSON(t, app, "POST", "/api/items/lost", aliceToken, dto.ReportItemRequest{
		Category: "Accessories",
		Name:     "black leather wallet",
		Date:     "2026-03-10",
		Location: "Main Library",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	lostID := lostBody["id"].(string)
	assert.Equal(t, "Unresolved", lostBody["status"])

	// Bob hands in a matching wallet.
	resp, foundBody := doJSON(t, app, "POST", "/api/items/found", bobToken, dto.ReportItemRequest{
		Category: "Accessories",
		Name:     "black leather wallet",
		Date:     "2026-03-12",
		Location: "Library",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	foundID := foundBody["id"].(string)

	// The scan surfaces the pair for staff.
	resp, suggBody := doJSON(t, app, "GET", "/api/staff/suggestions", staffToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	suggestions := suggBody["suggestions"].([]any)
	require.Len(t, suggestions, 1)

	// Staff confirms the match.
	resp, matchBody := doJSON(t, app, "POST", "/api/staff/matches", staffToken, map[string]string{
		"lost_item_id": lostID, "found_item_id": foundID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	matchID := matchBody["id"].(string)
	assert.Equal(t, "Pending", matchBody["status"])

	// Alice was notified about the match.
	resp, notifBody := doJSON(t, app, "GET", "/api/notifications", aliceToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, notifBody["notifications"])

	// Alice claims the item.
	resp, claimBody := doJSON(t, app, "POST", "/api/claims", aliceToken, map[string]string{
		"match_id": matchID, "proof_text": "has my initials engraved",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	claimID := claimBody["id"].(string)
	assert.Equal(t, aliceID.String(), claimBody["claimant_id"])

	// A duplicate claim is refused.
	resp, _ = doJSON(t, app, "POST", "/api/claims", aliceToken, map[string]string{
		"match_id": matchID, "proof_text": "again",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Staff reviews and approves.
	resp, reviewBody := doJSON(t, app, "GET", "/api/staff/claims?status=Pending", staffToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, reviewBody["claims"].([]any), 1)

	resp, decidedBody := doJSON(t, app, "POST", "/api/staff/claims/"+claimID+"/approve", staffToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Approved", decidedBody["approval_status"])

	// A second decision on the same claim is refused.
	resp, _ = doJSON(t, app, "POST", "/api/staff/claims/"+claimID+"/reject", staffToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The claimed item no longer shows up as available.
	resp, availBody := doJSON(t, app, "GET", "/api/items/found/available", bobToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, availBody["items"])

	// Dashboard counters reflect the resolution.
	resp, statsBody := doJSON(t, app, "GET", "/api/staff/stats", staffToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, statsBody["pending_claims"])
	assert.EqualValues(t, 0, statsBody["unresolved_lost"])
	assert.EqualValues(t, 0, statsBody["unclaimed_found"])
	assert.EqualValues(t, 0, statsBody["pending_matches"])
}

func TestConfirmUnknownPairReturns404(t *testing.T) {
	app := newTestApp(t)
	staffToken, _ := registerUser(t, app, "Carol", "carol@campus.edu", "staff")

	resp, _ := doJSON(t, app, "POST", "/api/staff/matches", staffToken, map[string]string{
		"lost_item_id":  uuid.NewString(),
		"found_item_id": uuid.NewString(),
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReportRejectsFilteredContent(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "Alice", "alice@campus.edu", "student")

	resp, _ := doJSON(t, app, "POST", "/api/items/lost", token, dto.ReportItemRequest{
		Category:    "Electronics",
		Name:        "phone",
		Description: "contact me at alice@campus.edu",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
