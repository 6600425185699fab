package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/middleware"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/attendance"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/ledger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/loot"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/raids"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/roster"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// AwardPoints writes one positive ledger entry for a member
	// POST /api/v1/points/award
	AwardPoints(c *gin.Context)

	// BulkAwardPoints awards the same amount to every listed member
	// POST /api/v1/points/award-bulk
	BulkAwardPoints(c *gin.Context)

	// DeductPoints writes one negative ledger entry for a member
	// POST /api/v1/points/deduct
	DeductPoints(c *gin.Context)

	// TransferPoints moves points between two members
	// POST /api/v1/points/transfer
	TransferPoints(c *gin.Context)

	// ProcessPurchase deducts an item's cost after an affordability check
	// POST /api/v1/points/purchase
	ProcessPurchase(c *gin.Context)

	// RecalculatePoints re-derives summaries from the ledger, for one member
	// or for everyone with history
	// POST /api/v1/points/recalculate
	RecalculatePoints(c *gin.Context)

	// GetLeaderboard returns the top balances ordered by total descending
	// GET /api/v1/points/leaderboard?limit=<limit>
	GetLeaderboard(c *gin.Context)

	// GetLedgerStats aggregates economy-wide ledger totals
	// GET /api/v1/points/stats
	GetLedgerStats(c *gin.Context)

	// DeleteAdjustment removes an unlocked ledger entry and repairs the
	// owner's summary
	// DELETE /api/v1/points/adjustments/:id
	DeleteAdjustment(c *gin.Context)

	// GetUserBalance returns a member's points summary
	// GET /api/v1/users/:id/balance
	GetUserBalance(c *gin.Context)

	// GetUserHistory pages a member's ledger entries newest first
	// GET /api/v1/users/:id/history?limit=<limit>&offset=<offset>
	GetUserHistory(c *gin.Context)

	// GetUserAttendance returns a member's attendance figures across the
	// standard windows, with streaks and voting eligibility
	// GET /api/v1/users/:id/attendance
	GetUserAttendance(c *gin.Context)

	// GetAttendanceTrends returns a member's daily 30-day rate series
	// GET /api/v1/users/:id/attendance/trends?days=<days>
	GetAttendanceTrends(c *gin.Context)

	// GetGuildAttendanceStats aggregates the latest snapshots across the roster
	// GET /api/v1/attendance/stats
	GetGuildAttendanceStats(c *gin.Context)

	// RefreshAttendance recomputes summary snapshots for the listed members,
	// or for every member with history
	// POST /api/v1/attendance/refresh
	RefreshAttendance(c *gin.Context)

	// CreateEvent creates a raid event template
	// POST /api/v1/events
	CreateEvent(c *gin.Context)

	// ListEvents lists event templates
	// GET /api/v1/events?active_only=<bool>
	ListEvents(c *gin.Context)

	// GetEvent retrieves an event template
	// GET /api/v1/events/:id
	GetEvent(c *gin.Context)

	// CreateRaid schedules a raid from an event template
	// POST /api/v1/raids
	CreateRaid(c *gin.Context)

	// GetRaid retrieves a raid with its event template
	// GET /api/v1/raids/:id
	GetRaid(c *gin.Context)

	// RecordRaidAttendance marks a member present at a raid
	// POST /api/v1/raids/:id/attendance
	RecordRaidAttendance(c *gin.Context)

	// ListRaidAttendance lists the attendance roll for a raid
	// GET /api/v1/raids/:id/attendance
	ListRaidAttendance(c *gin.Context)

	// CompleteRaid marks a raid completed
	// POST /api/v1/raids/:id/complete
	CompleteRaid(c *gin.Context)

	// CancelRaid marks a raid cancelled
	// POST /api/v1/raids/:id/cancel
	CancelRaid(c *gin.Context)

	// AwardRaidPoints pays out a completed raid exactly once
	// POST /api/v1/raids/:id/award
	AwardRaidPoints(c *gin.Context)

	// CreateItem creates a loot catalog entry
	// POST /api/v1/items
	CreateItem(c *gin.Context)

	// ListItems lists catalog items
	// GET /api/v1/items?active_only=<bool>
	ListItems(c *gin.Context)

	// GetItem retrieves a catalog item
	// GET /api/v1/items/:id
	GetItem(c *gin.Context)

	// CreateDistribution awards an item to a member and charges their balance
	// POST /api/v1/loot/distributions
	CreateDistribution(c *gin.Context)

	// ListDistributions pages distribution history newest first
	// GET /api/v1/loot/distributions?user_id=<id>&item_id=<id>&raid_id=<id>&limit=<limit>&offset=<offset>
	ListDistributions(c *gin.Context)

	// GetDistribution retrieves a distribution with its item and buyer
	// GET /api/v1/loot/distributions/:id
	GetDistribution(c *gin.Context)

	// DeleteDistribution removes a distribution and refunds the charge
	// DELETE /api/v1/loot/distributions/:id
	DeleteDistribution(c *gin.Context)

	// CreateCharacter creates a character for an existing member
	// POST /api/v1/characters
	CreateCharacter(c *gin.Context)

	// GetCharacter retrieves a character with its owner
	// GET /api/v1/characters/:id
	GetCharacter(c *gin.Context)

	// GetCharacterFamily returns the main and all alts of a character's family
	// GET /api/v1/characters/:id/family
	GetCharacterFamily(c *gin.Context)

	// GetOwnershipHistory lists a character's transfer records newest first
	// GET /api/v1/characters/:id/ownership
	GetOwnershipHistory(c *gin.Context)

	// TransferCharacter moves a character to a new owner
	// POST /api/v1/characters/:id/transfer
	TransferCharacter(c *gin.Context)

	// ListUserCharacters lists all characters owned by a member
	// GET /api/v1/users/:id/characters
	ListUserCharacters(c *gin.Context)

	// LinkDiscord attaches a Discord account to a member
	// POST /api/v1/members/link-discord
	LinkDiscord(c *gin.Context)

	// UnlinkDiscord detaches a member's Discord account
	// POST /api/v1/members/unlink-discord
	UnlinkDiscord(c *gin.Context)

	// UpdateMemberStatus flips a member's active flag and cascades it to
	// their characters
	// PUT /api/v1/members/:id/status
	UpdateMemberStatus(c *gin.Context)

	// ListRanks lists the rank catalog ordered by level
	// GET /api/v1/ranks
	ListRanks(c *gin.Context)

	// SubmitApplication files a recruitment application
	// POST /api/v1/applications
	SubmitApplication(c *gin.Context)

	// ListApplications pages applications, optionally by status
	// GET /api/v1/applications?status=<status>&limit=<limit>&offset=<offset>
	ListApplications(c *gin.Context)

	// GetApplication retrieves an application
	// GET /api/v1/applications/:id
	GetApplication(c *gin.Context)

	// GetVotingStatistics returns the live voting statistics for an application
	// GET /api/v1/applications/:id/statistics
	GetVotingStatistics(c *gin.Context)

	// ListReadyForProcessing lists approved applications awaiting provisioning
	// GET /api/v1/applications/ready-for-processing?limit=<limit>
	ListReadyForProcessing(c *gin.Context)

	// OfficerApprove moves a submitted application past officer review
	// POST /api/v1/applications/:id/officer-approve
	OfficerApprove(c *gin.Context)

	// OpenVoting opens an application's voting period
	// POST /api/v1/applications/:id/open-voting
	OpenVoting(c *gin.Context)

	// CastVote records or revises one member's vote
	// POST /api/v1/applications/:id/votes
	CastVote(c *gin.Context)

	// CloseVoting closes an application's voting period and applies the
	// decision rule
	// POST /api/v1/applications/:id/close-voting
	CloseVoting(c *gin.Context)

	// WithdrawApplication marks a pre-decision application withdrawn
	// POST /api/v1/applications/:id/withdraw
	WithdrawApplication(c *gin.Context)

	// ProcessApplication provisions an approved application
	// POST /api/v1/applications/:id/process?force=<bool>
	ProcessApplication(c *gin.Context)

	// ProcessBatch provisions several approved applications
	// POST /api/v1/applications/process-batch
	ProcessBatch(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// Services bundles the domain services the REST surface exposes
type Services struct {
	Ledger      ledger.Service
	Attendance  attendance.Service
	Raids       raids.Service
	Loot        loot.Service
	Roster      roster.Service
	Recruitment recruitment.Service
}

// handler implements the Handler interface
type handler struct {
	store    store.Store
	services Services
}

// NewHandler creates a new REST API handler over the domain services
func NewHandler(st store.Store, services Services) Handler {
	return &handler{
		store:    st,
		services: services,
	}
}

// parseIDParam parses a positive integer path parameter, responding with a
// 400 when it is malformed
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// actorID resolves actor attribution: an explicit performed_by in the
// request body wins, then the authenticated JWT subject when it parses as
// a member ID
func actorID(c *gin.Context, fromBody *int64) *int64 {
	if fromBody != nil {
		return fromBody
	}
	subject, exists := c.Get(middleware.AUTH_SUBJECT_KEY)
	if !exists {
		return nil
	}
	raw, ok := subject.(string)
	if !ok {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// bindOptionalJSON binds a request body that may legitimately be absent,
// treating an empty body as the zero value
func bindOptionalJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "kromrif-planning-api",
	})
}
