package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. Reads are public; every
// mutating route requires authentication.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// DKP ledger endpoints
		v1.POST("/points/award", middleware.Auth(authCfg), handler.AwardPoints)
		v1.POST("/points/award-bulk", middleware.Auth(authCfg), handler.BulkAwardPoints)
		v1.POST("/points/deduct", middleware.Auth(authCfg), handler.DeductPoints)
		v1.POST("/points/transfer", middleware.Auth(authCfg), handler.TransferPoints)
		v1.POST("/points/purchase", middleware.Auth(authCfg), handler.ProcessPurchase)
		v1.POST("/points/recalculate", middleware.Auth(authCfg), handler.RecalculatePoints)
		v1.GET("/points/leaderboard", handler.GetLeaderboard)
		v1.GET("/points/stats", handler.GetLedgerStats)
		v1.DELETE("/points/adjustments/:id", middleware.Auth(authCfg), handler.DeleteAdjustment)

		// Per-member read endpoints
		v1.GET("/users/:id/balance", handler.GetUserBalance)
		v1.GET("/users/:id/history", handler.GetUserHistory)
		v1.GET("/users/:id/attendance", handler.GetUserAttendance)
		v1.GET("/users/:id/attendance/trends", handler.GetAttendanceTrends)
		v1.GET("/users/:id/characters", handler.ListUserCharacters)

		// Attendance endpoints
		v1.GET("/attendance/stats", handler.GetGuildAttendanceStats)
		v1.POST("/attendance/refresh", middleware.Auth(authCfg), handler.RefreshAttendance)

		// Raid endpoints
		v1.POST("/events", middleware.Auth(authCfg), handler.CreateEvent)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/events/:id", handler.GetEvent)
		v1.POST("/raids", middleware.Auth(authCfg), handler.CreateRaid)
		v1.GET("/raids/:id", handler.GetRaid)
		v1.POST("/raids/:id/attendance", middleware.Auth(authCfg), handler.RecordRaidAttendance)
		v1.GET("/raids/:id/attendance", handler.ListRaidAttendance)
		v1.POST("/raids/:id/complete", middleware.Auth(authCfg), handler.CompleteRaid)
		v1.POST("/raids/:id/cancel", middleware.Auth(authCfg), handler.CancelRaid)
		v1.POST("/raids/:id/award", middleware.Auth(authCfg), handler.AwardRaidPoints)

		// Loot endpoints
		v1.POST("/items", middleware.Auth(authCfg), handler.CreateItem)
		v1.GET("/items", handler.ListItems)
		v1.GET("/items/:id", handler.GetItem)
		v1.POST("/loot/distributions", middleware.Auth(authCfg), handler.CreateDistribution)
		v1.GET("/loot/distributions", handler.ListDistributions)
		v1.GET("/loot/distributions/:id", handler.GetDistribution)
		v1.DELETE("/loot/distributions/:id", middleware.Auth(authCfg), handler.DeleteDistribution)

		// Roster endpoints
		v1.POST("/characters", middleware.Auth(authCfg), handler.CreateCharacter)
		v1.GET("/characters/:id", handler.GetCharacter)
		v1.GET("/characters/:id/family", handler.GetCharacterFamily)
		v1.GET("/characters/:id/ownership", handler.GetOwnershipHistory)
		v1.POST("/characters/:id/transfer", middleware.Auth(authCfg), handler.TransferCharacter)
		v1.POST("/members/link-discord", middleware.Auth(authCfg), handler.LinkDiscord)
		v1.POST("/members/unlink-discord", middleware.Auth(authCfg), handler.UnlinkDiscord)
		v1.PUT("/members/:id/status", middleware.Auth(authCfg), handler.UpdateMemberStatus)
		v1.GET("/ranks", handler.ListRanks)

		// Recruitment endpoints
		v1.POST("/applications", middleware.Auth(authCfg), handler.SubmitApplication)
		v1.GET("/applications", handler.ListApplications)
		v1.GET("/applications/ready-for-processing", handler.ListReadyForProcessing)
		v1.GET("/applications/:id", handler.GetApplication)
		v1.GET("/applications/:id/statistics", handler.GetVotingStatistics)
		v1.POST("/applications/:id/officer-approve", middleware.Auth(authCfg), handler.OfficerApprove)
		v1.POST("/applications/:id/open-voting", middleware.Auth(authCfg), handler.OpenVoting)
		v1.POST("/applications/:id/votes", middleware.Auth(authCfg), handler.CastVote)
		v1.POST("/applications/:id/close-voting", middleware.Auth(authCfg), handler.CloseVoting)
		v1.POST("/applications/:id/withdraw", middleware.Auth(authCfg), handler.WithdrawApplication)
		v1.POST("/applications/:id/process", middleware.Auth(authCfg), handler.ProcessApplication)
		v1.POST("/applications/process-batch", middleware.Auth(authCfg), handler.ProcessBatch)
	}
}
