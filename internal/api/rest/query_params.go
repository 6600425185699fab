package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/store/schema"
)

const MAX_PAGE_SIZE = 100

// PaginationQueryParams holds the shared limit/offset query parameters
type PaginationQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// normalize caps the page size and floors the offset
func (p *PaginationQueryParams) normalize() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > MAX_PAGE_SIZE {
		p.Limit = MAX_PAGE_SIZE
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ParsePaginationQuery parses limit/offset query parameters
func ParsePaginationQuery(c *gin.Context) (*PaginationQueryParams, error) {
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()
	return &params, nil
}

// ListApplicationsQueryParams holds query parameters for GET /applications
type ListApplicationsQueryParams struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// StatusFilter returns the bound status filter, nil when absent
func (p *ListApplicationsQueryParams) StatusFilter() *schema.ApplicationStatus {
	if p.Status == "" {
		return nil
	}
	status := schema.ApplicationStatus(p.Status)
	return &status
}

// ParseListApplicationsQuery parses query parameters for GET /applications
func ParseListApplicationsQuery(c *gin.Context) (*ListApplicationsQueryParams, error) {
	var params ListApplicationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Status != "" && !schema.ApplicationStatus(params.Status).Valid() {
		return nil, fmt.Errorf("invalid status: %s", params.Status)
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return &params, nil
}

// ListDistributionsQueryParams holds query parameters for GET /loot/distributions
type ListDistributionsQueryParams struct {
	UserID *int64 `form:"user_id"`
	ItemID *int64 `form:"item_id"`
	RaidID *int64 `form:"raid_id"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ParseListDistributionsQuery parses query parameters for GET /loot/distributions
func ParseListDistributionsQuery(c *gin.Context) (*ListDistributionsQueryParams, error) {
	var params ListDistributionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return &params, nil
}

// ActiveOnlyQueryParams holds query parameters for GET /events and GET /items
type ActiveOnlyQueryParams struct {
	ActiveOnly bool `form:"active_only"`
}

// ParseActiveOnlyQuery parses the active_only query parameter
func ParseActiveOnlyQuery(c *gin.Context) (*ActiveOnlyQueryParams, error) {
	var params ActiveOnlyQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// LeaderboardQueryParams holds query parameters for GET /points/leaderboard
type LeaderboardQueryParams struct {
	Limit int `form:"limit,default=10"`
}

// ParseLeaderboardQuery parses query parameters for GET /points/leaderboard
func ParseLeaderboardQuery(c *gin.Context) (*LeaderboardQueryParams, error) {
	var params LeaderboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	return &params, nil
}

// TrendsQueryParams holds query parameters for GET /users/:id/attendance/trends
type TrendsQueryParams struct {
	Days int `form:"days,default=7"`
}

// ParseTrendsQuery parses query parameters for the attendance trends endpoint.
// The window is capped at 90 days; one snapshot is computed per day.
func ParseTrendsQuery(c *gin.Context) (*TrendsQueryParams, error) {
	var params TrendsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Days <= 0 {
		params.Days = 7
	}
	if params.Days > 90 {
		params.Days = 90
	}
	return &params, nil
}

// ReadyForProcessingQueryParams holds query parameters for
// GET /applications/ready-for-processing
type ReadyForProcessingQueryParams struct {
	Limit int `form:"limit,default=25"`
}

// ParseReadyForProcessingQuery parses query parameters for the
// ready-for-processing listing
func ParseReadyForProcessingQuery(c *gin.Context) (*ReadyForProcessingQueryParams, error) {
	var params ReadyForProcessingQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit <= 0 {
		params.Limit = 25
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	return &params, nil
}
