package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // Page numbers are 1-based
)

// Sort directions accepted by list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams holds the normalized pagination, sorting and populate
// directives of a list request.
type ListParams struct {
	Limit    int
	Page     int
	Sort     string   // asc or desc
	SortBy   string   // validated database column
	Populate []string // requested relation tags, unvalidated
}

// Offset returns the 0-based row offset for the current page.
func (p ListParams) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

// OrderBy returns the ORDER BY clause body for the current parameters.
func (p ListParams) OrderBy() string {
	return p.SortBy + " " + strings.ToUpper(p.Sort)
}

// ParseListParams extracts and validates list parameters from the request.
// limit outside [1,100], page < 1 and sort outside {asc,desc} are rejected;
// an unknown sortBy silently falls back to defaultSortBy. sortable maps
// API field names to database columns.
func ParseListParams(c *gin.Context, sortable map[string]string, defaultSortBy string) (ListParams, error) {
	params := ListParams{
		Limit:  DefaultLimit,
		Page:   DefaultPage,
		Sort:   SortDesc,
		SortBy: defaultSortBy,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, apperrors.NewValidationError("limit must be an integer between 1 and 100")
		}
		params.Limit = limit
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, apperrors.NewValidationError("page must be an integer greater than or equal to 1")
		}
		params.Page = page
	}

	if sort := c.Query("sort"); sort != "" {
		sort = strings.ToLower(sort)
		if sort != SortAsc && sort != SortDesc {
			return params, apperrors.NewValidationError("sort must be either asc or desc")
		}
		params.Sort = sort
	}

	if sortBy := c.Query("sortBy"); sortBy != "" {
		if column, ok := sortable[sortBy]; ok {
			params.SortBy = column
		}
	}

	params.Populate = ParsePopulate(c.Query("populate"))

	return params, nil
}

// ParsePopulate splits a comma-separated populate parameter into tags.
// Unknown tags are kept here; each entity ignores the ones it does not
// recognize.
func ParsePopulate(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasTag reports whether tag is present in tags.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page is the 1-based page number.
func NewPaginationInfo(totalItems int64, page, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    limit,
		TotalItems:  totalItems,
	}
}
