package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1
)

// Page is a normalized 1-based page request
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset of the page
func (p Page) Offset() uint64 {
	return uint64((p.Number - 1) * p.Size)
}

// NormalizePage clamps page and size into their valid ranges
func NormalizePage(page, size int) Page {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return Page{Number: page, Size: size}
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
func NewPaginationInfo(totalItems int64, p Page) dto.PaginationInfo {
	totalPages := 1
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(p.Size)))
	}

	currentPage := p.Number
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    p.Size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams reads page and size from the query string
func ParsePaginationParams(c *gin.Context) Page {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = DefaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		size = DefaultPageSize
	}
	return NormalizePage(page, size)
}
