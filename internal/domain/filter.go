package domain

import "github.com/google/uuid"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit into their allowed ranges.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes a returned page.
type PageInfo struct {
	Page  int
	Limit int
	Total int
	Pages int
}

// NewPageInfo builds PageInfo for a normalized page and a total row count.
func NewPageInfo(p Page, total int) PageInfo {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return PageInfo{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}

// Community list sort columns.
const (
	CommunitySortCreatedAt     = "createdAt"
	CommunitySortName          = "name"
	CommunitySortFollowerCount = "followerCount"
	CommunitySortPostCount     = "postCount"
)

// CommunityFilter contains filtering/pagination parameters for community listing.
type CommunityFilter struct {
	Category  *CommunityCategory
	Search    *string
	SortBy    string
	SortOrder string
	Page      Page
}

// PostFilter contains filtering/pagination parameters for post listing.
type PostFilter struct {
	CommunityID *uuid.UUID
	UserID      *uuid.UUID
	Page        Page
}
