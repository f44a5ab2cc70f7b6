package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Review listing defaults.
const (
	DefaultPageLimit = 10
	DefaultPage      = 1
)

// SortColumn is a column a review listing may be ordered by. Only the
// values declared here can be produced by ParseSortColumn.
type SortColumn int

const (
	SortByCreatedAt SortColumn = iota
	SortByOwner
	SortByTitle
	SortByReviewID
	SortByCategory
	SortByReviewImgURL
	SortByVotes
	SortByDesigner
	SortByCommentCount
)

var sortColumnLabels = [...]string{
	SortByCreatedAt:    "created_at",
	SortByOwner:        "owner",
	SortByTitle:        "title",
	SortByReviewID:     "review_id",
	SortByCategory:     "category",
	SortByReviewImgURL: "review_img_url",
	SortByVotes:        "votes",
	SortByDesigner:     "designer",
	SortByCommentCount: "comment_count",
}

// String returns the client-facing column name.
func (c SortColumn) String() string {
	if c < 0 || int(c) >= len(sortColumnLabels) {
		return "unknown"
	}
	return sortColumnLabels[c]
}

var sortColumnNames = func() map[string]SortColumn {
	m := make(map[string]SortColumn, len(sortColumnLabels))
	for i, name := range sortColumnLabels {
		m[name] = SortColumn(i)
	}
	return m
}()

// ParseSortColumn maps a sort_by value onto the allow-list. An empty value
// selects created_at.
func ParseSortColumn(raw string) (SortColumn, error) {
	if raw == "" {
		return SortByCreatedAt, nil
	}
	col, ok := sortColumnNames[raw]
	if !ok {
		return 0, NewValidationError("sort_by", "unsupported column "+strconv.Quote(raw))
	}
	return col, nil
}

// SortOrder is the direction of a review listing.
type SortOrder int

const (
	SortDesc SortOrder = iota
	SortAsc
)

// String returns "asc" or "desc".
func (o SortOrder) String() string {
	if o == SortAsc {
		return "asc"
	}
	return "desc"
}

// ParseSortOrder accepts asc or desc in any case. An empty value selects desc.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(raw) {
	case "", "desc":
		return SortDesc, nil
	case "asc":
		return SortAsc, nil
	default:
		return 0, NewValidationError("order", "must be asc or desc")
	}
}

// Page is a validated limit/page pair. Number is 1-based.
type Page struct {
	Limit  int
	Number int
}

// Offset returns the row offset of the page. Page 0 is treated as page 1.
// Limit and Number never exceed math.MaxInt32, so the product fits in int.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// ParsePage parses the limit and p query values. Empty values take the
// defaults; anything that is not a non-negative integer is rejected.
func ParsePage(rawLimit, rawPage string) (Page, error) {
	limit, err := parseNonNegative("limit", rawLimit, DefaultPageLimit)
	if err != nil {
		return Page{}, err
	}
	page, err := parseNonNegative("p", rawPage, DefaultPage)
	if err != nil {
		return Page{}, err
	}
	return Page{Limit: limit, Number: page}, nil
}

// parseNonNegative clamps values above math.MaxInt32 to math.MaxInt32; a
// page that far out is simply empty.
func parseNonNegative(field, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && n == math.MaxInt32) {
		return 0, NewValidationError(field, "must be a non-negative integer")
	}
	if n < 0 {
		return 0, NewValidationError(field, "must be a non-negative integer")
	}
	return int(n), nil
}

// ParseID parses a numeric path identifier such as review_id or comment_id.
// Identifiers are int4 columns, so a number outside that range cannot exist
// and is reported as a NotFoundError for the entity named by field.
func ParseID(field, raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, NewNotFoundError(strings.TrimSuffix(field, "_id"), raw)
	}
	if err != nil {
		return 0, NewValidationError(field, "must be numeric")
	}
	return int(id), nil
}

// ReviewListParams holds the raw query values of a review listing request.
// Nothing in it has been validated.
type ReviewListParams struct {
	SortBy   string
	Order    string
	Category string
	Limit    string
	Page     string
}

// ReviewQuery is a validated review listing request.
type ReviewQuery struct {
	SortBy   SortColumn
	Order    SortOrder
	Category string
	Page     Page
}
