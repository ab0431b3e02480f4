// Package service contains the feature services of the admin API.  Each
// service wraps exactly one backing stored procedure per operation and
// returns the uniform Result contract consumed by the HTTP envelope
// builder.  Expected business failures travel as nonzero error codes inside
// a Result; Go errors are reserved for genuinely unexpected faults (broken
// connection, scan mismatch) that the boundary maps to a 500.
package service

import "math"

// Result is the collaborator contract between a feature service and the
// response envelope builder: error code zero means success and Data carries
// the payload; any nonzero code carries a client-facing message.
type Result struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// OK builds a successful Result.
func OK(message string, data any) Result {
	return Result{Message: message, Data: data}
}

// Fail builds a failed Result with the given code and message.
func Fail(code int, message string) Result {
	if code == 0 {
		code = 1
	}
	return Result{ErrorCode: code, Message: message}
}

// Pagination echoes the resolved paging values back to the client alongside
// the record totals computed by the backing procedure.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	PageSize     int   `json:"pageSize"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int64 `json:"totalPages"`
}

// NewPagination derives the page count from the record total; a page beyond
// the last simply yields an empty item set upstream, never an error.
func NewPagination(page, pageSize int, totalRecords int64) Pagination {
	var totalPages int64
	if pageSize > 0 {
		totalPages = int64(math.Ceil(float64(totalRecords) / float64(pageSize)))
	}
	return Pagination{
		CurrentPage:  page,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
	}
}
