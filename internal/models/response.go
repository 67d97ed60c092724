package models

import "strings"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// CountedResponse is the envelope for unpaginated collections.
type CountedResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// ListResponse adds the pagination contract to the envelope.
type ListResponse struct {
	Success     bool        `json:"success"`
	Count       int         `json:"count"`
	Total       int64       `json:"total"`
	Pages       int64       `json:"pages"`
	CurrentPage int         `json:"currentPage"`
	Data        interface{} `json:"data"`
}

// SortField is one sort key; Desc comes from the "-" prefix convention.
type SortField struct {
	Field string
	Desc  bool
}

type PageRequest struct {
	Sort  []SortField
	Page  int
	Limit int
}

func (p PageRequest) Skip() int {
	return (p.Page - 1) * p.Limit
}

// ParseSort splits a comma-separated sort expression; a "-" prefix marks a
// field as descending.
func ParseSort(s string) []SortField {
	if s == "" {
		return nil
	}
	var fields []SortField
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Desc: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}

// PageCount is ceil(total/limit).
func PageCount(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
