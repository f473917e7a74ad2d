package models

import "time"

// Review is a company review. At most one exists per (user, company) pair.
type Review struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    float64   `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Pros      string    `json:"pros,omitempty"`
	Cons      string    `json:"cons,omitempty"`
	Recommend bool      `json:"recommend"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingSummary aggregates a company's reviews. Average is the arithmetic
// mean rounded to one decimal place, zero when no reviews exist.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
