package store

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rzeqiri/jobportal/internal/kv"
	"github.com/rzeqiri/jobportal/internal/models"
)

// ReviewStore keeps company reviews in a single sequence, newest first,
// enforcing one review per user per company.
type ReviewStore struct {
	kv       kv.Store
	identity *IdentityStore
}

// NewReviewStore builds a ReviewStore over the shared namespace.
func NewReviewStore(s kv.Store, identity *IdentityStore) *ReviewStore {
	return &ReviewStore{kv: s, identity: identity}
}

// AddReviewParams are the inputs of Add.
type AddReviewParams struct {
	CompanyID string
	Rating    float64
	Title     string
	Pros      string
	Cons      string
	Recommend bool
}

func (s *ReviewStore) reviews(ctx context.Context) []models.Review {
	return kv.ReadJSON(ctx, s.kv, reviewsKey, []models.Review{})
}

// CompanyReviews returns the reviews for a company, newest first. An empty
// companyID returns every review.
func (s *ReviewStore) CompanyReviews(ctx context.Context, companyID string) []models.Review {
	all := s.reviews(ctx)
	if companyID == "" {
		return all
	}
	var out []models.Review
	for _, r := range all {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out
}

// Add prepends a review by the current user. A second review of the same
// company by the same user is a conflict.
func (s *ReviewStore) Add(ctx context.Context, p AddReviewParams) (*models.Review, error) {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return nil, authErr("Not authenticated")
	}

	reviews := s.reviews(ctx)
	for _, r := range reviews {
		if r.CompanyID == p.CompanyID && r.UserID == user.ID {
			return nil, conflictErr("You have already reviewed this company")
		}
	}

	review := models.Review{
		ID:        uuid.NewString(),
		CompanyID: p.CompanyID,
		UserID:    user.ID,
		UserName:  user.FullName,
		Rating:    p.Rating,
		Title:     p.Title,
		Pros:      p.Pros,
		Cons:      p.Cons,
		Recommend: p.Recommend,
		CreatedAt: time.Now().UTC(),
	}

	next := append([]models.Review{review}, reviews...)
	if err := kv.WriteJSON(ctx, s.kv, reviewsKey, next); err != nil {
		return nil, err
	}
	return &review, nil
}

// AverageRating returns the arithmetic mean of the company's ratings
// rounded to one decimal place, {0,0} when no reviews exist.
func (s *ReviewStore) AverageRating(ctx context.Context, companyID string) models.RatingSummary {
	reviews := s.CompanyReviews(ctx, companyID)
	if len(reviews) == 0 {
		return models.RatingSummary{}
	}
	total := 0.0
	for _, r := range reviews {
		total += r.Rating
	}
	mean := total / float64(len(reviews))
	return models.RatingSummary{
		Average: math.Round(mean*10) / 10,
		Count:   len(reviews),
	}
}

// HasReviewed reports whether the current user already reviewed the
// company. False when unauthenticated.
func (s *ReviewStore) HasReviewed(ctx context.Context, companyID string) bool {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return false
	}
	for _, r := range s.CompanyReviews(ctx, companyID) {
		if r.UserID == user.ID {
			return true
		}
	}
	return false
}
