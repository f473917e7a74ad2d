package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rzeqiri/jobportal/internal/models"
)

func TestAddReviewRequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	_, err := f.reviews.Add(context.Background(), AddReviewParams{CompanyID: "acme", Rating: 4})
	require.ErrorIs(t, err, ErrAuth)
}

func TestAddReviewPrependsAndRecordsAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := signUp(t, f, "Reviewer", "reviewer@example.com", models.RoleJobseeker)

	first, err := f.reviews.Add(ctx, AddReviewParams{
		CompanyID: "acme",
		Rating:    4,
		Title:     "Solid place",
		Pros:      "Good team",
		Cons:      "Long hours",
		Recommend: true,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, first.UserID)
	require.Equal(t, "Reviewer", first.UserName)

	second, err := f.reviews.Add(ctx, AddReviewParams{CompanyID: "globex", Rating: 2})
	require.NoError(t, err)

	all := f.reviews.CompanyReviews(ctx, "")
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)

	acme := f.reviews.CompanyReviews(ctx, "acme")
	require.Len(t, acme, 1)
	require.Equal(t, "Solid place", acme[0].Title)
}

func TestAddReviewRejectsDuplicatePerCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signUp(t, f, "Reviewer", "reviewer@example.com", models.RoleJobseeker)

	_, err := f.reviews.Add(ctx, AddReviewParams{CompanyID: "acme", Rating: 4})
	require.NoError(t, err)

	_, err = f.reviews.Add(ctx, AddReviewParams{CompanyID: "acme", Rating: 1})
	require.ErrorIs(t, err, ErrConflict)
	require.EqualError(t, err, "You have already reviewed this company")

	// The same user may still review a different company, and a different
	// user the same company.
	_, err = f.reviews.Add(ctx, AddReviewParams{CompanyID: "globex", Rating: 3})
	require.NoError(t, err)

	signUp(t, f, "Other", "other@example.com", models.RoleJobseeker)
	_, err = f.reviews.Add(ctx, AddReviewParams{CompanyID: "acme", Rating: 5})
	require.NoError(t, err)
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.Equal(t, models.RatingSummary{}, f.reviews.AverageRating(ctx, "acme"))

	ratings := []float64{4, 5, 3}
	for i, r := range ratings {
		signUp(t, f, "Reviewer", emailN(i), models.RoleJobseeker)
		_, err := f.reviews.Add(ctx, AddReviewParams{CompanyID: "acme", Rating: r})
		require.NoError(t, err)
	}

	summary := f.reviews.AverageRating(ctx, "acme")
	require.Equal(t, models.RatingSummary{Average: 4.0, Count: 3}, summary)
}

func TestAverageRatingTruncatedMean(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 5, 4, 4 averages to 4.333..., which rounds to 4.3.
	ratings := []float64{5, 4, 4}
	for i, r := range ratings {
		signUp(t, f, "Reviewer", emailN(i), models.RoleJobseeker)
		_, err := f.reviews.Add(ctx, AddReviewParams{CompanyID: "acme", Rating: r})
		require.NoError(t, err)
	}

	require.Equal(t, models.RatingSummary{Average: 4.3, Count: 3}, f.reviews.AverageRating(ctx, "acme"))
}

func TestHasReviewed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.False(t, f.reviews.HasReviewed(ctx, "acme"))

	signUp(t, f, "Reviewer", "reviewer@example.com", models.RoleJobseeker)
	require.False(t, f.reviews.HasReviewed(ctx, "acme"))

	_, err := f.reviews.Add(ctx, AddReviewParams{CompanyID: "acme", Rating: 4})
	require.NoError(t, err)
	require.True(t, f.reviews.HasReviewed(ctx, "acme"))
	require.False(t, f.reviews.HasReviewed(ctx, "globex"))

	signUp(t, f, "Other", "other@example.com", models.RoleJobseeker)
	require.False(t, f.reviews.HasReviewed(ctx, "acme"))
}

func emailN(i int) string {
	return string(rune('a'+i)) + "@example.com"
}
