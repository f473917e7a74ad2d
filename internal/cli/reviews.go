package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rzeqiri/jobportal/internal/store"
)

// AddReview submits a company review by the current user.
func (a *App) AddReview(ctx context.Context) error {
	companyID, err := getSimpleText(a.reader, "Enter company id", os.Stdout)
	if err != nil {
		return err
	}
	ratingText, err := getSimpleText(a.reader, "Enter rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.ParseFloat(ratingText, 64)
	if err != nil {
		printlnFn("Rating must be a number")
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	pros, err := getMultiline(a.reader, "Pros", os.Stdout)
	if err != nil {
		return err
	}
	cons, err := getMultiline(a.reader, "Cons", os.Stdout)
	if err != nil {
		return err
	}
	recommend, err := getSimpleText(a.reader, "Recommend? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	review, err := a.reviews.Add(ctx, store.AddReviewParams{
		CompanyID: companyID,
		Rating:    rating,
		Title:     title,
		Pros:      pros,
		Cons:      cons,
		Recommend: recommend == "y",
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Review %s added", review.ID))
	return nil
}

// Reviews lists a company's reviews.
func (a *App) Reviews(ctx context.Context) error {
	companyID, err := getSimpleText(a.reader, "Enter company id", os.Stdout)
	if err != nil {
		return err
	}
	reviews := a.reviews.CompanyReviews(ctx, companyID)
	if len(reviews) == 0 {
		printlnFn("No reviews")
		return nil
	}
	for _, r := range reviews {
		printlnFn(fmt.Sprintf("%.1f  %s — %s", r.Rating, r.Title, r.UserName))
	}
	return nil
}

// Rating prints a company's average rating.
func (a *App) Rating(ctx context.Context) error {
	companyID, err := getSimpleText(a.reader, "Enter company id", os.Stdout)
	if err != nil {
		return err
	}
	summary := a.reviews.AverageRating(ctx, companyID)
	printlnFn(fmt.Sprintf("average=%.1f count=%d", summary.Average, summary.Count))
	return nil
}
