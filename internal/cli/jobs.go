package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rzeqiri/jobportal/internal/insights"
	"github.com/rzeqiri/jobportal/internal/models"
)

// PostJob stores an employer-submitted posting.
func (a *App) PostJob(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter job title", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Enter company", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}
	salary, err := getSimpleText(a.reader, "Enter salary range (e.g. 900-1400)", os.Stdout)
	if err != nil {
		return err
	}

	job, err := a.jobs.Add(ctx, models.Job{
		Title:    title,
		Company:  company,
		Category: category,
		Salary:   salary,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Posted job %s", job.ID))
	if cmp, ok := insights.CompareSalary(category, salary); ok {
		printlnFn(fmt.Sprintf("Offered salary is %s market average (percentile %d)", cmp.Verdict, cmp.Percentile))
	}
	return nil
}

// Jobs lists custom postings.
func (a *App) Jobs(ctx context.Context) error {
	jobs := a.jobs.Jobs(ctx)
	if len(jobs) == 0 {
		printlnFn("No jobs posted")
		return nil
	}
	for _, j := range jobs {
		printlnFn(fmt.Sprintf("%s  %s @ %s  (%s)", j.ID, j.Title, j.Company, j.PostedDate))
	}
	return nil
}

// SaveJob toggles a bookmark on a job.
func (a *App) SaveJob(ctx context.Context) error {
	jobID, err := getSimpleText(a.reader, "Enter job id", os.Stdout)
	if err != nil {
		return err
	}
	saved, err := a.saved.Toggle(ctx, jobID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if saved {
		printlnFn("Job saved")
	} else {
		printlnFn("Job removed from saved")
	}
	return nil
}

// SavedJobs lists the current user's bookmarks.
func (a *App) SavedJobs(ctx context.Context) error {
	ids := a.saved.Saved(ctx)
	if len(ids) == 0 {
		printlnFn("No saved jobs")
		return nil
	}
	for _, id := range ids {
		printlnFn(id)
	}
	return nil
}

// TrackView records a job view, the hook presentation code calls when a
// posting is opened.
func (a *App) TrackView(ctx context.Context) error {
	jobID, err := getSimpleText(a.reader, "Enter job id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.analytics.TrackView(ctx, jobID); err != nil {
		return err
	}
	printlnFn("View tracked")
	return nil
}

// Analytics prints a job's counters and conversion rate.
func (a *App) Analytics(ctx context.Context) error {
	jobID, err := getSimpleText(a.reader, "Enter job id", os.Stdout)
	if err != nil {
		return err
	}
	stats := a.analytics.JobAnalytics(ctx, jobID)
	printlnFn(fmt.Sprintf("views=%d applications=%d conversion=%d%%",
		stats.Views, stats.Applications, stats.ConversionRate))
	return nil
}
