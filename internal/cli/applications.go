package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rzeqiri/jobportal/internal/models"
	"github.com/rzeqiri/jobportal/internal/store"
)

// Apply submits an application to a job, optionally with a profile snapshot
// and cover letter.
func (a *App) Apply(ctx context.Context) error {
	jobID, err := getSimpleText(a.reader, "Enter job id", os.Stdout)
	if err != nil {
		return err
	}
	withProfile, err := getSimpleText(a.reader, "Attach profile? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	var app *models.Application
	if withProfile == "y" {
		coverLetter, err := getMultiline(a.reader, "Cover letter", os.Stdout)
		if err != nil {
			return err
		}
		app, err = a.applications.ApplyWithProfile(ctx, jobID, store.ApplyOptions{
			CoverLetter: coverLetter,
			UseResume:   true,
		})
		if err != nil {
			printlnFn(err.Error())
			return err
		}
	} else {
		app, err = a.applications.Apply(ctx, jobID)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
	}

	printlnFn(fmt.Sprintf("Applied to job %s (status: %s)", app.JobID, app.Status))
	return nil
}

// MyApplications lists the current user's applications.
func (a *App) MyApplications(ctx context.Context) error {
	apps := a.applications.Applied(ctx)
	if len(apps) == 0 {
		printlnFn("No applications")
		return nil
	}
	for _, app := range apps {
		printlnFn(fmt.Sprintf("%s  job=%s  status=%s  applied=%s",
			app.ID, app.JobID, app.Status, app.AppliedAt.Format("2006-01-02")))
	}
	return nil
}

// Withdraw removes the current user's application to a job.
func (a *App) Withdraw(ctx context.Context) error {
	jobID, err := getSimpleText(a.reader, "Enter job id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.applications.Remove(ctx, jobID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Application withdrawn")
	return nil
}

// Inbox shows the employer/admin view of incoming applications.
func (a *App) Inbox(ctx context.Context) error {
	apps := a.applications.ForEmployer(ctx, nil)
	if len(apps) == 0 {
		printlnFn("No applications")
		return nil
	}
	for _, app := range apps {
		printlnFn(fmt.Sprintf("%s  applicant=%s <%s>  job=%s  status=%s",
			app.AppliedAt.Format("2006-01-02"), app.Applicant.FullName, app.Applicant.Email, app.Job.Title, app.Status))
	}
	return nil
}

// SetStatus updates an applicant's application status as employer/admin.
func (a *App) SetStatus(ctx context.Context) error {
	applicantID, err := getSimpleText(a.reader, "Enter applicant id", os.Stdout)
	if err != nil {
		return err
	}
	jobID, err := getSimpleText(a.reader, "Enter job id", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Enter status (pending/reviewed/interview/rejected/accepted)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.applications.UpdateStatusByEmployer(ctx, applicantID, jobID, models.ApplicationStatus(status)); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Status updated")
	return nil
}
