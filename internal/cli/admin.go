package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rzeqiri/jobportal/internal/models"
)

// Users lists the roster with derived roles. Admin only.
func (a *App) Users(ctx context.Context) error {
	users, err := a.identity.AllUsers(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	for _, u := range users {
		marker := ""
		if u.IsAdmin {
			marker = " *"
		}
		printlnFn(fmt.Sprintf("%s  %s <%s>  role=%s%s", u.ID, u.FullName, u.Email, u.Role, marker))
	}
	return nil
}

// SetRole changes a user's stored role. Admin only.
func (a *App) SetRole(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (admin/employer/jobseeker)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.identity.SetUserRole(ctx, userID, models.Role(role)); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Role updated")
	return nil
}

// DeleteUser removes a user and all their data. Admin only.
func (a *App) DeleteUser(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.identity.DeleteUser(ctx, userID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("User deleted")
	return nil
}

// Stats prints the system aggregates. Admin only.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.identity.SystemStats(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("users=%d jobs=%d reviews=%d", stats.TotalUsers, stats.TotalJobs, stats.TotalReviews))
	printlnFn(fmt.Sprintf("admins=%d employers=%d jobseekers=%d",
		stats.RoleStats[models.RoleAdmin], stats.RoleStats[models.RoleEmployer], stats.RoleStats[models.RoleJobseeker]))
	return nil
}
