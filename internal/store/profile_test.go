package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rzeqiri/jobportal/internal/models"
)

func TestProfileRequiresSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.Equal(t, models.Profile{}, f.profiles.Get(ctx))
	require.ErrorIs(t, f.profiles.Save(ctx, models.Profile{Phone: "123"}), ErrAuth)
	require.ErrorIs(t, f.profiles.SetPhoto(ctx, "data:"), ErrAuth)
	_, err := f.profiles.AddWorkExperience(ctx, models.WorkExperience{Title: "Dev"})
	require.ErrorIs(t, err, ErrAuth)
}

func TestProfileRoundTripAndIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signUp(t, f, "User", "user@example.com", models.RoleJobseeker)
	require.NoError(t, f.profiles.Save(ctx, models.Profile{
		FullName: "User U.",
		Phone:    "555-0101",
		Location: "Prishtina",
		Skills:   []string{"Go"},
	}))

	got := f.profiles.Get(ctx)
	require.Equal(t, "User U.", got.FullName)
	require.Equal(t, []string{"Go"}, got.Skills)

	// The profile outlives the session but never leaks to another user.
	signUp(t, f, "Other", "other@example.com", models.RoleJobseeker)
	require.Equal(t, models.Profile{}, f.profiles.Get(ctx))

	signIn(t, f, "user@example.com")
	require.Equal(t, "User U.", f.profiles.Get(ctx).FullName)
}

func TestPhotoAndResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signUp(t, f, "User", "user@example.com", models.RoleJobseeker)

	require.Empty(t, f.profiles.PhotoURL(ctx))
	require.NoError(t, f.profiles.SetPhoto(ctx, "data:image/png;base64,iVBOR"))
	require.Equal(t, "data:image/png;base64,iVBOR", f.profiles.PhotoURL(ctx))

	require.Nil(t, f.profiles.Resume(ctx))
	require.NoError(t, f.profiles.SetResume(ctx, &models.ResumeFile{Name: "cv.pdf", Data: "ZGF0YQ=="}))
	resume := f.profiles.Resume(ctx)
	require.NotNil(t, resume)
	require.Equal(t, "cv.pdf", resume.Name)

	// Clearing the résumé works through the same setter.
	require.NoError(t, f.profiles.SetResume(ctx, nil))
	require.Nil(t, f.profiles.Resume(ctx))
}

func TestWorkExperienceCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signUp(t, f, "User", "user@example.com", models.RoleJobseeker)

	older, err := f.profiles.AddWorkExperience(ctx, models.WorkExperience{
		Title:   "Junior Developer",
		Company: "Acme",
		Period:  "2020 - 2022",
	})
	require.NoError(t, err)
	require.NotEmpty(t, older.ID)

	newer, err := f.profiles.AddWorkExperience(ctx, models.WorkExperience{
		Title:   "Developer",
		Company: "Globex",
		Period:  "2022 - Present",
	})
	require.NoError(t, err)

	list := f.profiles.WorkExperience(ctx)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID)
	require.Equal(t, older.ID, list[1].ID)

	// Update merges non-empty fields only.
	require.NoError(t, f.profiles.UpdateWorkExperience(ctx, older.ID, models.WorkExperience{Title: "Senior Developer"}))
	list = f.profiles.WorkExperience(ctx)
	require.Equal(t, "Senior Developer", list[1].Title)
	require.Equal(t, "Acme", list[1].Company)
	require.Equal(t, "2020 - 2022", list[1].Period)

	err = f.profiles.UpdateWorkExperience(ctx, "missing-id", models.WorkExperience{Title: "X"})
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.profiles.RemoveWorkExperience(ctx, older.ID))
	require.Len(t, f.profiles.WorkExperience(ctx), 1)

	// Removing an id that is already gone succeeds.
	require.NoError(t, f.profiles.RemoveWorkExperience(ctx, older.ID))
}

func TestEducationCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signUp(t, f, "User", "user@example.com", models.RoleJobseeker)

	edu, err := f.profiles.AddEducation(ctx, models.Education{
		Degree: "BSc Computer Science",
		School: "University of Prishtina",
		Period: "2016 - 2020",
	})
	require.NoError(t, err)
	require.NotEmpty(t, edu.ID)

	require.NoError(t, f.profiles.UpdateEducation(ctx, edu.ID, models.Education{School: "UP"}))
	list := f.profiles.Education(ctx)
	require.Len(t, list, 1)
	require.Equal(t, "UP", list[0].School)
	require.Equal(t, "BSc Computer Science", list[0].Degree)

	require.ErrorIs(t, f.profiles.UpdateEducation(ctx, "missing-id", models.Education{School: "X"}), ErrNotFound)

	require.NoError(t, f.profiles.RemoveEducation(ctx, edu.ID))
	require.Empty(t, f.profiles.Education(ctx))
}

func TestSubRecordEditsPreserveRestOfProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signUp(t, f, "User", "user@example.com", models.RoleJobseeker)
	require.NoError(t, f.profiles.Save(ctx, models.Profile{FullName: "User U.", Phone: "555"}))

	_, err := f.profiles.AddWorkExperience(ctx, models.WorkExperience{Title: "Dev"})
	require.NoError(t, err)

	got := f.profiles.Get(ctx)
	require.Equal(t, "User U.", got.FullName)
	require.Equal(t, "555", got.Phone)
	require.Len(t, got.WorkExperience, 1)
}
