package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rzeqiri/jobportal/internal/models"
)

// ShowProfile prints the current user's profile.
func (a *App) ShowProfile(ctx context.Context) error {
	profile := a.profiles.Get(ctx)
	printlnFn(fmt.Sprintf("name=%s phone=%s location=%s", profile.FullName, profile.Phone, profile.Location))
	printlnFn(fmt.Sprintf("skills=%s", strings.Join(profile.Skills, ", ")))
	for _, e := range profile.WorkExperience {
		printlnFn(fmt.Sprintf("work: %s @ %s (%s)", e.Title, e.Company, e.Period))
	}
	for _, e := range profile.Education {
		printlnFn(fmt.Sprintf("education: %s, %s (%s)", e.Degree, e.School, e.Period))
	}
	return nil
}

// EditProfile prompts for the basic contact fields and saves the profile.
func (a *App) EditProfile(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		return err
	}
	skills, err := getSimpleText(a.reader, "Enter skills (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	profile := a.profiles.Get(ctx)
	profile.FullName = fullName
	profile.Phone = phone
	profile.Location = location
	profile.Skills = splitSkills(skills)

	if err := a.profiles.Save(ctx, profile); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Profile saved")
	return nil
}

// AddExperience appends a work-experience record to the profile.
func (a *App) AddExperience(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter job title", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Enter company", os.Stdout)
	if err != nil {
		return err
	}
	period, err := getSimpleText(a.reader, "Enter period (e.g. 2020-2023)", os.Stdout)
	if err != nil {
		return err
	}

	exp, err := a.profiles.AddWorkExperience(ctx, models.WorkExperience{
		Title:   title,
		Company: company,
		Period:  period,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Added experience %s", exp.ID))
	return nil
}

// AddEducation appends an education record to the profile.
func (a *App) AddEducation(ctx context.Context) error {
	degree, err := getSimpleText(a.reader, "Enter degree", os.Stdout)
	if err != nil {
		return err
	}
	school, err := getSimpleText(a.reader, "Enter school", os.Stdout)
	if err != nil {
		return err
	}
	period, err := getSimpleText(a.reader, "Enter period", os.Stdout)
	if err != nil {
		return err
	}

	edu, err := a.profiles.AddEducation(ctx, models.Education{
		Degree: degree,
		School: school,
		Period: period,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Added education %s", edu.ID))
	return nil
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
