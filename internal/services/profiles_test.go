package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, studentID := f.registerStudent(t, "s@x.com")

	tests := []struct {
		name     string
		fileName string
		data     []byte
		want     error
	}{
		{"empty", "cv.pdf", nil, ErrResumeEmpty},
		{"wrong type", "cv.exe", []byte("MZ"), ErrResumeType},
		{"no extension", "cv", []byte("data"), ErrResumeType},
		{"too large", "cv.pdf", bytes.Repeat([]byte("a"), types.MaxResumeSize+1), ErrResumeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.profiles.UploadResume(ctx, studentID, tt.fileName, tt.data)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	_, err := f.profiles.Resume(ctx, studentID)
	assert.True(t, errors.Is(err, store.ErrResumeNotFound))

	resume, err := f.profiles.UploadResume(ctx, studentID, "../../My CV.DOCX", []byte("PK"))
	require.NoError(t, err)
	assert.Equal(t, "My CV.DOCX", resume.FileName)
	assert.Equal(t, resumeContentTypes[".docx"], resume.ContentType)

	stored, err := f.profiles.Resume(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), stored.Data)
}

func TestUpdateProfiles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	studentAccount, studentID := f.registerStudent(t, "s@x.com")
	companyAccount, _ := f.registerCompany(t, "c@x.com")

	_, err := f.profiles.UpdateStudentProfile(ctx, studentAccount, StudentFields{})
	assert.Equal(t, errs.Validation, errs.KindOf(err))

	updated, err := f.profiles.UpdateStudentProfile(ctx, studentAccount, StudentFields{
		FullName:   "Ada Lovelace",
		GitHubLink: "https://github.com/ada",
		Skills:     []string{"Go", "Postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, studentID, updated.ID)

	public, err := f.profiles.PublicStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", public.FullName)
	assert.Equal(t, "https://github.com/ada", public.GitHubLink)
	assert.Equal(t, []string{"Go", "Postgres"}, public.SkillList())
	assert.Equal(t, "s@x.com", public.Account.Email)

	company, err := f.profiles.UpdateCompanyProfile(ctx, companyAccount, CompanyFields{CompanyName: "Acme", Website: "https://acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Remote", company.Location)

	_, err = f.profiles.CompanyProfile(ctx, studentAccount)
	assert.True(t, errors.Is(err, store.ErrCompanyProfileNotFound))
}

func TestContacts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.contacts.Submit(ctx, ContactInput{Name: "N", Email: "bad", Message: "hi"})
	assert.Equal(t, errs.Validation, errs.KindOf(err))

	message, err := f.contacts.Submit(ctx, ContactInput{Name: "N", Email: "N@X.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "n@x.com", message.Email)

	reviewed, err := f.contacts.ToggleReviewed(ctx, message.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)

	messages, err := f.contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Reviewed)

	require.NoError(t, f.contacts.Delete(ctx, message.ID))
	assert.True(t, errors.Is(f.contacts.Delete(ctx, message.ID), store.ErrContactNotFound))
}
