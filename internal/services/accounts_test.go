package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/innovate-connect/innovate/internal/errs"
	"github.com/innovate-connect/innovate/internal/models"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesAccountAndProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	accountID, err := f.accounts.Register(ctx, Registration{
		Email:    "  A@X.com ",
		Password: "Pw1!aaaa",
		Profile:  StudentFields{FullName: "Ada", Skills: []string{"Go", " go ", "", "SQL"}},
	})
	require.NoError(t, err)

	account, err := f.store.FindAccountByID(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, types.RoleStudent, account.Role)
	assert.NotEqual(t, "Pw1!aaaa", account.PasswordHash)

	profile, err := f.store.StudentProfileByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FullName)
	assert.Equal(t, []string{"Go", "SQL"}, profile.SkillList())

	var companies int64
	require.NoError(t, f.db.Model(&models.CompanyProfile{}).Count(&companies).Error)
	assert.Zero(t, companies)

	sent := f.notifier.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "a@x.com", sent[0].To)
	assert.Equal(t, welcomeSubject, sent[0].Subject)
	assert.Contains(t, sent[0].HTMLBody, "Welcome, Ada!")
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		reg  Registration
	}{
		{"missing email", Registration{Password: "Pw1!aaaa", Profile: StudentFields{}}},
		{"bad email", Registration{Email: "not-an-email", Password: "Pw1!aaaa", Profile: StudentFields{}}},
		{"short password", Registration{Email: "a@x.com", Password: "short", Profile: StudentFields{}}},
		{"password over 72 bytes", Registration{Email: "long@x.com", Password: strings.Repeat("a", 100), Profile: StudentFields{FullName: "Long"}}},
		{"missing profile", Registration{Email: "a@x.com", Password: "Pw1!aaaa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.accounts.Register(ctx, tt.reg)
			assert.Equal(t, errs.Validation, errs.KindOf(err))
		})
	}

	var accounts int64
	require.NoError(t, f.db.Model(&models.Account{}).Count(&accounts).Error)
	assert.Zero(t, accounts)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.accounts.Register(ctx, Registration{Email: "a@x.com", Password: "Pw1!aaaa", Profile: StudentFields{FullName: "A"}})
	require.NoError(t, err)

	_, err = f.accounts.Register(ctx, Registration{Email: "A@X.COM", Password: "Pw1!bbbb", Profile: CompanyFields{CompanyName: "B"}})
	assert.True(t, errors.Is(err, store.ErrDuplicateEmail))
	assert.Equal(t, errs.Duplicate, errs.KindOf(err))

	var profiles int64
	require.NoError(t, f.db.Model(&models.CompanyProfile{}).Count(&profiles).Error)
	assert.Zero(t, profiles)
}

func TestRegister_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const attempts = 6
	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.accounts.Register(ctx, Registration{
				Email:    "race@x.com",
				Password: "Pw1!aaaa",
				Profile:  StudentFields{FullName: "Racer"},
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, errors.Is(err, store.ErrDuplicateEmail), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, successes)

	var accounts, profiles int64
	require.NoError(t, f.db.Model(&models.Account{}).Count(&accounts).Error)
	require.NoError(t, f.db.Model(&models.StudentProfile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, accounts)
	assert.EqualValues(t, 1, profiles)
}

func TestRegister_RollsBackWhenProfileInsertFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Migrator().DropTable(&models.CompanyProfile{}))

	_, err := f.accounts.Register(ctx, Registration{
		Email:    "c@x.com",
		Password: "Pw1!aaaa",
		Profile:  CompanyFields{CompanyName: "Acme"},
	})
	require.Error(t, err)

	exists, err := f.store.EmailExists(ctx, "c@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, f.notifier.messages())
}

func TestRegister_NotificationFailureIsNotSurfaced(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errSMTPDown

	accountID, err := f.accounts.Register(context.Background(), Registration{
		Email:    "c@x.com",
		Password: "Pw1!aaaa",
		Profile:  CompanyFields{CompanyName: "Acme"},
	})
	require.NoError(t, err)
	assert.NotZero(t, accountID)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	accountID, _ := f.registerStudent(t, "a@x.com")

	session, err := f.accounts.Login(ctx, " A@x.com", "Pw1!aaaa")
	require.NoError(t, err)
	assert.Equal(t, accountID, session.Account.ID)
	assert.Equal(t, "Student a@x.com", session.Account.Name)

	claims, err := f.tokens.Verify(session.Token)
	require.NoError(t, err)
	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, id)
	assert.Equal(t, types.RoleStudent, claims.Role)

	_, err = f.accounts.Login(ctx, "a@x.com", "wrong-password")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = f.accounts.Login(ctx, "nobody@x.com", "Pw1!aaaa")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.Equal(t, errs.Unauthorized, errs.KindOf(err))
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	accountID, _ := f.registerCompany(t, "c@x.com")

	summary, err := f.accounts.Summary(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "Company c@x.com", summary.Name)
	assert.Equal(t, types.RoleCompany, summary.Role)

	_, err = f.accounts.Summary(ctx, 9999)
	assert.True(t, errors.Is(err, ErrAccountGone))
}

func TestDeleteAccount_AdminProtected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	adminID, err := f.store.CreateAccount(ctx, "admin@x.com", "hash", types.RoleAdmin)
	require.NoError(t, err)

	err = f.accounts.DeleteAccount(ctx, adminID)
	assert.True(t, errors.Is(err, ErrAdminProtected))
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))

	_, err = f.store.FindAccountByID(ctx, adminID)
	assert.NoError(t, err)

	err = f.accounts.DeleteAccount(ctx, 9999)
	assert.True(t, errors.Is(err, store.ErrAccountNotFound))
}

func TestDeleteAccount_StudentWithIdeasAndApplications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	accountID, studentID := f.registerStudent(t, "s@x.com")
	_, companyID := f.registerCompany(t, "c@x.com")

	var ideaIDs, applicationIDs []uint
	for i := 0; i < 2; i++ {
		idea, err := f.ideas.Create(ctx, studentID, IdeaInput{Title: "Idea", Description: "Something new"})
		require.NoError(t, err)
		ideaIDs = append(ideaIDs, idea.ID)
	}
	for i := 0; i < 3; i++ {
		application, err := f.applications.Apply(ctx, studentID, f.postInternship(t, companyID, "Role"))
		require.NoError(t, err)
		applicationIDs = append(applicationIDs, application.ID)
	}

	require.NoError(t, f.accounts.DeleteAccount(ctx, accountID))

	for _, id := range ideaIDs {
		_, err := f.store.FindIdea(ctx, id)
		assert.True(t, errors.Is(err, store.ErrIdeaNotFound))
	}
	for _, id := range applicationIDs {
		_, err := f.store.FindApplication(ctx, id)
		assert.True(t, errors.Is(err, store.ErrApplicationNotFound))
	}

	ideas, err := f.ideas.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Empty(t, ideas)

	applications, err := f.applications.ListForCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Empty(t, applications)

	_, err = f.store.StudentProfileByID(ctx, studentID)
	assert.True(t, errors.Is(err, store.ErrStudentProfileNotFound))
}
