package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/innovate-connect/innovate/internal/auth"
	"github.com/innovate-connect/innovate/internal/config"
	"github.com/innovate-connect/innovate/internal/logging"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/innovate-connect/innovate/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeNotifier) messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Message(nil), f.sent...)
}

type fixture struct {
	db           *gorm.DB
	store        *store.Store
	tokens       *auth.TokenIssuer
	notifier     *fakeNotifier
	accounts     *AccountService
	applications *ApplicationService
	internships  *InternshipService
	ideas        *IdeaService
	profiles     *ProfileService
	contacts     *ContactService
	admin        *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	st := store.New(db)
	logger := logging.Discard()

	tokens, err := auth.NewTokenIssuer(config.JWTConfig{
		Secret:   "services-test-secret",
		Issuer:   "innovate-connect",
		Audience: "innovate-connect",
		TTL:      time.Hour,
	})
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	notify := Notifications{Notifier: notifier, Logger: logger, Timeout: time.Second}

	return &fixture{
		db:           db,
		store:        st,
		tokens:       tokens,
		notifier:     notifier,
		accounts:     NewAccountService(st, tokens, notify, logger),
		applications: NewApplicationService(st, notify, logger),
		internships:  NewInternshipService(st, logger),
		ideas:        NewIdeaService(st, logger),
		profiles:     NewProfileService(st),
		contacts:     NewContactService(st),
		admin:        NewAdminService(st),
	}
}

// registerStudent returns the account id and student profile id.
func (f *fixture) registerStudent(t *testing.T, email string) (uint, uint) {
	t.Helper()
	ctx := context.Background()

	accountID, err := f.accounts.Register(ctx, Registration{
		Email:    email,
		Password: "Pw1!aaaa",
		Profile:  StudentFields{FullName: "Student " + email, University: "MIT", Skills: []string{"Go"}},
	})
	require.NoError(t, err)

	profileID, err := f.store.StudentProfileIDByAccount(ctx, accountID)
	require.NoError(t, err)

	return accountID, profileID
}

// registerCompany returns the account id and company profile id.
func (f *fixture) registerCompany(t *testing.T, email string) (uint, uint) {
	t.Helper()
	ctx := context.Background()

	accountID, err := f.accounts.Register(ctx, Registration{
		Email:    email,
		Password: "Pw1!aaaa",
		Profile:  CompanyFields{CompanyName: "Company " + email, Location: "Remote"},
	})
	require.NoError(t, err)

	profileID, err := f.store.CompanyProfileIDByAccount(ctx, accountID)
	require.NoError(t, err)

	return accountID, profileID
}

func (f *fixture) postInternship(t *testing.T, companyProfileID uint, title string) uint {
	t.Helper()

	internship, err := f.internships.Create(context.Background(), companyProfileID, InternshipInput{
		Title:       title,
		Description: "Work on the API",
		Technology:  "Go",
		Stipend:     500,
	})
	require.NoError(t, err)

	return internship.ID
}

var errSMTPDown = errors.New("smtp: connection refused")
