package repositories

import (
	"context"
	"testing"
	"time"

	"bank-console/internal/database"
	"bank-console/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
	ctx  context.Context
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) entry(actor, action, entity, resourceID, outcome string) *models.AuditLog {
	log := &models.AuditLog{
		Actor:      actor,
		Role:       "ADMIN",
		Action:     action,
		Entity:     entity,
		ResourceID: resourceID,
		Outcome:    outcome,
	}
	s.Require().NoError(s.repo.Create(s.ctx, log))
	return log
}

func (s *AuditLogRepositorySuite) TestCreate() {
	sessionID := uuid.New()

	log := &models.AuditLog{
		SessionID:  &sessionID,
		Actor:      "admin",
		Action:     models.AuditActionUserDeleted,
		Entity:     string(models.EntityUsers),
		ResourceID: "42",
	}
	log.SetMetadata("confirmed", true)

	err := s.repo.Create(s.ctx, log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
	s.Equal(models.AuditOutcomeSuccess, log.Outcome)
}

func (s *AuditLogRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AuditLogRepositorySuite) TestGetByID() {
	created := s.entry("admin", models.AuditActionBlockToggled, string(models.EntityAccounts), "7", models.AuditOutcomeSuccess)

	found, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Action, found.Action)
	s.Equal("7", found.ResourceID)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAuditLogNotFound)
}

func (s *AuditLogRepositorySuite) TestMetadataRoundTrip() {
	log := &models.AuditLog{Actor: "admin", Action: models.AuditActionExported, Entity: "users"}
	log.SetMetadata("rows", 15)
	s.Require().NoError(s.repo.Create(s.ctx, log))

	found, err := s.repo.GetByID(s.ctx, log.ID)
	s.Require().NoError(err)
	s.Equal(float64(15), found.GetMetadata("rows", nil))
}

func (s *AuditLogRepositorySuite) TestList_Filters() {
	s.entry("admin", models.AuditActionUserDeleted, "users", "1", models.AuditOutcomeSuccess)
	s.entry("admin", models.AuditActionUserDeleted, "users", "2", models.AuditOutcomeFailure)
	s.entry("other", models.AuditActionLoanApproved, "loans", "9", models.AuditOutcomeSuccess)

	logs, total, err := s.repo.List(s.ctx, AuditLogFilter{}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(logs, 3)

	logs, total, err = s.repo.List(s.ctx, AuditLogFilter{Actor: "admin"}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(logs, 2)

	_, total, err = s.repo.List(s.ctx, AuditLogFilter{Action: models.AuditActionLoanApproved}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)

	_, total, err = s.repo.List(s.ctx, AuditLogFilter{Entity: "users", Outcome: models.AuditOutcomeFailure}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *AuditLogRepositorySuite) TestList_NewestFirstAndPaged() {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		log := &models.AuditLog{
			Actor:      "admin",
			Action:     models.AuditActionRepaymentMade,
			Entity:     "repayments",
			ResourceID: string(rune('a' + i)),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.repo.Create(s.ctx, log))
	}

	logs, total, err := s.repo.List(s.ctx, AuditLogFilter{}, 0, 2)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(logs, 2)
	s.Equal("e", logs[0].ResourceID)
	s.Equal("d", logs[1].ResourceID)

	logs, _, err = s.repo.List(s.ctx, AuditLogFilter{}, 4, 2)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal("a", logs[0].ResourceID)

	since := base.Add(150 * time.Second)
	_, total, err = s.repo.List(s.ctx, AuditLogFilter{Since: &since}, 0, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *AuditLogRepositorySuite) TestGetBySession() {
	sessionID := uuid.New()
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
			SessionID: &sessionID,
			Actor:     "admin",
			Action:    models.AuditActionLogin,
			Entity:    "session",
		}))
	}
	s.entry("admin", models.AuditActionLogin, "session", "", models.AuditOutcomeSuccess)

	logs, total, err := s.repo.GetBySession(s.ctx, sessionID, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	for _, log := range logs {
		s.Equal(sessionID, *log.SessionID)
	}
}

func (s *AuditLogRepositorySuite) TestGetByResource() {
	s.entry("admin", models.AuditActionAccountDeleted, "accounts", "A1", models.AuditOutcomeSuccess)
	s.entry("admin", models.AuditActionBlockToggled, "accounts", "A1", models.AuditOutcomeSuccess)
	s.entry("admin", models.AuditActionBlockToggled, "accounts", "A2", models.AuditOutcomeSuccess)

	logs, total, err := s.repo.GetByResource(s.ctx, "accounts", "A1", 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(logs, 2)
}

func (s *AuditLogRepositorySuite) TestDeleteOlderThan() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
		Actor:     "admin",
		Action:    models.AuditActionLogin,
		Entity:    "session",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	s.entry("admin", models.AuditActionLogout, "session", "", models.AuditOutcomeSuccess)

	deleted, err := s.repo.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	_, total, err := s.repo.List(s.ctx, AuditLogFilter{}, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}
