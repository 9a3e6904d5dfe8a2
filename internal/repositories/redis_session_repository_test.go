package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"bank-console/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RedisSessionRepositorySuite runs against a real redis when REDIS_ADDR is set.
type RedisSessionRepositorySuite struct {
	suite.Suite
	repo *RedisSessionRepository
	ids  []uuid.UUID
}

func TestRedisSessionRepository(t *testing.T) {
	if os.Getenv("REDIS_ADDR") == "" {
		t.Skip("REDIS_ADDR not set")
	}
	suite.Run(t, new(RedisSessionRepositorySuite))
}

func (s *RedisSessionRepositorySuite) SetupSuite() {
	client, err := NewRedisClient(&config.RedisConfig{Addr: os.Getenv("REDIS_ADDR")})
	s.Require().NoError(err)
	s.repo = NewRedisSessionRepository(client)
}

func (s *RedisSessionRepositorySuite) TearDownTest() {
	for _, id := range s.ids {
		_ = s.repo.Delete(context.Background(), id)
	}
	s.ids = nil
}

func (s *RedisSessionRepositorySuite) TearDownSuite() {
	_ = s.repo.client.Close()
}

func (s *RedisSessionRepositorySuite) TestSaveGetDelete() {
	ctx := context.Background()
	session := newSession(time.Hour)
	s.ids = append(s.ids, session.ID)

	s.Require().NoError(s.repo.Save(ctx, session))

	found, err := s.repo.Get(ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.Subject, found.Subject)
	s.Equal(session.Role, found.Role)

	ttl, err := s.repo.client.TTL(ctx, sessionKey(session.ID)).Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)

	count, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.GreaterOrEqual(count, 1)

	s.Require().NoError(s.repo.Delete(ctx, session.ID))
	_, err = s.repo.Get(ctx, session.ID)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisSessionRepositorySuite) TestMissingSession() {
	_, err := s.repo.Get(context.Background(), uuid.New())
	s.ErrorIs(err, ErrSessionNotFound)
	s.ErrorIs(s.repo.Delete(context.Background(), uuid.New()), ErrSessionNotFound)
}

func (s *RedisSessionRepositorySuite) TestExpiredSessionIsNotStored() {
	ctx := context.Background()
	session := newSession(-time.Minute)

	s.Require().NoError(s.repo.Save(ctx, session))
	_, err := s.repo.Get(ctx, session.ID)
	s.ErrorIs(err, ErrSessionNotFound)
}
