package services

import (
	"time"

	"bank-console/internal/models"
	"bank-console/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

// quietLogger accepts every console log call
func quietLogger(ctrl *gomock.Controller) *service_mocks.MockConsoleLoggerInterface {
	logger := service_mocks.NewMockConsoleLoggerInterface(ctrl)
	logger.EXPECT().LogFetchStarted(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogFetchCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogFetchFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogFetchSuperseded(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogMutation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogExport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogValidationFailure(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogAuditFailure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return logger
}

func adminSession() *models.Session {
	return &models.Session{
		ID:        uuid.New(),
		Token:     "admin-token",
		Subject:   "admin",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func userSession() *models.Session {
	return &models.Session{
		ID:        uuid.New(),
		Token:     "user-token",
		Subject:   "bob",
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
