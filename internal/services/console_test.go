package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bank-console/internal/dto"
	"bank-console/internal/models"
	"bank-console/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleRegistry_OneConsolePerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewConsoleRegistry(ConsoleDeps{Logger: quietLogger(ctrl)})

	admin := adminSession()
	first := registry.For(admin)
	assert.Same(t, first, registry.For(admin))
	assert.Same(t, admin, first.Session)

	other := registry.For(userSession())
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, registry.Len())

	registry.Discard(admin.ID)
	assert.Equal(t, 1, registry.Len())
	assert.NotSame(t, first, registry.For(admin))
}

func TestConsoleRegistry_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewConsoleRegistry(ConsoleDeps{Logger: quietLogger(ctrl)})
	session := adminSession()

	var wg sync.WaitGroup
	consoles := make([]*Console, 20)
	for i := range consoles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			consoles[i] = registry.For(session)
		}(i)
	}
	wg.Wait()

	for _, c := range consoles {
		assert.Same(t, consoles[0], c)
	}
}

func TestConsole_SharesAlertSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	console := NewConsole(adminSession(), ConsoleDeps{Logger: quietLogger(ctrl)})

	require.Error(t, console.Editor.Search(context.Background(), ""))
	alert := console.Alerts.Current()
	require.NotNil(t, alert)
	assert.Equal(t, "Enter a user ID", alert.Message)
}

func TestConsole_EditorSavesRefetchActiveList(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := service_mocks.NewMockBackendClientInterface(ctrl)
	console := NewConsole(adminSession(), ConsoleDeps{Backend: backend, Logger: quietLogger(ctrl), PageSize: 5})
	ctx := context.Background()

	users := models.Collection{models.RecordOf("id", "7", "username", "bob")}
	backend.EXPECT().ListUsers(gomock.Any(), "admin-token").Return(users, nil).Times(3)
	backend.EXPECT().GetUser(gomock.Any(), gomock.Any(), "7").Return(models.RecordOf("id", "7", "username", "bob"), nil).Times(3)
	backend.EXPECT().GetBalance(gomock.Any(), gomock.Any(), "7").Return(10.0, nil).Times(3)
	backend.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), "7", gomock.Any()).Return(nil)
	backend.EXPECT().PatchBalance(gomock.Any(), gomock.Any(), dto.PatchBalanceRequest{UserID: "7", Amount: 5}).Return(nil)

	require.NoError(t, console.Orchestrator.Fetch(ctx, models.EntityUsers, dto.FetchRequest{}))
	require.NoError(t, console.Editor.Search(ctx, "7"))
	require.NoError(t, console.Editor.SaveProfile(ctx))
	assert.Equal(t, "User details updated", console.Alerts.Current().Message)

	require.NoError(t, console.Editor.SetFields(map[string]interface{}{"balance": "5"}))
	require.NoError(t, console.Editor.SaveBalance(ctx))
	assert.Equal(t, "Balance updated", console.Alerts.Current().Message)
	assert.Equal(t, models.EntityUsers, console.Orchestrator.ActiveView())
}

func TestConsole_UserDeleteKeepsActiveView(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := service_mocks.NewMockBackendClientInterface(ctrl)
	console := NewConsole(adminSession(), ConsoleDeps{Backend: backend, Logger: quietLogger(ctrl), PageSize: 5})
	ctx := context.Background()

	backend.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(models.Collection{models.RecordOf("id", "7")}, nil).Times(1)
	backend.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(models.Collection{models.RecordOf("id", "A1")}, nil).Times(1)
	backend.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), "7").Return(nil)

	require.NoError(t, console.Orchestrator.Fetch(ctx, models.EntityUsers, dto.FetchRequest{}))
	require.NoError(t, console.Orchestrator.Fetch(ctx, models.EntityAccounts, dto.FetchRequest{}))
	require.NoError(t, console.Editor.Delete(ctx, "7", true))

	assert.Equal(t, models.EntityAccounts, console.Orchestrator.ActiveView())
	assert.Equal(t, "User deleted", console.Alerts.Current().Message)
}

func TestActionRecorder_AuditFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := adminSession()
	logger := service_mocks.NewMockConsoleLoggerInterface(ctrl)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)

	logger.EXPECT().LogMutation(gomock.Any(), session.ID, "user_deleted", "7", "failure", "backend down")
	metrics.EXPECT().IncrementCounter("console_mutation", map[string]string{"action": "user_deleted", "status": "failure"})
	audit.EXPECT().LogAction(gomock.Any(), session, "user_deleted", "users", "7", gomock.Any(), nil).Return(errors.New("db gone"))
	logger.EXPECT().LogAuditFailure(gomock.Any(), session.ID, "user_deleted", "db gone")

	recorder := newActionRecorder(session, ConsoleDeps{Logger: logger, Audit: audit, Metrics: metrics})
	recorder.record(context.Background(), "user_deleted", "users", "7", errors.New("backend down"), nil)
}

func TestRequireID(t *testing.T) {
	id, err := requireID(map[string]interface{}{"userId": 7.0}, "Enter a user ID")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	_, err = requireID(" ", "Enter a user ID")
	assert.EqualError(t, err, "validation: Enter a user ID")
}
