package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	repomocks "github.com/mleodato/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/mleodato/restaurant-analytics-api/internal/api/handler/router"
	"github.com/mleodato/restaurant-analytics-api/internal/config"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/mleodato/restaurant-analytics-api/internal/scheduler"
	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCronServices(ctrl *gomock.Controller) CronJobServices {
	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockSnapshotRepo := repomocks.NewMockDashboardSnapshotRepository(ctrl)

	// O disparo manual roda em goroutine; as expectativas são frouxas de
	// propósito para o teste não depender do escalonamento
	mockAnalyzer.EXPECT().
		DashboardSummary(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.DashboardSummary{}, nil).
		AnyTimes()
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{
		DashboardSync: config.DashboardSync{
			CronSchedule: "0 5 * * *",
			Enabled:      false,
		},
	}

	return CronJobServices{
		DashboardSyncService: scheduler.NewDashboardSyncService(mockAnalyzer, mockSnapshotRepo, cfg),
	}
}

func cronRouter(services CronJobServices) http.Handler {
	return router.New(router.WithRoutes(CronJobs(services)...))
}

func TestRunCronJob_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := cronRouter(newCronServices(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/dashboard/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")

	// Dá tempo para a goroutine do disparo manual terminar antes do Finish
	time.Sleep(100 * time.Millisecond)
}

func TestRunCronJob_TipoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := cronRouter(newCronServices(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/backup/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestRunCronJob_ServicoIndisponivel(t *testing.T) {
	rt := cronRouter(CronJobServices{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/dashboard/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := cronRouter(newCronServices(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cron_schedule":"0 5 * * *"`)
	assert.Contains(t, rec.Body.String(), `"enabled":false`)
}
