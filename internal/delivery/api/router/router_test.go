package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/delivery/api"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/response"
	"tracker/internal/delivery/api/router"
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/delivery/push"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/infra/metrics"
	mockSvc "tracker/internal/mocks/service"
	mockUC "tracker/internal/mocks/usecase"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalToken = "hook-secret"

type routerFixture struct {
	echo       *echo.Echo
	sessionUC  *mockUC.MockSessionUsecase
	geofenceUC *mockUC.MockGeofenceUsecase
	tokenSvc   *mockSvc.MockTokenService
	registry   *push.Registry
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.InternalToken = internalToken
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	f := &routerFixture{
		sessionUC:  mockUC.NewMockSessionUsecase(t),
		geofenceUC: mockUC.NewMockGeofenceUsecase(t),
		tokenSvc:   mockSvc.NewMockTokenService(t),
		registry:   push.NewRegistry(logger, m),
	}
	t.Cleanup(f.registry.Close)

	f.echo = api.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		HealthHandler: handler.NewHealthHandler(f.sessionUC),
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
			SessionUC: f.sessionUC,
			Logger:    logger,
		}),
		GeofenceHandler: handler.NewGeofenceHandler(f.geofenceUC),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:   cfg,
			Registry: f.registry,
			Logger:   logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(f.tokenSvc, cfg),
		Metrics:        m,
	}).RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) do(method, target, body string, internal bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if internal {
		req.Header.Set("X-Internal-Token", internalToken)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestHealth(t *testing.T) {
	f := newRouterFixture(t)
	f.sessionUC.EXPECT().Sessions().Return([]usecase.SessionInfo{{DeviceName: "a"}}).Once()

	rec := f.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessions":1`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMetrics(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tracker_sessions_active")
}

func TestActivate(t *testing.T) {
	f := newRouterFixture(t)
	f.sessionUC.EXPECT().Activate(mock.Anything, "tracker-01").Return(nil).Once()

	rec := f.do(http.MethodPost, "/internal/devices/tracker-01/session", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestActivate_RequiresInternalToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/internal/devices/tracker-01/session", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_INTERNAL_TOKEN", decodeError(t, rec).Code)
}

func TestActivate_DeviceNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.sessionUC.EXPECT().Activate(mock.Anything, "ghost").
		Return(domainerrors.ErrDeviceNotFound.WithDetails("ghost")).Once()

	rec := f.do(http.MethodPost, "/internal/devices/ghost/session", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "DEVICE_NOT_FOUND", errInfo.Code)
	assert.Equal(t, "ghost", errInfo.Details)
}

func TestDeactivate(t *testing.T) {
	f := newRouterFixture(t)
	f.sessionUC.EXPECT().Deactivate(mock.Anything, "tracker-01").Return(nil).Once()

	rec := f.do(http.MethodDelete, "/internal/devices/tracker-01/session", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListSessions(t *testing.T) {
	f := newRouterFixture(t)
	deviceID := uuid.New()
	f.sessionUC.EXPECT().Sessions().Return([]usecase.SessionInfo{{
		DeviceID:    deviceID,
		DeviceName:  "tracker-01",
		ActivatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}).Once()

	rec := f.do(http.MethodGet, "/internal/sessions", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), deviceID.String())
	assert.Contains(t, rec.Body.String(), `"deviceName":"tracker-01"`)
}

func TestCreateGeofence(t *testing.T) {
	f := newRouterFixture(t)
	deviceID := uuid.New()
	geofenceID := uuid.New()
	f.geofenceUC.EXPECT().
		CreateGeofence(mock.Anything, mock.MatchedBy(func(spec *entity.GeofenceSpec) bool {
			return spec.Name == "school" && spec.Type == entity.GeofenceTypeCircle && spec.Radius == 100
		}), []uuid.UUID{deviceID}).
		Return(&entity.Geofence{
			ID:      geofenceID,
			Name:    "school",
			Type:    entity.GeofenceTypeCircle,
			Radius:  100,
			Enabled: true,
		}, nil).Once()

	body := `{"name":"school","type":"circle","center":[10,10],"radius":100,"deviceIds":["` + deviceID.String() + `"]}`
	rec := f.do(http.MethodPost, "/internal/geofences", body, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), geofenceID.String())
	assert.Contains(t, rec.Body.String(), `"center":[0,0]`)
}

func TestCreateGeofence_ValidationFailed(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/internal/geofences", `{"type":"hexagon"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.NotNil(t, errInfo.Details)
}

func TestAssignDevice_Duplicate(t *testing.T) {
	f := newRouterFixture(t)
	geofenceID, deviceID := uuid.New(), uuid.New()
	f.geofenceUC.EXPECT().AssignDevice(mock.Anything, geofenceID, deviceID).
		Return(domainerrors.ErrDuplicateAssignment.WithDetails(deviceID.String())).Once()

	rec := f.do(http.MethodPost, "/internal/geofences/"+geofenceID.String()+"/devices",
		`{"deviceId":"`+deviceID.String()+`"}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_ASSIGNMENT", decodeError(t, rec).Code)
}

func TestAssignDevice_BadGeofenceID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/internal/geofences/nope/devices", `{"deviceId":"`+uuid.NewString()+`"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebsocket_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/ws", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), info.Code)
	assert.Nil(t, info.Details)
}

func TestWebsocket_RejectsInvalidToken(t *testing.T) {
	f := newRouterFixture(t)
	f.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()

	rec := f.do(http.MethodGet, "/ws?token=expired", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), decodeError(t, rec).Code)
}

func TestWebsocket_RegistersAndDelivers(t *testing.T) {
	f := newRouterFixture(t)
	userID := uuid.New()
	f.tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil).Once()

	server := httptest.NewServer(f.echo)
	defer server.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws?token=good-token", nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return f.registry.Connected(userID) }, 5*time.Second, 10*time.Millisecond)
	require.True(t, f.registry.Deliver(userID, "deviceChange", entity.DeviceChangePayload{Action: entity.DeviceChangeAdded}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame struct {
		Event string                     `json:"event"`
		Data  entity.DeviceChangePayload `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "deviceChange", frame.Event)
	assert.Equal(t, entity.DeviceChangeAdded, frame.Data.Action)
}
