package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/application/usecase/holiday"
	"github.com/hubmanager/backend/internal/application/usecase/hub"
	"github.com/hubmanager/backend/internal/application/usecase/liquidation"
	"github.com/hubmanager/backend/internal/application/usecase/record"
	"github.com/hubmanager/backend/internal/application/usecase/vehicle"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	store  *adaptertest.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	catalog := valueobject.DefaultCatalog()
	require.NoError(t, dto.RegisterValidators(catalog))

	store := adaptertest.NewStore()
	hubs := NewHubController(
		hub.NewListHubsUseCase(store.Hubs),
		hub.NewGetHubUseCase(store.Hubs),
		hub.NewCreateHubUseCase(store.Hubs),
		hub.NewUpdateHubUseCase(store.Hubs),
		hub.NewDeleteHubUseCase(store.Hubs),
	)
	vehicles := NewVehicleController(
		vehicle.NewListVehiclesUseCase(store.Hubs, store.Vehicles),
		vehicle.NewCreateVehicleUseCase(store.Hubs, store.Vehicles, catalog),
		vehicle.NewUpdateVehicleUseCase(store.Vehicles, catalog),
		vehicle.NewDeleteVehicleUseCase(store.Vehicles),
	)
	records := NewRecordController(
		record.NewListUseCase(store.Records),
		record.NewCreateUseCase(store.Hubs, store.Records, catalog),
		record.NewUpdateUseCase(store.Records, catalog),
		record.NewDeleteUseCase(store.Records),
		record.NewUploadUseCase(store.Records),
		1024,
	)
	liquidations := NewLiquidationController(
		liquidation.NewListUseCase(store.Hubs, store.Liquidations),
		liquidation.NewUpsertUseCase(store.Hubs, store.Routes, store.Liquidations),
		liquidation.NewBulkUpsertUseCase(liquidation.NewUpsertUseCase(store.Hubs, store.Routes, store.Liquidations)),
		liquidation.NewDeleteUseCase(store.Liquidations),
		liquidation.NewSummaryUseCase(store.Hubs, store.Routes, store.Liquidations),
	)
	liquidations.now = fixedNow
	holidays := NewHolidayController(
		holiday.NewResolveUseCase(store.Hubs, store.Holidays, valueobject.SpanishHolidayCalendar()),
		holiday.NewCreateUseCase(store.Hubs, store.Holidays),
		holiday.NewDeleteUseCase(store.Holidays),
	)
	holidays.now = fixedNow

	engine := gin.New()
	engine.GET("/hubs", hubs.List)
	engine.POST("/hubs", hubs.Create)
	engine.GET("/hubs/:id", hubs.Get)
	engine.PUT("/hubs/:id", hubs.Update)
	engine.POST("/hubs/:id/vehicles", vehicles.Create)
	engine.POST("/hubs/:id/records", records.CreateForHub)
	engine.POST("/records", records.Create)
	engine.GET("/hubs/:id/liquidations/summary", liquidations.Summary)
	engine.GET("/hubs/:id/holidays", holidays.List)
	engine.POST("/records/:rid/upload", records.Upload)
	return &testServer{engine: engine, store: store}
}

func fixedNow() time.Time {
	return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind domainerror.Kind
		want int
	}{
		{domainerror.KindUnauthorized, http.StatusUnauthorized},
		{domainerror.KindForbidden, http.StatusForbidden},
		{domainerror.KindNotFound, http.StatusNotFound},
		{domainerror.KindConflict, http.StatusBadRequest},
		{domainerror.KindInvalidInput, http.StatusBadRequest},
		{domainerror.KindInvalidDate, http.StatusBadRequest},
		{domainerror.KindEmail, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForKind(tt.kind))
		})
	}
}

func TestHandleError_UnclassifiedIsHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(ctx, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[dto.ErrorResponse](t, rec)
	assert.NotContains(t, body.Error, "pq")
}

func TestHubController(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/hubs", map[string]string{"name": "Hub Cadiz", "location": "Cádiz"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[dto.HubResponse](t, rec)
	assert.Equal(t, "Hub Cadiz", created.Name)

	t.Run("list is a bare array", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/hubs", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		hubs := decode[[]dto.HubResponse](t, rec)
		assert.Len(t, hubs, 1)
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/hubs", map[string]string{"location": "Madrid"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeMissingFields), decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/hubs/not-a-uuid", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/hubs/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/hubs/"+created.ID, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVehicleController_ValidatesType(t *testing.T) {
	s := newTestServer(t)
	h := entity.NewHub("Hub Cordoba", "", "Córdoba")
	require.NoError(t, s.store.Hubs.Create(context.Background(), h))

	rec := s.do(t, http.MethodPost, "/hubs/"+h.ID.String()+"/vehicles", map[string]string{"plate": "1234abc", "vehicle_type": "Patinete"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/hubs/"+h.ID.String()+"/vehicles", map[string]string{"plate": "1234abc", "vehicle_type": "Furgoneta"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "1234ABC", decode[dto.VehicleResponse](t, rec).Plate)

	rec = s.do(t, http.MethodPost, "/hubs/"+h.ID.String()+"/vehicles", map[string]string{"plate": "1234ABC", "vehicle_type": "Moto"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordController_Upload(t *testing.T) {
	s := newTestServer(t)
	h := entity.NewHub("Hub Caceres", "", "Cáceres")
	require.NoError(t, s.store.Hubs.Create(context.Background(), h))

	rec := s.do(t, http.MethodPost, "/hubs/"+h.ID.String()+"/records", map[string]string{"category": "Flota", "title": "ITV"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[dto.RecordResponse](t, rec)

	upload := func(content []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "itv.pdf")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/records/"+created.ID+"/upload", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		s.engine.ServeHTTP(rec, req)
		return rec
	}

	rec = upload([]byte("%PDF-1.4"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "itv.pdf", decode[dto.UploadResponse](t, rec).FileName)

	stored, err := s.store.Records.FindByID(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "JVBERi0xLjQ=", stored.FileData)

	t.Run("oversized body is rejected", func(t *testing.T) {
		rec := upload(bytes.Repeat([]byte("x"), 4096))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLiquidationController_SummaryMonth(t *testing.T) {
	s := newTestServer(t)
	h := entity.NewHub("Hub Almeria", "", "Almería")
	require.NoError(t, s.store.Hubs.Create(context.Background(), h))
	path := "/hubs/" + h.ID.String() + "/liquidations/summary"

	t.Run("absent month defaults to the current one", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[dto.LiquidationSummaryResponse](t, rec)
		assert.Equal(t, 2026, body.Year)
		assert.Equal(t, 10, body.Month)
	})

	t.Run("explicit month is kept", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, path+"?year=2025&month=2", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[dto.LiquidationSummaryResponse](t, rec)
		assert.Equal(t, 2025, body.Year)
		assert.Equal(t, 2, body.Month)
	})

	for _, month := range []string{"0", "13", "-1"} {
		t.Run("month "+month+" is invalid", func(t *testing.T) {
			rec := s.do(t, http.MethodGet, path+"?year=2026&month="+month, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, string(domainerror.ErrCodeInvalidMonth), decode[dto.ErrorResponse](t, rec).Code)
		})
	}
}

func TestHolidayController_Year(t *testing.T) {
	s := newTestServer(t)
	h := entity.NewHub("Hub Sevilla", "", "Sevilla")
	require.NoError(t, s.store.Hubs.Create(context.Background(), h))
	path := "/hubs/" + h.ID.String() + "/holidays"

	rec := s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 2026, decode[dto.HolidayCalendarResponse](t, rec).Year)

	rec = s.do(t, http.MethodGet, path+"?year=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordController_CreateRequiresHub(t *testing.T) {
	s := newTestServer(t)
	h := entity.NewHub("Hub Huelva", "", "Huelva")
	require.NoError(t, s.store.Hubs.Create(context.Background(), h))

	t.Run("missing hub id fails binding", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/records", map[string]string{"category": "Compras", "title": "Cajas"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeMissingFields), decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/records", map[string]string{"hub_id": h.ID.String(), "category": "Vacaciones", "title": "Agosto"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeInvalidCategory), decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("hub id from the body", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/records", map[string]string{"hub_id": h.ID.String(), "category": "Compras", "title": "Cajas"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, h.ID.String(), decode[dto.RecordResponse](t, rec).HubID)
	})
}
