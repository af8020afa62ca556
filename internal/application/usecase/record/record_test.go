package record

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

func TestCreateAndUpload(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Madrid", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	catalog := valueobject.DefaultCatalog()

	create := NewCreateUseCase(store.Hubs, store.Records, catalog)
	created, err := create.Execute(ctx, CreateInput{HubID: hub.ID, Category: "Flota", Title: "Seguro", Data: map[string]interface{}{"poliza": "X1"}})
	require.NoError(t, err)
	assert.Equal(t, "X1", created.Data["poliza"])

	_, err = create.Execute(ctx, CreateInput{HubID: hub.ID, Category: "Recetas", Title: "X"})
	domainErr, ok := domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodeInvalidCategory, domainErr.Code)

	upload := NewUploadUseCase(store.Records)
	_, err = upload.Execute(ctx, UploadInput{RecordID: created.ID, FileName: "poliza.pdf"})
	assert.True(t, domainerror.IsKind(err, domainerror.KindInvalidInput))

	out, err := upload.Execute(ctx, UploadInput{RecordID: created.ID, FileName: "poliza.pdf", Content: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "poliza.pdf", out.FileName)

	stored, err := store.Records.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF")), stored.FileData)

	_, err = upload.Execute(ctx, UploadInput{RecordID: uuid.New(), FileName: "x", Content: []byte("x")})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))

	listed, err := NewListUseCase(store.Records).Execute(ctx, adapter.RecordFilter{Category: "Flota"})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestHubScopedUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	madrid := entity.NewHub("Hub Madrid", "", "")
	cadiz := entity.NewHub("Hub Cádiz", "", "")
	require.NoError(t, store.Hubs.Create(ctx, madrid))
	require.NoError(t, store.Hubs.Create(ctx, cadiz))
	rec := entity.NewRecord(madrid.ID, "Flota", "Seguro", "", nil, uuid.Nil)
	require.NoError(t, store.Records.Create(ctx, rec))

	title := "Seguro 2026"
	_, err := NewUpdateUseCase(store.Records, valueobject.DefaultCatalog()).Execute(ctx, UpdateInput{RecordID: rec.ID, HubID: &cadiz.ID, Title: &title})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))

	del := NewDeleteUseCase(store.Records)
	assert.True(t, domainerror.IsKind(del.Execute(ctx, DeleteInput{RecordID: rec.ID, HubID: &cadiz.ID}), domainerror.KindNotFound))
	require.NoError(t, del.Execute(ctx, DeleteInput{RecordID: rec.ID, HubID: &madrid.ID}))
	assert.True(t, domainerror.IsKind(del.Execute(ctx, DeleteInput{RecordID: rec.ID}), domainerror.KindNotFound))
}
