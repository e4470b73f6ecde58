package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/models/entities"
)

func TestDocumentService_UploadAndDelete(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()
	fleet := NewFleetService(st, nil, 0)
	blobs := &mockBlobs{}
	s := NewDocumentService(st, fleet, blobs)

	a, err := fleet.SaveAircraft(ctx, &entities.FleetAircraft{TailNumber: "N350FX", Model: "CL-350"})
	require.NoError(t, err)

	doc, err := s.Upload(ctx, UploadRequest{
		Document:    entities.AircraftDocument{AircraftID: a.ID, DocumentType: "Airworthiness"},
		FileName:    "../airworthiness.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.7"),
	})
	require.NoError(t, err)
	key := "aircraft_documents/" + a.ID + "/" + doc.ID + "/airworthiness.pdf"
	assert.Equal(t, key, doc.StoragePath)
	assert.Equal(t, "https://files.example.com/"+key, doc.FileURL)
	assert.Equal(t, "../airworthiness.pdf", doc.DocumentName)
	assert.Equal(t, []byte("%PDF-1.7"), blobs.uploaded[key])

	docs, err := s.ListDocuments(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = s.DeleteDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{key}, blobs.deleted)
}

func TestDocumentService_UploadRejections(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()
	fleet := NewFleetService(st, nil, 0)

	_, err := NewDocumentService(st, fleet, nil).Upload(ctx, UploadRequest{Data: []byte("x")})
	var ce *apperr.ConfigurationError
	assert.ErrorAs(t, err, &ce)

	s := NewDocumentService(st, fleet, &mockBlobs{})
	_, err = s.Upload(ctx, UploadRequest{Document: entities.AircraftDocument{AircraftID: "ac1"}})
	assert.True(t, apperr.IsValidation(err))

	_, err = s.Upload(ctx, UploadRequest{
		Document: entities.AircraftDocument{AircraftID: "missing"},
		FileName: "a.pdf",
		Data:     []byte("x"),
	})
	assert.True(t, apperr.IsNotFound(err))
}
