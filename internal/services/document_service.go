package services

import (
	"context"

	"github.com/google/uuid"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/storage"
	"flightops360/hangar/internal/store"
)

// DocumentService manages aircraft documents whose files live in blob
// storage.
type DocumentService struct {
	documents *Collection[entities.AircraftDocument, *entities.AircraftDocument]
	fleet     *FleetService
	blobs     storage.BlobStorage
}

func NewDocumentService(s store.Store, fleet *FleetService, blobs storage.BlobStorage) *DocumentService {
	return &DocumentService{
		documents: NewCollection[entities.AircraftDocument](s, constants.CollectionAircraftDocuments, "aircraft document"),
		fleet:     fleet,
		blobs:     blobs,
	}
}

// ListDocuments returns documents soonest expiry first.
func (s *DocumentService) ListDocuments(ctx context.Context, aircraftID string) ([]entities.AircraftDocument, error) {
	docs, err := s.documents.List(ctx, byParent("aircraftId", aircraftID)...)
	if err != nil {
		return nil, err
	}
	sortByDate(docs, func(d *entities.AircraftDocument) string { return d.ExpiryDate }, true)
	return docs, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id string) (*entities.AircraftDocument, error) {
	return s.documents.Get(ctx, id)
}

// SaveDocument keeps the stored file reference when the input has none; the
// file itself only changes through Upload.
func (s *DocumentService) SaveDocument(ctx context.Context, d *entities.AircraftDocument) (*entities.AircraftDocument, error) {
	if d.ID != "" && (d.FileURL == "" || d.StoragePath == "") {
		prior, err := s.documents.Find(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			d.FileURL = firstNonEmpty(d.FileURL, prior.FileURL)
			d.StoragePath = firstNonEmpty(d.StoragePath, prior.StoragePath)
		}
	}
	return s.documents.Save(ctx, d)
}

// DeleteDocument removes the record, then the stored file. A file that
// cannot be removed is logged and left behind.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) (*DeleteResult, error) {
	doc, err := s.documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.documents.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.StoragePath != "" && s.blobs != nil {
		if err := s.blobs.Delete(ctx, doc.StoragePath); err != nil {
			logging.Warn("failed to delete document file", "id", id, "key", doc.StoragePath, "error", err)
		}
	}
	return res, nil
}

// UploadRequest carries one file and the metadata of its document record.
type UploadRequest struct {
	Document    entities.AircraftDocument
	FileName    string
	ContentType string
	Data        []byte
}

// Upload writes the file under aircraft_documents/{aircraftId}/{documentId}/
// and stores the document record pointing at it.
func (s *DocumentService) Upload(ctx context.Context, req UploadRequest) (*entities.AircraftDocument, error) {
	if s.blobs == nil {
		return nil, &apperr.ConfigurationError{Component: "blob storage"}
	}
	if len(req.Data) == 0 {
		return nil, apperr.Invalid("file", "is empty")
	}
	if len(req.Data) > constants.MaxUploadBytes {
		return nil, apperr.Invalid("file", "exceeds %d bytes", constants.MaxUploadBytes)
	}
	doc := req.Document
	if _, err := s.fleet.GetAircraft(ctx, doc.AircraftID); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.DocumentName == "" {
		doc.DocumentName = req.FileName
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.AircraftDocumentKey(doc.AircraftID, doc.ID, req.FileName)
	url, err := s.blobs.Upload(ctx, key, contentType, req.Data)
	if err != nil {
		return nil, &apperr.StoreError{Op: "upload", Resource: "aircraft document", ID: doc.ID, Err: err}
	}
	doc.FileURL = url
	doc.StoragePath = key
	return s.documents.Save(ctx, &doc)
}
