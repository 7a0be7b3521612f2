package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/services"
	"docflow/internal/generated/servers"
	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDocumentHandler    commands.CreateDocumentCommandHandler
	editDocumentHandler      commands.EditDocumentCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler

	// Query handlers
	getAuditHistoryHandler      queries.GetAuditHistoryQueryHandler
	getDocumentsByStatusHandler queries.GetDocumentsByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDocumentHandler commands.CreateDocumentCommandHandler,
	editDocumentHandler commands.EditDocumentCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	getAuditHistoryHandler queries.GetAuditHistoryQueryHandler,
	getDocumentsByStatusHandler queries.GetDocumentsByStatusQueryHandler,
) *Server {
	return &Server{
		createDocumentHandler:       createDocumentHandler,
		editDocumentHandler:         editDocumentHandler,
		requestTransitionHandler:    requestTransitionHandler,
		getAuditHistoryHandler:      getAuditHistoryHandler,
		getDocumentsByStatusHandler: getDocumentsByStatusHandler,
	}
}

// CreateDocument handles POST /api/v1/documents - registers a new document.
func (s *Server) CreateDocument(ctx echo.Context) error {
	var body servers.NewDocument
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	by, err := bindActor(body.ActorId, body.ActorRole)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	docType, err := document.TypeFromString(body.Type)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document type: "+err.Error())
	}

	var parentJobID *kernel.UUID
	if body.ParentJobId != nil {
		jobID, jobErr := kernel.UUIDFromBytes((*body.ParentJobId)[:])
		if jobErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid parent job id: "+jobErr.Error())
		}
		parentJobID = &jobID
	}

	payload, err := marshalPayload(body.Payload)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payload: "+err.Error())
	}

	documentID := kernel.NewUUID()
	cmd, err := commands.NewCreateDocumentCommand(documentID, docType, by, parentJobID, payload)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document data: "+err.Error())
	}

	if handleErr := s.createDocumentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Document{
		Id:        documentID.Bytes(),
		Type:      docType.String(),
		Status:    document.InitialStatus(docType).String(),
		CreatedBy: by.ID().Bytes(),
	})
}

// RequestTransition handles POST /api/v1/documents/{documentId}/transitions -
// moves a document along one edge of its workflow.
func (s *Server) RequestTransition(ctx echo.Context, documentId openapi_types.UUID) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	documentID, err := kernel.UUIDFromBytes(documentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document id: "+err.Error())
	}

	by, err := bindActor(body.ActorId, body.ActorRole)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	docType, err := document.TypeFromString(body.Type)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document type: "+err.Error())
	}

	comment := ""
	if body.Comment != nil {
		comment = *body.Comment
	}

	cmd, err := commands.NewRequestTransitionCommand(
		docType,
		documentID,
		document.Status(body.ExpectedFrom),
		document.Status(body.To),
		by,
		comment,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	newStatus, err := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TransitionResult{
		Id:     documentID.Bytes(),
		Status: newStatus.String(),
	})
}

// EditDocumentPayload handles PUT /api/v1/documents/{documentId}/payload -
// replaces the payload of a document still in its editable status.
func (s *Server) EditDocumentPayload(ctx echo.Context, documentId openapi_types.UUID) error {
	var body servers.PayloadEdit
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	documentID, err := kernel.UUIDFromBytes(documentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document id: "+err.Error())
	}

	by, err := bindActor(body.ActorId, body.ActorRole)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	payload, err := json.Marshal(body.Payload)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payload: "+err.Error())
	}

	cmd, err := commands.NewEditDocumentCommand(documentID, by, payload)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid edit request: "+err.Error())
	}

	if handleErr := s.editDocumentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDocuments handles GET /api/v1/documents - lists documents by type and status.
func (s *Server) GetDocuments(ctx echo.Context, params servers.GetDocumentsParams) error {
	docType, err := document.TypeFromString(params.Type)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document type: "+err.Error())
	}

	query, err := queries.NewGetDocumentsByStatusQuery(docType, document.Status(params.Status))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	documents, err := s.getDocumentsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve documents")
	}

	response := make([]servers.Document, len(documents))
	for i, doc := range documents {
		response[i] = servers.Document{
			Id:        doc.ID.Bytes(),
			Type:      doc.DocumentType,
			Status:    doc.Status,
			CreatedBy: doc.CreatedBy.Bytes(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditHistory handles GET /api/v1/documents/{documentId}/audit -
// returns a document's audit trail, oldest first.
func (s *Server) GetAuditHistory(ctx echo.Context, documentId openapi_types.UUID, params servers.GetAuditHistoryParams) error {
	documentID, err := kernel.UUIDFromBytes(documentId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document id: "+err.Error())
	}

	docType, err := document.TypeFromString(params.Type)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid document type: "+err.Error())
	}

	query, err := queries.NewGetAuditHistoryQuery(docType, documentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	entries, err := s.getAuditHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve audit history")
	}

	response := make([]servers.AuditEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.AuditEntry{
			DocumentType: entry.DocumentType,
			DocumentId:   entry.DocumentID.Bytes(),
			ActorId:      entry.ActorID.Bytes(),
			Action:       entry.Action,
			FromStatus:   optionalString(entry.FromStatus),
			ToStatus:     entry.ToStatus,
			Comment:      optionalString(entry.Comment),
			Timestamp:    entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps workflow errors to HTTP status codes. Stale state and
// not-editable conflicts are 409, authorization denials are 403, unknown
// catalog edges are 422, missing documents are 404; anything else is a 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrStaleState),
		errors.Is(err, document.ErrDocumentNotEditable):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInsufficientCapability),
		errors.Is(err, services.ErrSelfApprovalForbidden):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, document.ErrNoSuchTransition):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func bindActor(actorId openapi_types.UUID, actorRole string) (actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(actorId[:])
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(actorRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func marshalPayload(payload *map[string]interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	return json.Marshal(*payload)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
