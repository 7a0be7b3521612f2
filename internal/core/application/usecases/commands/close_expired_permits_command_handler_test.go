package commands_test

import (
	"errors"
	"testing"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredPermit(t *testing.T, id kernel.UUID, status document.Status) *document.Document {
	t.Helper()
	now := time.Now().UTC()
	doc, err := document.RestoreDocument(
		id, document.WorkPermit, status, kernel.NewUUID(),
		nil, nil, nil, nil, []byte(`{"valid_until":"2026-01-01T00:00:00Z"}`), now, now)
	require.NoError(t, err)
	return doc
}

func newSweepFixture(
	t *testing.T,
	sweepRepo *MockDocumentRepository,
	transUoW *MockDocumentUoW,
	dispatcher *MockDispatcher,
) commands.CloseExpiredPermitsCommandHandler {
	t.Helper()

	sweepUoW := new(MockDocumentUoW)
	sweepUoW.On("DocumentRepository").Return(sweepRepo).Once()
	sweepFactory := new(MockDocumentUoWFactory)
	sweepFactory.On("Create").Return(sweepUoW).Once()

	transFactory := new(MockDocumentUoWFactory)
	transFactory.On("Create").Return(transUoW)

	transitions := commands.NewRequestTransitionCommandHandler(
		transFactory, services.NewWorkflowGuard(), dispatcher)

	return commands.NewCloseExpiredPermitsCommandHandler(
		sweepFactory, &transitions, testActor(t, actor.RoleApprover))
}

func TestCloseExpiredPermitsCommandHandler_Handle_ClosesExpiredPermits(t *testing.T) {
	ctx := t.Context()
	first := restoredPermit(t, kernel.NewUUID(), document.StatusActive)
	second := restoredPermit(t, kernel.NewUUID(), document.StatusActive)

	sweepRepo := new(MockDocumentRepository)
	sweepRepo.On("GetExpiredWorkPermits", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*document.Document{first, second}, nil).Once()

	transRepo := new(MockDocumentRepository)
	transRepo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once()
	transRepo.On("Get", mock.Anything, second.ID()).Return(second, nil).Once()
	transRepo.On("UpdateStatusIf", mock.Anything, mock.Anything, document.StatusActive).
		Return(true, nil).Times(2)

	auditRepo := new(MockAuditLogRepository)
	auditRepo.On("Append", mock.Anything, auditWith(audit.ActionSuccess)).Return(nil).Times(2)

	transUoW := new(MockDocumentUoW)
	transUoW.On("Begin", ctx).Return(nil).Times(2)
	transUoW.On("DocumentRepository").Return(transRepo).Times(2)
	transUoW.On("AuditLogRepository").Return(auditRepo).Times(2)
	transUoW.On("Commit", ctx).Return(nil).Times(2)
	transUoW.On("Rollback", ctx).Return(errors.New("no active transaction")).Times(2)

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)

	handler := newSweepFixture(t, sweepRepo, transUoW, dispatcher)

	require.NoError(t, handler.Handle(ctx, commands.NewCloseExpiredPermitsCommand()))

	assert.Equal(t, document.StatusClosed, first.Status())
	assert.Equal(t, document.StatusClosed, second.Status())
	sweepRepo.AssertExpectations(t)
	transRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCloseExpiredPermitsCommandHandler_Handle_SkipsLostRace(t *testing.T) {
	ctx := t.Context()
	// Closed by a human between the sweep query and the transition request.
	raced := restoredPermit(t, kernel.NewUUID(), document.StatusActive)
	racedNow := restoredPermit(t, raced.ID(), document.StatusClosed)
	expired := restoredPermit(t, kernel.NewUUID(), document.StatusActive)

	sweepRepo := new(MockDocumentRepository)
	sweepRepo.On("GetExpiredWorkPermits", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*document.Document{raced, expired}, nil).Once()

	transRepo := new(MockDocumentRepository)
	transRepo.On("Get", mock.Anything, raced.ID()).Return(racedNow, nil).Once()
	transRepo.On("Get", mock.Anything, expired.ID()).Return(expired, nil).Once()
	transRepo.On("UpdateStatusIf", mock.Anything, expired, document.StatusActive).
		Return(true, nil).Once()

	auditRepo := new(MockAuditLogRepository)
	auditRepo.On("Append", mock.Anything, auditWith(audit.ActionAttempt)).Return(nil).Once()
	auditRepo.On("Append", mock.Anything, auditWith(audit.ActionSuccess)).Return(nil).Once()

	transUoW := new(MockDocumentUoW)
	transUoW.On("Begin", ctx).Return(nil).Times(2)
	transUoW.On("DocumentRepository").Return(transRepo).Times(2)
	transUoW.On("AuditLogRepository").Return(auditRepo).Times(2)
	transUoW.On("Commit", ctx).Return(nil).Times(2)
	transUoW.On("Rollback", ctx).Return(errors.New("no active transaction")).Times(2)

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, expired, mock.Anything).Return(nil).Once()

	handler := newSweepFixture(t, sweepRepo, transUoW, dispatcher)

	require.NoError(t, handler.Handle(ctx, commands.NewCloseExpiredPermitsCommand()))

	assert.Equal(t, document.StatusClosed, expired.Status())
	auditRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCloseExpiredPermitsCommandHandler_Handle_AbortsOnPersistenceFailure(t *testing.T) {
	ctx := t.Context()
	first := restoredPermit(t, kernel.NewUUID(), document.StatusActive)
	second := restoredPermit(t, kernel.NewUUID(), document.StatusActive)

	sweepRepo := new(MockDocumentRepository)
	sweepRepo.On("GetExpiredWorkPermits", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*document.Document{first, second}, nil).Once()

	transRepo := new(MockDocumentRepository)
	transRepo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once()
	transRepo.On("UpdateStatusIf", mock.Anything, first, document.StatusActive).
		Return(false, errors.New("connection reset")).Once()

	transUoW := new(MockDocumentUoW)
	transUoW.On("Begin", ctx).Return(nil).Once()
	transUoW.On("DocumentRepository").Return(transRepo).Once()
	transUoW.On("Rollback", ctx).Return(nil).Once()

	dispatcher := new(MockDispatcher)

	handler := newSweepFixture(t, sweepRepo, transUoW, dispatcher)

	err := handler.Handle(ctx, commands.NewCloseExpiredPermitsCommand())

	assert.ErrorIs(t, err, errs.ErrPersistence)
	// The sweep stops at the first storage failure; the second permit is untouched.
	transRepo.AssertNotCalled(t, "Get", mock.Anything, second.ID())
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestCloseExpiredPermitsCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()

	sweepRepo := new(MockDocumentRepository)
	sweepRepo.On("GetExpiredWorkPermits", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*document.Document{}, nil).Once()

	transUoW := new(MockDocumentUoW)
	dispatcher := new(MockDispatcher)

	handler := newSweepFixture(t, sweepRepo, transUoW, dispatcher)

	require.NoError(t, handler.Handle(ctx, commands.NewCloseExpiredPermitsCommand()))

	transUoW.AssertNotCalled(t, "Begin", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}
