package queries_test

import (
	"context"
	"testing"
	"time"

	"docflow/internal/adapters/out/postgres/auditrepo"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAuditHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAuditHistoryQueryHandler
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&auditrepo.EntryDTO{}))

	suite.handler = queries.NewGetAuditHistoryQueryHandler(db)
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE audit_entries").Error)
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) TestHandle_NoEntries_ReturnsEmptySlice() {
	query, err := queries.NewGetAuditHistoryQuery(document.WorkPermit, kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) TestHandle_ReturnsEntriesChronologically() {
	docID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	// Inserted out of order; the trail must come back oldest first.
	suite.seedEntry(docID, actorID, "success", "pending_check", "checked", base.Add(time.Minute))
	suite.seedEntry(docID, actorID, "success", "draft", "pending_check", base)
	suite.seedEntry(docID, actorID, "reject", "checked", "approved", base.Add(2*time.Minute))

	// Another document's trail must not leak in.
	suite.seedEntry(kernel.NewUUID(), actorID, "success", "draft", "pending_check", base)

	query, err := queries.NewGetAuditHistoryQuery(document.DisbursementVoucher, docID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("draft", result[0].FromStatus)
	suite.Equal("pending_check", result[0].ToStatus)
	suite.Equal("checked", result[1].ToStatus)
	suite.Equal("reject", result[2].Action)
	suite.Equal(docID, result[0].DocumentID)
	suite.Equal(actorID, result[0].ActorID)
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) TestHandle_TimestampTies_KeepInsertionOrder() {
	docID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	at := time.Now().UTC().Truncate(time.Microsecond)

	suite.seedEntry(docID, actorID, "attempt", "draft", "pending_check", at)
	suite.seedEntry(docID, actorID, "success", "draft", "pending_check", at)

	query, err := queries.NewGetAuditHistoryQuery(document.DisbursementVoucher, docID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("attempt", result[0].Action)
	suite.Equal("success", result[1].Action)
}

func (suite *GetAuditHistoryQueryHandlerTestSuite) TestHandle_NotConstructedQuery_Fails() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAuditHistoryQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAuditHistoryQueryIsNotConstructed)
}

// seedEntry persists one audit ledger row directly.
func (suite *GetAuditHistoryQueryHandlerTestSuite) seedEntry(
	docID, actorID kernel.UUID, action, from, to string, at time.Time,
) {
	dto := auditrepo.EntryDTO{
		DocumentType: document.DisbursementVoucher.String(),
		DocumentID:   docID.Bytes(),
		ActorID:      actorID.Bytes(),
		Action:       action,
		FromStatus:   from,
		ToStatus:     to,
		Timestamp:    at,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestGetAuditHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAuditHistoryQueryHandlerTestSuite))
}
