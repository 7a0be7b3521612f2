package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"docflow/internal/adapters/out/postgres"
	"docflow/internal/adapters/out/postgres/auditrepo"
	"docflow/internal/adapters/out/postgres/documentrepo"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the conditional status write
// and its audit entry commit or roll back together, and that concurrent
// transitions from the same status produce exactly one winner.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&documentrepo.DocumentDTO{},
		&auditrepo.EntryDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE documents, audit_entries").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_StatusWriteAndAuditEntry_Together() {
	ctx := context.Background()
	doc := suite.seedDraftVoucher(ctx)
	maker := suite.createTestActor(actor.RoleMaker)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.applySubmitEdge(doc, maker)
	written, err := uow.DocumentRepository().UpdateStatusIf(ctx, doc, document.StatusDraft)
	suite.Require().NoError(err)
	suite.Require().True(written)

	entry := suite.buildEntry(doc, maker, audit.ActionSuccess)
	suite.Require().NoError(uow.AuditLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertPersistedStatus(doc.ID(), "pending_check")
	suite.assertAuditCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_RevertsStatusWriteAndAuditEntry() {
	ctx := context.Background()
	doc := suite.seedDraftVoucher(ctx)
	maker := suite.createTestActor(actor.RoleMaker)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.applySubmitEdge(doc, maker)
	written, err := uow.DocumentRepository().UpdateStatusIf(ctx, doc, document.StatusDraft)
	suite.Require().NoError(err)
	suite.Require().True(written)

	entry := suite.buildEntry(doc, maker, audit.ActionSuccess)
	suite.Require().NoError(uow.AuditLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.Rollback(ctx))

	// Neither the status change nor the ledger row survived.
	suite.assertPersistedStatus(doc.ID(), "draft")
	suite.assertAuditCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransitions_SingleWinner() {
	ctx := context.Background()
	seeded := suite.seedDraftVoucher(ctx)
	maker := suite.createTestActor(actor.RoleMaker)

	const contenders = 4

	edge, err := document.FindEdge(
		document.DisbursementVoucher, document.StatusDraft, document.StatusPendingCheck)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make(chan bool, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Each contender works on its own copy of the draft aggregate,
			// as separate requests would.
			doc, err := document.RestoreDocument(
				seeded.ID(), document.DisbursementVoucher, document.StatusDraft,
				seeded.CreatedBy(), nil, nil, nil, nil, seeded.Payload(),
				seeded.CreatedAt(), seeded.UpdatedAt())
			if err != nil {
				results <- false
				return
			}
			if err := doc.ApplyEdge(edge, maker); err != nil {
				results <- false
				return
			}

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results <- false
				return
			}

			written, err := uow.DocumentRepository().UpdateStatusIf(ctx, doc, document.StatusDraft)
			if err != nil || !written {
				_ = uow.Rollback(ctx)
				results <- false
				return
			}

			entry, err := audit.NewEntry(
				document.DisbursementVoucher, doc.ID(), maker.ID(), audit.ActionSuccess,
				document.StatusDraft, document.StatusPendingCheck, "", time.Now().UTC())
			if err != nil {
				_ = uow.Rollback(ctx)
				results <- false
				return
			}
			if err := uow.AuditLogRepository().Append(ctx, entry); err != nil {
				_ = uow.Rollback(ctx)
				results <- false
				return
			}

			results <- uow.Commit(ctx) == nil
		}()
	}

	wg.Wait()
	close(results)

	winners := 0
	for won := range results {
		if won {
			winners++
		}
	}

	suite.Equal(1, winners, "exactly one contender commits the same edge")
	suite.assertPersistedStatus(seeded.ID(), "pending_check")
	suite.assertAuditCount(1)
}

// seedDraftVoucher persists a fresh draft disbursement voucher outside any
// unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) seedDraftVoucher(ctx context.Context) *document.Document {
	doc, err := document.NewDocument(
		kernel.NewUUID(), document.DisbursementVoucher, kernel.NewUUID(), nil,
		[]byte(`{"amount":100}`))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.DocumentRepository().Add(ctx, doc))
	return doc
}

func (suite *UnitOfWorkIntegrationTestSuite) applySubmitEdge(doc *document.Document, by actor.Actor) {
	edge, err := document.FindEdge(
		document.DisbursementVoucher, document.StatusDraft, document.StatusPendingCheck)
	suite.Require().NoError(err)
	suite.Require().NoError(doc.ApplyEdge(edge, by))
}

func (suite *UnitOfWorkIntegrationTestSuite) buildEntry(
	doc *document.Document, by actor.Actor, action audit.Action,
) audit.Entry {
	entry, err := audit.NewEntry(
		document.DisbursementVoucher, doc.ID(), by.ID(), action,
		document.StatusDraft, document.StatusPendingCheck, "", time.Now().UTC())
	suite.Require().NoError(err)
	return entry
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestActor(role actor.Role) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return a
}

func (suite *UnitOfWorkIntegrationTestSuite) assertPersistedStatus(id kernel.UUID, expected string) {
	var dto documentrepo.DocumentDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", id.Bytes()).Error)
	suite.Equal(expected, dto.Status)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertAuditCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&auditrepo.EntryDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
