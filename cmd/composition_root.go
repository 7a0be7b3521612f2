package cmd

import (
	"log/slog"

	"docflow/internal/adapters/out/postgres"
	"docflow/internal/adapters/out/postgres/jobrepo"
	"docflow/internal/adapters/out/postgres/notifyrepo"
	"docflow/internal/core/application/sideeffects"
	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	dispatcher  *sideeffects.Dispatcher
	systemActor actor.Actor
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	systemActorID, err := kernel.UUIDFromString(config.SystemActorID)
	if err != nil {
		return CompositionRoot{}, err
	}

	// The sweep closes permits through approval edges, so the system
	// principal carries the approver role.
	systemActor, err := actor.NewActor(systemActorID, actor.RoleApprover)
	if err != nil {
		return CompositionRoot{}, err
	}

	dispatcher := sideeffects.NewDispatcher(
		notifyrepo.NewGormNotificationRepository(gormDB),
		jobrepo.NewGormParentJobRepository(gormDB),
		logger,
	)

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher:  dispatcher,
		systemActor: systemActor,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateDocumentCommandHandler() commands.CreateDocumentCommandHandler {
	return commands.NewCreateDocumentCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateEditDocumentCommandHandler() commands.EditDocumentCommandHandler {
	return commands.NewEditDocumentCommandHandler(c.documentUoWFactory(), services.NewWorkflowGuard())
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	return commands.NewRequestTransitionCommandHandler(
		c.documentUoWFactory(),
		services.NewWorkflowGuard(),
		c.dispatcher,
	)
}

func (c *CompositionRoot) CreateCloseExpiredPermitsCommandHandler() commands.CloseExpiredPermitsCommandHandler {
	transitions := c.CreateRequestTransitionCommandHandler()
	return commands.NewCloseExpiredPermitsCommandHandler(
		c.documentUoWFactory(),
		&transitions,
		c.systemActor,
	)
}

func (c *CompositionRoot) CreateGetAuditHistoryQueryHandler() queries.GetAuditHistoryQueryHandler {
	return queries.NewGetAuditHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentsByStatusQueryHandler() queries.GetDocumentsByStatusQueryHandler {
	return queries.NewGetDocumentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) documentUoWFactory() commands.DocumentUoWFactory {
	return FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}
