//go:build wireinject
// +build wireinject

package wire

import (
	"customfields-server/internal/customfields/communication"
	"customfields-server/internal/customfields/httpapi"
	"customfields-server/internal/customfields/persistence"
	"customfields-server/internal/customfields/usecases"

	"github.com/google/wire"
)

var FieldDefinitionServiceSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	provideDefinitionCache,
	provideDefinitionCacheTTL,
	providePublisherFactory,
	persistence.NewFieldDefinitionRepository,
	wire.Bind(new(usecases.FieldDefinitionRepository), new(*persistence.SimpleFieldDefinitionRepository)),
	persistence.NewColumnConfigurationRepository,
	wire.Bind(new(usecases.ColumnConfigurationRepository), new(*persistence.SimpleColumnConfigurationRepository)),
	usecases.NewColumnConfigCleaner,
	wire.Bind(new(usecases.ColumnReferenceCleaner), new(*usecases.ColumnConfigCleaner)),
	communication.NewFieldEventPublisher,
	wire.Bind(new(usecases.FieldEventPublisher), new(*communication.FieldEventPublisher)),
	usecases.NewFieldDefinitionService,
	wire.Bind(new(usecases.FieldDefinitionService), new(*usecases.SimpleFieldDefinitionService)),
)

var PartitioningAdvisorSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePartitioningThresholds,
	persistence.NewStatsRepository,
	wire.Bind(new(usecases.StatsRepository), new(*persistence.SimpleStatsRepository)),
	usecases.NewPartitioningAdvisor,
	wire.Bind(new(usecases.PartitioningAdvisor), new(*usecases.SimplePartitioningAdvisor)),
)

func InitializeFieldDefinitionController() (*httpapi.FieldDefinitionController, error) {
	wire.Build(
		FieldDefinitionServiceSet,
		provideNamespaceResolver,
		httpapi.NewFieldDefinitionController,
	)
	return nil, nil
}

func InitializeFieldValueController() (*httpapi.FieldValueController, error) {
	wire.Build(
		FieldDefinitionServiceSet,
		persistence.NewFieldValueRepository,
		wire.Bind(new(usecases.FieldValueRepository), new(*persistence.SimpleFieldValueRepository)),
		usecases.NewValueService,
		wire.Bind(new(usecases.ValueService), new(*usecases.SimpleValueService)),
		usecases.NewDeduplicationService,
		wire.Bind(new(usecases.DeduplicationService), new(*usecases.SimpleDeduplicationService)),
		provideNamespaceResolver,
		httpapi.NewFieldValueController,
	)
	return nil, nil
}

func InitializeColumnConfigurationController() (*httpapi.ColumnConfigurationController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewColumnConfigurationRepository,
		wire.Bind(new(usecases.ColumnConfigurationRepository), new(*persistence.SimpleColumnConfigurationRepository)),
		usecases.NewColumnConfigurationService,
		wire.Bind(new(usecases.ColumnConfigurationService), new(*usecases.SimpleColumnConfigurationService)),
		provideNamespaceResolver,
		httpapi.NewColumnConfigurationController,
	)
	return nil, nil
}

func InitializeStatsController() (*httpapi.StatsController, error) {
	wire.Build(
		PartitioningAdvisorSet,
		provideNamespaceResolver,
		httpapi.NewStatsController,
	)
	return nil, nil
}

func InitializeStatsReportWorker() (*usecases.StatsReportWorker, error) {
	wire.Build(
		PartitioningAdvisorSet,
		provideStatsReportSchedule,
		provideReportNamespaces,
		usecases.NewStatsReportWorker,
	)
	return nil, nil
}

func InitializeDeduplicationService() (*usecases.SimpleDeduplicationService, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewFieldValueRepository,
		wire.Bind(new(usecases.FieldValueRepository), new(*persistence.SimpleFieldValueRepository)),
		usecases.NewDeduplicationService,
	)
	return nil, nil
}

func InitializePartitioningAdvisor() (*usecases.SimplePartitioningAdvisor, error) {
	wire.Build(
		PartitioningAdvisorSet,
	)
	return nil, nil
}
