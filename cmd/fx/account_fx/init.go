package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderwise/internal/api/controllers"
	"wanderwise/internal/repositories"
	"wanderwise/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	controllers.NewAccountsController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
