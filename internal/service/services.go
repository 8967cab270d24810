package service

import (
	"github.com/patas-felizes/backend/internal/config"
	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/models"
)

// Services bundles every business-logic component of the service: the
// authentication service and one validated CRUD service per shelter entity.
type Services struct {
	AuthService AuthService

	Animals           EntityService[models.Animal]
	Adoptions         EntityService[models.Adoption]
	Adopters          EntityService[models.Adopter]
	TemporaryShelters EntityService[models.TemporaryShelter]
	Hosts             EntityService[models.Host]
	Sponsorships      EntityService[models.Sponsorship]
	Procedures        EntityService[models.Procedure]
	Campaigns         EntityService[models.Campaign]
	Donations         EntityService[models.Donation]
	Expenses          EntityService[models.Expense]
	StockItems        EntityService[models.StockItem]
	Tasks             EntityService[models.Task]
	Volunteers        EntityService[models.Volunteer]
}

// NewServices constructs every service on top of the given repositories.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.App, logger),

		Animals:           NewEntityService(repositories.Animals, logger),
		Adoptions:         NewEntityService(repositories.Adoptions, logger),
		Adopters:          NewEntityService(repositories.Adopters, logger),
		TemporaryShelters: NewEntityService(repositories.TemporaryShelters, logger),
		Hosts:             NewEntityService(repositories.Hosts, logger),
		Sponsorships:      NewEntityService(repositories.Sponsorships, logger),
		Procedures:        NewEntityService(repositories.Procedures, logger),
		Campaigns:         NewEntityService(repositories.Campaigns, logger),
		Donations:         NewEntityService(repositories.Donations, logger),
		Expenses:          NewEntityService(repositories.Expenses, logger),
		StockItems:        NewEntityService(repositories.StockItems, logger),
		Tasks:             NewEntityService(repositories.Tasks, logger),
		Volunteers:        NewEntityService(repositories.Volunteers, logger),
	}
}
