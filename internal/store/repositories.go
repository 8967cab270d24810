package store

import (
	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/models"
)

// Repositories bundles every data-access component of the service: the user
// repository backing the password-based authentication flow and one entity
// repository per shelter table.
type Repositories struct {
	UserRepository UserRepository

	Animals           EntityRepository[models.Animal]
	Adoptions         EntityRepository[models.Adoption]
	Adopters          EntityRepository[models.Adopter]
	TemporaryShelters EntityRepository[models.TemporaryShelter]
	Hosts             EntityRepository[models.Host]
	Sponsorships      EntityRepository[models.Sponsorship]
	Procedures        EntityRepository[models.Procedure]
	Campaigns         EntityRepository[models.Campaign]
	Donations         EntityRepository[models.Donation]
	Expenses          EntityRepository[models.Expense]
	StockItems        EntityRepository[models.StockItem]
	Tasks             EntityRepository[models.Task]
	Volunteers        EntityRepository[models.Volunteer]
}

// NewRepositories constructs every repository on the shared database
// connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),

		Animals:           NewEntityRepository(AnimalMeta, db, log),
		Adoptions:         NewEntityRepository(AdoptionMeta, db, log),
		Adopters:          NewEntityRepository(AdopterMeta, db, log),
		TemporaryShelters: NewEntityRepository(TemporaryShelterMeta, db, log),
		Hosts:             NewEntityRepository(HostMeta, db, log),
		Sponsorships:      NewEntityRepository(SponsorshipMeta, db, log),
		Procedures:        NewEntityRepository(ProcedureMeta, db, log),
		Campaigns:         NewEntityRepository(CampaignMeta, db, log),
		Donations:         NewEntityRepository(DonationMeta, db, log),
		Expenses:          NewEntityRepository(ExpenseMeta, db, log),
		StockItems:        NewEntityRepository(StockItemMeta, db, log),
		Tasks:             NewEntityRepository(TaskMeta, db, log),
		Volunteers:        NewEntityRepository(VolunteerMeta, db, log),
	}
}
