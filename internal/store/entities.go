package store

import "github.com/patas-felizes/backend/models"

// Table metadata for every shelter entity. Each meta binds a model to its
// table, primary key and column order; the generic entity repository does
// the rest. Column order must match the Values and Scan accessors.

// AnimalMeta maps [models.Animal] onto tab_animal.
var AnimalMeta = EntityMeta[models.Animal]{
	Table: models.Animal{}.TableName(),
	IDCol: "animal_id",
	Cols:  []string{"nome", "idade", "foto", "descricao", "sexo", "castracao", "status", "especie", "data_cadastro"},
	Values: func(a *models.Animal) []any {
		return []any{a.Name, a.Age, a.Photo, a.Description, a.Sex, a.Neutered, a.Status, a.Species, a.RegisteredAt}
	},
	Scan: func(a *models.Animal) []any {
		return []any{&a.AnimalID, &a.Name, &a.Age, &a.Photo, &a.Description, &a.Sex, &a.Neutered, &a.Status, &a.Species, &a.RegisteredAt}
	},
	SetID: func(a *models.Animal, id int64) { a.AnimalID = id },
}

// AdoptionMeta maps [models.Adoption] onto tab_adocao.
var AdoptionMeta = EntityMeta[models.Adoption]{
	Table: models.Adoption{}.TableName(),
	IDCol: "adocao_id",
	Cols:  []string{"animal_id", "adotante_id", "companha_id", "data_devolucao", "motivo_devolucao", "data_adocao", "data_cadastro"},
	Values: func(a *models.Adoption) []any {
		return []any{a.AnimalID, a.AdopterID, a.CampaignID, a.ReturnDate, a.ReturnReason, a.AdoptionDate, a.RegisteredAt}
	},
	Scan: func(a *models.Adoption) []any {
		return []any{&a.AdoptionID, &a.AnimalID, &a.AdopterID, &a.CampaignID, &a.ReturnDate, &a.ReturnReason, &a.AdoptionDate, &a.RegisteredAt}
	},
	SetID: func(a *models.Adoption, id int64) { a.AdoptionID = id },
}

// AdopterMeta maps [models.Adopter] onto tab_adotante.
var AdopterMeta = EntityMeta[models.Adopter]{
	Table: models.Adopter{}.TableName(),
	IDCol: "adotante_id",
	Cols:  []string{"nome", "telefone", "email", "moradia"},
	Values: func(a *models.Adopter) []any {
		return []any{a.Name, a.Phone, a.Email, a.Address}
	},
	Scan: func(a *models.Adopter) []any {
		return []any{&a.AdopterID, &a.Name, &a.Phone, &a.Email, &a.Address}
	},
	SetID: func(a *models.Adopter, id int64) { a.AdopterID = id },
}

// TemporaryShelterMeta maps [models.TemporaryShelter] onto tab_lar_temporario.
var TemporaryShelterMeta = EntityMeta[models.TemporaryShelter]{
	Table: models.TemporaryShelter{}.TableName(),
	IDCol: "lar_temporario_id",
	Cols:  []string{"animal_id", "hospedeiro_id", "periodo", "data_hospedagem", "data_cadastro"},
	Values: func(ts *models.TemporaryShelter) []any {
		return []any{ts.AnimalID, ts.HostID, ts.Period, ts.HostingDate, ts.RegisteredAt}
	},
	Scan: func(ts *models.TemporaryShelter) []any {
		return []any{&ts.TemporaryShelterID, &ts.AnimalID, &ts.HostID, &ts.Period, &ts.HostingDate, &ts.RegisteredAt}
	},
	SetID: func(ts *models.TemporaryShelter, id int64) { ts.TemporaryShelterID = id },
}

// HostMeta maps [models.Host] onto tab_hospedeiro.
var HostMeta = EntityMeta[models.Host]{
	Table: models.Host{}.TableName(),
	IDCol: "hospedeiro_id",
	Cols:  []string{"nome", "telefone", "email", "moradia"},
	Values: func(h *models.Host) []any {
		return []any{h.Name, h.Phone, h.Email, h.Address}
	},
	Scan: func(h *models.Host) []any {
		return []any{&h.HostID, &h.Name, &h.Phone, &h.Email, &h.Address}
	},
	SetID: func(h *models.Host, id int64) { h.HostID = id },
}

// SponsorshipMeta maps [models.Sponsorship] onto tab_apadrinhamento.
var SponsorshipMeta = EntityMeta[models.Sponsorship]{
	Table: models.Sponsorship{}.TableName(),
	IDCol: "apadrinhamento_id",
	Cols:  []string{"animal_id", "nome_apadrinhador", "valor", "regularidade"},
	Values: func(s *models.Sponsorship) []any {
		return []any{s.AnimalID, s.SponsorName, s.Amount, s.Regularity}
	},
	Scan: func(s *models.Sponsorship) []any {
		return []any{&s.SponsorshipID, &s.AnimalID, &s.SponsorName, &s.Amount, &s.Regularity}
	},
	SetID: func(s *models.Sponsorship, id int64) { s.SponsorshipID = id },
}

// ProcedureMeta maps [models.Procedure] onto tab_procedimento.
var ProcedureMeta = EntityMeta[models.Procedure]{
	Table: models.Procedure{}.TableName(),
	IDCol: "procedimento_id",
	Cols:  []string{"tipo", "descricao", "valor", "data_procedimento", "animal_id", "voluntario_id", "despesa_id"},
	Values: func(p *models.Procedure) []any {
		return []any{p.Type, p.Description, p.Amount, p.ProcedureDate, p.AnimalID, p.VolunteerID, p.ExpenseID}
	},
	Scan: func(p *models.Procedure) []any {
		return []any{&p.ProcedureID, &p.Type, &p.Description, &p.Amount, &p.ProcedureDate, &p.AnimalID, &p.VolunteerID, &p.ExpenseID}
	},
	SetID: func(p *models.Procedure, id int64) { p.ProcedureID = id },
}

// CampaignMeta maps [models.Campaign] onto tab_campanha.
var CampaignMeta = EntityMeta[models.Campaign]{
	Table: models.Campaign{}.TableName(),
	IDCol: "campanha_id",
	Cols:  []string{"nome", "tipo", "data_inicio", "data_termino", "descricao", "local"},
	Values: func(c *models.Campaign) []any {
		return []any{c.Name, c.Type, c.StartDate, c.EndDate, c.Description, c.Location}
	},
	Scan: func(c *models.Campaign) []any {
		return []any{&c.CampaignID, &c.Name, &c.Type, &c.StartDate, &c.EndDate, &c.Description, &c.Location}
	},
	SetID: func(c *models.Campaign, id int64) { c.CampaignID = id },
}

// DonationMeta maps [models.Donation] onto tab_doacao.
var DonationMeta = EntityMeta[models.Donation]{
	Table: models.Donation{}.TableName(),
	IDCol: "doacao_id",
	Cols:  []string{"doador", "valor", "data_doacao", "animal_id", "companha_id", "estoque_id", "comprovante"},
	Values: func(d *models.Donation) []any {
		return []any{d.Donor, d.Amount, d.DonationDate, d.AnimalID, d.CampaignID, d.StockItemID, d.Receipt}
	},
	Scan: func(d *models.Donation) []any {
		return []any{&d.DonationID, &d.Donor, &d.Amount, &d.DonationDate, &d.AnimalID, &d.CampaignID, &d.StockItemID, &d.Receipt}
	},
	SetID: func(d *models.Donation, id int64) { d.DonationID = id },
}

// ExpenseMeta maps [models.Expense] onto tab_despesa.
var ExpenseMeta = EntityMeta[models.Expense]{
	Table: models.Expense{}.TableName(),
	IDCol: "despesa_id",
	Cols:  []string{"valor", "data_despesa", "tipo", "animal_id", "procedimento_id", "comprovante"},
	Values: func(e *models.Expense) []any {
		return []any{e.Amount, e.ExpenseDate, e.Type, e.AnimalID, e.ProcedureID, e.Receipt}
	},
	Scan: func(e *models.Expense) []any {
		return []any{&e.ExpenseID, &e.Amount, &e.ExpenseDate, &e.Type, &e.AnimalID, &e.ProcedureID, &e.Receipt}
	},
	SetID: func(e *models.Expense, id int64) { e.ExpenseID = id },
}

// StockItemMeta maps [models.StockItem] onto tab_estoque.
var StockItemMeta = EntityMeta[models.StockItem]{
	Table: models.StockItem{}.TableName(),
	IDCol: "estoque_id",
	Cols:  []string{"categoria", "tipo_item", "descricao", "especie_animal", "quantidade"},
	Values: func(s *models.StockItem) []any {
		return []any{s.Category, s.ItemType, s.Description, s.AnimalSpecies, s.Quantity}
	},
	Scan: func(s *models.StockItem) []any {
		return []any{&s.StockItemID, &s.Category, &s.ItemType, &s.Description, &s.AnimalSpecies, &s.Quantity}
	},
	SetID: func(s *models.StockItem, id int64) { s.StockItemID = id },
}

// TaskMeta maps [models.Task] onto tab_tarefa.
var TaskMeta = EntityMeta[models.Task]{
	Table: models.Task{}.TableName(),
	IDCol: "tarefa_id",
	Cols:  []string{"tipo", "descricao", "data_tarefa", "voluntario_id", "animal_id"},
	Values: func(t *models.Task) []any {
		return []any{t.Type, t.Description, t.TaskDate, t.VolunteerID, t.AnimalID}
	},
	Scan: func(t *models.Task) []any {
		return []any{&t.TaskID, &t.Type, &t.Description, &t.TaskDate, &t.VolunteerID, &t.AnimalID}
	},
	SetID: func(t *models.Task, id int64) { t.TaskID = id },
}

// VolunteerMeta maps [models.Volunteer] onto tab_voluntario.
var VolunteerMeta = EntityMeta[models.Volunteer]{
	Table: models.Volunteer{}.TableName(),
	IDCol: "voluntario_id",
	Cols:  []string{"nome", "foto", "email", "telefone"},
	Values: func(v *models.Volunteer) []any {
		return []any{v.Name, v.Photo, v.Email, v.Phone}
	},
	Scan: func(v *models.Volunteer) []any {
		return []any{&v.VolunteerID, &v.Name, &v.Photo, &v.Email, &v.Phone}
	},
	SetID: func(v *models.Volunteer, id int64) { v.VolunteerID = id },
}
