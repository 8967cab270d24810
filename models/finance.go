package models

// Procedure is a veterinary or care procedure performed on an animal.
type Procedure struct {
	ProcedureID   int64  `json:"procedimento_id"`
	Type          string `json:"tipo" validate:"required"`
	Description   string `json:"descricao" validate:"required"`
	Amount        string `json:"valor" validate:"required"`
	ProcedureDate string `json:"data_procedimento" validate:"required"`
	AnimalID      int64  `json:"animal_id" validate:"required"`
	VolunteerID   int64  `json:"voluntario_id" validate:"required"`
	ExpenseID     int64  `json:"despesa_id" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Procedure model.
func (p Procedure) TableName() string {
	return "tab_procedimento"
}

// Campaign is a fundraising or adoption campaign run by the shelter.
type Campaign struct {
	CampaignID  int64  `json:"campanha_id"`
	Name        string `json:"nome" validate:"required"`
	Type        string `json:"tipo" validate:"required"`
	StartDate   string `json:"data_inicio" validate:"required"`
	EndDate     string `json:"data_termino" validate:"required"`
	Description string `json:"descricao" validate:"required"`
	Location    string `json:"local" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Campaign model.
func (c Campaign) TableName() string {
	return "tab_campanha"
}

// Donation is money or goods received by the shelter, optionally tied to
// an animal, a campaign, or a stock item.
type Donation struct {
	DonationID   int64  `json:"doacao_id"`
	Donor        string `json:"doador" validate:"required"`
	Amount       string `json:"valor" validate:"required"`
	DonationDate string `json:"data_doacao" validate:"required"`
	AnimalID     int64  `json:"animal_id" validate:"required"`
	CampaignID   int64  `json:"companha_id" validate:"required"`
	StockItemID  int64  `json:"estoque_id" validate:"required"`

	// Receipt is a reference to the proof-of-donation document.
	Receipt string `json:"comprovante" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Donation model.
func (d Donation) TableName() string {
	return "tab_doacao"
}

// Expense is an outgoing payment, optionally tied to an animal or a
// procedure.
type Expense struct {
	ExpenseID   int64  `json:"despesa_id"`
	Amount      string `json:"valor" validate:"required"`
	ExpenseDate string `json:"data_despesa" validate:"required"`
	Type        string `json:"tipo" validate:"required"`
	AnimalID    int64  `json:"animal_id" validate:"required"`
	ProcedureID int64  `json:"procedimento_id" validate:"required"`
	Receipt     string `json:"comprovante" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "tab_despesa"
}
