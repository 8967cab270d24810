package models

// Adoption links an animal to an adopter, optionally under a campaign.
// Return fields are filled in only when the animal comes back to the
// shelter.
type Adoption struct {
	AdoptionID   int64  `json:"adocao_id"`
	AnimalID     int64  `json:"animal_id" validate:"required"`
	AdopterID    int64  `json:"adotante_id" validate:"required"`
	CampaignID   int64  `json:"companha_id" validate:"required"`
	ReturnDate   string `json:"data_devolucao" validate:"required"`
	ReturnReason string `json:"motivo_devolucao" validate:"required"`
	AdoptionDate string `json:"data_adocao" validate:"required"`
	RegisteredAt string `json:"data_cadastro" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Adoption model.
func (a Adoption) TableName() string {
	return "tab_adocao"
}

// Adopter is a person approved to adopt animals.
type Adopter struct {
	AdopterID int64  `json:"adotante_id"`
	Name      string `json:"nome" validate:"required"`
	Phone     string `json:"telefone" validate:"required"`
	Email     string `json:"email" validate:"required"`

	// Address is the composite housing description
	// (state, city, street, district, number, postal code).
	Address string `json:"moradia" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Adopter model.
func (a Adopter) TableName() string {
	return "tab_adotante"
}
