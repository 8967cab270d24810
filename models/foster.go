package models

// TemporaryShelter records an animal staying with a host family for a
// limited period.
type TemporaryShelter struct {
	TemporaryShelterID int64 `json:"lar_temporario_id"`
	AnimalID           int64 `json:"animal_id" validate:"required"`
	HostID             int64 `json:"hospedeiro_id" validate:"required"`

	// Period is a composite value-plus-unit string (e.g. "3 meses").
	Period       string `json:"periodo" validate:"required"`
	HostingDate  string `json:"data_hospedagem" validate:"required"`
	RegisteredAt string `json:"data_cadastro" validate:"required"`
}

// TableName returns the name of the database table
// associated with the TemporaryShelter model.
func (t TemporaryShelter) TableName() string {
	return "tab_lar_temporario"
}

// Host is a person that takes animals into temporary shelter.
type Host struct {
	HostID  int64  `json:"hospedeiro_id"`
	Name    string `json:"nome" validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"moradia" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Host model.
func (h Host) TableName() string {
	return "tab_hospedeiro"
}

// Sponsorship is a recurring financial contribution bound to a single
// animal.
type Sponsorship struct {
	SponsorshipID int64  `json:"apadrinhamento_id"`
	AnimalID      int64  `json:"animal_id" validate:"required"`
	SponsorName   string `json:"nome_apadrinhador" validate:"required"`
	Amount        string `json:"valor" validate:"required"`

	// Regularity is one of: quinzenalmente, mensalmente, semestralmente.
	Regularity string `json:"regularidade" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Sponsorship model.
func (s Sponsorship) TableName() string {
	return "tab_apadrinhamento"
}
