package models

// Animal is a sheltered animal record.
//
// All descriptive attributes are stored as free-form strings; the mobile
// client is responsible for presenting the predefined value sets (sex,
// neuter state, status, species).
type Animal struct {
	// AnimalID is the server-assigned primary key.
	AnimalID int64 `json:"animal_id"`

	// Name is the animal's given name.
	Name string `json:"nome" validate:"required"`

	// Age is a composite value-plus-unit string (e.g. "2 anos").
	Age string `json:"idade" validate:"required"`

	// Photo is the raw image blob, base64-encoded on the wire.
	Photo []byte `json:"foto" validate:"required"`

	Description string `json:"descricao" validate:"required"`

	// Sex is one of "Macho" or "Fêmea".
	Sex string `json:"sexo" validate:"required"`

	// Neutered is one of "Sim" or "Não".
	Neutered string `json:"castracao" validate:"required"`

	// Status is one of: Para adoção, Adotado, Em tratamento,
	// Em lar temporário, Falecido, Desaparecido.
	Status string `json:"status" validate:"required"`

	// Species is one of "Gato" or "Cachorro".
	Species string `json:"especie" validate:"required"`

	// RegisteredAt is the registration date captured by the caller.
	RegisteredAt string `json:"data_cadastro" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Animal model.
func (a Animal) TableName() string {
	return "tab_animal"
}
