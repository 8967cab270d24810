package models

// StockItem is an inventory entry (food, medicine, supplies).
type StockItem struct {
	StockItemID int64  `json:"estoque_id"`
	Category    string `json:"categoria" validate:"required"`
	ItemType    string `json:"tipo_item" validate:"required"`
	Description string `json:"descricao" validate:"required"`

	// AnimalSpecies narrows the item to a species when applicable.
	AnimalSpecies string `json:"especie_animal" validate:"required"`

	// Quantity is a composite value-plus-unit string (e.g. "10 kg").
	Quantity string `json:"quantidade" validate:"required"`
}

// TableName returns the name of the database table
// associated with the StockItem model.
func (s StockItem) TableName() string {
	return "tab_estoque"
}

// Task is a unit of shelter work assigned to a volunteer, optionally tied
// to an animal.
type Task struct {
	TaskID      int64  `json:"tarefa_id"`
	Type        string `json:"tipo" validate:"required"`
	Description string `json:"descricao" validate:"required"`
	TaskDate    string `json:"data_tarefa" validate:"required"`
	VolunteerID int64  `json:"voluntario_id" validate:"required"`
	AnimalID    int64  `json:"animal_id" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tab_tarefa"
}

// Volunteer is a person doing shelter work.
type Volunteer struct {
	VolunteerID int64  `json:"voluntario_id"`
	Name        string `json:"nome" validate:"required"`
	Photo       string `json:"foto" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"telefone" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Volunteer model.
func (v Volunteer) TableName() string {
	return "tab_voluntario"
}
