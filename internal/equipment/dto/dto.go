package dto

type EquipmentFilters struct {
	EquipmentIDs         []string
	NotEquipmentIDs      []string
	EquipmentClasses     []string
	NotEquipmentClasses  []string
	EquipmentStatuses    []string
	NotEquipmentStatuses []string
	DepartmentsOwned     []string
	NotDepartmentsOwned  []string
}

type AddEquipmentInput struct {
	EquipmentID          string `validate:"required,max=15"`
	EquipmentClass       string `validate:"required"`
	EquipmentDescription string `validate:"required"`
}

// UpdateEquipmentFields lists the equipment fields that can be changed in
// place. Nil fields are left alone.
type UpdateEquipmentFields struct {
	EquipmentDescription *string
	EquipmentClass       *string
	EquipmentStatus      *string
	Plate                *string
	Odometer             *float64
}
