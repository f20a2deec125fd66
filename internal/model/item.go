package model

import "github.com/shopspring/decimal"

type ResourceItemStock int

const (
	StockNo           ResourceItemStock = 0
	StockYes          ResourceItemStock = 1
	StockNonInventory ResourceItemStock = 2
)

const ItemIDMaxLength = 15

type ResourceItem struct {
	ItemSystemID      string            `db:"itemSystemId"`
	ItemID            string            `db:"itemId"`
	ItemDescription   string            `db:"itemDescription"`
	ItemClass         string            `db:"itemClass"`
	ItemType          string            `db:"itemType"`
	ItemBrand         string            `db:"itemBrand"`
	ItemModel         string            `db:"itemModel"`
	SerialNumber      string            `db:"serialNumber"`
	ItemStatus        string            `db:"itemStatus"`
	Location          string            `db:"location"`
	Department        string            `db:"department"`
	Division          string            `db:"division"`
	Company           string            `db:"company"`
	FuelType          string            `db:"fuelType"`
	ExpenseJobID      string            `db:"expenseJobId"`
	ExpenseActivityID string            `db:"expenseActivityId"`
	ExpenseObjectCode string            `db:"expenseObjectCode"`
	RevenueJobID      string            `db:"revenueJobId"`
	RevenueActivityID string            `db:"revenueActivityId"`
	RevenueObjectCode string            `db:"revenueObjectCode"`
	Stock             ResourceItemStock `db:"stock"`
	Unit              string            `db:"unit"`
	UnitCost          decimal.Decimal   `db:"unitCost"`
	QuantityOnHand    decimal.Decimal   `db:"quantityOnHand"`
	ExternalItemID    string            `db:"externalItemId"`
	Comments          string            `db:"comments"`
}

const EquipmentItemType = "Equipment"

type EquipmentItem struct {
	EquipmentSystemID    string  `db:"equipmentSystemId"`
	EquipmentID          string  `db:"equipmentId"`
	EquipmentDescription string  `db:"equipmentDescription"`
	EquipmentClass       string  `db:"equipmentClass"`
	EquipmentBrand       string  `db:"equipmentBrand"`
	EquipmentModel       string  `db:"equipmentModel"`
	EquipmentModelYear   int     `db:"equipmentModelYear"`
	SerialNumber         string  `db:"serialNumber"`
	Plate                string  `db:"plate"`
	FuelType             string  `db:"fuelType"`
	EquipmentStatus      string  `db:"equipmentStatus"`
	Comments             string  `db:"comments"`
	Location             string  `db:"location"`
	DepartmentOwned      string  `db:"departmentOwned"`
	DepartmentManaged    string  `db:"departmentManaged"`
	ExpenseJobID         string  `db:"expenseJobId"`
	ExpenseActivityID    string  `db:"expenseActivityId"`
	ExpenseObjectCode    string  `db:"expenseObjectCode"`
	RevenueJobID         string  `db:"revenueJobId"`
	RevenueActivityID    string  `db:"revenueActivityId"`
	RevenueObjectCode    string  `db:"revenueObjectCode"`
	Odometer             float64 `db:"odometer"`
	JobCostHours         float64 `db:"jobCostHours"`
	HourMeter            float64 `db:"hourMeter"`
}
