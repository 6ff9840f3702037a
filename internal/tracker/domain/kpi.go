package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Column is the API name of an editable KPI column.
type Column string

const (
	ColCategory                 Column = "category"
	ColName                     Column = "name"
	ColSignoffStatus            Column = "signoffStatus"
	ColOwner                    Column = "owner"
	ColDevStatus                Column = "devStatus"
	ColDevCompletion            Column = "devCompletion"
	ColRemarks                  Column = "remarks"
	ColCustomerDependency       Column = "customerDependency"
	ColCustomerDependencyStatus Column = "customerDependencyStatus"
	ColRevisedDevStatus         Column = "revisedDevStatus"
	ColSITStatus                Column = "sitStatus"
	ColSITCompletion            Column = "sitCompletion"
	ColUATStatus                Column = "uatStatus"
	ColUATCompletion            Column = "uatCompletion"
	ColProdStatus               Column = "prodStatus"
	ColProdCompletion           Column = "prodCompletion"
)

// EditableColumns in table order.
var EditableColumns = []Column{
	ColCategory, ColName, ColSignoffStatus, ColOwner, ColDevStatus, ColDevCompletion,
	ColRemarks, ColCustomerDependency, ColCustomerDependencyStatus, ColRevisedDevStatus,
	ColSITStatus, ColSITCompletion, ColUATStatus, ColUATCompletion, ColProdStatus, ColProdCompletion,
}

var columnDisplayNames = map[Column]string{
	ColCategory:                 "Category",
	ColName:                     "KPI Name",
	ColSignoffStatus:            "Customer Signoff Status",
	ColOwner:                    "Owner",
	ColDevStatus:                "DEV Status",
	ColDevCompletion:            "DEV Completion %",
	ColRemarks:                  "Remarks",
	ColCustomerDependency:       "Customer Dependency",
	ColCustomerDependencyStatus: "Customer Dependency Status",
	ColRevisedDevStatus:         "Revised Dev Status",
	ColSITStatus:                "SIT Status",
	ColSITCompletion:            "SIT Completion %",
	ColUATStatus:                "UAT Status",
	ColUATCompletion:            "UAT Completion %",
	ColProdStatus:               "PROD Status",
	ColProdCompletion:           "PROD Completion %",
}

func (c Column) Valid() bool {
	_, ok := columnDisplayNames[c]
	return ok
}

func (c Column) DisplayName() string { return columnDisplayNames[c] }

// IsCompletion reports whether the column holds a 0..100 percentage.
func (c Column) IsCompletion() bool {
	switch c {
	case ColDevCompletion, ColSITCompletion, ColUATCompletion, ColProdCompletion:
		return true
	}
	return false
}

// Dev status values the summary counts.
const (
	DevNotStarted = "Not Started"
	DevInProgress = "In Progress"
	DevCompleted  = "Completed"
)

type KPI struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`

	SignoffStatus string `json:"signoffStatus"`
	Owner         string `json:"owner"`
	DevStatus     string `json:"devStatus"`
	DevCompletion int    `json:"devCompletion"`

	Remarks                  string `json:"remarks"`
	RemarksDate              string `json:"remarksDate"`
	CustomerDependency       string `json:"customerDependency"`
	CustomerDependencyStatus string `json:"customerDependencyStatus"`
	CustomerDependencyDate   string `json:"customerDependencyDate"`
	RevisedDevStatus         string `json:"revisedDevStatus"`
	RevisedDevStatusDate     string `json:"revisedDevStatusDate"`

	SITStatus      string `json:"sitStatus"`
	SITCompletion  int    `json:"sitCompletion"`
	UATStatus      string `json:"uatStatus"`
	UATCompletion  int    `json:"uatCompletion"`
	ProdStatus     string `json:"prodStatus"`
	ProdCompletion int    `json:"prodCompletion"`

	TargetDate      string `json:"targetDate"`
	SpecificDetails string `json:"specificDetails"`
	JiraTicket      string `json:"jiraTicket"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplyDefaults fills the values an imported sheet leaves empty.
func (k *KPI) ApplyDefaults() {
	if k.CustomerDependencyStatus == "" {
		k.CustomerDependencyStatus = "None"
	}
	if k.RevisedDevStatus == "" {
		k.RevisedDevStatus = DevNotStarted
	}
	if k.DevStatus == "" {
		k.DevStatus = DevNotStarted
	}
}

// Get returns the column as text, the form stored in audit rows.
func (k *KPI) Get(c Column) string {
	switch c {
	case ColCategory:
		return k.Category
	case ColName:
		return k.Name
	case ColSignoffStatus:
		return k.SignoffStatus
	case ColOwner:
		return k.Owner
	case ColDevStatus:
		return k.DevStatus
	case ColDevCompletion:
		return strconv.Itoa(k.DevCompletion)
	case ColRemarks:
		return k.Remarks
	case ColCustomerDependency:
		return k.CustomerDependency
	case ColCustomerDependencyStatus:
		return k.CustomerDependencyStatus
	case ColRevisedDevStatus:
		return k.RevisedDevStatus
	case ColSITStatus:
		return k.SITStatus
	case ColSITCompletion:
		return strconv.Itoa(k.SITCompletion)
	case ColUATStatus:
		return k.UATStatus
	case ColUATCompletion:
		return strconv.Itoa(k.UATCompletion)
	case ColProdStatus:
		return k.ProdStatus
	case ColProdCompletion:
		return strconv.Itoa(k.ProdCompletion)
	}
	return ""
}

// Set writes the text value v into column c. Completion columns must be
// integers between 0 and 100.
func (k *KPI) Set(c Column, v string) error {
	if c.IsCompletion() {
		n, err := ParseCompletion(v)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		switch c {
		case ColDevCompletion:
			k.DevCompletion = n
		case ColSITCompletion:
			k.SITCompletion = n
		case ColUATCompletion:
			k.UATCompletion = n
		case ColProdCompletion:
			k.ProdCompletion = n
		}
		return nil
	}

	switch c {
	case ColCategory:
		k.Category = v
	case ColName:
		k.Name = v
	case ColSignoffStatus:
		k.SignoffStatus = v
	case ColOwner:
		k.Owner = v
	case ColDevStatus:
		k.DevStatus = v
	case ColRemarks:
		k.Remarks = v
	case ColCustomerDependency:
		k.CustomerDependency = v
	case ColCustomerDependencyStatus:
		k.CustomerDependencyStatus = v
	case ColRevisedDevStatus:
		k.RevisedDevStatus = v
	case ColSITStatus:
		k.SITStatus = v
	case ColUATStatus:
		k.UATStatus = v
	case ColProdStatus:
		k.ProdStatus = v
	default:
		return fmt.Errorf("unknown column %q", c)
	}
	return nil
}

var ErrCompletionRange = fmt.Errorf("completion must be an integer between 0 and 100")

func ParseCompletion(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 100 {
		return 0, ErrCompletionRange
	}
	return n, nil
}

type KPISummary struct {
	Total             int `json:"total"`
	NotStarted        int `json:"notStarted"`
	InProgress        int `json:"inProgress"`
	Completed         int `json:"completed"`
	AvgDevCompletion  int `json:"avgDevCompletion"`
	AvgSITCompletion  int `json:"avgSitCompletion"`
	AvgUATCompletion  int `json:"avgUatCompletion"`
	AvgProdCompletion int `json:"avgProdCompletion"`
}
