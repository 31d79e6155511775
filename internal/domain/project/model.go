package project

// Project represents one retained row of the research-project export.
type Project struct {
	ID                    int    `json:"id"`
	PriorityLine          string `json:"priority_line"`
	Manager               string `json:"manager,omitempty"`
	Network               string `json:"network,omitempty"`
	Study                 string `json:"study"`
	Status                string `json:"status,omitempty"`
	DataSupport           string `json:"data_support,omitempty"`
	PrincipalInvestigator string `json:"principal_investigator,omitempty"`
	CoInvestigators       string `json:"co_investigators,omitempty"`
	NationalNetwork       string `json:"national_network,omitempty"`
}

// Field identifies one logical attribute of a Project. The layout table,
// the aggregator, and the filter composer all address attributes by Field.
type Field string

const (
	FieldPriorityLine          Field = "priority_line"
	FieldManager               Field = "manager"
	FieldNetwork               Field = "network"
	FieldStudy                 Field = "study"
	FieldStatus                Field = "status"
	FieldDataSupport           Field = "data_support"
	FieldPrincipalInvestigator Field = "principal_investigator"
	FieldCoInvestigators       Field = "co_investigators"
	FieldNationalNetwork       Field = "national_network"
)

// Fields lists all logical fields in export column order.
var Fields = []Field{
	FieldPriorityLine,
	FieldManager,
	FieldNetwork,
	FieldStudy,
	FieldStatus,
	FieldDataSupport,
	FieldPrincipalInvestigator,
	FieldCoInvestigators,
	FieldNationalNetwork,
}

// Value returns the named field of p, or "" for an unknown field.
func (p Project) Value(f Field) string {
	switch f {
	case FieldPriorityLine:
		return p.PriorityLine
	case FieldManager:
		return p.Manager
	case FieldNetwork:
		return p.Network
	case FieldStudy:
		return p.Study
	case FieldStatus:
		return p.Status
	case FieldDataSupport:
		return p.DataSupport
	case FieldPrincipalInvestigator:
		return p.PrincipalInvestigator
	case FieldCoInvestigators:
		return p.CoInvestigators
	case FieldNationalNetwork:
		return p.NationalNetwork
	default:
		return ""
	}
}
