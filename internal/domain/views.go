package domain

// CompanySummary joins a company's aggregates with its compliance status.
type CompanySummary struct {
	Company              string           `json:"company"`
	CanonicalName        string           `json:"canonical_name"`
	Production           int64            `json:"production"`
	Emissions            int64            `json:"emissions"`
	Intensity            *float64         `json:"intensity"`
	Score                *float64         `json:"score"`
	GreenInvestmentRatio *float64         `json:"green_investment_ratio"`
	Status               ComplianceStatus `json:"status"`
}

type CompanyListItem struct {
	Name             string           `json:"name"`
	Production       int64            `json:"production"`
	Emissions        int64            `json:"emissions"`
	ComplianceStatus ComplianceStatus `json:"compliance_status"`
}

type IndustryOverview struct {
	TotalProduction int64 `json:"total_production"`
	TotalEmissions  int64 `json:"total_emissions"`
	ActiveCompanies int   `json:"active_companies"`
}

type Forecast struct {
	Year                Year    `json:"year"`
	PredictedProduction float64 `json:"predicted_production"`
	PredictedEmissions  float64 `json:"predicted_emissions"`
}

type ProductionView struct {
	Daily   int64 `json:"daily"`
	Monthly int64 `json:"monthly"`
	Yearly  int64 `json:"yearly"`
}

type ComplianceView struct {
	Environmental ComplianceStatus `json:"environmental"`
	Safety        ComplianceStatus `json:"safety"`
	Report        ComplianceStatus `json:"report"`
}

type EmissionEstimate struct {
	Prediction float64 `json:"prediction"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type StatusChange struct {
	Message string           `json:"message"`
	Status  ComplianceStatus `json:"status"`
}

type NoticeResult struct {
	Message string `json:"message"`
	Notice  Notice `json:"notice"`
}

type AuctionResult struct {
	Message string  `json:"message"`
	Auction Auction `json:"auction"`
}

type ReportResult struct {
	Message string `json:"message"`
	Report  Report `json:"report"`
}

type MessageResult struct {
	Message string  `json:"message"`
	Data    Message `json:"data"`
}
