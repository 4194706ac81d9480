package models

// FieldValue represents a field with both raw data and formatted display
type FieldValue struct {
	Raw     interface{} `json:"raw"`     // For CSV/sorting: 1234.56
	Display string      `json:"display"` // For UI: "$1,234.56"
	Type    string      `json:"type"`    // For CSS: "currency"
}

// FormattedResult maps field names to dual raw/display values
type FormattedResult map[string]FieldValue

// ResponseMetadata carries timing and run details for an API response
type ResponseMetadata struct {
	Timestamp      string  `json:"timestamp"`
	ProcessingTime float64 `json:"processing_time"`
	Degenerate     bool    `json:"degenerate,omitempty"`
	PathCount      int     `json:"path_count,omitempty"`
	StepCount      int     `json:"step_count,omitempty"`
	Seeded         bool    `json:"seeded,omitempty"`
}

// PriceRequest carries model parameters for a pricing call
type PriceRequest struct {
	Spot       float64 `json:"spot"`
	Strike     float64 `json:"strike"`
	Rate       float64 `json:"rate"`
	Volatility float64 `json:"volatility"`
	Horizon    float64 `json:"horizon"`
}

// PriceResponse is the formatted pricing API response
type PriceResponse struct {
	Success bool             `json:"success"`
	Data    FormattedResult  `json:"data"`
	Meta    ResponseMetadata `json:"meta"`
}

// SimulateRequest carries model parameters plus simulation settings
type SimulateRequest struct {
	Spot         float64 `json:"spot"`
	Strike       float64 `json:"strike"`
	Rate         float64 `json:"rate"`
	Volatility   float64 `json:"volatility"`
	Horizon      float64 `json:"horizon"`
	PathCount    int     `json:"path_count"`
	StepCount    int     `json:"step_count"`
	Seed         *int64  `json:"seed,omitempty"`
	IncludePaths bool    `json:"include_paths,omitempty"`
}

// SimulateResponse summarizes a simulated ensemble
type SimulateResponse struct {
	Success bool             `json:"success"`
	Summary FormattedResult  `json:"summary"`
	Paths   [][]float64      `json:"paths,omitempty"`
	Meta    ResponseMetadata `json:"meta"`
}

// HedgeRequest carries model parameters plus hedge replay settings
type HedgeRequest struct {
	Spot       float64 `json:"spot"`
	Strike     float64 `json:"strike"`
	Rate       float64 `json:"rate"`
	Volatility float64 `json:"volatility"`
	Horizon    float64 `json:"horizon"`
	StepCount  int     `json:"step_count"`
	Seed       *int64  `json:"seed,omitempty"`
}

// HedgeResponse reports the result of a delta-hedge replay
type HedgeResponse struct {
	Success       bool             `json:"success"`
	Data          FormattedResult  `json:"data"`
	CumulativePnL []float64        `json:"cumulative_pnl,omitempty"`
	Meta          ResponseMetadata `json:"meta"`
}

// SnapshotResponse reports live market inputs for the pricing model
type SnapshotResponse struct {
	Success bool             `json:"success"`
	Data    FormattedResult  `json:"data"`
	Meta    ResponseMetadata `json:"meta"`
}

// ErrorResponse is the shared error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
