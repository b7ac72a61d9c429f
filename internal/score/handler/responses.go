package handler

import "medcalc/internal/score"

// ListResponse wraps the catalog listing.
type ListResponse struct {
	Scores []score.Info `json:"scores"`
	Count  int          `json:"count"`
}

// CategoriesResponse wraps the category listing.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

// CalculateResponse is the calculation envelope returned to callers, tagged
// with the score id it came from.
type CalculateResponse struct {
	ScoreID          string         `json:"score_id"`
	Result           any            `json:"result"`
	Unit             string         `json:"unit"`
	Interpretation   string         `json:"interpretation"`
	Stage            string         `json:"stage"`
	StageDescription string         `json:"stage_description"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// FromResult converts a normalized service result to the response envelope.
func FromResult(scoreID string, r *score.Result) CalculateResponse {
	return CalculateResponse{
		ScoreID:          scoreID,
		Result:           r.Result,
		Unit:             r.Unit,
		Interpretation:   r.Interpretation,
		Stage:            r.Stage,
		StageDescription: r.StageDescription,
		Extra:            r.Extra,
	}
}
