package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Analysis payload kinds stored alongside a document's analysis column.
const (
	KindClauses     = "clauses"
	KindClauseCheck = "clause-check"
)

var riskLevels = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// RiskPercent is an aggregate risk value. Providers return it either as
// a bare number or as a string like "65%"; both decode to a float.
type RiskPercent float64

func (r *RiskPercent) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RiskPercent(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("risk value is neither number nor string: %s", data)
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("unparsable risk value %q", s)
	}
	*r = RiskPercent(n)
	return nil
}

func (r RiskPercent) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(r))
}

// Clause is one analyzed clause of a document.
type Clause struct {
	Clause          string   `json:"clause"`
	Type            string   `json:"type"`
	RiskLevel       string   `json:"riskLevel"`
	Status          string   `json:"status"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
	StandardClause  string   `json:"standardClause,omitempty"`
}

// ClauseAnalysis is the typed result of the analyze-clauses operation.
type ClauseAnalysis struct {
	Clauses     []Clause    `json:"clauses"`
	OverallRisk RiskPercent `json:"overallRisk"`
	Summary     string      `json:"summary"`
}

// StandardClause is one entry of the standard-clause checklist.
type StandardClause struct {
	Name           string `json:"name"`
	Present        bool   `json:"present"`
	Text           string `json:"text,omitempty"`
	RiskLevel      string `json:"riskLevel"`
	Recommendation string `json:"recommendation"`
}

// ClauseCheck is the typed result of the check-standard-clauses operation.
type ClauseCheck struct {
	StandardClauses    []StandardClause `json:"standardClauses"`
	MissingClauses     []string         `json:"missingClauses"`
	NonStandardClauses []string         `json:"nonStandardClauses"`
	OverallRisk        RiskPercent      `json:"overallRisk"`
}

// extractJSON pulls the first top-level JSON object out of a raw
// completion. Models wrap output in prose or markdown fences often
// enough that the scan is mandatory.
func extractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in model response")
	}
	return raw[start : end+1], nil
}

// ParseClauseAnalysis validates a raw completion into a ClauseAnalysis.
// Any shape violation fails the whole parse; callers must not persist a
// partially valid payload.
func ParseClauseAnalysis(raw string) (*ClauseAnalysis, error) {
	body, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	var result ClauseAnalysis
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, fmt.Errorf("decode clause analysis: %w", err)
	}
	if len(result.Clauses) == 0 {
		return nil, fmt.Errorf("clause analysis contains no clauses")
	}
	for i, c := range result.Clauses {
		if !riskLevels[c.RiskLevel] {
			return nil, fmt.Errorf("clause %d has invalid risk level %q", i, c.RiskLevel)
		}
	}
	return &result, nil
}

// ParseClauseCheck validates a raw completion into a ClauseCheck.
func ParseClauseCheck(raw string) (*ClauseCheck, error) {
	body, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	var result ClauseCheck
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, fmt.Errorf("decode clause check: %w", err)
	}
	if len(result.StandardClauses) == 0 {
		return nil, fmt.Errorf("clause check contains no standard clauses")
	}
	for i, c := range result.StandardClauses {
		if !riskLevels[c.RiskLevel] {
			return nil, fmt.Errorf("standard clause %d has invalid risk level %q", i, c.RiskLevel)
		}
	}
	return &result, nil
}
