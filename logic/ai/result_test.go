package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, false},
		{"markdown fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, false},
		{"prose around", "Here is the result: {\"a\":1} Hope that helps!", `{"a":1}`, false},
		{"no object", "I cannot analyze this document.", "", true},
		{"brace order wrong", "} {", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRiskPercentDecoding(t *testing.T) {
	var r RiskPercent
	require.NoError(t, json.Unmarshal([]byte(`65`), &r))
	assert.InDelta(t, 65, float64(r), 0.001)

	require.NoError(t, json.Unmarshal([]byte(`"65%"`), &r))
	assert.InDelta(t, 65, float64(r), 0.001)

	require.NoError(t, json.Unmarshal([]byte(`" 42.5 % "`), &r))
	assert.InDelta(t, 42.5, float64(r), 0.001)

	assert.Error(t, json.Unmarshal([]byte(`"high"`), &r))
	assert.Error(t, json.Unmarshal([]byte(`true`), &r))
}

func TestRiskPercentEncodesAsNumber(t *testing.T) {
	out, err := json.Marshal(RiskPercent(30))
	require.NoError(t, err)
	assert.Equal(t, "30", string(out))
}

func TestParseClauseAnalysis(t *testing.T) {
	raw := "Sure, here is the analysis:\n```json\n" + `{
		"clauses": [
			{"clause": "Either party may terminate with 30 days notice.", "type": "termination", "riskLevel": "low", "status": "standard", "analysis": "Typical mutual termination clause.", "recommendations": []},
			{"clause": "Liability is unlimited.", "type": "liability", "riskLevel": "high", "status": "unusual", "analysis": "No liability cap.", "recommendations": ["Add a cap."]}
		],
		"overallRisk": "55%",
		"summary": "One risky clause."
	}` + "\n```"

	result, err := ParseClauseAnalysis(raw)
	require.NoError(t, err)
	assert.Len(t, result.Clauses, 2)
	assert.Equal(t, "high", result.Clauses[1].RiskLevel)
	assert.InDelta(t, 55, float64(result.OverallRisk), 0.001)
	assert.Equal(t, "One risky clause.", result.Summary)
}

func TestParseClauseAnalysisRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json", "unable to comply"},
		{"empty clause list", `{"clauses": [], "overallRisk": 10, "summary": "n/a"}`},
		{"invalid risk level", `{"clauses": [{"clause": "x", "riskLevel": "severe"}], "overallRisk": 10}`},
		{"malformed json", `{"clauses": [}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClauseAnalysis(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseClauseCheck(t *testing.T) {
	raw := `{
		"standardClauses": [
			{"name": "Termination", "present": true, "text": "30 days notice", "riskLevel": "low", "recommendation": "None."},
			{"name": "Indemnification", "present": false, "riskLevel": "medium", "recommendation": "Add one."}
		],
		"missingClauses": ["Indemnification"],
		"nonStandardClauses": [],
		"overallRisk": 40
	}`

	result, err := ParseClauseCheck(raw)
	require.NoError(t, err)
	assert.Len(t, result.StandardClauses, 2)
	assert.False(t, result.StandardClauses[1].Present)
	assert.Equal(t, []string{"Indemnification"}, result.MissingClauses)
	assert.InDelta(t, 40, float64(result.OverallRisk), 0.001)
}

func TestParseClauseCheckRejections(t *testing.T) {
	_, err := ParseClauseCheck(`{"standardClauses": [], "overallRisk": 0}`)
	assert.Error(t, err)

	_, err = ParseClauseCheck(`{"standardClauses": [{"name": "x", "riskLevel": "extreme"}], "overallRisk": 0}`)
	assert.Error(t, err)
}
