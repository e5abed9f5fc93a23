package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreJSON(t *testing.T) {
	sc, err := scoring.NewContext(config.Default(), models.DefaultProfile(), nil, nil)
	require.NoError(t, err)

	in := `[
		{"title": "Sales Intern", "company": "Acme Analytics", "link": "https://b"},
		{"title": "Data Analyst Intern", "company": "Google", "link": "https://a",
		 "description": "SQL, Excel, Power BI", "easy_apply": "yes", "stipend": null}
	]`

	var buf bytes.Buffer
	require.NoError(t, scoreJSON(context.Background(), sc, []byte(in), &buf))

	var out []models.Job
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "https://a", out[0].URL)
	assert.True(t, out[0].EasyApply)
	assert.True(t, out[0].ShouldAlert)
	assert.Equal(t, 1, out[0].CompanyTier)
	assert.False(t, out[1].ShouldAlert)
	assert.GreaterOrEqual(t, out[0].FinalRank, out[1].FinalRank)
}

func TestScoreJSON_BadInput(t *testing.T) {
	sc, err := scoring.NewContext(config.Default(), models.DefaultProfile(), nil, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, scoreJSON(context.Background(), sc, []byte(`{"title": "not an array"}`), &buf))
}

func TestCompanyCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"company", "--config", t.TempDir() + "/none.yaml", "Google India Private Limited", "Acme Analytics"})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Tier table 2024-01")
	assert.Contains(t, out, "Tier 1 (Top Companies)")
	assert.Contains(t, out, "Tier 3 (Others)")
}
