package snapshot

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/scoreline/internal/models"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"json":  FormatJSON,
		".json": FormatJSON,
		"YAML":  FormatYAML,
		".yml":  FormatYAML,
	}
	for name, want := range cases {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat(".csv")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadFileYAML(t *testing.T) {
	s, err := LoadFile("testdata/scenario_a.yaml")
	require.NoError(t, err)

	assert.Equal(t, "arsenal-chelsea", s.EventID)
	assert.Equal(t, "Arsenal", s.Teams.Home)
	require.NotNil(t, s.Moneyline)
	require.Len(t, s.Moneyline.Quotes, 3)
	assert.Equal(t, 3.60, s.Moneyline.Quotes[1].Price)
	require.Len(t, s.Totals, 1)
	require.NotNil(t, s.Totals[0].OverPrice)
	assert.Equal(t, 1.95, *s.Totals[0].OverPrice)
	assert.Nil(t, s.TeamGoals)
}

func TestLoadFileJSON(t *testing.T) {
	s, err := LoadFile("testdata/team_goals.json")
	require.NoError(t, err)

	assert.Equal(t, models.ScoreOffset{Home: 1}, s.Score)
	assert.Nil(t, s.Moneyline)
	require.NotNil(t, s.TeamGoals)
	assert.Len(t, s.TeamGoals.Home.Quotes, 3)
	assert.Equal(t, "2+", s.TeamGoals.Away.Quotes[2].Label)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"teams":{"home":"A","away":"B"},"odds":[]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("teams: {home: A, away: B}\nodds: []\n"), FormatYAML)
	assert.Error(t, err)
}

func TestDecodeRejectsStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			name:  "missing away team",
			input: `{"teams":{"home":"A"}}`,
			field: "Teams.Away",
		},
		{
			name:  "negative score",
			input: `{"teams":{"home":"A","away":"B"},"score":{"home":-1,"away":0}}`,
			field: "Score.Home",
		},
		{
			name:  "single moneyline quote",
			input: `{"teams":{"home":"A","away":"B"},"moneyline":{"quotes":[{"label":"A","price":1.5}]}}`,
			field: "Moneyline.Quotes",
		},
		{
			name:  "totals line out of range",
			input: `{"teams":{"home":"A","away":"B"},"totals":[{"line":1e19,"over_price":1.9,"under_price":1.9}]}`,
			field: "Totals[0].Line",
		},
		{
			name:  "totals missing under",
			input: `{"teams":{"home":"A","away":"B"},"totals":[{"line":2.5,"over_price":1.9}]}`,
			field: "Totals[0].UnderPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatJSON)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Error(), tt.field)

			var fields validator.ValidationErrors
			assert.True(t, errors.As(err, &fields))
		})
	}
}

func TestDecodeKeepsInvalidPrices(t *testing.T) {
	input := `{"teams":{"home":"A","away":"B"},"moneyline":{"quotes":[{"label":"A","price":0},{"label":"B","price":2.1}]}}`

	s, err := Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Moneyline.Quotes[0].Price)
}

func TestDecodeRejectsInfiniteLineYAML(t *testing.T) {
	input := "teams: {home: A, away: B}\ntotals:\n  - {line: .inf, over_price: 1.9, under_price: 1.9}\n"

	_, err := Decode(strings.NewReader(input), FormatYAML)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "must be <= 1000")
}

func TestValidateNil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), models.ErrNilSnapshot)
}
