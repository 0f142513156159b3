package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Enum(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		field   string
		allowed []string
		want    string
		wantErr bool
	}{
		{
			name:    "Valid value",
			params:  Params{"version": "original"},
			field:   "version",
			allowed: []string{"original", "meld_na"},
			want:    "original",
		},
		{
			name:    "Missing field",
			params:  Params{},
			field:   "version",
			allowed: []string{"original"},
			wantErr: true,
		},
		{
			name:    "Value not in allowed set",
			params:  Params{"version": "v2"},
			field:   "version",
			allowed: []string{"original", "meld_na"},
			wantErr: true,
		},
		{
			name:    "Non-string value",
			params:  Params{"version": 3.0},
			field:   "version",
			allowed: []string{"original"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Enum(tt.field, tt.allowed...)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.field, vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams_YesNo(t *testing.T) {
	params := Params{"fever": "yes", "cough": "no", "bad": "maybe"}

	fever, err := params.YesNo("fever")
	require.NoError(t, err)
	assert.True(t, fever)

	cough, err := params.YesNo("cough")
	require.NoError(t, err)
	assert.False(t, cough)

	_, err = params.YesNo("bad")
	assert.Error(t, err)

	_, err = params.YesNo("missing")
	assert.Error(t, err)
}

func TestParams_OptionalYesNo(t *testing.T) {
	params := Params{"dialysis": "yes"}

	set, err := params.OptionalYesNo("dialysis")
	require.NoError(t, err)
	assert.True(t, set)

	absent, err := params.OptionalYesNo("missing")
	require.NoError(t, err)
	assert.False(t, absent)
}

func TestParams_Float(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		min, max float64
		want     float64
		wantErr  bool
	}{
		{
			name:   "JSON number decodes as float64",
			params: Params{"bilirubin": 2.5},
			min:    0.1, max: 50,
			want: 2.5,
		},
		{
			name:   "Integer value accepted",
			params: Params{"bilirubin": 3},
			min:    0.1, max: 50,
			want: 3,
		},
		{
			name:   "Below minimum",
			params: Params{"bilirubin": 0.05},
			min:    0.1, max: 50,
			wantErr: true,
		},
		{
			name:   "Above maximum",
			params: Params{"bilirubin": 60.0},
			min:    0.1, max: 50,
			wantErr: true,
		},
		{
			name:    "Missing field",
			params:  Params{},
			min:     0.1, max: 50,
			wantErr: true,
		},
		{
			name:    "Non-numeric value",
			params:  Params{"bilirubin": "high"},
			min:     0.1, max: 50,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Float("bilirubin", tt.min, tt.max)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams_Int(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    int
		wantErr bool
	}{
		{
			name:   "Whole float accepted",
			params: Params{"age": 45.0},
			want:   45,
		},
		{
			name:    "Fractional value rejected, not truncated",
			params:  Params{"age": 45.7},
			wantErr: true,
		},
		{
			name:    "Out of bounds",
			params:  Params{"age": 150.0},
			wantErr: true,
		},
		{
			name:    "Missing field",
			params:  Params{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Int("age", 0, 120)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams_OptionalFloat(t *testing.T) {
	params := Params{"sodium": 130.0}

	value, set, err := params.OptionalFloat("sodium", 120, 160)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 130.0, value)

	_, set, err = params.OptionalFloat("albumin", 1, 6)
	require.NoError(t, err)
	assert.False(t, set)

	// Present but invalid values still fail validation
	params["sodium"] = 500.0
	_, _, err = params.OptionalFloat("sodium", 120, 160)
	assert.Error(t, err)
}
