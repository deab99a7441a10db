package units

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/objectline/sdk"
)

// record mirrors the shape of an interchange record that carries a unit.
type record struct {
	Name string  `json:"name" yaml:"name"`
	Size float64 `json:"size" yaml:"size"`
	Unit Unit    `json:"unit" yaml:"unit"`
}

func TestUnit_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{"meters", Meters, `"m"`},
		{"none", None, `"none"`},
		{"square meters", SquareMeters, `"m²"`},
		{"percent", Percent, `"%"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestUnit_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Unit
		wantErr bool
	}{
		{"canonical symbol", `"m"`, Meters, false},
		{"alias normalizes to canonical", `"meters"`, Meters, false},
		{"mixed case alias", `"Metres"`, Meters, false},
		{"null becomes the no-unit value", `null`, None, false},
		{"unknown unit", `"furlongs"`, "", true},
		{"wrong JSON type", `42`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Unit
			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnit_UnmarshalJSON_InvalidUnitError(t *testing.T) {
	var got Unit
	err := json.Unmarshal([]byte(`"furlongs"`), &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrInvalidUnit)
}

func TestRecordJSONRoundTrip(t *testing.T) {
	in := record{Name: "beam", Size: 12.5, Unit: Millimeters}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"beam","size":12.5,"unit":"mm"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

// TestRecordJSON_AliasInput covers records produced by tools that spell the
// unit out instead of using the canonical symbol.
func TestRecordJSON_AliasInput(t *testing.T) {
	var out record
	err := json.Unmarshal([]byte(`{"name":"beam","size":1,"unit":"millimetres"}`), &out)
	require.NoError(t, err)
	assert.Equal(t, Millimeters, out.Unit)
}

func TestUnit_MarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(record{Name: "beam", Size: 2, Unit: Meters})
	require.NoError(t, err)
	assert.Equal(t, "name: beam\nsize: 2\nunit: m\n", string(data))
}

func TestUnit_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Unit
		wantErr bool
	}{
		{"canonical symbol", "unit: m\n", Meters, false},
		{"alias normalizes to canonical", "unit: kilometres\n", Kilometers, false},
		{"quoted percent", "unit: \"%\"\n", Percent, false},
		{"explicit null becomes the no-unit value", "unit: null\n", None, false},
		{"absent value becomes the no-unit value", "unit:\n", None, false},
		{"unknown unit", "unit: furlongs\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Unit Unit `yaml:"unit"`
			}
			err := yaml.Unmarshal([]byte(tt.data), &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Unit)
		})
	}
}

// TestYAMLRoundTrip verifies marshal/unmarshal symmetry for units whose
// symbols need no quoting as well as those that do.
func TestYAMLRoundTrip(t *testing.T) {
	for _, unit := range []Unit{Meters, SquareMeters, Percent, WattsPerSquareMeter, LitersPerSecondPerSquareMeter} {
		in := record{Name: "sample", Size: 1, Unit: unit}

		data, err := yaml.Marshal(in)
		require.NoError(t, err, "unit %s", unit)

		var out record
		require.NoError(t, yaml.Unmarshal(data, &out), "unit %s", unit)
		assert.Equal(t, in, out, "unit %s", unit)
	}
}
