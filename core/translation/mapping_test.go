package translation

import (
	"testing"

	"l10n-manager/core/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapping(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []Mapping
	}{
		{"Single", []string{"french=fr"}, []Mapping{{Name: "french", Locale: "fr"}}},
		{"CommaSeparated", []string{"french=fr, german=de"}, []Mapping{{Name: "french", Locale: "fr"}, {Name: "german", Locale: "de"}}},
		{"RegionQualifier", []string{"brazilian=pt-rBR"}, []Mapping{{Name: "brazilian", Locale: "pt-rBR"}}},
		{"Empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMapping(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMapping_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NoEquals", []string{"french"}},
		{"EmptyLocale", []string{"french="}},
		{"PathTraversal", []string{"../x=fr"}},
		{"DuplicateName", []string{"french=fr", "french=ca"}},
		{"DuplicateLocale", []string{"french=fr", "francais=fr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapping(tt.args)
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindArgument))
		})
	}
}

func TestMappingFromMap(t *testing.T) {
	got, err := MappingFromMap(map[string]string{"german": "de", "french": "fr"})
	require.NoError(t, err)
	assert.Equal(t, []Mapping{{Name: "french", Locale: "fr"}, {Name: "german", Locale: "de"}}, got)
	assert.Equal(t, "french.csv", got[0].FileName())
}
