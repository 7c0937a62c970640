package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSerializer(t *testing.T) {
	tests := []struct {
		format   string
		contains []string
		wantErr  bool
	}{
		{
			format:   "json",
			contains: []string{"JSON representation", `"data":"My business data"`},
		},
		{
			format:   "xml",
			contains: []string{"XML representation", "<data>My business data</data>"},
		},
		{
			format:   "yaml",
			contains: []string{"YAML representation", "data: My business data"},
		},
		{
			format:  "protobuf",
			wantErr: true,
		},
		{
			format:  "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			s, err := GetSerializer(tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			out, err := s.Serialize("My business data")
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}
