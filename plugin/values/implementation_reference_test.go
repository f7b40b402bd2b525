package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImplementationReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantModule string
		wantSymbol string
		wantErr    bool
	}{
		{
			name:       "dotted module",
			input:      "strategies.grid:GridStrategy",
			wantModule: "strategies.grid",
			wantSymbol: "GridStrategy",
		},
		{
			name:       "single segment module",
			input:      "binance:Adapter",
			wantModule: "binance",
			wantSymbol: "Adapter",
		},
		{
			name:       "surrounding whitespace trimmed",
			input:      " platforms.okx : OKXAdapter ",
			wantModule: "platforms.okx",
			wantSymbol: "OKXAdapter",
		},
		{name: "no delimiter", input: "badformat", wantErr: true},
		{name: "two delimiters", input: "a:b:c", wantErr: true},
		{name: "empty module", input: ":Symbol", wantErr: true},
		{name: "empty symbol", input: "module:", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ref, err := ParseImplementationReference(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ref.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModule, ref.Module())
			assert.Equal(t, tt.wantSymbol, ref.Symbol())
		})
	}
}

func TestImplementationReference_String(t *testing.T) {
	ref := NewImplementationReference("strategies.grid", "GridStrategy")
	assert.Equal(t, "strategies.grid:GridStrategy", ref.String())

	parsed, err := ParseImplementationReference(ref.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(ref))
	assert.False(t, parsed.Equals(NewImplementationReference("strategies.grid", "Other")))
}
