package resolvers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/pluginhost/plugin/resolvers"
)

func TestSemverResolver_Satisfies(t *testing.T) {
	t.Parallel()

	resolver := resolvers.NewSemverResolver()

	tests := []struct {
		name       string
		constraint string
		version    string
		expected   bool
		wantErr    bool
	}{
		{name: "exact match", constraint: "1.0.0", version: "1.0.0", expected: true},
		{name: "caret range", constraint: "^1.0", version: "1.4.2", expected: true},
		{name: "caret excludes major", constraint: "^1.0", version: "2.0.0", expected: false},
		{name: "tilde range", constraint: "~1.2.0", version: "1.2.5", expected: true},
		{name: "tilde excludes minor", constraint: "~1.2.0", version: "1.3.0", expected: false},
		{name: "latest", constraint: "latest", version: "0.0.1", expected: true},
		{name: "empty constraint", constraint: "", version: "3.1.4", expected: true},
		{name: "invalid constraint", constraint: "invalid", version: "1.0.0", wantErr: true},
		{name: "invalid version", constraint: "^1.0", version: "one", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolver.Satisfies(tc.constraint, tc.version)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
