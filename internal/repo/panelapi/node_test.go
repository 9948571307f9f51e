package panelapi

import (
	"testing"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodes(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    []domain.Node
		wantErr bool
	}{
		{
			name: "array",
			body: `[{"id":3,"name":"core"}]`,
			want: []domain.Node{{ID: 3, Name: "core"}},
		},
		{
			name: "wrapped",
			body: `{"nodes":[{"id":4,"name":"relay"}]}`,
			want: []domain.Node{{ID: 4, Name: "relay"}},
		},
		{
			name: "empty",
			body: `[]`,
			want: []domain.Node{},
		},
		{
			name:    "object without nodes",
			body:    `{"items":[]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseNodes([]byte(tc.body))
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrBadNodeList)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
