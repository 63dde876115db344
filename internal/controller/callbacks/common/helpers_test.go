package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDFromCallback(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{name: "delete select", data: "delete_select:123", want: 123},
		{name: "item edit", data: "item_edit:7", want: 7},
		{name: "no separator", data: "flow_cancel", wantErr: true},
		{name: "not a number", data: "edit_field:subject", wantErr: true},
		{name: "extra separator", data: "a:1:2", wantErr: true},
		{name: "empty payload", data: "delete_select:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIDFromCallback(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestParseSuffixFromCallback(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "field", data: "edit_field:subject", want: "subject"},
		{name: "payload with separator", data: "x:a:b", want: "a:b"},
		{name: "no separator", data: "flow_cancel", wantErr: true},
		{name: "empty payload", data: "edit_field:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suffix, err := ParseSuffixFromCallback(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, suffix)
		})
	}
}
