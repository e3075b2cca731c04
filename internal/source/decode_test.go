package source

import (
	"strings"
	"testing"

	"member-admin/internal/model"

	"github.com/friendsofgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []model.Member
		wantErr bool
	}{
		{
			name: "array",
			body: `[{"id":"1","name":"Aaron Miles","email":"aaron@mailinator.com","role":"member"},{"id":"2","name":"Aishwarya Naik","email":"aishwarya@mailinator.com","role":"admin"}]`,
			want: []model.Member{
				{ID: "1", Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "member"},
				{ID: "2", Name: "Aishwarya Naik", Email: "aishwarya@mailinator.com", Role: "admin"},
			},
		},
		{name: "empty array", body: `[]`, want: []model.Member{}},
		{name: "null", body: `null`, want: []model.Member{}},
		{name: "object", body: `{"id":"1"}`, wantErr: true},
		{name: "garbage", body: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedPayload))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
