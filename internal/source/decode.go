package source

import (
	"encoding/json"
	"io"

	"member-admin/internal/model"

	"github.com/friendsofgo/errors"
)

// Decode reads a JSON array of members. Anything else is ErrMalformedPayload.
func Decode(r io.Reader) ([]model.Member, error) {
	var members []model.Member
	if err := json.NewDecoder(r).Decode(&members); err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, err.Error())
	}
	if members == nil {
		members = []model.Member{}
	}
	return members, nil
}
