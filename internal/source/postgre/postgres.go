package postgres

import (
	"context"
	"database/sql"

	"member-admin/internal/model"

	"github.com/friendsofgo/errors"
)

func (s *implSource) Name() string {
	return sourceName
}

func (s *implSource) Fetch(ctx context.Context) ([]model.Member, error) {
	rows, err := s.db.QueryContext(ctx, buildListQuery(s.table))
	if err != nil {
		s.l.Errorf(ctx, "internal.source.postgres.Fetch.QueryContext: %v", err)
		return nil, errors.Wrapf(err, "query %s", s.table)
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var id string
		var name, email, role sql.NullString
		if err := rows.Scan(&id, &name, &email, &role); err != nil {
			s.l.Errorf(ctx, "internal.source.postgres.Fetch.Scan: %v", err)
			return nil, errors.Wrap(err, "scan member")
		}
		members = append(members, model.Member{
			ID:    id,
			Name:  name.String,
			Email: email.String,
			Role:  role.String,
		})
	}

	if err := rows.Err(); err != nil {
		s.l.Errorf(ctx, "internal.source.postgres.Fetch.Err: %v", err)
		return nil, errors.Wrap(err, "iterate members")
	}

	return members, nil
}
