package postgres

import (
	"errors"

	"github.com/lib/pq"

	"mercado_fetcher/internal/domain"
)

// wrapDBError attaches a domain error kind to a driver error. SQLSTATE class
// 23 (integrity constraint violations: unique, foreign key, not null, check)
// maps to validation, class 08 to connection, everything else to query.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23":
			return errors.Join(domain.ErrValidation, err)
		case "08":
			return errors.Join(domain.ErrConnection, err)
		}
		return errors.Join(domain.ErrQuery, err)
	}

	return errors.Join(domain.ErrQuery, err)
}
