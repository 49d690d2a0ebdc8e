package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/sampita/companytree/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_account_username":
				return employeeerrors.ErrUsernameAlreadyTaken
			case "uq_employee_account":
				return employeeerrors.ErrAccountAlreadyLinked
			}
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "supervisor") {
				return employeeerrors.ErrSupervisorNotFound
			}
		}
	}

	return err
}
