package employeeerrors

import (
	"net/http"

	"github.com/sampita/companytree/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrUsernameAlreadyTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)
	ErrAccountAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"Account is already linked to an employee",
		http.StatusConflict,
	)
	ErrSupervisorNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Supervisor does not reference an existing employee",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
