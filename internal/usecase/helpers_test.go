//go:build unit

package usecase_test

import (
	"errors"

	"github.com/GRAMAPHENIA/resio-sub000/internal/infra"
)

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", errors.New("no rows in result set"), infra.KindNotFound)
}
