package main

import (
	"context"
	"errors"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

var errEmptyCatalog = errors.New("pattern catalog is empty")

func catalogLoaded(context.Context) error {
	if len(categorizr.Rules()) == 0 {
		return errEmptyCatalog
	}
	return nil
}
