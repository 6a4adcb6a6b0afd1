package service

import (
	"context"
	"io"

	"material-issue-sheet/models"
)

// LoaderInterface loads the startup resources
type LoaderInterface interface {
	Load(ctx context.Context) (*LoadedData, error)
}

// OrderSheetWriter turns a laid-out order sheet into a downloadable artifact
type OrderSheetWriter interface {
	// Extension is appended to the sheet's base file name, e.g. ".xlsx"
	Extension() string
	ContentType() string
	Write(ctx context.Context, sheet *models.OrderSheet, out io.Writer) error
}
