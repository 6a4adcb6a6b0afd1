package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"material-issue-sheet/repository"
)

// DriveService reads resource files from a Google Drive folder
type DriveService struct {
	client   *drive.Service
	folderID string
	logger   *zap.Logger
}

// NewDriveService creates a DriveService authenticated with a service account JSON file
func NewDriveService(ctx context.Context, credentialsPath, folderID string, logger *zap.Logger) (*DriveService, error) {
	return NewDriveServiceWithOptions(ctx, folderID, logger,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
}

// NewDriveServiceWithOptions creates a DriveService with explicit client options
func NewDriveServiceWithOptions(ctx context.Context, folderID string, logger *zap.Logger, opts ...option.ClientOption) (*DriveService, error) {
	client, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveService{
		client:   client,
		folderID: folderID,
		logger:   logger,
	}, nil
}

// Ensure DriveService implements repository.ResourceReader
var _ repository.ResourceReader = (*DriveService)(nil)

// ReadResource downloads the most recently modified file called name in the folder
func (ds *DriveService) ReadResource(ctx context.Context, name string) ([]byte, error) {
	query := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false",
		escapeDriveQuery(ds.folderID), escapeDriveQuery(name))

	list, err := ds.client.Files.List().
		Q(query).
		Fields("files(id, name, modifiedTime)").
		OrderBy("modifiedTime desc").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("file %s not found in drive folder %s", name, ds.folderID)
	}

	file := list.Files[0]
	resp, err := ds.client.Files.Get(file.Id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive download of %s returned status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	ds.logger.Info("resource downloaded from drive",
		zap.String("name", name),
		zap.String("file_id", file.Id),
		zap.Int("bytes", len(data)),
	)
	return data, nil
}

// escapeDriveQuery escapes a value for a single-quoted Drive query string
func escapeDriveQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
