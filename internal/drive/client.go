// Package drive wraps the Google Drive v3 permissions API behind the
// single call this application makes.
package drive

import (
	"context"
	"fmt"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Client issues permission grants against the Drive API using a
// service-account credentials file
type Client struct {
	svc *gdrive.Service
}

// NewClient creates a Drive client from a service-account JSON key file
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := gdrive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gdrive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// CreateReaderPermission grants email read-only access to folderID.
// Drive's own notification mail is suppressed; the bot sends its own
// confirmation message instead.
func (c *Client) CreateReaderPermission(ctx context.Context, folderID, email string) error {
	perm := &gdrive.Permission{
		Type:         "user",
		Role:         "reader",
		EmailAddress: email,
	}

	_, err := c.svc.Permissions.Create(folderID, perm).
		SendNotificationEmail(false).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to create permission on folder %s: %w", folderID, err)
	}
	return nil
}
