package service

import (
	"context"

	"coursebot/internal/domain"

	"go.uber.org/zap"
)

// PermissionCreator grants one e-mail address read access to one Drive
// folder. Implemented by the Drive client; mocked in tests.
type PermissionCreator interface {
	CreateReaderPermission(ctx context.Context, folderID, email string) error
}

// AccessService resolves course identifiers to Drive folders and issues
// permission grants
type AccessService struct {
	catalog domain.Catalog
	drive   PermissionCreator
	logger  *zap.Logger
}

// NewAccessService creates a new access service
func NewAccessService(catalog domain.Catalog, drive PermissionCreator, logger *zap.Logger) *AccessService {
	return &AccessService{
		catalog: catalog,
		drive:   drive,
		logger:  logger,
	}
}

// Grant gives email read access to the folder mapped to courseToken.
// An unmapped course fails without calling Drive. Errors from Drive are
// logged and reported as false, never propagated. There is no retry;
// a duplicate grant is a Drive-side no-op.
func (s *AccessService) Grant(ctx context.Context, email, courseToken string) bool {
	course, info, ok := s.catalog.Lookup(courseToken)
	if !ok {
		s.logger.Warn("Grant requested for unmapped course",
			zap.String("course", courseToken),
		)
		return false
	}

	if err := s.drive.CreateReaderPermission(ctx, info.FolderID, email); err != nil {
		s.logger.Error("Failed to grant folder access",
			zap.String("course", string(course)),
			zap.String("folder_id", info.FolderID),
			zap.String("email", email),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("Granted folder access",
		zap.String("course", string(course)),
		zap.String("folder_id", info.FolderID),
		zap.String("email", email),
	)
	return true
}
