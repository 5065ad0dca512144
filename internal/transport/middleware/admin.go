package middleware

import (
	"context"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user does not
// carry the admin role. Use inside handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.UserRoleFromCtx(ctx) != domain.UserRoleAdmin.String() {
		return domain.ErrForbidden
	}
	return nil
}
