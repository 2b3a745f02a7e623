package service

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// PrincipalResolver turns verified token claims into an authenticated
// principal by loading the account named by the token subject.
type PrincipalResolver struct {
	users ports.UserRepository
}

func NewPrincipalResolver(users ports.UserRepository) *PrincipalResolver {
	return &PrincipalResolver{users: users}
}

// Resolve looks the principal up by the token subject. A structurally
// valid token for a deleted account fails with domain.ErrUserNotFound.
func (r *PrincipalResolver) Resolve(ctx context.Context, claims *Claims) (domain.Principal, error) {
	user, err := r.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.PrincipalOf(user), nil
}
