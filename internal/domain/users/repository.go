package users

import "context"

// Repository opera siempre sobre el usuario de la sesión del contexto.
type Repository interface {
	Me(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, in ProfileInput) (Profile, error)
	ChangePassword(ctx context.Context, current, next string) error
}
