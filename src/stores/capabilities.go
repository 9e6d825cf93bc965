package stores

import "context"

// Notifier surfaces a message to whoever drives this store. Every failure
// path ends in a Notify call, nothing is swallowed into logs alone.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Confirmer asks the driver a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

type NotifierFunc func(ctx context.Context, message string) error

func (f NotifierFunc) Notify(ctx context.Context, message string) error {
	return f(ctx, message)
}

type ConfirmerFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}
