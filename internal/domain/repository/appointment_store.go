package repository

import "context"

// AppointmentStore persists the appointment list as one opaque blob.
// LoadBlob reports ok=false when nothing has been saved yet.
type AppointmentStore interface {
	LoadBlob(ctx context.Context) (blob string, ok bool, err error)
	SaveBlob(ctx context.Context, blob string) error
}
