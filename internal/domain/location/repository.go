package location

import "context"

type LocationRepository interface {
	// GetByID returns the location scoped to the organization, or
	// ErrLocationNotFound.
	GetByID(ctx context.Context, id string, organizationID string) (WorkLocation, error)

	// NamesByIDs resolves location names for the given IDs. Unknown
	// IDs are simply absent from the result.
	NamesByIDs(ctx context.Context, ids []string, organizationID string) (map[string]string, error)
}
