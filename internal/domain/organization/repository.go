package organization

import "context"

type OrganizationRepository interface {
	// GetByID returns the organization or ErrOrganizationNotFound.
	GetByID(ctx context.Context, id string) (Organization, error)
}
