package service

import (
	"context"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type adminService struct {
	store repository.Store
}

func NewAdminService(store repository.Store) AdminService {
	return &adminService{store: store}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.Repos().Users.List(ctx)
}

// SetUserRole is the only promotion path; automatic transitions only
// ever demote.
func (s *adminService) SetUserRole(ctx context.Context, targetID int32, role domain.Role) error {
	switch role {
	case domain.RoleStandard, domain.RoleVIP, domain.RoleRestricted, domain.RoleAdmin:
	default:
		return domain.Policyf("unknown role %q", role)
	}
	return s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		if _, err := r.Users.GetByID(ctx, targetID); err != nil {
			return err
		}
		return r.Users.UpdateRole(ctx, targetID, role)
	})
}

func (s *adminService) DeleteGathering(ctx context.Context, gatheringID int32) error {
	return s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		if _, err := r.Gatherings.GetByIDForUpdate(ctx, gatheringID); err != nil {
			return err
		}
		if err := r.Participations.DeleteByGathering(ctx, gatheringID); err != nil {
			return err
		}
		return r.Gatherings.Delete(ctx, gatheringID)
	})
}

// CancelListing releases the underlying item back to the shelf and
// removes the listing, from any state.
func (s *adminService) CancelListing(ctx context.Context, listingID int32) error {
	return s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		listing, err := r.Listings.GetByIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if err := r.Collections.UpdateStatus(ctx, listing.CollectionItemID, domain.ItemStatusAvailable); err != nil {
			return err
		}
		return r.Listings.Delete(ctx, listingID)
	})
}
