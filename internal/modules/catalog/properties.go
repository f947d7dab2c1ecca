package catalog

import (
	"context"
	"errors"
	"log"

	"concierge/internal/domain"
	"concierge/internal/repository"

	"gorm.io/gorm"
)

// CreateProperty attaches a property to the actor, or to req.OwnerID when
// an admin creates on a client's behalf. The owner account must exist.
func (s *Service) CreateProperty(ctx context.Context, actorID int64, actorRole domain.UserRole, req CreatePropertyRequest) (*domain.Property, error) {
	ownerID := actorID
	if actorRole == domain.RoleAdmin && req.OwnerID != 0 {
		ownerID = req.OwnerID
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	p := &domain.Property{
		OwnerID:  ownerID,
		Address:  req.Address,
		Surface:  req.Surface,
		NumRooms: req.NumRooms,
		IsActive: true,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListMyProperties returns the actor's active properties.
func (s *Service) ListMyProperties(ctx context.Context, ownerID int64) ([]*domain.Property, error) {
	return s.properties.ListByOwner(ctx, ownerID)
}

// ListAllProperties is the admin view with owner identity joined in.
func (s *Service) ListAllProperties(ctx context.Context) ([]*repository.PropertyDetail, error) {
	return s.properties.ListAll(ctx)
}

// UpdateProperty lets the owner, or any admin, edit a property. A
// mismatch answers the same error as a missing row so ids stay opaque.
func (s *Service) UpdateProperty(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.authorizeProperty(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Surface != nil {
		fields["surface"] = *req.Surface
	}
	if req.NumRooms != nil {
		fields["num_rooms"] = *req.NumRooms
	}
	if len(fields) == 0 {
		return p, nil
	}

	if err := s.properties.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.properties.GetByID(ctx, id)
}

func (s *Service) DeactivateProperty(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64) error {
	if _, err := s.authorizeProperty(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	if err := s.properties.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) authorizeProperty(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorRole != domain.RoleAdmin && p.OwnerID != actorID {
		log.Printf("property_access_denied property_id=%d owner_id=%d actor_id=%d", id, p.OwnerID, actorID)
		return nil, ErrNotOwned
	}
	return p, nil
}
