package services

import (
	"context"
	"time"

	"github.com/dmarquez/tiendita/internal/api"
	"github.com/dmarquez/tiendita/internal/models"
)

// ProfileService manages the per-user profile data kept upstream: the photo
// and the delivery location.
type ProfileService interface {
	Image(ctx context.Context, localID string) (*models.ProfileImage, error)
	SetImage(ctx context.Context, localID, image string) error
	Location(ctx context.Context, localID string) (*models.Location, error)
	SetLocation(ctx context.Context, localID string, lat, lng float64, address string) error
}

type profileService struct {
	client api.ShopClient
}

// NewProfileService constructs a ProfileService over the remote client.
func NewProfileService(client api.ShopClient) ProfileService {
	return &profileService{client: client}
}

func (p *profileService) Image(ctx context.Context, localID string) (*models.ProfileImage, error) {
	return p.client.GetProfileImage(ctx, localID)
}

func (p *profileService) SetImage(ctx context.Context, localID, image string) error {
	return p.client.PutProfileImage(ctx, localID, image)
}

func (p *profileService) Location(ctx context.Context, localID string) (*models.Location, error) {
	return p.client.GetLocation(ctx, localID)
}

func (p *profileService) SetLocation(ctx context.Context, localID string, lat, lng float64, address string) error {
	loc := models.Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   address,
		UpdatedAt: nowFn().UTC().Format(time.RFC3339),
	}
	return p.client.PutLocation(ctx, localID, loc)
}
