package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// Me returns the current user's profile, including the role list the
// authorization resolver feeds on.
func (c *Client) Me(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := c.doPrivate(ctx, http.MethodGet, "/users/me/", nil, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, payload models.UpdateProfilePayload) (models.Profile, error) {
	var out models.Profile
	err := c.doPrivate(ctx, http.MethodPatch, "/users/me/", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateFavoriteGenres(ctx context.Context, genreIDs []int) (models.Profile, error) {
	var out models.Profile
	payload := models.UpdateFavoriteGenresPayload{FavoriteGenres: genreIDs}
	err := c.doPrivate(ctx, http.MethodPut, "/users/me/genres", nil, payload, &out)
	return out, err
}

// UpdateProfilePicture uploads a new avatar; files maps file names to contents.
func (c *Client) UpdateProfilePicture(ctx context.Context, files map[string][]byte) (models.Profile, error) {
	var out models.Profile
	err := c.doMultipart(ctx, http.MethodPut, "/users/me/picture", "picture", files, &out)
	return out, err
}

// NearbyUsers lists public profiles around the user; radiusKm <= 0 leaves the
// radius to the server default.
func (c *Client) NearbyUsers(ctx context.Context, radiusKm int) ([]models.NearbyUser, error) {
	var query url.Values
	if radiusKm > 0 {
		query = url.Values{"radius_km": []string{strconv.Itoa(radiusKm)}}
	}
	var out []models.NearbyUser
	err := c.doPrivate(ctx, http.MethodGet, "/users/nearby", query, nil, &out)
	return out, err
}
