package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardlink.app/models"
	"cardlink.app/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsContactRepo struct {
	repositories.IContactRepository

	total     int64
	totalErr  error
	monthly   int64
	monthErr  error
	gotSince  time.Time
	cities    []string
	citiesErr error
	recent    *models.Contact
	recentErr error
	geoRows   []repositories.GeolocatedContactRow
	geoErr    error
}

func (f *statsContactRepo) CountByOwner(_ context.Context, _ uint) (int64, error) {
	return f.total, f.totalErr
}

func (f *statsContactRepo) CountByOwnerSince(_ context.Context, _ uint, since time.Time) (int64, error) {
	f.gotSince = since
	return f.monthly, f.monthErr
}

func (f *statsContactRepo) ListCitiesByOwner(_ context.Context, _ uint) ([]string, error) {
	return f.cities, f.citiesErr
}

func (f *statsContactRepo) FindMostRecentByOwner(_ context.Context, _ uint) (*models.Contact, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if f.recent == nil {
		return nil, repositories.ErrNotFound
	}
	return f.recent, nil
}

func (f *statsContactRepo) FindGeolocatedByOwner(_ context.Context, _ uint) ([]repositories.GeolocatedContactRow, error) {
	return f.geoRows, f.geoErr
}

func newAnalyticsService(repo *statsContactRepo, now time.Time) *ConnectionAnalyticsService {
	return &ConnectionAnalyticsService{
		contacts: repo,
		now:      func() time.Time { return now },
	}
}

func TestGetConnectionMetrics_NoContacts(t *testing.T) {
	repo := &statsContactRepo{}
	service := newAnalyticsService(repo, time.Now())

	metrics := service.GetConnectionMetrics(context.Background(), 7)

	// Gerçek sıfırlar; Degraded kalkmamalı.
	assert.False(t, metrics.Degraded)
	assert.Zero(t, metrics.Total)
	assert.Zero(t, metrics.ThisMonth)
	assert.Nil(t, metrics.TopCity)
	assert.Zero(t, metrics.TopCityCount)
	assert.Nil(t, metrics.RecentContact)
}

func TestGetConnectionMetrics_Populated(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	recentDate := now.Add(-2 * time.Hour)
	repo := &statsContactRepo{
		total:   12,
		monthly: 5,
		cities:  []string{"Austin", "Denver", "Austin"},
		recent:  &models.Contact{ID: uuid.New(), Name: "Grace Hopper", CreatedAt: recentDate},
	}
	service := newAnalyticsService(repo, now)

	metrics := service.GetConnectionMetrics(context.Background(), 7)

	assert.False(t, metrics.Degraded)
	assert.Equal(t, int64(12), metrics.Total)
	assert.Equal(t, int64(5), metrics.ThisMonth)
	require.NotNil(t, metrics.TopCity)
	assert.Equal(t, "Austin", *metrics.TopCity)
	assert.Equal(t, int64(2), metrics.TopCityCount)
	require.NotNil(t, metrics.RecentContact)
	assert.Equal(t, "Grace Hopper", metrics.RecentContact.Name)
	assert.Equal(t, recentDate, metrics.RecentContact.Date)

	// Takvim ayı değil; sorgu anından geriye tam 30 gün.
	assert.Equal(t, now.AddDate(0, 0, -30), repo.gotSince)
}

func TestGetConnectionMetrics_DegradedOnQueryFailure(t *testing.T) {
	repo := &statsContactRepo{
		totalErr: errors.New("db down"),
		monthly:  3,
		cities:   []string{"Austin"},
	}
	service := newAnalyticsService(repo, time.Now())

	metrics := service.GetConnectionMetrics(context.Background(), 7)

	// Başarısız sorgu sıfır bırakır ama kalanlar hesaplanır.
	assert.True(t, metrics.Degraded)
	assert.Zero(t, metrics.Total)
	assert.Equal(t, int64(3), metrics.ThisMonth)
	require.NotNil(t, metrics.TopCity)
	assert.Equal(t, "Austin", *metrics.TopCity)
}

func TestGetConnectionMetrics_RecentLookupFailure(t *testing.T) {
	repo := &statsContactRepo{recentErr: errors.New("db down")}
	service := newAnalyticsService(repo, time.Now())

	metrics := service.GetConnectionMetrics(context.Background(), 7)

	assert.True(t, metrics.Degraded)
	assert.Nil(t, metrics.RecentContact)
}

func TestTopCity(t *testing.T) {
	tests := []struct {
		name      string
		cities    []string
		wantCity  string
		wantCount int64
	}{
		{"tek şehir", []string{"Austin"}, "Austin", 1},
		{"çoğunluk kazanır", []string{"Austin", "Denver", "Austin"}, "Austin", 2},
		{"eşitlikte alfabetik küçük", []string{"Denver", "Austin"}, "Austin", 1},
		{"boş şehirler sayılmaz", []string{"", "", "Austin"}, "Austin", 1},
		{"liste boş", nil, "", 0},
		{"birebir eşleşme, normalizasyon yok", []string{"austin", "Austin"}, "Austin", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, count := topCity(tt.cities)
			assert.Equal(t, tt.wantCount, count)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantCity, city)
			}
		})
	}
}

func TestListGeolocatedContacts(t *testing.T) {
	city := "Austin"
	state := "Texas"
	id := uuid.New()
	created := time.Now().Add(-time.Hour)
	repo := &statsContactRepo{
		geoRows: []repositories.GeolocatedContactRow{
			{
				ID:        id,
				Name:      "Grace Hopper",
				Phone:     "+1 555 999 8888",
				City:      &city,
				State:     &state,
				Latitude:  30.2672,
				Longitude: -97.7431,
				CreatedAt: created,
				CardName:  "Work Card",
			},
		},
	}
	service := newAnalyticsService(repo, time.Now())

	contacts, err := service.ListGeolocatedContacts(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, id, contacts[0].ID)
	assert.Equal(t, "Grace Hopper", contacts[0].Name)
	assert.Equal(t, &city, contacts[0].City)
	assert.InDelta(t, 30.2672, contacts[0].Latitude, 0.0001)
	assert.Equal(t, "Work Card", contacts[0].CardName)
}

func TestListGeolocatedContacts_Error(t *testing.T) {
	repo := &statsContactRepo{geoErr: errors.New("db down")}
	service := newAnalyticsService(repo, time.Now())

	contacts, err := service.ListGeolocatedContacts(context.Background(), 7)

	require.Error(t, err)
	assert.Nil(t, contacts)
}
