package services

import (
	"context"
	"testing"

	"cardlink.app/models"
	"cardlink.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCardRepo struct {
	repositories.ICardRepository
	byID  map[uint]*models.Card
	byKey map[string]*models.Card
}

func (f *stubCardRepo) GetCardByID(_ context.Context, id uint) (*models.Card, error) {
	card, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return card, nil
}

func (f *stubCardRepo) FindEnabledByShareKey(_ context.Context, key string) (*models.Card, error) {
	card, ok := f.byKey[key]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return card, nil
}

type stubUserRepo struct {
	repositories.IUserRepository
	users map[uint]*models.User
}

func (f *stubUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func newCardServiceFixture() *CardService {
	card := &models.Card{
		BaseModel:     models.BaseModel{ID: 42},
		ShareKey:      "abc123xyz",
		CreatorUserID: 7,
		IsEnabled:     true,
		Detail:        models.CardDetail{CardID: 42, CardName: "Work Card", FirstName: "Ada", LastName: "Lovelace"},
	}
	return &CardService{
		repo: &stubCardRepo{
			byID:  map[uint]*models.Card{42: card},
			byKey: map[string]*models.Card{"abc123xyz": card},
		},
		userRepo: &stubUserRepo{users: map[uint]*models.User{
			7: {IsSystem: false},
			1: {IsSystem: true},
			9: {IsSystem: false},
		}},
	}
}

func TestValidateCardDetail(t *testing.T) {
	valid := models.CardDetail{CardName: "Work Card", FirstName: "Ada", LastName: "Lovelace"}
	assert.NoError(t, ValidateCardDetail(valid))

	noFirst := valid
	noFirst.FirstName = ""
	assert.ErrorIs(t, ValidateCardDetail(noFirst), ErrCardNameRequired)

	noLast := valid
	noLast.LastName = ""
	assert.ErrorIs(t, ValidateCardDetail(noLast), ErrCardNameRequired)

	noCardName := valid
	noCardName.CardName = ""
	assert.ErrorIs(t, ValidateCardDetail(noCardName), ErrCrdInvalidInput)
}

func TestGetCardByID_OwnerAccess(t *testing.T) {
	service := newCardServiceFixture()

	card, err := service.GetCardByID(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(42), card.ID)
}

func TestGetCardByID_SystemUserAccess(t *testing.T) {
	service := newCardServiceFixture()

	card, err := service.GetCardByID(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(42), card.ID)
}

func TestGetCardByID_ForbiddenForOtherUser(t *testing.T) {
	service := newCardServiceFixture()

	card, err := service.GetCardByID(context.Background(), 42, 9)
	assert.ErrorIs(t, err, ErrCardForbidden)
	assert.Nil(t, card)
}

func TestGetCardByID_NotFound(t *testing.T) {
	service := newCardServiceFixture()

	card, err := service.GetCardByID(context.Background(), 999, 7)
	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.Nil(t, card)
}

func TestGetCardByKey(t *testing.T) {
	service := newCardServiceFixture()

	card, err := service.GetCardByKey(context.Background(), "abc123xyz")
	require.NoError(t, err)
	assert.Equal(t, "abc123xyz", card.ShareKey)

	_, err = service.GetCardByKey(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = service.GetCardByKey(context.Background(), "")
	assert.ErrorIs(t, err, ErrCardNotFound)
}
