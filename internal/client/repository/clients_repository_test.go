package repository

import (
	"context"
	"testing"

	"despensa/internal/domain"
	apperrors "despensa/internal/errors"
	"despensa/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestClientRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLClientRepository(db)

	id, err := repo.Insert(context.Background(), domain.Client{
		Name:  "Ana López",
		Phone: "5512345678",
	})
	assert.NoError(t, err)

	found, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Ana López", found.Name)
	assert.Equal(t, "5512345678", found.Phone)
}

func TestClientRepository_FindByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLClientRepository(db)

	_, err := repo.FindByID(context.Background(), 424242)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestClientRepository_AddressesRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLClientRepository(db)

	clientID, err := repo.Insert(context.Background(), domain.Client{Name: "Ana López", Phone: "5512345678"})
	assert.NoError(t, err)

	complement := "apt 4B"
	_, err = repo.InsertAddress(context.Background(), domain.Address{
		ClientID:     clientID,
		Street:       "Av. Insurgentes",
		Number:       "1200",
		Neighborhood: "Del Valle",
		City:         "CDMX",
		State:        "DF",
		ZipCode:      "03100",
		Complement:   &complement,
		Nickname:     "home",
	})
	assert.NoError(t, err)

	addresses, err := repo.FindAddressesByClientID(context.Background(), clientID)
	assert.NoError(t, err)
	assert.Len(t, addresses, 1)
	assert.Equal(t, "Av. Insurgentes", addresses[0].Street)
	assert.Equal(t, "apt 4B", *addresses[0].Complement)
	assert.Nil(t, addresses[0].Reference)
}

func TestClientRepository_AddressesEmptyForNewClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLClientRepository(db)

	clientID, err := repo.Insert(context.Background(), domain.Client{Name: "Ana López", Phone: "5512345678"})
	assert.NoError(t, err)

	addresses, err := repo.FindAddressesByClientID(context.Background(), clientID)
	assert.NoError(t, err)
	assert.Empty(t, addresses)
}
