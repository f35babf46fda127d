package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func TestContactService_CreateAssignsDefaults(t *testing.T) {
	svc := NewContactService(newTestStores(t).Contacts)

	created, err := svc.CreateContact(&models.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.False(t, created.Read)
	assert.Empty(t, created.Phone)
	assert.WithinDuration(t, time.Now().UTC(), created.Date, 5*time.Second)
}

func TestContactService_ListSortedByDateDescending(t *testing.T) {
	stores := newTestStores(t)
	d1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)
	require.NoError(t, stores.Contacts.Replace([]models.ContactModel{
		{ID: 1, Name: "first", Date: d1},
		{ID: 3, Name: "third", Date: d3},
		{ID: 2, Name: "second", Date: d2},
	}))

	svc := NewContactService(stores.Contacts)
	contacts, err := svc.GetAllContacts()
	require.NoError(t, err)

	require.Len(t, contacts, 3)
	assert.Equal(t, []string{"third", "second", "first"},
		[]string{contacts[0].Name, contacts[1].Name, contacts[2].Name})
}

func TestContactService_SetRead(t *testing.T) {
	svc := NewContactService(newTestStores(t).Contacts)

	created, err := svc.CreateContact(&models.ContactRequest{
		Name: "Ada", Email: "a@b.c", Subject: "s", Message: "m",
	})
	require.NoError(t, err)

	// Omitted value flips the flag.
	toggled, err := svc.SetRead(created.ID, nil)
	require.NoError(t, err)
	assert.True(t, toggled.Read)

	toggled, err = svc.SetRead(created.ID, nil)
	require.NoError(t, err)
	assert.False(t, toggled.Read)

	// Explicit value sets it.
	read := true
	set, err := svc.SetRead(created.ID, &read)
	require.NoError(t, err)
	assert.True(t, set.Read)

	_, err = svc.SetRead(999, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestContactService_IDsNeverReused(t *testing.T) {
	stores := newTestStores(t)
	svc := NewContactService(stores.Contacts)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateContact(&models.ContactRequest{Name: "n", Email: "e", Subject: "s", Message: "m"})
		require.NoError(t, err)
	}

	// Drop the middle record out of band, then create again: the new id
	// must not collide with the surviving record ids.
	_, err := stores.Contacts.Update(func(contacts []models.ContactModel) ([]models.ContactModel, error) {
		return []models.ContactModel{contacts[0], contacts[2]}, nil
	})
	require.NoError(t, err)

	created, err := svc.CreateContact(&models.ContactRequest{Name: "n", Email: "e", Subject: "s", Message: "m"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}
