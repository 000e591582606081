package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
)

func newListingFixture(t *testing.T) (*application.ListingService, *fakeListingRepo, *fakeUserRepo) {
	t.Helper()
	listings := newFakeListingRepo()
	users := newFakeUserRepo()
	svc := application.NewListingService(listings, users, quietLogger())
	return svc, listings, users
}

func seedUser(t *testing.T, users *fakeUserRepo, name, email string) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:     name,
		Email:    email,
		Phone:    "9876543210",
		UserType: entity.UserTypeHousehold,
		Address:  entity.Address{City: "Chennai", State: "Tamil Nadu", Pincode: "600001"},
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func validInput() application.CreateListingInput {
	return application.CreateListingInput{
		Title:       "Clean plastic bottles",
		Description: "A large batch of rinsed PET bottles ready for pickup",
		Category:    "plastic",
		Quantity:    5,
		Unit:        "kg",
		Price:       100,
		Location:    entity.Location{City: "Chennai", State: "Tamil Nadu"},
	}
}

func TestListingCreate_Validation(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	tests := []struct {
		name   string
		mutate func(*application.CreateListingInput)
		fields []string
	}{
		{
			name:   "quantity below one",
			mutate: func(in *application.CreateListingInput) { in.Quantity = 0 },
			fields: []string{"quantity"},
		},
		{
			name:   "negative price",
			mutate: func(in *application.CreateListingInput) { in.Price = -1 },
			fields: []string{"price"},
		},
		{
			name: "multiple violations reported together",
			mutate: func(in *application.CreateListingInput) {
				in.Quantity = 0
				in.Price = -5
				in.Title = ""
			},
			fields: []string{"quantity", "price", "title"},
		},
		{
			name:   "unknown category",
			mutate: func(in *application.CreateListingInput) { in.Category = "uranium" },
			fields: []string{"category"},
		},
		{
			name:   "unknown unit",
			mutate: func(in *application.CreateListingInput) { in.Unit = "litres" },
			fields: []string{"unit"},
		},
		{
			name: "title too long",
			mutate: func(in *application.CreateListingInput) {
				long := make([]byte, 101)
				for i := range long {
					long[i] = 'a'
				}
				in.Title = string(long)
			},
			fields: []string{"title"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Create(ctx, in, seller)
			var verr *application.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tc.fields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestListingCreate_RoundTrip(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	in := validInput()
	created, err := svc.Create(ctx, in, seller)
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.Equal(t, entity.ListingStatusAvailable, created.Status)
	assert.Equal(t, entity.ConditionGood, created.Condition)
	assert.True(t, created.PickupRequired)
	assert.Equal(t, seller.ID, created.Seller)

	got, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.Quantity, got.Quantity)
	assert.Equal(t, in.Unit, got.Unit)
	assert.Equal(t, in.Price, got.Price)

	require.NotNil(t, got.Seller)
	assert.Equal(t, seller.ID.Hex(), got.Seller.ID)
	assert.Equal(t, seller.Email, got.Seller.Email)
	// Single-listing reads include the seller's address.
	require.NotNil(t, got.Seller.Address)
	assert.Equal(t, "Chennai", got.Seller.Address.City)
}

func TestListingGet_NotFound(t *testing.T) {
	svc, _, _ := newListingFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = svc.Get(ctx, "65f000000000000000000000")
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestListingUpdate_SellerOnly(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")
	intruder := seedUser(t, users, "Ravi", "ravi@example.com")

	created, err := svc.Create(ctx, validInput(), seller)
	require.NoError(t, err)

	newTitle := "Sorted plastic bottles"
	_, err = svc.Update(ctx, created.ID.Hex(), application.UpdateListingInput{Title: &newTitle}, intruder)
	assert.ErrorIs(t, err, application.ErrForbidden)

	updated, err := svc.Update(ctx, created.ID.Hex(), application.UpdateListingInput{Title: &newTitle}, seller)
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

func TestListingUpdate_PartialLeavesRestUntouched(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	created, err := svc.Create(ctx, validInput(), seller)
	require.NoError(t, err)

	price := 250.0
	status := entity.ListingStatusReserved
	updated, err := svc.Update(ctx, created.ID.Hex(), application.UpdateListingInput{
		Price:  &price,
		Status: &status,
	}, seller)
	require.NoError(t, err)

	assert.Equal(t, price, updated.Price)
	assert.Equal(t, status, updated.Status)
	// Everything not named in the partial update keeps its value, and
	// the seller is never reassignable.
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Quantity, updated.Quantity)
	assert.Equal(t, created.Unit, updated.Unit)
	assert.Equal(t, seller.ID, updated.Listing.Seller)
}

func TestListingUpdate_Revalidates(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	created, err := svc.Create(ctx, validInput(), seller)
	require.NoError(t, err)

	badQty := 0.0
	_, err = svc.Update(ctx, created.ID.Hex(), application.UpdateListingInput{Quantity: &badQty}, seller)
	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantity")

	badStatus := "vaporized"
	_, err = svc.Update(ctx, created.ID.Hex(), application.UpdateListingInput{Status: &badStatus}, seller)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestListingDelete_Scenario(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	u1 := seedUser(t, users, "Asha", "asha@example.com")
	u2 := seedUser(t, users, "Ravi", "ravi@example.com")

	created, err := svc.Create(ctx, validInput(), u1)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusAvailable, created.Status)
	assert.Equal(t, u1.ID, created.Seller)

	err = svc.Delete(ctx, created.ID.Hex(), u2)
	assert.ErrorIs(t, err, application.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex(), u1))

	_, err = svc.Get(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, application.ErrNotFound)

	err = svc.Delete(ctx, created.ID.Hex(), u1)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestListingList_StatusFilter(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	mk := func(title, status string) {
		l, err := svc.Create(ctx, func() application.CreateListingInput {
			in := validInput()
			in.Title = title
			return in
		}(), seller)
		require.NoError(t, err)
		if status != entity.ListingStatusAvailable {
			s := status
			_, err = svc.Update(ctx, l.ID.Hex(), application.UpdateListingInput{Status: &s}, seller)
			require.NoError(t, err)
		}
	}
	mk("first", entity.ListingStatusAvailable)
	mk("second", entity.ListingStatusSold)
	mk("third", entity.ListingStatusAvailable)

	available, total, err := svc.List(ctx, repository.ListingFilter{Status: entity.ListingStatusAvailable}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, v := range available {
		assert.Equal(t, entity.ListingStatusAvailable, v.Status)
	}
	// Newest first.
	assert.Equal(t, "third", available[0].Title)
	assert.Equal(t, "first", available[1].Title)

	sold, total, err := svc.List(ctx, repository.ListingFilter{Status: entity.ListingStatusSold}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, sold, 1)
	assert.Equal(t, "second", sold[0].Title)
}

func TestListingList_PriceRangeInclusive(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	for _, price := range []float64{5, 10, 30, 50, 51} {
		in := validInput()
		in.Price = price
		_, err := svc.Create(ctx, in, seller)
		require.NoError(t, err)
	}

	minP, maxP := 10.0, 50.0
	views, total, err := svc.List(ctx, repository.ListingFilter{
		Status:   entity.ListingStatusAvailable,
		MinPrice: &minP,
		MaxPrice: &maxP,
	}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	for _, v := range views {
		assert.GreaterOrEqual(t, v.Price, minP)
		assert.LessOrEqual(t, v.Price, maxP)
	}
}

func TestListingList_Pagination(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, validInput(), seller)
		require.NoError(t, err)
	}

	filter := repository.ListingFilter{Status: entity.ListingStatusAvailable}

	page1, total, err := svc.List(ctx, filter, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, page1, 10)

	page3, total, err := svc.List(ctx, filter, 3, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, page3, 5)
}

func TestListingList_OrphanedSeller(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")

	created, err := svc.Create(ctx, validInput(), seller)
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, seller.ID))

	got, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, got.Seller)

	views, _, err := svc.List(ctx, repository.ListingFilter{Status: entity.ListingStatusAvailable}, 1, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Seller)
}

func TestListingListBySeller_AllStatuses(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	seller := seedUser(t, users, "Asha", "asha@example.com")
	other := seedUser(t, users, "Ravi", "ravi@example.com")

	mine, err := svc.Create(ctx, validInput(), seller)
	require.NoError(t, err)
	sold := entity.ListingStatusSold
	_, err = svc.Update(ctx, mine.ID.Hex(), application.UpdateListingInput{Status: &sold}, seller)
	require.NoError(t, err)

	_, err = svc.Create(ctx, validInput(), seller)
	require.NoError(t, err)
	_, err = svc.Create(ctx, validInput(), other)
	require.NoError(t, err)

	got, err := svc.ListBySeller(ctx, seller)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, l := range got {
		assert.Equal(t, seller.ID, l.Seller)
	}
}

func TestListingPurchases_AlwaysEmpty(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	buyer := seedUser(t, users, "Ravi", "ravi@example.com")

	purchases, err := svc.Purchases(ctx, buyer)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}
