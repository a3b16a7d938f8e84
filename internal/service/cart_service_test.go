package service

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
	"testing"
)

func TestCartService_AddViewTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)
	user := f.register("a@x.com")

	require.NoError(t, f.cart.Add(ctx, user.UserID, 1))
	require.NoError(t, f.cart.Add(ctx, user.UserID, 1))

	view, err := f.cart.View(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 2, view[0].Quantity)

	total, err := f.cart.Total(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, total.Items, 2, "total lists every occurrence")
	assert.Equal(t, 732.0, total.Items[0].Price)
	assert.Equal(t, 732.0, total.Items[1].Price)
	assert.Equal(t, 1464.0, total.Total)
	assert.Equal(t, 0.0, total.Delivery)
	assert.Equal(t, 1464.0, total.FinalTotal)
}

func TestCartService_DanglingIDsAreDroppedOnRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)
	user := f.register("a@x.com")

	require.NoError(t, f.cart.Add(ctx, user.UserID, 404))
	require.NoError(t, f.cart.Add(ctx, user.UserID, 2))

	view, err := f.cart.View(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(view))

	total, err := f.cart.Total(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(total.Items))
	assert.Equal(t, 850.0, total.Total)
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)
	user := f.register("a@x.com")

	for _, id := range []int{1, 1, 1, 3} {
		require.NoError(t, f.cart.Add(ctx, user.UserID, id))
	}

	require.NoError(t, f.cart.Remove(ctx, user.UserID, 1))
	stored, _ := f.users.GetUserByID(user.UserID)
	assert.Equal(t, 2, stored.Cart.Quantity(1))

	require.NoError(t, f.cart.Remove(ctx, user.UserID, 2), "removing an absent id is a no-op")

	require.NoError(t, f.cart.RemoveAll(ctx, user.UserID, 1))
	view, err := f.cart.View(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(view))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)
	user := f.register("a@x.com")

	require.NoError(t, f.cart.Add(ctx, user.UserID, 2))
	require.NoError(t, f.cart.UpdateQuantity(ctx, user.UserID, 2, 3))

	view, err := f.cart.View(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, 2, view[0].ID)
	assert.Equal(t, 3, view[0].Quantity)

	require.NoError(t, f.cart.UpdateQuantity(ctx, user.UserID, 2, 0))
	view, err = f.cart.View(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, view)

	err = f.cart.UpdateQuantity(ctx, user.UserID, 2, -1)
	assert.ErrorIs(t, err, ErrBadRequest)

	err = f.cart.UpdateQuantity(ctx, 99, 2, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCartService_LineQuantityIsBounded(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)
	user := f.register("a@x.com")

	err := f.cart.UpdateQuantity(ctx, user.UserID, 1, 1_000_000)
	assert.ErrorIs(t, err, ErrBadRequest)
	err = f.cart.UpdateQuantity(ctx, user.UserID, 1, MaxLineQuantity+1)
	assert.ErrorIs(t, err, ErrBadRequest)

	require.NoError(t, f.cart.UpdateQuantity(ctx, user.UserID, 1, MaxLineQuantity))
	err = f.cart.Add(ctx, user.UserID, 1)
	assert.ErrorIs(t, err, ErrBadRequest)

	stored, _ := f.users.GetUserByID(user.UserID)
	assert.Equal(t, MaxLineQuantity, stored.Cart.Quantity(1))

	total, err := f.cart.Total(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, total.Items, MaxLineQuantity)
}

func TestCartService_DeliveryBoundary(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]entity.Sneaker{{ID: 1, Name: "Half", Price: 250}})
	user := f.register("a@x.com")

	total, err := f.cart.Total(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, total.Items)
	assert.Equal(t, 60.0, total.Delivery)
	assert.Equal(t, 60.0, total.FinalTotal)

	require.NoError(t, f.cart.UpdateQuantity(ctx, user.UserID, 1, 2))
	total, err = f.cart.Total(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, total.Total)
	assert.Equal(t, 60.0, total.Delivery, "exactly 500 is not free")
	assert.Equal(t, 560.0, total.FinalTotal)

	require.NoError(t, f.cart.Add(ctx, user.UserID, 1))
	total, err = f.cart.Total(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 750.0, total.Total)
	assert.Equal(t, 0.0, total.Delivery)
	assert.Equal(t, 750.0, total.FinalTotal)
}

func TestCartService_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)
	user := f.register("a@x.com")
	f.publisher.err = errors.New("broker unavailable")

	require.NoError(t, f.cart.Add(ctx, user.UserID, 1))

	stored, _ := f.users.GetUserByID(user.UserID)
	assert.Equal(t, 1, stored.Cart.Quantity(1))
}

func TestCartService_UnknownUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(repository.DefaultSneakers)

	assert.ErrorIs(t, f.cart.Add(ctx, 7, 1), ErrUserNotFound)
	_, err := f.cart.View(ctx, 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = f.cart.Total(ctx, 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
