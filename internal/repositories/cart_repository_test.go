package repository_test

import (
	"errors"
	"testing"
	"time"

	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("GetCart", func(t *testing.T) {
		t.Run("Success - sorted and sanitised", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()

			mock.ExpectHGetAll("cart:" + userID.String()).SetVal(map[string]string{
				"b:base": "2",
				"a:30ml": "1",
				"c:base": "oops",
				"d:base": "0",
			})

			cart, err := repo.GetCart(ctx, userID)

			require.NoError(t, err)
			require.Len(t, cart.Items, 2)
			assert.Equal(t, "a:30ml", cart.Items[0].Key)
			assert.Equal(t, 2, cart.Items[1].Quantity)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - empty cart", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()

			mock.ExpectHGetAll("cart:" + userID.String()).SetVal(map[string]string{})

			cart, err := repo.GetCart(ctx, userID)

			require.NoError(t, err)
			assert.Empty(t, cart.Items)
		})

		t.Run("Error", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()

			mock.ExpectHGetAll("cart:" + userID.String()).SetErr(errors.New("connection refused"))

			_, err := repo.GetCart(ctx, userID)

			require.Error(t, err)
		})
	})

	t.Run("SetItem", func(t *testing.T) {
		t.Run("Success - writes and refreshes expiry", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()
			key := "cart:" + userID.String()

			mock.ExpectHSet(key, "p:30ml", 3).SetVal(1)
			mock.ExpectExpire(key, 30*24*time.Hour).SetVal(true)

			err := repo.SetItem(ctx, userID, "p:30ml", 3)

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Zero quantity removes the line", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()

			mock.ExpectHDel("cart:"+userID.String(), "p:30ml").SetVal(1)

			err := repo.SetItem(ctx, userID, "p:30ml", 0)

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()
			key := "cart:" + userID.String()

			mock.ExpectHSet(key, "p:base", 1).SetErr(errors.New("OOM"))

			err := repo.SetItem(ctx, userID, "p:base", 1)

			require.Error(t, err)
		})
	})

	t.Run("RemoveItems", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)
			userID := uuid.New()

			mock.ExpectHDel("cart:"+userID.String(), "a:base", "b:base").SetVal(2)

			err := repo.RemoveItems(ctx, userID, "a:base", "b:base")

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("No keys is a no-op", func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			repo := repository.NewCartRepo(client)

			require.NoError(t, repo.RemoveItems(ctx, uuid.New()))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
