package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-42"

func TestNewUsersClient(t *testing.T) {
	client := NewUsersClient(testAPIAddress, testHTTPClient)
	require.IsType(t, &usersClient{}, client)
	requireBaseClient(t, client.(*usersClient).BaseClient)
}

func TestUsersClientList(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/users", r.URL.Path)
				fmt.Fprintf(
					w,
					`{"metadata":{},"items":[{"metadata":{"id":%q},`+
						`"name":"Alice","email":"alice@example.com","role":"admin"}]}`,
					testUserID,
				)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testHTTPClient)
	users, err := client.List(
		context.Background(),
		UsersSelector{},
		meta.ListOptions{},
	)
	require.NoError(t, err)
	require.Len(t, users.Items, 1)
	require.Equal(t, testUserID, users.Items[0].ID)
}

func TestUsersClientGet(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, fmt.Sprintf("/users/%s", testUserID), r.URL.Path)
				fmt.Fprintf(
					w,
					`{"metadata":{"id":%q},"name":"Alice","email":"alice@example.com"}`,
					testUserID,
				)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testHTTPClient)
	user, err := client.Get(context.Background(), testUserID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestUsersClientLock(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(
					t,
					fmt.Sprintf("/users/%s/lock", testUserID),
					r.URL.Path,
				)
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testHTTPClient)
	require.NoError(t, client.Lock(context.Background(), testUserID))
}

func TestUsersClientUnlock(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(
					t,
					fmt.Sprintf("/users/%s/lock", testUserID),
					r.URL.Path,
				)
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testHTTPClient)
	require.NoError(t, client.Unlock(context.Background(), testUserID))
}
