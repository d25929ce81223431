package apimachinery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/stretchr/testify/require"
)

func TestExecuteRequestDecodesResponse(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/things/thing-1", r.URL.Path)
				fmt.Fprintln(w, `{"name":"widget"}`)
			},
		),
	)
	defer server.Close()
	client := &BaseClient{
		APIAddress: server.URL,
		HTTPClient: http.DefaultClient,
	}
	thing := struct {
		Name string `json:"name"`
	}{}
	err := client.ExecuteRequest(
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "things/thing-1",
			SuccessCode: http.StatusOK,
			RespObj:     &thing,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "widget", thing.Name)
}

func TestSubmitRequestEncodesBodyAndParams(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.Equal(t, "yes", r.Header.Get("X-Custom"))
				require.Equal(t, "bar", r.URL.Query().Get("foo"))
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	client := &BaseClient{
		APIAddress: server.URL,
		HTTPClient: http.DefaultClient,
	}
	resp, err := client.SubmitRequest(
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "things",
			QueryParams: map[string]string{"foo": "bar"},
			Headers:     map[string]string{"X-Custom": "yes"},
			ReqBodyObj:  map[string]string{"name": "widget"},
			SuccessCode: http.StatusCreated,
		},
	)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestSubmitRequestMapsErrorStatusCodes(t *testing.T) {
	testCases := []struct {
		name        string
		statusCode  int
		expectedErr error
	}{
		{
			name:        "unauthorized",
			statusCode:  http.StatusUnauthorized,
			expectedErr: &sdk.ErrAuthentication{},
		},
		{
			name:        "forbidden",
			statusCode:  http.StatusForbidden,
			expectedErr: &sdk.ErrAuthorization{},
		},
		{
			name:        "bad request",
			statusCode:  http.StatusBadRequest,
			expectedErr: &sdk.ErrBadRequest{},
		},
		{
			name:        "not found",
			statusCode:  http.StatusNotFound,
			expectedErr: &sdk.ErrNotFound{},
		},
		{
			name:        "conflict",
			statusCode:  http.StatusConflict,
			expectedErr: &sdk.ErrConflict{},
		},
		{
			name:        "internal server error",
			statusCode:  http.StatusInternalServerError,
			expectedErr: &sdk.ErrInternalServer{},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(
				http.HandlerFunc(
					func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(testCase.statusCode)
					},
				),
			)
			defer server.Close()
			client := &BaseClient{
				APIAddress: server.URL,
				HTTPClient: http.DefaultClient,
			}
			_, err := client.SubmitRequest(
				OutboundRequest{
					Method:      http.MethodGet,
					Path:        "things",
					SuccessCode: http.StatusOK,
				},
			)
			require.Error(t, err)
			require.IsType(t, testCase.expectedErr, err)
		})
	}
}

func TestSubmitRequestDecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintln(
					w,
					`{"reason":"validation failed","details":["name is required"]}`,
				)
			},
		),
	)
	defer server.Close()
	client := &BaseClient{
		APIAddress: server.URL,
		HTTPClient: http.DefaultClient,
	}
	_, err := client.SubmitRequest(
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "things",
			SuccessCode: http.StatusCreated,
		},
	)
	require.Error(t, err)
	require.IsType(t, &sdk.ErrBadRequest{}, err)
	require.Equal(t, "validation failed", err.(*sdk.ErrBadRequest).Reason)
	require.Equal(t, []string{"name is required"}, err.(*sdk.ErrBadRequest).Details)
}

func TestSubmitRequestUnexpectedStatusCode(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
		),
	)
	defer server.Close()
	client := &BaseClient{
		APIAddress: server.URL,
		HTTPClient: http.DefaultClient,
	}
	_, err := client.SubmitRequest(
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "things",
			SuccessCode: http.StatusOK,
		},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "received 418 from API server")
}
