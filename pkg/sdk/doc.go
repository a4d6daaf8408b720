/*
Package sdk is a typed client for the movies HTTP API.

The request and response types in this package are shared with the server:
handlers decode into the request types, call Validate, and encode the
response types, so the wire format lives in one place.

	client := sdk.New("http://localhost:8080")

	if err := client.CreateAccount(ctx, "alice", "s3cret"); err != nil {
		var apiErr *sdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			// username taken or fields missing
		}
	}

	movie, err := client.SearchByDirector(ctx, sdk.SearchByDirectorRequest{
		Director:      "Michael Mann",
		SearchOptions: sdk.SearchOptions{Favorite: true},
	})

Errors returned by the server are decoded into *APIError, which carries the
HTTP status, the error code and, for validation failures, the per-field
details.
*/
package sdk
