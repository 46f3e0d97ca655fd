/*
Package crmsdk provides a typed Go client for the TPIS CRM client-records API.

Create an SDKClient pointed at the service base URL and call its methods:

	sdk := crmsdk.NewSDKClient("http://localhost:8080")

	created, err := sdk.CreateClient(ctx, crmsdk.ClientPayload{
		Name:    "John",
		Surname: "Doe",
		Contacts: []crmsdk.Contact{
			{Type: "email", Value: "john@example.com"},
		},
	})

	clients, err := sdk.ListClients(ctx, "Doe")
	client, err := sdk.GetClient(ctx, created.ID)
	client, err = sdk.UpdateClient(ctx, created.ID, payload)
	err = sdk.DeleteClient(ctx, created.ID)

Errors come back typed: *ValidationError carries the server's field-level
list for 422 responses, *APIError carries the status code and message for
everything else. The same response types double as the server's wire
contract, so SDK and service cannot drift apart.
*/
package crmsdk
