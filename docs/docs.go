// Package docs builds the OpenAPI document for the wallet API.
//
// Nothing here is written by hand per endpoint: the api package hands over
// its route table as a list of Operation values and the document is derived
// from them, with component schemas reflected from the same Go types the
// handlers bind and render. Adding a route to the table is enough for it to
// show up in /api-docs/openapi.json and in Swagger UI.
//
// Struct tags read during reflection:
//
//	json        property name (encoding/json rules)
//	form        query parameter name
//	uri         path parameter name
//	description field or parameter description
//	example     example value
package docs

// Info is the document header.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Tag groups operations in the rendered UI.
type Tag struct {
	Name        string
	Description string
}

// DefaultInfo returns the header used by the server and cmd/apidocs.
func DefaultInfo(version string) Info {
	return Info{
		Title:       "Wallet Backend API",
		Version:     version,
		Description: "Users, wallets, transfers and products served from fabricated in-memory data.",
	}
}

// Tags lists the tag descriptions, in display order.
var Tags = []Tag{
	{Name: "System", Description: "Health checks and landing page"},
	{Name: "Users", Description: "User accounts"},
	{Name: "Wallets", Description: "Wallets owned by users"},
	{Name: "Transfers", Description: "Transfers between wallets"},
	{Name: "Products", Description: "Product catalogue"},
}
