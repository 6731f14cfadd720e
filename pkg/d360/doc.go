// Package d360 provides types and interfaces for working with the
// Document360 Drive folder API.
//
// # Overview
//
// The d360 package defines the domain types (Folder, DeleteResult) and the
// interfaces for the folder client (FoldersClient). A concrete implementation
// is provided by the driveclient package, which wires configuration,
// transport, and authentication. Most consumers should import driveclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/d360-io/d360/pkg/d360"
//	  "github.com/d360-io/d360/pkg/driveclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := driveclient.New(ctx, &d360.Config{
//	    APIEndpoint: "https://apihub.document360.io",
//	    APIToken:    "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  folders, err := cli.Folders().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = folders
//	}
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound and
// IsUnauthorized make it easy to branch on common error cases.
package d360
