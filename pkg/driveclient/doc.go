// Package driveclient provides the main entry point for creating Document360
// Drive API clients.
//
// Construct a client from a Config, or use the NewWithToken shorthand:
//
//	cli, err := driveclient.NewWithToken(ctx, "https://apihub.document360.io", token)
//	if err != nil { ... }
//	folders, err := cli.Folders().List(ctx)
package driveclient
