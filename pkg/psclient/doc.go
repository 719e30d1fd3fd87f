// Package psclient provides the primary entry point for constructing
// PhotoShelter API clients that implement the psapi.Client and psapi.V3Client
// interfaces.
//
// It layers configuration, HTTP transport, and session handling on top of the
// resource interfaces and types defined in the psapi package. Most
// applications should import psclient to build a client, then use the
// returned interface to access resource-specific clients, for example
// Collections(), Galleries(), Media().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/skylight-io/psapi-client/pkg/psapi"
//	  "github.com/skylight-io/psapi-client/pkg/psclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With email/password the client logs in during construction.
//	  cli, err := psclient.New(ctx, &psapi.Config{
//	    Endpoint: "https://www.photoshelter.com",
//	    APIKey:   "my-api-key",
//	    Email:    "user@example.com",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a session token you already have:
//	  cli, err = psclient.NewWithToken(ctx, "https://www.photoshelter.com", "my-api-key", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  galleries, err := cli.Galleries().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = galleries
//	}
//
// Every call other than login fails with psapi.ErrNotAuthenticated before any
// network I/O when the session holds no token.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithPassword that wrap New with the appropriate configuration, and NewV3
// for the older envelope-wrapped namespace.
package psclient
