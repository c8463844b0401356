// Package triumph provides a Go client for the Triumph Arcade server API.
//
// Requests carry the organization id in the triumph-organization header.
// POST bodies are JSON payloads sealed in an AES-256-GCM envelope under the
// organization's shared key, and POST responses are opened the same way.
// GET requests and responses are sent in the clear.
//
// Basic usage:
//
//	cfg := triumph.NewConfiguration(triumph.ConfigurationParameters{
//	    Organization: "acme",
//	    APIKey:       os.Getenv("TRIUMPH_API_KEY"),
//	    Env:          triumph.EnvSandbox,
//	})
//
//	client, err := triumph.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Post(ctx, "orders", map[string]any{"a": 1})
//	if err != nil {
//	    var statusErr *triumph.HTTPStatusError
//	    if errors.As(err, &statusErr) {
//	        log.Fatalf("server said %d %s", statusErr.StatusCode, statusErr.StatusText)
//	    }
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.Data)
package triumph
