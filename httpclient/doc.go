// Package httpclient provides the building blocks of a request pipeline:
// an immutable request descriptor, a pure descriptor Builder, a Transport
// interface with a net/http implementation, and a response Validator.
//
// The Builder never touches the network; construction failures (bad body,
// bad endpoint) are reported as typed errors before any I/O happens:
//
//	b, _ := httpclient.NewBuilder(httpclient.Config{BaseURL: "https://api.example.com"})
//	req, err := b.NewRequest(http.MethodPost, "/users", user)
//
// Validate is the only place status codes are interpreted: it accepts 2xx
// results and rejects everything else with a status error carrying the code.
package httpclient
