// Package todoapi is a pipeline-based client for the todo REST backend:
// user registration, login, and the todo resource.
//
// Each operation returns a lazy pipeline that the caller starts and
// subscribes to:
//
//	client, _ := todoapi.New(httpclient.Config{BaseURL: "https://api.example.com"})
//	run := client.LoginAndCreateTodo("user@example.com", "password", todoapi.Todo{Title: "write docs"}).Start(ctx)
//	todo, err := run.Wait(ctx)
//
// Login uses Basic auth; every call after login carries the returned bearer
// token. Input payloads are validated before a descriptor is built, so bad
// inputs fail without touching the network.
package todoapi
