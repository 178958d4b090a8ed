// Package testutil provides shared test doubles for request pipelines,
// chiefly a scripted StubTransport that records executed requests.
package testutil
