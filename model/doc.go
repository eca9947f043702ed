// Package model contains the shared interfaces and the data model of
// the Geocore SDK: the logger and HTTP-client interfaces injected into
// the client, the typed error taxonomy, and the entities managed by
// the Geocore service along with their wire (de)serialization.
package model
