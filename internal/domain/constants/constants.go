// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal publishes order events to a local HTTP endpoint.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes order events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
