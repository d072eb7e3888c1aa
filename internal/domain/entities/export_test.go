package entities

// ProvenanceConsumer exports provenanceConsumer for testing.
var ProvenanceConsumer = provenanceConsumer //nolint:gochecknoglobals // test export
