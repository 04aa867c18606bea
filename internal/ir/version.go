package ir

// Version constants for the emitted dialect and the serializer.
const (
	// DialectVersion identifies the RelAlg JSON layout written by this module.
	DialectVersion = "1"

	// SerializerVersion is the relalg serializer version.
	SerializerVersion = "0.1.0"
)
