// Package request defines the immutable inputs of an SNR computation: the
// observation [Request], the detector and telescope [Instrument] parameters
// and the [Exposure] time or range, together with [InvalidParameterError].
//
// Requests are plain values. Every stage of the engine receives the request by
// parameter and never mutates it. The source template is a closed set of
// variants ([ModelLibrary], [ModelFile], [BlackBody], [EmissionLines]); each
// carries only the fields it needs.
package request
