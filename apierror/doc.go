// Package apierror turns raw remote-call failures into a fixed taxonomy
// of typed errors that downstream UI can render consistently.
//
// [Classify] is the single entry point. It accepts whatever the request
// pipeline produced, whether a structured [HTTPFailure], a transport
// error, or nothing at all, and always returns exactly one [*Error] with a stable
// machine code, a human message, and field-level detail for validation
// failures. The original failure is preserved as the error's cause.
//
// [FormatForToast] maps each kind to its notification presentation.
package apierror
