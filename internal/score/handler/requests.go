package handler

// CalculateRequest is the raw parameter mapping posted to the calculate
// endpoint. Validation against the score's constraint specs happens in the
// service, so the transport layer accepts any JSON object.
type CalculateRequest map[string]any
