// Package item defines the shared record types consumed by the matching
// engine.
//
// # Identity and Variants
//
//   - Kind: explicit Lost/Found discriminant stored on every record
//   - KindFromID: migration helper for legacy prefix-encoded identifiers
//
// # Data Types
//
//   - Item: a lost or found report with the fields consumed by scoring
//     (Category, Location, Date, Title, Description, Image) plus the
//     variant-only fields carried for the CRUD layer
//   - Category, Status: closed enumerations from the platform
//
// Records are constructed and owned by the surrounding storage/query layer;
// the engine borrows them read-only per call.
package item
